// Package endpoints is the registry of Gutenberg server routes.
// It maps symbolic endpoint identifiers to the literal URL paths the
// server matches on, so that client code never hard-codes a path.
//
// The paths are part of the wire contract with the server and are
// preserved exactly, including trailing slashes and query strings.
// The registry is fixed at compile time and safe for concurrent use.
package endpoints

import (
	"github.com/gutenberg-print/gutenberg-go/pkg/errors"
)

// Endpoint identifies a single server route for compile-time safety.
type Endpoint string

// Endpoint identifiers known to the client.
const (
	// CurrentUser returns the authenticated user's profile.
	CurrentUser Endpoint = "current-user"

	// Logout is the OIDC logout route. It is a browser redirect
	// target, not an API call.
	Logout Endpoint = "logout"

	// Printer is the IPP endpoint printers and CUPS clients talk to.
	Printer Endpoint = "printer-protocol-endpoint"

	// ResetToken rotates the user's print token.
	ResetToken Endpoint = "reset-token"

	// Jobs lists and creates print jobs.
	Jobs Endpoint = "jobs"

	// CancelJob is the cancel suffix appended to a job's URL.
	CancelJob Endpoint = "cancel-job"
)

// String returns the string representation of an Endpoint.
func (e Endpoint) String() string {
	return string(e)
}

// Path returns the URL path the server matches for this endpoint.
// The result is empty only for identifiers outside the known set.
func (e Endpoint) Path() string {
	switch e {
	case CurrentUser:
		return "/api/me/?format=json"
	case Logout:
		return "/oidc/logout/"
	case Printer:
		return "/ipp/"
	case ResetToken:
		return "/api/resettoken/"
	case Jobs:
		return "/api/jobs/"
	case CancelJob:
		return "/cancel"
	default:
		return ""
	}
}

// Valid reports whether e is one of the known endpoint identifiers.
func (e Endpoint) Valid() bool {
	return e.Path() != ""
}

// All returns every known endpoint identifier in declaration order.
func All() []Endpoint {
	return []Endpoint{CurrentUser, Logout, Printer, ResetToken, Jobs, CancelJob}
}

// Resolve looks up the path for an identifier held as a plain string.
// Callers with a compile-time identifier should use Endpoint.Path
// instead. Unknown identifiers fail with errors.ErrNotFound; the path
// is never defaulted or guessed.
func Resolve(id string) (string, error) {
	e := Endpoint(id)
	if !e.Valid() {
		return "", errors.NewNotFoundError("endpoint", id)
	}
	return e.Path(), nil
}

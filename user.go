package gutenberg

import "strings"

// User is the profile of the signed-in account as returned by the
// current-user endpoint.
type User struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	IsStaff   bool   `json:"is_staff"`
}

// DisplayName returns the user's full name, falling back to the
// username when no name is set.
func (u User) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}

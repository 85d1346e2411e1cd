package transport

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gutenberg-print/gutenberg-go/pkg/errors"
	"github.com/gutenberg-print/gutenberg-go/pkg/logging"
)

// DecodeResponse decodes a JSON response into the target structure.
// Non-2xx responses become an APIError carrying the endpoint path and
// the response body. A nil target discards the body after the status
// check, for endpoints whose response content does not matter.
func DecodeResponse(resp *http.Response, path string, target any) error {
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logging.Warn().Err(err).Str("endpoint", path).Msg("failed to close response body")
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapIO("read", "response body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &errors.APIError{
			Endpoint:   path,
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
	}

	if target == nil {
		return nil
	}

	if err := json.Unmarshal(body, target); err != nil {
		return errors.WrapParse("json", path, err)
	}

	return nil
}

package adminsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error codes used across the API. InvalidOrExpiredToken and
// InvalidCredentials are deliberately uniform: callers cannot distinguish an
// unknown token from a consumed or lapsed one, nor an unknown email from a
// wrong password.
const (
	ErrorCodeInvalidRequest        = "invalid_request"
	ErrorCodeValidation            = "validation_error"
	ErrorCodeInvalidCredentials    = "invalid_credentials"
	ErrorCodeInvalidOrExpiredToken = "invalid_or_expired_token"
	ErrorCodeForbidden             = "forbidden"
	ErrorCodeNotFound              = "not_found"
	ErrorCodeDuplicateEmail        = "duplicate_email"
	ErrorCodeDeliveryFailed        = "delivery_failed"
	ErrorCodeServerError           = "server_error"
)

// APIError is the typed form of an ErrorResponse. The server writes it, the
// SDK client parses non-2xx responses back into it.
type APIError struct {
	StatusCode  int      `json:"-"`
	Code        string   `json:"error"`
	Description string   `json:"error_description"`
	Fields      []string `json:"fields,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

func parseErrorResponse(resp *http.Response, body []byte) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Code == "" {
		apiErr.Code = ErrorCodeServerError
		apiErr.Description = fmt.Sprintf("unexpected status %d", resp.StatusCode)
	}
	return apiErr
}

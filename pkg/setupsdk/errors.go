package setupsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error codes returned in ErrorResponse.Error.
const (
	ErrorCodeInvalidRequest       = "invalid_request"
	ErrorCodeInvalidToken         = "invalid_token"
	ErrorCodeInsufficientScope    = "insufficient_scope"
	ErrorCodeUnknownDevice        = "unknown_device"
	ErrorCodeInvalidRole          = "invalid_role"
	ErrorCodeDuplicateName        = "duplicate_name"
	ErrorCodeRoleNotFound         = "role_not_found"
	ErrorCodeNotCustom            = "not_custom"
	ErrorCodeConfirmationRequired = "confirmation_required"
	ErrorCodeValidation           = "validation_error"
	ErrorCodeSessionUnavailable   = "session_unavailable"
	ErrorCodeRateLimited          = "rate_limit_exceeded"
	ErrorCodeServerError          = "server_error"
)

// APIError is a non-2xx response from the service.
type APIError struct {
	StatusCode  int
	Code        string
	Description string
	Details     map[string]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// parseErrorResponse turns an error body into an *APIError. Bodies that are
// not ErrorResponse JSON (bearer challenges, proxies) still yield a code.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
			Details:     errResp.Details,
		}
	}

	code := ErrorCodeServerError
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		code = ErrorCodeInvalidToken
	case http.StatusForbidden:
		code = ErrorCodeInsufficientScope
	case http.StatusTooManyRequests:
		code = ErrorCodeRateLimited
	}
	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        code,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}

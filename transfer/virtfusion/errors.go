package virtfusion

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a non-2xx control-plane response. Both the status code
// and the raw body are kept: the engine classifies some failures by
// message text, not just by code.
type APIError struct {
	StatusCode int
	Body       string
	// Message is the human-readable error extracted from the JSON
	// body, or the raw body when parsing fails.
	Message string
}

// NewAPIError classifies a non-2xx response body.
func NewAPIError(status int, body []byte) *APIError {
	return &APIError{
		StatusCode: status,
		Body:       string(body),
		Message:    extractMessage(body),
	}
}

func (e *APIError) Error() string {
	return fmt.Sprintf("virtfusion: HTTP %d: %s", e.StatusCode, e.Message)
}

// extractMessage pulls the most useful text out of a VirtFusion error
// body. The API answers with {"message": ...} or {"errors": {...}};
// broken proxies occasionally answer with HTML.
func extractMessage(body []byte) string {
	var parsed struct {
		Message string          `json:"message"`
		Msg     string          `json:"msg"`
		Errors  json.RawMessage `json:"errors"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		switch {
		case parsed.Message != "":
			return parsed.Message
		case parsed.Msg != "":
			return parsed.Msg
		case len(parsed.Errors) > 0:
			return string(parsed.Errors)
		}
	}
	return strings.TrimSpace(string(body))
}

// IsNotFound reports a 404 response (no user for the ext-relation id,
// unknown server, ...).
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsConflict reports a 409 response, typically a user-create that
// collided with an existing email.
func IsConflict(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusConflict
}

// IsAlreadyOwner reports the 422 the control plane returns when the
// requested owner already owns the server. Classification is by
// message text: the code alone also covers unrelated validation
// failures.
func IsAlreadyOwner(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) &&
		apiErr.StatusCode == http.StatusUnprocessableEntity &&
		strings.Contains(apiErr.Message, "same as the existing owner")
}

// RemoteMessage extracts the control plane's message for surfacing to
// callers; non-API errors fall back to Error().
func RemoteMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}

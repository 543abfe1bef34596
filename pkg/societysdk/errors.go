package societysdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response from the service, carrying the HTTP status
// and the server's message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("societysdk: %d: %s", e.StatusCode, e.Message)
}

// IsConflict reports whether the error is a 409, which callers of Reserve
// typically treat as "retry".
func IsConflict(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusConflict
}

// IsNotFound reports whether the error is a 404.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

func parseErrorResponse(statusCode int, body []byte) error {
	var er ErrorResponse
	if err := json.Unmarshal(body, &er); err != nil || er.Message == "" {
		return &APIError{StatusCode: statusCode, Message: http.StatusText(statusCode)}
	}
	return &APIError{StatusCode: statusCode, Message: er.Message}
}

package intersight

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is returned for any non-2xx API response.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Code       string // Intersight error code, e.g. InvalidRequest
	Message    string
	TraceID    string
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s: HTTP %d", e.Method, e.Path, e.StatusCode)
	if e.Code != "" {
		fmt.Fprintf(&b, " %s", e.Code)
	}
	if e.Message != "" {
		fmt.Fprintf(&b, ": %s", e.Message)
	}
	if e.TraceID != "" {
		fmt.Fprintf(&b, " (trace %s)", e.TraceID)
	}
	return b.String()
}

// errorBody is the error document returned by Intersight.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	TraceID string `json:"traceId"`
}

// newAPIError builds an APIError from a response status and body.
// The body is used as the message when it is not an Intersight error document.
func newAPIError(method, path string, status int, body []byte) *APIError {
	apiErr := &APIError{Method: method, Path: path, StatusCode: status}

	var doc errorBody
	if err := json.Unmarshal(body, &doc); err == nil && (doc.Code != "" || doc.Message != "") {
		apiErr.Code = doc.Code
		apiErr.Message = doc.Message
		apiErr.TraceID = doc.TraceID
		return apiErr
	}

	apiErr.Message = strings.TrimSpace(string(body))
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	return apiErr
}

// NotFoundError is returned when a name lookup matched no object.
type NotFoundError struct {
	Kind ResourceKind
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

// IsNotFound reports whether err is a name lookup miss or an HTTP 404.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return true
	}
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized reports whether the API rejected the request signature or key.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized, http.StatusForbidden)
}

// hasStatus checks if err is an APIError with one of the given status codes.
func hasStatus(err error, codes ...int) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	for _, code := range codes {
		if apiErr.StatusCode == code {
			return true
		}
	}
	return false
}

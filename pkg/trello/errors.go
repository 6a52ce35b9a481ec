package trello

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError represents an error response from the Trello API. StatusCode
// carries the upstream HTTP status unchanged so callers can inspect it.
type APIError struct {
	StatusCode int    `json:"statusCode" yaml:"statusCode"`
	Message    string `json:"message"    yaml:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status: %d)", e.Message, e.StatusCode)
}

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired         = errors.New("config is required")
	ErrCredentialsRequired    = errors.New("API key and token are required")
	ErrPathRequired           = errors.New("request path is required")
	ErrBoardIDRequired        = errors.New("board ID is required")
	ErrListIDRequired         = errors.New("list ID is required")
	ErrCardIDRequired         = errors.New("card ID is required")
	ErrMemberIDRequired       = errors.New("member ID is required")
	ErrCustomFieldIDRequired  = errors.New("custom field ID is required")
	ErrActionIDRequired       = errors.New("action ID is required")
	ErrInvalidCustomFieldType = errors.New("invalid custom field type")
	ErrInvalidActionFilter    = errors.New("invalid action filter")
	ErrCommentTextRequired    = errors.New("comment text is required")
)

// IsRateLimited checks if the error is a rate-limit (429) error. Callers
// should rarely see one: rate-limited reads are recovered internally and
// only writes surface 429 directly.
func IsRateLimited(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests
	}

	return false
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}

	return false
}

// IsUnauthorized checks if the error is an authentication error.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized
	}

	return false
}

// ParseAPIError builds an APIError from a non-2xx response body. Trello
// reports errors either as a JSON object with a message field or as a
// bare text body.
func ParseAPIError(statusCode int, body []byte) *APIError {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}

	message := ""

	err := json.Unmarshal(body, &payload)
	if err == nil {
		if payload.Message != "" {
			message = payload.Message
		} else {
			message = payload.Error
		}
	}

	if message == "" {
		message = strings.TrimSpace(string(body))
	}

	if message == "" {
		message = http.StatusText(statusCode)
	}

	return &APIError{
		StatusCode: statusCode,
		Message:    message,
	}
}

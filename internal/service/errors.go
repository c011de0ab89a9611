package service

import (
	"errors"
	"fmt"
)

// ErrRequestFailed is the single failure kind at the service boundary.
// It covers non-2xx responses and transport failures alike.
var ErrRequestFailed = errors.New("request did not succeed")

// RequestError describes one failed request.
type RequestError struct {
	Op         string // "list", "create", "update", "delete", "ping"
	Method     string
	URL        string
	StatusCode int // 0 for transport failures
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: HTTP error! status: %d", e.Method, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

// Unwrap returns the underlying transport or HTTP error.
func (e *RequestError) Unwrap() error { return e.Err }

// Is makes every RequestError match ErrRequestFailed.
func (e *RequestError) Is(target error) bool { return target == ErrRequestFailed }

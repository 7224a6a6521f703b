package api

import "errors"

// NetworkErrorMessage is the fixed message attached to transport failures.
const NetworkErrorMessage = "Network error. Please check your connection."

// ErrNetwork matches any *Error produced by a transport failure, via
// errors.Is. It is never returned directly.
var ErrNetwork = errors.New("network error")

// Error is the normalized failure shape for every backend call: either an
// HTTP error (non-2xx status with a server-supplied or status-derived
// message) or a transport failure (Status 0).
type Error struct {
	Message string
	Status  int
	// Fields holds per-field validation messages from the server, if any.
	Fields map[string][]string
}

func (e *Error) Error() string {
	return e.Message
}

// Is reports a match against ErrNetwork when the error carries the transport
// failure sentinel status 0.
func (e *Error) Is(target error) bool {
	return target == ErrNetwork && e.Status == 0
}

func newNetworkError() *Error {
	return &Error{Message: NetworkErrorMessage, Status: 0}
}

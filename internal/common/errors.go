package common

import "errors"

var (
	// ErrorInternal hides backend failures from remote callers.
	ErrorInternal = errors.New("internal error")

	// ErrUnavailable reports that the account server cannot be reached.
	ErrUnavailable = errors.New("server unavailable")

	// ErrRateLimited reports that the server rejected a call to protect itself.
	ErrRateLimited = errors.New("too many requests")
)

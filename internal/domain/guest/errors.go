package guest

import "errors"

var (
	// ErrGuestNotFound indicates the guest id is not in the roster.
	ErrGuestNotFound = errors.New("guest not found")
	// ErrInvalidInput indicates a rejected mutation; the wrapped message
	// describes what the caller got wrong.
	ErrInvalidInput = errors.New("invalid guest input")
	// ErrBaseGuest indicates an attempt to remove a base roster entry.
	ErrBaseGuest = errors.New("base guests cannot be removed")
)

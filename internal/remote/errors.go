package remote

import "errors"

var (
	// ErrNotConfigured indicates the bin id or api key is missing.
	ErrNotConfigured = errors.New("remote sync not configured")
	// ErrUnauthorized indicates the api key was rejected.
	ErrUnauthorized = errors.New("api key not authorized")
	// ErrBinNotFound indicates the remote bin does not exist.
	ErrBinNotFound = errors.New("remote bin not found")
)

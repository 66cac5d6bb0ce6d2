package core

import "errors"

var (
	// ErrStoreUnavailable is wrapped by stores that cannot open the underlying
	// settings location (permissions, unsupported platform, missing file).
	ErrStoreUnavailable = errors.New("cannot access proxy settings store")

	ErrAlreadyExists  = errors.New("item already exists in bypass list")
	ErrNotFound       = errors.New("item not found in bypass list")
	ErrEmpty          = errors.New("bypass list is empty")
	ErrServerRequired = errors.New("proxy server cannot be empty")
	ErrItemRequired   = errors.New("bypass item cannot be empty")
)

package postgre

import "errors"

// ErrInvalidUUID indicates that a string is not a valid UUID.
var ErrInvalidUUID = errors.New("invalid UUID")

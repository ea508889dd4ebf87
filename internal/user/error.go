package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrUserExists             = errors.New("user already exists")
	ErrInvalidRole            = errors.New("invalid role")
	ErrFieldRequired          = errors.New("field required")
	ErrInsufficientPermission = errors.New("insufficient permission")
)

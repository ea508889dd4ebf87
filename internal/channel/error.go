package channel

import "errors"

var (
	ErrChannelNotFound        = errors.New("channel not found")
	ErrFieldRequired          = errors.New("field required")
	ErrInsufficientPermission = errors.New("insufficient permission")
)

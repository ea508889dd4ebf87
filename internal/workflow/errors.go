package workflow

import "github.com/friendsofgo/errors"

var (
	ErrInsufficientPermission = errors.New("insufficient permission")
	ErrInvalidTargetStatus    = errors.New("invalid target status")
	ErrVideoTerminal          = errors.New("video is in a terminal status")
)

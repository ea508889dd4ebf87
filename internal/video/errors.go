package video

import "errors"

var (
	ErrVideoNotFound          = errors.New("video not found")
	ErrChannelNotFound        = errors.New("channel not found")
	ErrAssigneeNotFound       = errors.New("assignee not found")
	ErrFieldRequired          = errors.New("field required")
	ErrInvalidStatus          = errors.New("invalid status")
	ErrInsufficientPermission = errors.New("insufficient permission")
	ErrStatusConflict         = errors.New("video status changed concurrently")
	ErrNoPendingTransition    = errors.New("no pending transition")
	ErrCommentTextRequired    = errors.New("comment text required")
	ErrInvalidThumbnail       = errors.New("invalid thumbnail file")
)

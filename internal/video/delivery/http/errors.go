package http

import (
	"net/http"

	"tubeline-api/internal/video"
	pkgErrors "tubeline-api/pkg/errors"
	"tubeline-api/pkg/response"
)

var errorMapping = response.ErrorMapping{
	video.ErrVideoNotFound:          pkgErrors.NewHTTPError(40401, "Video not found", http.StatusNotFound),
	video.ErrChannelNotFound:        pkgErrors.NewHTTPError(40402, "Channel not found", http.StatusNotFound),
	video.ErrAssigneeNotFound:       pkgErrors.NewHTTPError(40403, "Assignee not found", http.StatusNotFound),
	video.ErrFieldRequired:          pkgErrors.NewHTTPError(40001, "Required field missing", http.StatusBadRequest),
	video.ErrInvalidStatus:          pkgErrors.NewHTTPError(40002, "Invalid status", http.StatusBadRequest),
	video.ErrCommentTextRequired:    pkgErrors.NewHTTPError(40003, "Comment text required", http.StatusBadRequest),
	video.ErrInvalidThumbnail:       pkgErrors.NewHTTPError(40004, "Invalid thumbnail file", http.StatusBadRequest),
	video.ErrInsufficientPermission: pkgErrors.NewHTTPError(40301, "Insufficient permission", http.StatusForbidden),
	video.ErrStatusConflict:         pkgErrors.NewHTTPError(40901, "Video status changed concurrently", http.StatusConflict),
	video.ErrNoPendingTransition:    pkgErrors.NewHTTPError(40405, "No pending transition", http.StatusNotFound),
}

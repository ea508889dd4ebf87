package http

import (
	"net/http"

	"tubeline-api/internal/channel"
	pkgErrors "tubeline-api/pkg/errors"
	"tubeline-api/pkg/response"
)

var errorMapping = response.ErrorMapping{
	channel.ErrChannelNotFound:        pkgErrors.NewHTTPError(41401, "Channel not found", http.StatusNotFound),
	channel.ErrFieldRequired:          pkgErrors.NewHTTPError(41001, "Required field missing", http.StatusBadRequest),
	channel.ErrInsufficientPermission: pkgErrors.NewHTTPError(41301, "Insufficient permission", http.StatusForbidden),
}

package http

import (
	"net/http"

	"tubeline-api/internal/user"
	pkgErrors "tubeline-api/pkg/errors"
	"tubeline-api/pkg/response"
)

var errorMapping = response.ErrorMapping{
	user.ErrUserNotFound:           pkgErrors.NewHTTPError(42401, "User not found", http.StatusNotFound),
	user.ErrUserExists:             pkgErrors.NewHTTPError(42402, "User already exists", http.StatusConflict),
	user.ErrInvalidRole:            pkgErrors.NewHTTPError(42001, "Invalid role", http.StatusBadRequest),
	user.ErrFieldRequired:          pkgErrors.NewHTTPError(42002, "Required field missing", http.StatusBadRequest),
	user.ErrInsufficientPermission: pkgErrors.NewHTTPError(42301, "Insufficient permission", http.StatusForbidden),
}

package http

import (
	"net/http"

	"tubeline-api/internal/subscription"
	pkgErrors "tubeline-api/pkg/errors"
	"tubeline-api/pkg/response"
)

var errorMapping = response.ErrorMapping{
	subscription.ErrNoSubscription: pkgErrors.NewHTTPError(43401, "No subscription", http.StatusNotFound),
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "tubeline-api/pkg/errors"
	"tubeline-api/pkg/response"
	"tubeline-api/pkg/scope"
)

var errSubscriptionRequired = pkgErrors.NewHTTPError(40201, "Active subscription required", http.StatusPaymentRequired)

// RequireSubscription blocks mutating requests from companies without a
// usable subscription. Reads stay available so an expired company can still
// see its data.
func (m Middleware) RequireSubscription() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		ctx := c.Request.Context()
		sc, ok := scope.GetScopeFromContext(ctx)
		if !ok || sc.UserID == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		usable, err := m.subUC.IsUsable(ctx, sc)
		if err != nil {
			m.l.Errorf(ctx, "internal.middleware.RequireSubscription.IsUsable: %v", err)
			response.Error(c, err, m.wa)
			c.Abort()
			return
		}
		if !usable {
			response.HttpError(c, errSubscriptionRequired)
			c.Abort()
			return
		}

		c.Next()
	}
}

package middleware

import (
	"github.com/gin-gonic/gin"

	"tubeline-api/pkg/response"
)

// Recovery converts panics into 500 responses and reports them through the
// WhatsApp bug channel.
func (m Middleware) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				ctx := c.Request.Context()
				m.l.Errorf(ctx, "internal.middleware.Recovery: panic recovered: %v | Method: %s | Path: %s",
					err, c.Request.Method, c.Request.URL.Path)

				response.PanicError(c, err, m.wa)
				c.Abort()
			}
		}()
		c.Next()
	}
}

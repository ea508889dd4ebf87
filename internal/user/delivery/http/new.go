package http

import (
	"github.com/gin-gonic/gin"

	"tubeline-api/internal/user"
	pkgLog "tubeline-api/pkg/log"
)

type Handler struct {
	l  pkgLog.Logger
	uc user.UseCase
}

func New(l pkgLog.Logger, uc user.UseCase) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
	}
}

func (h *Handler) MapRoutes(r *gin.RouterGroup) {
	r.GET("", h.Get)
	r.POST("", h.Create)
	r.GET("/me", h.DetailMe)
	r.GET("/:id", h.Detail)
	r.PUT("/:id", h.Update)
	r.DELETE("/:id", h.Delete)
}

package http

import (
	"github.com/gin-gonic/gin"

	"tubeline-api/internal/subscription"
	pkgLog "tubeline-api/pkg/log"
)

type Handler struct {
	l  pkgLog.Logger
	uc subscription.UseCase
}

func New(l pkgLog.Logger, uc subscription.UseCase) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
	}
}

func (h *Handler) MapRoutes(r *gin.RouterGroup) {
	r.GET("", h.Detail)
}

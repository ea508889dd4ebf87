package http

import (
	"github.com/gin-gonic/gin"

	"tubeline-api/internal/video"
	pkgLog "tubeline-api/pkg/log"
)

type Handler struct {
	l  pkgLog.Logger
	uc video.UseCase
}

func New(l pkgLog.Logger, uc video.UseCase) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
	}
}

// MapRoutes registers the video routes on the given (already authenticated)
// router group.
func (h *Handler) MapRoutes(r *gin.RouterGroup) {
	r.GET("", h.Get)
	r.POST("", h.Create)
	r.PUT("/pending", h.ResolvePending)
	r.GET("/:id", h.Detail)
	r.PUT("/:id", h.Update)
	r.DELETE("/:id", h.Delete)
	r.PUT("/:id/status", h.ChangeStatus)
	r.GET("/:id/statuses", h.SelectableStatuses)
	r.GET("/:id/comments", h.ListComments)
	r.POST("/:id/comments", h.AddComment)
	r.POST("/:id/thumbnail", h.UploadThumbnail)
	r.GET("/:id/thumbnail", h.ThumbnailURL)
}

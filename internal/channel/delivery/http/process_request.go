package http

import (
	"github.com/gin-gonic/gin"

	"tubeline-api/internal/channel"
	"tubeline-api/internal/model"
	"tubeline-api/pkg/paginator"
	"tubeline-api/pkg/scope"
)

func (h *Handler) processScope(c *gin.Context) (model.Scope, bool) {
	sc, ok := scope.GetScopeFromContext(c.Request.Context())
	if !ok || sc.UserID == "" {
		return model.Scope{}, false
	}
	return sc, true
}

type getReq struct {
	Search string `form:"search"`
	Page   int    `form:"page"`
	Limit  int64  `form:"limit"`
}

func (r getReq) toInput() channel.GetInput {
	return channel.GetInput{
		Filter: channel.Filter{
			Search: r.Search,
		},
		PaginateQuery: paginator.PaginateQuery{
			Page:  r.Page,
			Limit: r.Limit,
		},
	}
}

type createReq struct {
	Name      string  `json:"name"`
	YoutubeID *string `json:"youtube_id"`
}

func (r createReq) toInput() channel.CreateInput {
	return channel.CreateInput{
		Name:      r.Name,
		YoutubeID: r.YoutubeID,
	}
}

type updateReq struct {
	Name      *string `json:"name"`
	YoutubeID *string `json:"youtube_id"`
}

func (r updateReq) toInput(id string) channel.UpdateInput {
	return channel.UpdateInput{
		ID:        id,
		Name:      r.Name,
		YoutubeID: r.YoutubeID,
	}
}

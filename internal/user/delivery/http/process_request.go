package http

import (
	"github.com/gin-gonic/gin"

	"tubeline-api/internal/model"
	"tubeline-api/internal/user"
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
	Kind   string `form:"kind"`
	Role   string `form:"role"`
	Search string `form:"search"`
	Page   int    `form:"page"`
	Limit  int64  `form:"limit"`
}

func (r getReq) toInput() user.GetInput {
	f := user.Filter{
		Search: r.Search,
	}
	if r.Kind != "" {
		k := model.PrincipalKind(r.Kind)
		f.Kind = &k
	}
	if r.Role != "" {
		role := model.ParseRole(r.Role)
		f.Role = &role
	}

	return user.GetInput{
		Filter: f,
		PaginateQuery: paginator.PaginateQuery{
			Page:  r.Page,
			Limit: r.Limit,
		},
	}
}

type createReq struct {
	Kind     string `json:"kind"`
	Role     string `json:"role"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func (r createReq) toInput() user.CreateInput {
	return user.CreateInput{
		Kind:     model.PrincipalKind(r.Kind),
		Role:     r.Role,
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Password: r.Password,
	}
}

type updateReq struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Role     *string `json:"role"`
	IsActive *bool   `json:"is_active"`
}

func (r updateReq) toInput(id string) user.UpdateInput {
	return user.UpdateInput{
		ID:       id,
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Role:     r.Role,
		IsActive: r.IsActive,
	}
}

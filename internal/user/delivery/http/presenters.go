package http

import (
	"tubeline-api/internal/model"
	"tubeline-api/internal/user"
	"tubeline-api/pkg/paginator"
	"tubeline-api/pkg/response"
)

type userResp struct {
	ID       string `json:"id"`
	Kind     string `json:"kind"`
	Role     string `json:"role,omitempty"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`

	CreatedAt response.DateTime `json:"created_at"`
	UpdatedAt response.DateTime `json:"updated_at"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		ID:        u.ID,
		Kind:      string(u.Kind),
		Role:      u.Role.String(),
		Name:      u.Name,
		Email:     u.Email,
		IsActive:  u.IsActive,
		CreatedAt: response.DateTime(u.CreatedAt),
		UpdatedAt: response.DateTime(u.UpdatedAt),
	}
}

type listUserResp struct {
	Users     []userResp                  `json:"users"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func newListUserResp(out user.GetOutput) listUserResp {
	items := make([]userResp, len(out.Users))
	for i, u := range out.Users {
		items[i] = newUserResp(u)
	}
	return listUserResp{
		Users:     items,
		Paginator: out.Paginator.ToResponse(),
	}
}

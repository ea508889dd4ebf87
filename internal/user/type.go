package user

import (
	"tubeline-api/internal/model"
	"tubeline-api/pkg/paginator"
)

type Filter struct {
	IDs    []string
	Kind   *model.PrincipalKind
	Role   *model.Role
	Search string
}

type GetInput struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

type GetOutput struct {
	Users     []model.User
	Paginator paginator.Paginator
}

type ListInput struct {
	Filter Filter
}

type UserOutput struct {
	User model.User
}

type CreateInput struct {
	Kind     model.PrincipalKind
	Role     string // role label, required for freelancers
	Name     string
	Email    string
	Phone    string // WhatsApp number, stored encrypted
	Password string
}

type UpdateInput struct {
	ID       string
	Name     *string
	Email    *string
	Phone    *string
	Role     *string
	IsActive *bool
}

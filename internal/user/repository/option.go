package repository

import (
	"tubeline-api/internal/model"
	"tubeline-api/pkg/paginator"
)

// Filter contains filtering options for user queries.
type Filter struct {
	IDs    []string
	Kind   *model.PrincipalKind
	Role   *model.Role
	Search string // matches name or email, case-insensitive
}

// GetOptions contains options for paginated user listing.
type GetOptions struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

// ListOptions contains options for listing users.
type ListOptions struct {
	Filter Filter
}

// GetOneOptions contains options for getting a single user.
type GetOneOptions struct {
	ID    string
	Email string
}

// CreateOptions contains options for creating a user.
type CreateOptions struct {
	User model.User
}

// UpdateOptions contains options for updating a user.
type UpdateOptions struct {
	User model.User
}

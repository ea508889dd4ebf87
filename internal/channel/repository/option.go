package repository

import (
	"tubeline-api/internal/model"
	"tubeline-api/pkg/paginator"
)

// Filter contains filtering options for channel queries.
type Filter struct {
	IDs    []string
	Search string
}

// GetOptions contains options for paginated channel listing.
type GetOptions struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

// ListOptions contains options for listing channels.
type ListOptions struct {
	Filter Filter
}

// CreateOptions contains options for creating a channel.
type CreateOptions struct {
	Channel model.Channel
}

// UpdateOptions contains options for updating a channel.
type UpdateOptions struct {
	Channel model.Channel
}

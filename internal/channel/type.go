package channel

import (
	"tubeline-api/internal/model"
	"tubeline-api/pkg/paginator"
)

type Filter struct {
	IDs    []string
	Search string
}

type GetInput struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

type GetOutput struct {
	Channels  []model.Channel
	Paginator paginator.Paginator
}

type ListInput struct {
	Filter Filter
}

type ChannelOutput struct {
	Channel model.Channel
}

type CreateInput struct {
	Name      string
	YoutubeID *string
}

type UpdateInput struct {
	ID        string
	Name      *string
	YoutubeID *string
}

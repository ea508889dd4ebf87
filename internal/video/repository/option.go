package repository

import (
	"tubeline-api/internal/model"
	"tubeline-api/pkg/paginator"
)

// Filter contains filtering options for video queries.
type Filter struct {
	ChannelID    string
	FreelancerID string // matches any of the four assignee columns
	Status       *model.Status
	Statuses     []model.Status
	Search       string // matches title, case-insensitive
}

// GetOptions contains options for paginated video listing.
type GetOptions struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

// CreateOptions contains options for creating a video.
type CreateOptions struct {
	Video model.Video
}

// UpdateOptions contains options for updating a video.
// The status column is never touched here; UpdateStatus owns it.
type UpdateOptions struct {
	Video model.Video
}

// UpdateStatusOptions contains options for the status commit.
// ExpectedStatus, when set, makes the update conditional.
type UpdateStatusOptions struct {
	ID             string
	Status         model.Status
	ExpectedStatus *model.Status
}

// CreateCommentOptions contains options for appending a comment.
type CreateCommentOptions struct {
	Comment model.Comment
}

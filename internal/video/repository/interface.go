package repository

import (
	"context"
	"errors"

	"tubeline-api/internal/model"
	"tubeline-api/internal/video"
	"tubeline-api/pkg/paginator"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrStatusMismatch is returned by UpdateStatus when the conditional
	// commit found the video in a different status than expected.
	ErrStatusMismatch = errors.New("status mismatch")
)

//go:generate mockery --name Repository
type Repository interface {
	Get(ctx context.Context, sc model.Scope, opts GetOptions) ([]model.Video, paginator.Paginator, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Video, error)
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) (model.Video, error)
	Update(ctx context.Context, sc model.Scope, opts UpdateOptions) (model.Video, error)
	UpdateStatus(ctx context.Context, sc model.Scope, opts UpdateStatusOptions) (model.Video, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	ListComments(ctx context.Context, sc model.Scope, videoID string) ([]model.Comment, error)
	CreateComment(ctx context.Context, sc model.Scope, opts CreateCommentOptions) (model.Comment, error)
}

//go:generate mockery --name PendingStore
type PendingStore interface {
	// Put stores the principal's pending transition, returning the one it
	// replaced if any.
	Put(ctx context.Context, sc model.Scope, pt video.PendingTransition) (*video.PendingTransition, error)
	// Take removes and returns the principal's pending transition.
	// Returns ErrNotFound when none is stored.
	Take(ctx context.Context, sc model.Scope) (video.PendingTransition, error)
	// Peek returns the principal's pending transition without removing it.
	Peek(ctx context.Context, sc model.Scope) (video.PendingTransition, error)
}

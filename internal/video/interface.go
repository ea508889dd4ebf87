package video

import (
	"context"

	"tubeline-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Get(ctx context.Context, sc model.Scope, ip GetInput) (GetOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (VideoOutput, error)
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (VideoOutput, error)
	Update(ctx context.Context, sc model.Scope, ip UpdateInput) (VideoOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	ChangeStatus(ctx context.Context, sc model.Scope, ip ChangeStatusInput) (ChangeStatusOutput, error)
	ResolvePending(ctx context.Context, sc model.Scope, ip ResolvePendingInput) (ChangeStatusOutput, error)
	SelectableStatuses(ctx context.Context, sc model.Scope, id string) ([]model.Status, error)

	ListComments(ctx context.Context, sc model.Scope, videoID string) ([]model.Comment, error)
	AddComment(ctx context.Context, sc model.Scope, ip AddCommentInput) (model.Comment, error)

	UploadThumbnail(ctx context.Context, sc model.Scope, ip UploadThumbnailInput) (VideoOutput, error)
	ThumbnailURL(ctx context.Context, sc model.Scope, id string) (string, error)
}

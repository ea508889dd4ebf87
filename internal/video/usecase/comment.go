package usecase

import (
	"context"

	"tubeline-api/internal/model"
	"tubeline-api/internal/video"
	"tubeline-api/internal/video/repository"
)

func (uc *usecase) ListComments(ctx context.Context, sc model.Scope, videoID string) ([]model.Comment, error) {
	if _, err := uc.Detail(ctx, sc, videoID); err != nil {
		return nil, err
	}

	comments, err := uc.repo.ListComments(ctx, sc, videoID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.video.usecase.ListComments: %v", err)
		return nil, err
	}

	return uc.enrichComments(ctx, sc, comments), nil
}

func (uc *usecase) AddComment(ctx context.Context, sc model.Scope, ip video.AddCommentInput) (model.Comment, error) {
	if ip.Text == "" {
		return model.Comment{}, video.ErrCommentTextRequired
	}

	if _, err := uc.Detail(ctx, sc, ip.VideoID); err != nil {
		return model.Comment{}, err
	}

	cmt, err := uc.repo.CreateComment(ctx, sc, repository.CreateCommentOptions{
		Comment: model.Comment{
			VideoID:    ip.VideoID,
			AuthorID:   sc.UserID,
			AuthorKind: sc.Kind,
			Text:       ip.Text,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.video.usecase.AddComment: %v", err)
		return model.Comment{}, err
	}

	enriched := uc.enrichComments(ctx, sc, []model.Comment{cmt})
	return enriched[0], nil
}

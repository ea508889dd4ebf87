package postgre

import (
	"context"

	"tubeline-api/internal/model"
	"tubeline-api/internal/video/repository"
	postgresPkg "tubeline-api/pkg/postgre"
)

func (r *implRepository) ListComments(ctx context.Context, sc model.Scope, videoID string) ([]model.Comment, error) {
	if err := postgresPkg.IsUUID(videoID); err != nil {
		r.l.Errorf(ctx, "internal.video.repository.postgre.ListComments.IsUUID: %v", err)
		return nil, err
	}

	var comments []model.Comment
	if err := r.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Where("company_id = ?", sc.CompanyID).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		r.l.Errorf(ctx, "internal.video.repository.postgre.ListComments.Find: %v", err)
		return nil, err
	}

	return comments, nil
}

func (r *implRepository) CreateComment(ctx context.Context, sc model.Scope, opts repository.CreateCommentOptions) (model.Comment, error) {
	cmt := opts.Comment
	if cmt.ID == "" {
		cmt.ID = postgresPkg.NewUUID()
	}
	cmt.CompanyID = sc.CompanyID
	cmt.CreatedAt = r.clock()

	if err := r.db.WithContext(ctx).Create(&cmt).Error; err != nil {
		r.l.Errorf(ctx, "internal.video.repository.postgre.CreateComment.Create: %v", err)
		return model.Comment{}, err
	}

	return cmt, nil
}

package postgre

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tubeline-api/internal/model"
	"tubeline-api/internal/video/repository"
	"tubeline-api/pkg/paginator"
	postgresPkg "tubeline-api/pkg/postgre"
)

func (r *implRepository) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.Video, paginator.Paginator, error) {
	q, err := r.buildFilterQuery(ctx, sc, opts.Filter)
	if err != nil {
		return nil, paginator.Paginator{}, err
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		r.l.Errorf(ctx, "internal.video.repository.postgre.Get.Count: %v", err)
		return nil, paginator.Paginator{}, err
	}

	pq := opts.PaginateQuery
	pq.Adjust()

	var videos []model.Video
	if err := q.
		Order("created_at DESC").
		Limit(int(pq.Limit)).
		Offset(int(pq.Offset())).
		Find(&videos).Error; err != nil {
		r.l.Errorf(ctx, "internal.video.repository.postgre.Get.Find: %v", err)
		return nil, paginator.Paginator{}, err
	}

	return videos, paginator.Paginator{
		Total:       total,
		Count:       int64(len(videos)),
		PerPage:     pq.Limit,
		CurrentPage: pq.Page,
	}, nil
}

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.Video, error) {
	q, err := r.buildDetailQuery(ctx, sc, id)
	if err != nil {
		return model.Video{}, err
	}

	var vid model.Video
	if err := q.First(&vid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Video{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.video.repository.postgre.Detail.First: %v", err)
		return model.Video{}, err
	}

	return vid, nil
}

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.Video, error) {
	vid := opts.Video
	if vid.ID == "" {
		vid.ID = postgresPkg.NewUUID()
	} else if err := postgresPkg.IsUUID(vid.ID); err != nil {
		r.l.Errorf(ctx, "internal.video.repository.postgre.Create.IsUUID: %v", err)
		return model.Video{}, err
	}

	vid.CompanyID = sc.CompanyID
	now := r.clock()
	vid.CreatedAt = now
	vid.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(&vid).Error; err != nil {
		r.l.Errorf(ctx, "internal.video.repository.postgre.Create.Create: %v", err)
		return model.Video{}, err
	}

	return vid, nil
}

func (r *implRepository) Update(ctx context.Context, sc model.Scope, opts repository.UpdateOptions) (model.Video, error) {
	vid := opts.Video
	if err := postgresPkg.IsUUID(vid.ID); err != nil {
		r.l.Errorf(ctx, "internal.video.repository.postgre.Update.IsUUID: %v", err)
		return model.Video{}, err
	}

	res := r.db.WithContext(ctx).
		Model(&model.Video{}).
		Where("id = ?", vid.ID).
		Where("company_id = ?", sc.CompanyID).
		Updates(map[string]interface{}{
			"title":            vid.Title,
			"channel_id":       vid.ChannelID,
			"script_writer_id": vid.ScriptWriterID,
			"narrator_id":      vid.NarratorID,
			"editor_id":        vid.EditorID,
			"thumb_maker_id":   vid.ThumbMakerID,
			"observations":     vid.Observations,
			"youtube_url":      vid.YoutubeURL,
			"thumbnail_key":    vid.ThumbnailKey,
			"updated_at":       r.clock(),
		})
	if res.Error != nil {
		r.l.Errorf(ctx, "internal.video.repository.postgre.Update.Updates: %v", res.Error)
		return model.Video{}, res.Error
	}
	if res.RowsAffected == 0 {
		return model.Video{}, repository.ErrNotFound
	}

	return r.Detail(ctx, sc, vid.ID)
}

// UpdateStatus commits the status column only. With ExpectedStatus set the
// update is conditional so a concurrent change surfaces as ErrStatusMismatch
// instead of silently overwriting.
func (r *implRepository) UpdateStatus(ctx context.Context, sc model.Scope, opts repository.UpdateStatusOptions) (model.Video, error) {
	if err := postgresPkg.IsUUID(opts.ID); err != nil {
		r.l.Errorf(ctx, "internal.video.repository.postgre.UpdateStatus.IsUUID: %v", err)
		return model.Video{}, err
	}

	q := r.db.WithContext(ctx).
		Model(&model.Video{}).
		Where("id = ?", opts.ID).
		Where("company_id = ?", sc.CompanyID)
	if opts.ExpectedStatus != nil {
		q = q.Where("status = ?", *opts.ExpectedStatus)
	}

	res := q.Updates(map[string]interface{}{
		"status":     opts.Status,
		"updated_at": r.clock(),
	})
	if res.Error != nil {
		r.l.Errorf(ctx, "internal.video.repository.postgre.UpdateStatus.Updates: %v", res.Error)
		return model.Video{}, res.Error
	}

	if res.RowsAffected == 0 {
		// Distinguish a missing video from a failed precondition.
		vid, err := r.Detail(ctx, sc, opts.ID)
		if err != nil {
			return model.Video{}, err
		}
		if opts.ExpectedStatus != nil && vid.Status != *opts.ExpectedStatus {
			return model.Video{}, repository.ErrStatusMismatch
		}
		return model.Video{}, repository.ErrNotFound
	}

	return r.Detail(ctx, sc, opts.ID)
}

func (r *implRepository) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.video.repository.postgre.Delete.IsUUID: %v", err)
		return err
	}

	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Where("company_id = ?", sc.CompanyID).
		Delete(&model.Video{})
	if res.Error != nil {
		r.l.Errorf(ctx, "internal.video.repository.postgre.Delete.Delete: %v", res.Error)
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

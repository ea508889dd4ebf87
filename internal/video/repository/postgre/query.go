package postgre

import (
	"context"

	"gorm.io/gorm"

	"tubeline-api/internal/model"
	"tubeline-api/internal/video/repository"
	postgresPkg "tubeline-api/pkg/postgre"
)

// buildFilterQuery applies the company scope and the listing filters.
func (r *implRepository) buildFilterQuery(ctx context.Context, sc model.Scope, f repository.Filter) (*gorm.DB, error) {
	q := r.db.WithContext(ctx).Model(&model.Video{}).
		Where("company_id = ?", sc.CompanyID)

	if f.ChannelID != "" {
		if err := postgresPkg.IsUUID(f.ChannelID); err != nil {
			r.l.Errorf(ctx, "internal.video.repository.postgre.buildFilterQuery.IsUUID: %v", err)
			return nil, err
		}
		q = q.Where("channel_id = ?", f.ChannelID)
	}

	if f.FreelancerID != "" {
		if err := postgresPkg.IsUUID(f.FreelancerID); err != nil {
			r.l.Errorf(ctx, "internal.video.repository.postgre.buildFilterQuery.IsUUID: %v", err)
			return nil, err
		}
		q = q.Where(
			"script_writer_id = ? OR narrator_id = ? OR editor_id = ? OR thumb_maker_id = ?",
			f.FreelancerID, f.FreelancerID, f.FreelancerID, f.FreelancerID,
		)
	}

	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if len(f.Statuses) > 0 {
		q = q.Where("status IN ?", f.Statuses)
	}

	if f.Search != "" {
		q = q.Where("title ILIKE ?", "%"+f.Search+"%")
	}

	return q, nil
}

func (r *implRepository) buildDetailQuery(ctx context.Context, sc model.Scope, id string) (*gorm.DB, error) {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.video.repository.postgre.buildDetailQuery.IsUUID: %v", err)
		return nil, err
	}

	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Where("company_id = ?", sc.CompanyID), nil
}

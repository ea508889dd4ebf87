package postgre

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tubeline-api/internal/channel/repository"
	"tubeline-api/internal/model"
	"tubeline-api/pkg/paginator"
	postgresPkg "tubeline-api/pkg/postgre"
)

func (r *implRepository) buildFilterQuery(ctx context.Context, sc model.Scope, f repository.Filter) (*gorm.DB, error) {
	q := r.db.WithContext(ctx).Model(&model.Channel{}).
		Where("company_id = ?", sc.CompanyID)

	if len(f.IDs) > 0 {
		if err := postgresPkg.ValidateUUIDs(f.IDs); err != nil {
			r.l.Errorf(ctx, "internal.channel.repository.postgre.buildFilterQuery.ValidateUUIDs: %v", err)
			return nil, err
		}
		q = q.Where("id IN ?", f.IDs)
	}

	if f.Search != "" {
		q = q.Where("name ILIKE ?", "%"+f.Search+"%")
	}

	return q, nil
}

func (r *implRepository) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.Channel, paginator.Paginator, error) {
	q, err := r.buildFilterQuery(ctx, sc, opts.Filter)
	if err != nil {
		return nil, paginator.Paginator{}, err
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		r.l.Errorf(ctx, "internal.channel.repository.postgre.Get.Count: %v", err)
		return nil, paginator.Paginator{}, err
	}

	pq := opts.PaginateQuery
	pq.Adjust()

	var channels []model.Channel
	if err := q.
		Order("created_at DESC").
		Limit(int(pq.Limit)).
		Offset(int(pq.Offset())).
		Find(&channels).Error; err != nil {
		r.l.Errorf(ctx, "internal.channel.repository.postgre.Get.Find: %v", err)
		return nil, paginator.Paginator{}, err
	}

	return channels, paginator.Paginator{
		Total:       total,
		Count:       int64(len(channels)),
		PerPage:     pq.Limit,
		CurrentPage: pq.Page,
	}, nil
}

func (r *implRepository) List(ctx context.Context, sc model.Scope, opts repository.ListOptions) ([]model.Channel, error) {
	q, err := r.buildFilterQuery(ctx, sc, opts.Filter)
	if err != nil {
		return nil, err
	}

	var channels []model.Channel
	if err := q.Order("name ASC").Find(&channels).Error; err != nil {
		r.l.Errorf(ctx, "internal.channel.repository.postgre.List.Find: %v", err)
		return nil, err
	}

	return channels, nil
}

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.Channel, error) {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.channel.repository.postgre.Detail.IsUUID: %v", err)
		return model.Channel{}, err
	}

	var ch model.Channel
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Where("company_id = ?", sc.CompanyID).
		First(&ch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Channel{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.channel.repository.postgre.Detail.First: %v", err)
		return model.Channel{}, err
	}

	return ch, nil
}

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.Channel, error) {
	ch := opts.Channel
	if ch.ID == "" {
		ch.ID = postgresPkg.NewUUID()
	}
	ch.CompanyID = sc.CompanyID
	now := r.clock()
	ch.CreatedAt = now
	ch.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(&ch).Error; err != nil {
		r.l.Errorf(ctx, "internal.channel.repository.postgre.Create.Create: %v", err)
		return model.Channel{}, err
	}

	return ch, nil
}

func (r *implRepository) Update(ctx context.Context, sc model.Scope, opts repository.UpdateOptions) (model.Channel, error) {
	ch := opts.Channel
	if err := postgresPkg.IsUUID(ch.ID); err != nil {
		r.l.Errorf(ctx, "internal.channel.repository.postgre.Update.IsUUID: %v", err)
		return model.Channel{}, err
	}

	res := r.db.WithContext(ctx).
		Model(&model.Channel{}).
		Where("id = ?", ch.ID).
		Where("company_id = ?", sc.CompanyID).
		Updates(map[string]interface{}{
			"name":       ch.Name,
			"youtube_id": ch.YoutubeID,
			"updated_at": r.clock(),
		})
	if res.Error != nil {
		r.l.Errorf(ctx, "internal.channel.repository.postgre.Update.Updates: %v", res.Error)
		return model.Channel{}, res.Error
	}
	if res.RowsAffected == 0 {
		return model.Channel{}, repository.ErrNotFound
	}

	return r.Detail(ctx, sc, ch.ID)
}

func (r *implRepository) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.channel.repository.postgre.Delete.IsUUID: %v", err)
		return err
	}

	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Where("company_id = ?", sc.CompanyID).
		Delete(&model.Channel{})
	if res.Error != nil {
		r.l.Errorf(ctx, "internal.channel.repository.postgre.Delete.Delete: %v", res.Error)
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

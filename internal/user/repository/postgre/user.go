package postgre

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tubeline-api/internal/model"
	"tubeline-api/internal/user/repository"
	"tubeline-api/pkg/paginator"
	postgresPkg "tubeline-api/pkg/postgre"
)

func (r *implRepository) buildFilterQuery(ctx context.Context, sc model.Scope, f repository.Filter) (*gorm.DB, error) {
	q := r.db.WithContext(ctx).Model(&model.User{}).
		Where("company_id = ?", sc.CompanyID)

	if len(f.IDs) > 0 {
		if err := postgresPkg.ValidateUUIDs(f.IDs); err != nil {
			r.l.Errorf(ctx, "internal.user.repository.postgre.buildFilterQuery.ValidateUUIDs: %v", err)
			return nil, err
		}
		q = q.Where("id IN ?", f.IDs)
	}

	if f.Kind != nil {
		q = q.Where("kind = ?", *f.Kind)
	}
	if f.Role != nil {
		q = q.Where("role = ?", *f.Role)
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		q = q.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}

	return q, nil
}

func (r *implRepository) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.User, paginator.Paginator, error) {
	q, err := r.buildFilterQuery(ctx, sc, opts.Filter)
	if err != nil {
		return nil, paginator.Paginator{}, err
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgre.Get.Count: %v", err)
		return nil, paginator.Paginator{}, err
	}

	pq := opts.PaginateQuery
	pq.Adjust()

	var users []model.User
	if err := q.
		Order("created_at DESC").
		Limit(int(pq.Limit)).
		Offset(int(pq.Offset())).
		Find(&users).Error; err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgre.Get.Find: %v", err)
		return nil, paginator.Paginator{}, err
	}

	return users, paginator.Paginator{
		Total:       total,
		Count:       int64(len(users)),
		PerPage:     pq.Limit,
		CurrentPage: pq.Page,
	}, nil
}

func (r *implRepository) List(ctx context.Context, sc model.Scope, opts repository.ListOptions) ([]model.User, error) {
	q, err := r.buildFilterQuery(ctx, sc, opts.Filter)
	if err != nil {
		return nil, err
	}

	var users []model.User
	if err := q.Order("name ASC").Find(&users).Error; err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgre.List.Find: %v", err)
		return nil, err
	}

	return users, nil
}

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.User, error) {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgre.Detail.IsUUID: %v", err)
		return model.User{}, err
	}

	var usr model.User
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Where("company_id = ?", sc.CompanyID).
		First(&usr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.User{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.user.repository.postgre.Detail.First: %v", err)
		return model.User{}, err
	}

	return usr, nil
}

func (r *implRepository) GetOne(ctx context.Context, sc model.Scope, opts repository.GetOneOptions) (model.User, error) {
	q := r.db.WithContext(ctx).Where("company_id = ?", sc.CompanyID)

	if opts.ID != "" {
		if err := postgresPkg.IsUUID(opts.ID); err != nil {
			r.l.Errorf(ctx, "internal.user.repository.postgre.GetOne.IsUUID: %v", err)
			return model.User{}, err
		}
		q = q.Where("id = ?", opts.ID)
	} else if opts.Email != "" {
		q = q.Where("email = ?", opts.Email)
	}

	var usr model.User
	if err := q.First(&usr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.User{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.user.repository.postgre.GetOne.First: %v", err)
		return model.User{}, err
	}

	return usr, nil
}

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.User, error) {
	usr := opts.User
	if usr.ID == "" {
		usr.ID = postgresPkg.NewUUID()
	}
	usr.CompanyID = sc.CompanyID
	now := r.clock()
	usr.CreatedAt = now
	usr.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(&usr).Error; err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgre.Create.Create: %v", err)
		return model.User{}, err
	}

	return usr, nil
}

func (r *implRepository) Update(ctx context.Context, sc model.Scope, opts repository.UpdateOptions) (model.User, error) {
	usr := opts.User
	if err := postgresPkg.IsUUID(usr.ID); err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgre.Update.IsUUID: %v", err)
		return model.User{}, err
	}

	res := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", usr.ID).
		Where("company_id = ?", sc.CompanyID).
		Updates(map[string]interface{}{
			"name":            usr.Name,
			"email":           usr.Email,
			"role":            usr.Role,
			"phone_encrypted": usr.PhoneEncrypted,
			"is_active":       usr.IsActive,
			"updated_at":      r.clock(),
		})
	if res.Error != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgre.Update.Updates: %v", res.Error)
		return model.User{}, res.Error
	}
	if res.RowsAffected == 0 {
		return model.User{}, repository.ErrNotFound
	}

	return r.Detail(ctx, sc, usr.ID)
}

func (r *implRepository) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgre.Delete.IsUUID: %v", err)
		return err
	}

	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Where("company_id = ?", sc.CompanyID).
		Delete(&model.User{})
	if res.Error != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgre.Delete.Delete: %v", res.Error)
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

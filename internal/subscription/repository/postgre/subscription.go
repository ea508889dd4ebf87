package postgre

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tubeline-api/internal/model"
	"tubeline-api/internal/subscription/repository"
	postgresPkg "tubeline-api/pkg/postgre"
)

func (r *implRepository) Latest(ctx context.Context, companyID string) (model.Subscription, error) {
	if err := postgresPkg.IsUUID(companyID); err != nil {
		r.l.Errorf(ctx, "internal.subscription.repository.postgre.Latest.IsUUID: %v", err)
		return model.Subscription{}, err
	}

	var sub model.Subscription
	if err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("starts_at DESC").
		First(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Subscription{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.subscription.repository.postgre.Latest.First: %v", err)
		return model.Subscription{}, err
	}

	return sub, nil
}

func (r *implRepository) Plan(ctx context.Context, planID string) (model.Plan, error) {
	if err := postgresPkg.IsUUID(planID); err != nil {
		r.l.Errorf(ctx, "internal.subscription.repository.postgre.Plan.IsUUID: %v", err)
		return model.Plan{}, err
	}

	var plan model.Plan
	if err := r.db.WithContext(ctx).
		Where("id = ?", planID).
		First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Plan{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.subscription.repository.postgre.Plan.First: %v", err)
		return model.Plan{}, err
	}

	return plan, nil
}

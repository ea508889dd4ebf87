package usecase

import (
	"context"
	"fmt"

	"tubeline-api/internal/model"
	"tubeline-api/internal/subscription"
	"tubeline-api/internal/subscription/repository"
	pkgRedis "tubeline-api/pkg/redis"
)

func cacheKey(companyID string) string {
	return fmt.Sprintf("subscription:usable:%s", companyID)
}

// IsUsable answers the gate question, caching the decision briefly so the
// middleware does not hit the database on every mutating request.
func (uc *usecase) IsUsable(ctx context.Context, sc model.Scope) (bool, error) {
	key := cacheKey(sc.CompanyID)

	if cached, err := uc.redis.Get(ctx, key); err == nil {
		return cached == "1", nil
	} else if err != pkgRedis.ErrNotFound {
		uc.l.Warnf(ctx, "internal.subscription.usecase.IsUsable.Get: %v", err)
	}

	usable := false
	sub, err := uc.repo.Latest(ctx, sc.CompanyID)
	switch err {
	case nil:
		usable = sub.UsableAt(uc.clock())
	case repository.ErrNotFound:
		// No subscription at all gates the same as an expired one.
	default:
		uc.l.Errorf(ctx, "internal.subscription.usecase.IsUsable.Latest: %v", err)
		return false, err
	}

	val := "0"
	if usable {
		val = "1"
	}
	if err := uc.redis.Set(ctx, key, val, cacheTTL); err != nil {
		uc.l.Warnf(ctx, "internal.subscription.usecase.IsUsable.Set: %v", err)
	}

	return usable, nil
}

func (uc *usecase) Detail(ctx context.Context, sc model.Scope) (subscription.SubscriptionOutput, error) {
	sub, err := uc.repo.Latest(ctx, sc.CompanyID)
	if err != nil {
		if err == repository.ErrNotFound {
			return subscription.SubscriptionOutput{}, subscription.ErrNoSubscription
		}
		uc.l.Errorf(ctx, "internal.subscription.usecase.Detail.Latest: %v", err)
		return subscription.SubscriptionOutput{}, err
	}

	out := subscription.SubscriptionOutput{Subscription: sub}

	plan, err := uc.repo.Plan(ctx, sub.PlanID)
	if err == nil {
		out.Plan = &plan
	} else if err != repository.ErrNotFound {
		uc.l.Errorf(ctx, "internal.subscription.usecase.Detail.Plan: %v", err)
		return subscription.SubscriptionOutput{}, err
	}

	return out, nil
}

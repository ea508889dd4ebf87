package subscription

import "tubeline-api/internal/model"

type SubscriptionOutput struct {
	Subscription model.Subscription
	Plan         *model.Plan
}

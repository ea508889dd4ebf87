package subscription

import (
	"context"

	"tubeline-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// IsUsable reports whether the company behind the scope holds a
	// subscription that currently grants access.
	IsUsable(ctx context.Context, sc model.Scope) (bool, error)
	Detail(ctx context.Context, sc model.Scope) (SubscriptionOutput, error)
}

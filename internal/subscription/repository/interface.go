package repository

import (
	"context"
	"errors"

	"tubeline-api/internal/model"
)

var ErrNotFound = errors.New("not found")

//go:generate mockery --name Repository
type Repository interface {
	// Latest returns the company's most recent subscription.
	Latest(ctx context.Context, companyID string) (model.Subscription, error)
	Plan(ctx context.Context, planID string) (model.Plan, error)
}

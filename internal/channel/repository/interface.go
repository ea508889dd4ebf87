package repository

import (
	"context"
	"errors"

	"tubeline-api/internal/model"
	"tubeline-api/pkg/paginator"
)

var ErrNotFound = errors.New("not found")

//go:generate mockery --name Repository
type Repository interface {
	Get(ctx context.Context, sc model.Scope, opts GetOptions) ([]model.Channel, paginator.Paginator, error)
	List(ctx context.Context, sc model.Scope, opts ListOptions) ([]model.Channel, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Channel, error)
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) (model.Channel, error)
	Update(ctx context.Context, sc model.Scope, opts UpdateOptions) (model.Channel, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}

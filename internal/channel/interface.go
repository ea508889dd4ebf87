package channel

import (
	"context"

	"tubeline-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Get(ctx context.Context, sc model.Scope, ip GetInput) (GetOutput, error)
	List(ctx context.Context, sc model.Scope, ip ListInput) ([]model.Channel, error)
	Detail(ctx context.Context, sc model.Scope, id string) (ChannelOutput, error)
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (ChannelOutput, error)
	Update(ctx context.Context, sc model.Scope, ip UpdateInput) (ChannelOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}

package usecase

import (
	"context"

	"tubeline-api/internal/channel"
	"tubeline-api/internal/channel/repository"
	"tubeline-api/internal/model"
)

func (uc *usecase) Get(ctx context.Context, sc model.Scope, ip channel.GetInput) (channel.GetOutput, error) {
	chs, pag, err := uc.repo.Get(ctx, sc, repository.GetOptions{
		Filter: repository.Filter{
			IDs:    ip.Filter.IDs,
			Search: ip.Filter.Search,
		},
		PaginateQuery: ip.PaginateQuery,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.channel.usecase.Get: %v", err)
		return channel.GetOutput{}, err
	}

	return channel.GetOutput{Channels: chs, Paginator: pag}, nil
}

func (uc *usecase) List(ctx context.Context, sc model.Scope, ip channel.ListInput) ([]model.Channel, error) {
	chs, err := uc.repo.List(ctx, sc, repository.ListOptions{
		Filter: repository.Filter{
			IDs:    ip.Filter.IDs,
			Search: ip.Filter.Search,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.channel.usecase.List: %v", err)
		return nil, err
	}

	return chs, nil
}

func (uc *usecase) Detail(ctx context.Context, sc model.Scope, id string) (channel.ChannelOutput, error) {
	ch, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return channel.ChannelOutput{}, channel.ErrChannelNotFound
		}
		uc.l.Errorf(ctx, "internal.channel.usecase.Detail: %v", err)
		return channel.ChannelOutput{}, err
	}

	return channel.ChannelOutput{Channel: ch}, nil
}

func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip channel.CreateInput) (channel.ChannelOutput, error) {
	if !sc.IsAdmin() {
		return channel.ChannelOutput{}, channel.ErrInsufficientPermission
	}
	if ip.Name == "" {
		return channel.ChannelOutput{}, channel.ErrFieldRequired
	}

	ch, err := uc.repo.Create(ctx, sc, repository.CreateOptions{
		Channel: model.Channel{
			Name:      ip.Name,
			YoutubeID: ip.YoutubeID,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.channel.usecase.Create: %v", err)
		return channel.ChannelOutput{}, err
	}

	return channel.ChannelOutput{Channel: ch}, nil
}

func (uc *usecase) Update(ctx context.Context, sc model.Scope, ip channel.UpdateInput) (channel.ChannelOutput, error) {
	if !sc.IsAdmin() {
		return channel.ChannelOutput{}, channel.ErrInsufficientPermission
	}

	ch, err := uc.repo.Detail(ctx, sc, ip.ID)
	if err != nil {
		if err == repository.ErrNotFound {
			return channel.ChannelOutput{}, channel.ErrChannelNotFound
		}
		uc.l.Errorf(ctx, "internal.channel.usecase.Update.Detail: %v", err)
		return channel.ChannelOutput{}, err
	}

	if ip.Name != nil {
		ch.Name = *ip.Name
	}
	if ip.YoutubeID != nil {
		ch.YoutubeID = ip.YoutubeID
	}

	updated, err := uc.repo.Update(ctx, sc, repository.UpdateOptions{Channel: ch})
	if err != nil {
		uc.l.Errorf(ctx, "internal.channel.usecase.Update: %v", err)
		return channel.ChannelOutput{}, err
	}

	return channel.ChannelOutput{Channel: updated}, nil
}

func (uc *usecase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if !sc.IsAdmin() {
		return channel.ErrInsufficientPermission
	}

	if err := uc.repo.Delete(ctx, sc, id); err != nil {
		if err == repository.ErrNotFound {
			return channel.ErrChannelNotFound
		}
		uc.l.Errorf(ctx, "internal.channel.usecase.Delete: %v", err)
		return err
	}

	return nil
}

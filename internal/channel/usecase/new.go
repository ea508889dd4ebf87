package usecase

import (
	"tubeline-api/internal/channel"
	"tubeline-api/internal/channel/repository"
	pkgLog "tubeline-api/pkg/log"
)

type usecase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

func New(l pkgLog.Logger, repo repository.Repository) channel.UseCase {
	return &usecase{
		l:    l,
		repo: repo,
	}
}

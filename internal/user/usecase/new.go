package usecase

import (
	"tubeline-api/internal/user"
	"tubeline-api/internal/user/repository"
	"tubeline-api/pkg/encrypter"
	pkgLog "tubeline-api/pkg/log"
)

type usecase struct {
	l    pkgLog.Logger
	repo repository.Repository
	enc  encrypter.Encrypter
}

func New(l pkgLog.Logger, repo repository.Repository, enc encrypter.Encrypter) user.UseCase {
	return &usecase{
		l:    l,
		repo: repo,
		enc:  enc,
	}
}

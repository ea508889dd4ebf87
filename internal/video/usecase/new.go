package usecase

import (
	"time"

	channelRepo "tubeline-api/internal/channel/repository"
	userRepo "tubeline-api/internal/user/repository"
	"tubeline-api/internal/video"
	"tubeline-api/internal/video/repository"
	"tubeline-api/pkg/encrypter"
	pkgLog "tubeline-api/pkg/log"
	pkgMinio "tubeline-api/pkg/minio"
	"tubeline-api/pkg/whatsapp"
)

type usecase struct {
	l       pkgLog.Logger
	repo    repository.Repository
	pending repository.PendingStore

	channelRepo channelRepo.Repository
	userRepo    userRepo.Repository

	wa      whatsapp.IWhatsApp
	enc     encrypter.Encrypter
	storage pkgMinio.IMinIO

	clock func() time.Time
}

type Config struct {
	Repo        repository.Repository
	Pending     repository.PendingStore
	ChannelRepo channelRepo.Repository
	UserRepo    userRepo.Repository
	WhatsApp    whatsapp.IWhatsApp
	Encrypter   encrypter.Encrypter
	Storage     pkgMinio.IMinIO
}

func New(l pkgLog.Logger, cfg Config) video.UseCase {
	return &usecase{
		l:           l,
		repo:        cfg.Repo,
		pending:     cfg.Pending,
		channelRepo: cfg.ChannelRepo,
		userRepo:    cfg.UserRepo,
		wa:          cfg.WhatsApp,
		enc:         cfg.Encrypter,
		storage:     cfg.Storage,
		clock:       time.Now,
	}
}

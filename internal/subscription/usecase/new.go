package usecase

import (
	"time"

	"tubeline-api/internal/subscription"
	"tubeline-api/internal/subscription/repository"
	pkgLog "tubeline-api/pkg/log"
	pkgRedis "tubeline-api/pkg/redis"
)

const (
	// cacheTTL bounds how stale a cached gate decision can be.
	cacheTTL = time.Minute
)

type usecase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	redis pkgRedis.IRedis
	clock func() time.Time
}

func New(l pkgLog.Logger, repo repository.Repository, redis pkgRedis.IRedis) subscription.UseCase {
	return &usecase{
		l:     l,
		repo:  repo,
		redis: redis,
		clock: time.Now,
	}
}

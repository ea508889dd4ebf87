package redis

import (
	"time"

	"tubeline-api/internal/video/repository"
	pkgLog "tubeline-api/pkg/log"
	pkgRedis "tubeline-api/pkg/redis"
)

const (
	// pendingKeyPrefix namespaces pending transition keys.
	pendingKeyPrefix = "video:pending-transition"
	// pendingTTL bounds how long an unanswered notification prompt survives.
	pendingTTL = 15 * time.Minute
)

type implPendingStore struct {
	l     pkgLog.Logger
	redis pkgRedis.IRedis
}

var _ repository.PendingStore = &implPendingStore{}

func New(l pkgLog.Logger, redis pkgRedis.IRedis) *implPendingStore {
	return &implPendingStore{
		l:     l,
		redis: redis,
	}
}

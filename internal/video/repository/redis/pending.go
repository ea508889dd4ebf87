package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"tubeline-api/internal/model"
	"tubeline-api/internal/video"
	"tubeline-api/internal/video/repository"
	pkgRedis "tubeline-api/pkg/redis"
)

func pendingKey(sc model.Scope) string {
	return fmt.Sprintf("%s:%s:%s", pendingKeyPrefix, sc.CompanyID, sc.UserID)
}

// Put stores the principal's pending transition and returns the one it
// replaced, if any. Keys expire after pendingTTL so an abandoned prompt
// does not block the principal forever.
func (s *implPendingStore) Put(ctx context.Context, sc model.Scope, pt video.PendingTransition) (*video.PendingTransition, error) {
	key := pendingKey(sc)

	var replaced *video.PendingTransition
	prev, err := s.redis.Get(ctx, key)
	if err != nil && err != pkgRedis.ErrNotFound {
		s.l.Errorf(ctx, "internal.video.repository.redis.Put.Get: %v", err)
		return nil, err
	}
	if err == nil {
		var old video.PendingTransition
		if jsonErr := json.Unmarshal([]byte(prev), &old); jsonErr == nil {
			replaced = &old
		}
	}

	raw, err := json.Marshal(pt)
	if err != nil {
		s.l.Errorf(ctx, "internal.video.repository.redis.Put.Marshal: %v", err)
		return nil, err
	}

	if err := s.redis.Set(ctx, key, raw, pendingTTL); err != nil {
		s.l.Errorf(ctx, "internal.video.repository.redis.Put.Set: %v", err)
		return nil, err
	}

	return replaced, nil
}

func (s *implPendingStore) Take(ctx context.Context, sc model.Scope) (video.PendingTransition, error) {
	pt, err := s.Peek(ctx, sc)
	if err != nil {
		return video.PendingTransition{}, err
	}

	if err := s.redis.Delete(ctx, pendingKey(sc)); err != nil {
		s.l.Errorf(ctx, "internal.video.repository.redis.Take.Delete: %v", err)
		return video.PendingTransition{}, err
	}

	return pt, nil
}

func (s *implPendingStore) Peek(ctx context.Context, sc model.Scope) (video.PendingTransition, error) {
	raw, err := s.redis.Get(ctx, pendingKey(sc))
	if err != nil {
		if err == pkgRedis.ErrNotFound {
			return video.PendingTransition{}, repository.ErrNotFound
		}
		s.l.Errorf(ctx, "internal.video.repository.redis.Peek.Get: %v", err)
		return video.PendingTransition{}, err
	}

	var pt video.PendingTransition
	if err := json.Unmarshal([]byte(raw), &pt); err != nil {
		s.l.Errorf(ctx, "internal.video.repository.redis.Peek.Unmarshal: %v", err)
		return video.PendingTransition{}, err
	}

	return pt, nil
}

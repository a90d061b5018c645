// Copyright (c) 2026 Leio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slide

import (
	stdctx "context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/leio/internal/platform/constants"
)

// # Redis Cache Decorator

// cachedRepository wraps another [Repository] with a Redis read-through cache.
//
// # Degradation
//
// Cache failures are logged and bypassed — a dead Redis must never make
// slide decks unavailable while the underlying store still works.
// NotFound results are not cached; decks can be added to the directory at
// runtime and become visible immediately.
type cachedRepository struct {
	inner  Repository
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedRepository decorates inner with a Redis TTL cache.
func NewCachedRepository(inner Repository, client *redis.Client, ttl time.Duration, logger *slog.Logger) Repository {
	return &cachedRepository{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

/*
Get returns the deck markdown, preferring the cache.
*/
func (repository *cachedRepository) Get(context stdctx.Context, deck string) (string, error) {
	key := constants.RedisPrefixSlide + deck

	// 1. Cache probe
	cached, err := repository.client.Get(context, key).Result()
	if err == nil {
		return cached, nil
	}
	if err != redis.Nil {
		repository.logger.Warn("slide_cache_read_failed",
			slog.String("deck", deck),
			slog.Any("error", err),
		)
	}

	// 2. Authoritative read
	text, err := repository.inner.Get(context, deck)
	if err != nil {
		return "", err
	}

	// 3. Populate the cache for the next reader
	if setErr := repository.client.Set(context, key, text, repository.ttl).Err(); setErr != nil {
		repository.logger.Warn("slide_cache_write_failed",
			slog.String("deck", deck),
			slog.Any("error", setErr),
		)
	}

	return text, nil
}

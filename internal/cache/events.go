// Package cache provides an optional Redis-backed read-through cache for
// the event listing. When no Redis address is configured the service layer
// runs without it and every read goes to the database.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/anirudh/campusconnect/internal/app/models/dto"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const eventsKey = "events:all"

// EventsCache caches the full event listing under a single key with a TTL.
type EventsCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// NewEventsCache creates a cache on an existing Redis client
func NewEventsCache(rdb *redis.Client, ttl time.Duration, logger zerolog.Logger) *EventsCache {
	return &EventsCache{
		rdb:    rdb,
		ttl:    ttl,
		logger: logger,
	}
}

// Get returns the cached listing and whether it was present. Any Redis or
// decode failure reads as a miss; the caller falls through to the database.
func (c *EventsCache) Get(ctx context.Context) ([]dto.EventResponse, bool) {
	payload, err := c.rdb.Get(ctx, eventsKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn().Err(err).Msg("Events cache read failed")
		}
		return nil, false
	}

	var events []dto.EventResponse
	if err := json.Unmarshal(payload, &events); err != nil {
		c.logger.Warn().Err(err).Msg("Events cache payload corrupt, ignoring")
		return nil, false
	}

	return events, true
}

// Set stores the listing. Failures are logged and swallowed: the cache is
// an optimization, never a source of errors.
func (c *EventsCache) Set(ctx context.Context, events []dto.EventResponse) {
	payload, err := json.Marshal(events)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Failed to encode events for cache")
		return
	}

	if err := c.rdb.Set(ctx, eventsKey, payload, c.ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("Events cache write failed")
	}
}

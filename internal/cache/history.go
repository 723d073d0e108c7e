// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// history.go keeps a Valkey copy of the JSON history listing so repeated
// reads skip the database. Entries are keyed by a version counter that every
// successful write increments, so a listing read before a write can never be
// stored where later readers will find it. The TTL only bounds memory.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"brandcraft/internal/models"
)

const (
	// historyVersionKey holds the current listing version.
	historyVersionKey = "history:version"

	// historyKeyPrefix prefixes the per-version listing keys.
	historyKeyPrefix = "history:all:"

	// DefaultHistoryTTL is how long a cached listing stays valid.
	DefaultHistoryTTL = 30 * time.Second
)

// historyKey returns the key of the listing cached at version v.
func historyKey(v int64) string {
	return historyKeyPrefix + strconv.FormatInt(v, 10)
}

// HistoryCache manages the cached history listing in Valkey. Errors are
// logged and treated as misses; the cache never fails a request.
type HistoryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewHistoryCache creates a history cache backed by the given Valkey client.
func NewHistoryCache(client *redis.Client, ttl time.Duration) *HistoryCache {
	if ttl <= 0 {
		ttl = DefaultHistoryTTL
	}
	return &HistoryCache{client: client, ttl: ttl}
}

// version returns the current listing version, 0 before the first write.
func (hc *HistoryCache) version(ctx context.Context) (int64, error) {
	v, err := hc.client.Get(ctx, historyVersionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

// Get returns the cached listing and the version it was looked up at. On a
// miss the bool is false and the version must be passed to Set once the
// listing has been loaded. A negative version means the cache is unusable
// and Set will do nothing.
func (hc *HistoryCache) Get(ctx context.Context) ([]models.GenerationRecord, int64, bool) {
	v, err := hc.version(ctx)
	if err != nil {
		slog.Warn("history cache version error", "error", err)
		return nil, -1, false
	}

	key := historyKey(v)
	val, err := hc.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, v, false
	}
	if err != nil {
		slog.Warn("history cache get error", "error", err)
		return nil, -1, false
	}

	var recs []models.GenerationRecord
	if err := json.Unmarshal(val, &recs); err != nil {
		slog.Warn("history cache entry unreadable, dropping", "error", err)
		hc.client.Del(ctx, key)
		return nil, v, false
	}

	slog.Debug("history cache hit", "records", len(recs), "version", v)
	return recs, v, true
}

// Set stores a listing loaded after Get reported a miss at version v. If a
// write happened in between, the entry lands under a stale version and is
// never served.
func (hc *HistoryCache) Set(ctx context.Context, v int64, recs []models.GenerationRecord) {
	if v < 0 {
		return
	}
	data, err := json.Marshal(recs)
	if err != nil {
		slog.Warn("history cache encode error", "error", err)
		return
	}
	if err := hc.client.Set(ctx, historyKey(v), data, hc.ttl).Err(); err != nil {
		slog.Warn("history cache set error", "error", err)
	}
}

// InvalidateHistory moves the cache to a new version, hiding every listing
// stored so far.
func (hc *HistoryCache) InvalidateHistory(ctx context.Context) {
	v, err := hc.client.Incr(ctx, historyVersionKey).Result()
	if err != nil {
		slog.Warn("history cache invalidate error", "error", err)
		return
	}
	hc.client.Del(ctx, historyKey(v-1))
	slog.Debug("history cache invalidated", "version", v)
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// page.go provides a Valkey-backed cache for rendered storefront
// previews. A preview is a pure function of the store's blocks and
// theme, so any customization write for a store simply drops that
// store's entry and the next request re-renders.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// previewKeyPrefix is the Valkey key prefix for cached previews.
	previewKeyPrefix = "preview:"

	// DefaultPreviewTTL is how long a rendered preview stays cached.
	DefaultPreviewTTL = 5 * time.Minute
)

// PreviewCache holds rendered storefront HTML in Valkey, one entry per
// store. Every method degrades to a no-op with a warning on backend
// errors so a Valkey outage never breaks the storefront.
type PreviewCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPreviewCache creates a preview cache backed by the given Valkey client.
func NewPreviewCache(client *redis.Client, ttl time.Duration) *PreviewCache {
	if ttl == 0 {
		ttl = DefaultPreviewTTL
	}
	return &PreviewCache{client: client, ttl: ttl}
}

// Get retrieves the cached preview for a store. Returns false on miss.
func (pc *PreviewCache) Get(ctx context.Context, storeID string) ([]byte, bool) {
	val, err := pc.client.Get(ctx, previewKeyPrefix+storeID).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("preview cache get error", "store", storeID, "error", err)
		return nil, false
	}
	slog.Debug("preview cache hit", "store", storeID)
	return val, true
}

// Set stores rendered preview HTML for a store with the configured TTL.
func (pc *PreviewCache) Set(ctx context.Context, storeID string, html []byte) {
	if err := pc.client.Set(ctx, previewKeyPrefix+storeID, html, pc.ttl).Err(); err != nil {
		slog.Warn("preview cache set error", "store", storeID, "error", err)
	}
}

// Invalidate removes a store's cached preview. Called after every block,
// theme, or version mutation for the store.
func (pc *PreviewCache) Invalidate(ctx context.Context, storeID string) {
	if err := pc.client.Del(ctx, previewKeyPrefix+storeID).Err(); err != nil {
		slog.Warn("preview cache invalidate error", "store", storeID, "error", err)
	}
	slog.Debug("preview cache invalidated", "store", storeID)
}

// InvalidateAll removes every cached preview by scanning for the prefix.
// Used on deploys that change the block templates, since every store's
// render could differ.
func (pc *PreviewCache) InvalidateAll(ctx context.Context) {
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := pc.client.Scan(ctx, cursor, previewKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("preview cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := pc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("preview cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("preview cache fully cleared", "deleted", deleted)
	}
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"storefront/internal/cache"
	"storefront/internal/preview"
	"storefront/internal/store"
)

// Storefront serves the rendered store page. It checks the Valkey
// preview cache before querying the database and rendering, and stores
// the result on miss.
type Storefront struct {
	renderer     *preview.Renderer
	themes       *store.ThemeStore
	blocks       *store.BlockStore
	previewCache *cache.PreviewCache
}

// NewStorefront creates a new Storefront handler group. previewCache
// may be nil when Valkey is not configured.
func NewStorefront(renderer *preview.Renderer, themes *store.ThemeStore, blocks *store.BlockStore, previewCache *cache.PreviewCache) *Storefront {
	return &Storefront{
		renderer:     renderer,
		themes:       themes,
		blocks:       blocks,
		previewCache: previewCache,
	}
}

// Preview renders the store's page from its active blocks and theme.
func (s *Storefront) Preview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	storeID := chi.URLParam(r, "storeID")
	if msg := validateStoreID(storeID); msg != "" {
		http.NotFound(w, r)
		return
	}

	if s.previewCache != nil {
		if cached, ok := s.previewCache.Get(ctx, storeID); ok {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(cached)
			return
		}
	}

	theme, err := s.themes.Ensure(storeID)
	if err != nil {
		writeError(w, err)
		return
	}
	blocks, err := s.blocks.List(storeID)
	if err != nil {
		writeError(w, err)
		return
	}

	rendered, err := s.renderer.Render(blocks, theme)
	if err != nil {
		writeError(w, err)
		return
	}

	if s.previewCache != nil {
		s.previewCache.Set(ctx, storeID, rendered)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(rendered)
}

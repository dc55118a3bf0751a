// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"storefront/internal/cache"
	"storefront/internal/editor"
	"storefront/internal/models"
	"storefront/internal/registry"
	"storefront/internal/store"
)

// Customize groups the merchant-facing customization API handlers:
// theme editing, block management, the per-block editor forms, and
// saved versions. Every mutation drops the store's cached preview.
type Customize struct {
	themes       *store.ThemeStore
	blocks       *store.BlockStore
	versions     *store.VersionStore
	previewCache *cache.PreviewCache
}

// NewCustomize creates a new Customize handler group. previewCache may
// be nil when Valkey is not configured.
func NewCustomize(themes *store.ThemeStore, blocks *store.BlockStore, versions *store.VersionStore, previewCache *cache.PreviewCache) *Customize {
	return &Customize{
		themes:       themes,
		blocks:       blocks,
		versions:     versions,
		previewCache: previewCache,
	}
}

// invalidatePreview drops the store's cached preview after a mutation.
func (c *Customize) invalidatePreview(ctx context.Context, storeID string) {
	if c.previewCache != nil {
		c.previewCache.Invalidate(ctx, storeID)
	}
}

// storeIDParam extracts and validates the storeID path parameter.
func storeIDParam(r *http.Request) (string, error) {
	storeID := chi.URLParam(r, "storeID")
	if msg := validateStoreID(storeID); msg != "" {
		return "", fmt.Errorf("%s: %w", msg, models.ErrValidation)
	}
	return storeID, nil
}

// idParam extracts and parses a UUID path parameter.
func idParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s: %w", name, models.ErrValidation)
	}
	return id, nil
}

// --- Theme ---

// ThemeGet returns the store's theme, creating the default row on first
// access so a brand-new store always has one.
func (c *Customize) ThemeGet(w http.ResponseWriter, r *http.Request) {
	storeID, err := storeIDParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	theme, err := c.themes.Ensure(storeID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, theme)
}

// ThemeUpdate applies a partial theme edit. Absent fields keep their
// current values.
func (c *Customize) ThemeUpdate(w http.ResponseWriter, r *http.Request) {
	storeID, err := storeIDParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var update models.ThemeUpdate
	if err := decodeJSON(w, r, &update); err != nil {
		writeError(w, err)
		return
	}
	if update.PrimaryColor != nil {
		if msg := validateThemeField("Primary color", *update.PrimaryColor, maxColorLen); msg != "" {
			writeError(w, fmt.Errorf("%s: %w", msg, models.ErrValidation))
			return
		}
	}
	if update.SecondaryColor != nil {
		if msg := validateThemeField("Secondary color", *update.SecondaryColor, maxColorLen); msg != "" {
			writeError(w, fmt.Errorf("%s: %w", msg, models.ErrValidation))
			return
		}
	}
	if update.AccentColor != nil {
		if msg := validateThemeField("Accent color", *update.AccentColor, maxColorLen); msg != "" {
			writeError(w, fmt.Errorf("%s: %w", msg, models.ErrValidation))
			return
		}
	}
	if update.FontFamily != nil {
		if msg := validateThemeField("Font family", *update.FontFamily, maxFontFamilyLen); msg != "" {
			writeError(w, fmt.Errorf("%s: %w", msg, models.ErrValidation))
			return
		}
	}

	// Ensure first so a PATCH against a brand-new store succeeds.
	if _, err := c.themes.Ensure(storeID); err != nil {
		writeError(w, err)
		return
	}
	theme, err := c.themes.Update(storeID, update)
	if err != nil {
		writeError(w, err)
		return
	}

	c.invalidatePreview(r.Context(), storeID)
	writeJSON(w, http.StatusOK, theme)
}

// --- Blocks ---

// blockTypeInfo is one entry of the block-type catalog.
type blockTypeInfo struct {
	Type models.BlockType `json:"type"`
	Name string           `json:"name"`
}

// BlockTypes returns the catalog of available block types in selector
// order, for the "add block" menu.
func (c *Customize) BlockTypes(w http.ResponseWriter, r *http.Request) {
	types := registry.Types()
	out := make([]blockTypeInfo, 0, len(types))
	for _, t := range types {
		out = append(out, blockTypeInfo{Type: t, Name: registry.TypeName(t)})
	}
	writeJSON(w, http.StatusOK, out)
}

// BlocksList returns the store's blocks in layout order.
func (c *Customize) BlocksList(w http.ResponseWriter, r *http.Request) {
	storeID, err := storeIDParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	blocks, err := c.blocks.List(storeID)
	if err != nil {
		writeError(w, err)
		return
	}
	if blocks == nil {
		blocks = []models.Block{}
	}
	writeJSON(w, http.StatusOK, blocks)
}

// BlockAdd appends a new block of the requested type at the end of the
// layout, seeded with the type's default content.
func (c *Customize) BlockAdd(w http.ResponseWriter, r *http.Request) {
	storeID, err := storeIDParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req struct {
		BlockType models.BlockType `json:"block_type"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	if !registry.Known(req.BlockType) {
		writeError(w, fmt.Errorf("unknown block type %q: %w", req.BlockType, models.ErrValidation))
		return
	}

	block, err := c.blocks.Add(storeID, req.BlockType)
	if err != nil {
		writeError(w, err)
		return
	}

	c.invalidatePreview(r.Context(), storeID)
	writeJSON(w, http.StatusCreated, block)
}

// BlockUpdateContent replaces a block's content wholesale with the
// submitted map.
func (c *Customize) BlockUpdateContent(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req struct {
		Content models.BlockContent `json:"content"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Content == nil {
		writeError(w, fmt.Errorf("content is required: %w", models.ErrValidation))
		return
	}

	block, err := c.blocks.UpdateContent(id, req.Content)
	if err != nil {
		writeError(w, err)
		return
	}

	c.invalidatePreview(r.Context(), block.StoreID)
	writeJSON(w, http.StatusOK, block)
}

// BlockSetActive toggles a block's visibility without touching its
// content or position.
func (c *Customize) BlockSetActive(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req struct {
		IsActive bool `json:"is_active"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	block, err := c.blocks.SetActive(id, req.IsActive)
	if err != nil {
		writeError(w, err)
		return
	}

	c.invalidatePreview(r.Context(), block.StoreID)
	writeJSON(w, http.StatusOK, block)
}

// BlockRemove deletes a block; the remaining blocks are renumbered to
// keep the layout order dense.
func (c *Customize) BlockRemove(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	// Resolve the store before the row disappears.
	block, err := c.blocks.FindByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := c.blocks.Remove(id); err != nil {
		writeError(w, err)
		return
	}

	c.invalidatePreview(r.Context(), block.StoreID)
	w.WriteHeader(http.StatusNoContent)
}

// BlocksReorder applies a full permutation of the store's block ids as
// the new layout order.
func (c *Customize) BlocksReorder(w http.ResponseWriter, r *http.Request) {
	storeID, err := storeIDParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req struct {
		Order []uuid.UUID `json:"order"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := c.blocks.Reorder(storeID, req.Order); err != nil {
		writeError(w, err)
		return
	}

	blocks, err := c.blocks.List(storeID)
	if err != nil {
		writeError(w, err)
		return
	}

	c.invalidatePreview(r.Context(), storeID)
	writeJSON(w, http.StatusOK, blocks)
}

// BlockForm returns the editor form descriptor for a block, bound to
// its current content. Unknown types get an inert placeholder form.
func (c *Customize) BlockForm(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	block, err := c.blocks.FindByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, editor.FormFor(*block))
}

// --- Versions ---

// VersionsList returns the store's saved versions, newest first.
func (c *Customize) VersionsList(w http.ResponseWriter, r *http.Request) {
	storeID, err := storeIDParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	versions, err := c.versions.ListByStore(storeID)
	if err != nil {
		writeError(w, err)
		return
	}
	if versions == nil {
		versions = []models.ThemeVersion{}
	}
	writeJSON(w, http.StatusOK, versions)
}

// VersionSave snapshots the store's current blocks and theme under the
// given name.
func (c *Customize) VersionSave(w http.ResponseWriter, r *http.Request) {
	storeID, err := storeIDParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	if msg := validateVersionName(req.Name); msg != "" {
		writeError(w, fmt.Errorf("%s: %w", msg, models.ErrValidation))
		return
	}

	blocks, err := c.blocks.List(storeID)
	if err != nil {
		writeError(w, err)
		return
	}
	theme, err := c.themes.Ensure(storeID)
	if err != nil {
		writeError(w, err)
		return
	}

	version, err := c.versions.Save(storeID, req.Name, blocks, theme)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, version)
}

// VersionLoad restores a saved version into the store's live blocks and
// theme, replacing the current state.
func (c *Customize) VersionLoad(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	version, err := c.versions.FindByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := c.versions.Load(id); err != nil {
		writeError(w, err)
		return
	}

	c.invalidatePreview(r.Context(), version.StoreID)
	blocks, err := c.blocks.List(version.StoreID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, blocks)
}

// VersionSetLive marks one version as the store's live version,
// atomically clearing the previous one.
func (c *Customize) VersionSetLive(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := c.versions.SetLive(id); err != nil {
		writeError(w, err)
		return
	}

	version, err := c.versions.FindByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, version)
}

// VersionDelete removes a saved version. Deleting the live version
// leaves the store with no live version; the current working state is
// untouched.
func (c *Customize) VersionDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := c.versions.Delete(id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

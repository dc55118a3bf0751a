// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BlockType identifies a homepage section's content schema and renderer.
// The set is closed for editing and rendering purposes, but unknown tags
// are tolerated everywhere (echoed labels, empty defaults, visible
// placeholder in the preview) so a store never breaks on data written by
// a newer release.
type BlockType string

const (
	BlockTypeHero           BlockType = "hero"
	BlockTypeProductGrid    BlockType = "productGrid"
	BlockTypeTestimonials   BlockType = "testimonials"
	BlockTypeCategoryBanner BlockType = "categoryBanner"
	BlockTypeNewsletter     BlockType = "newsletter"
	BlockTypeCustomHTML     BlockType = "customHtml"
	BlockTypeVideo          BlockType = "video"
	BlockTypeInstagram      BlockType = "instagram"
)

// BlockContent is the open key/value payload of a block, stored as JSONB.
// Its shape is determined by the block's type; missing keys fall back to
// registry defaults at render time. Nested lists (testimonials,
// categories) are []any of map[string]any, matching what encoding/json
// produces on scan.
type BlockContent map[string]any

// Value implements driver.Valuer, marshaling the map for a JSONB column.
func (c BlockContent) Value() (driver.Value, error) {
	if c == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(c)
}

// Scan implements sql.Scanner for JSONB columns.
func (c *BlockContent) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*c = BlockContent{}
		return nil
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	}
	return fmt.Errorf("block content: cannot scan %T", src)
}

// Clone returns a deep copy of the content map. Editors mutate copies,
// never the map attached to a live block.
func (c BlockContent) Clone() BlockContent {
	if c == nil {
		return BlockContent{}
	}
	return cloneValue(c).(map[string]any)
}

// cloneValue deep-copies JSON-shaped values (maps, slices, scalars).
func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = cloneValue(val)
		}
		return out
	case BlockContent:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = cloneValue(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = cloneValue(val)
		}
		return out
	default:
		return v
	}
}

// Block is one ordered, typed content section of a store's homepage.
// Within a store, block_order values are always exactly 0..n-1 — every
// insert, delete, and reorder re-derives the dense sequence.
type Block struct {
	ID        uuid.UUID    `json:"id"`
	StoreID   string       `json:"store_id"`
	Type      BlockType    `json:"block_type"`
	Order     int          `json:"block_order"`
	Content   BlockContent `json:"content"`
	IsActive  bool         `json:"is_active"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

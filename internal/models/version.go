// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// BlockSnapshot is one block as captured inside a version's blocks_data
// blob. Block ids are deliberately not part of the snapshot: loading a
// version inserts fresh rows with new ids, so a snapshot can never
// collide with blocks created after it was taken.
type BlockSnapshot struct {
	Type     BlockType    `json:"block_type"`
	Order    int          `json:"block_order"`
	Content  BlockContent `json:"content"`
	IsActive bool         `json:"is_active"`
}

// ThemeSnapshot is the style-field subset of a Theme as captured inside a
// version's theme_data blob.
type ThemeSnapshot struct {
	PrimaryColor   string      `json:"primary_color"`
	SecondaryColor string      `json:"secondary_color"`
	AccentColor    string      `json:"accent_color"`
	FontFamily     string      `json:"font_family"`
	ButtonStyle    ButtonStyle `json:"button_style"`
	ButtonRadius   int         `json:"button_radius"`
	IsDarkMode     bool        `json:"is_dark_mode"`
}

// ThemeVersion is a named, restorable snapshot of a store's full block
// list and theme. At most one version per store is live at any time.
// The row is immutable after save except for the is_live flag.
type ThemeVersion struct {
	ID         uuid.UUID       `json:"id"`
	StoreID    string          `json:"store_id"`
	Name       string          `json:"name"`
	IsLive     bool            `json:"is_live"`
	BlocksData []BlockSnapshot `json:"blocks_data"`
	ThemeData  *ThemeSnapshot  `json:"theme_data"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// SnapshotBlocks captures the given blocks by value, in order position.
// Content maps are deep-copied so later edits to the live blocks cannot
// retroactively alter a saved version.
func SnapshotBlocks(blocks []Block) []BlockSnapshot {
	snaps := make([]BlockSnapshot, len(blocks))
	for i, b := range blocks {
		snaps[i] = BlockSnapshot{
			Type:     b.Type,
			Order:    b.Order,
			Content:  b.Content.Clone(),
			IsActive: b.IsActive,
		}
	}
	return snaps
}

// SnapshotTheme captures the theme's style fields by value.
func SnapshotTheme(t Theme) ThemeSnapshot {
	return ThemeSnapshot{
		PrimaryColor:   t.PrimaryColor,
		SecondaryColor: t.SecondaryColor,
		AccentColor:    t.AccentColor,
		FontFamily:     t.FontFamily,
		ButtonStyle:    t.ButtonStyle,
		ButtonRadius:   t.ButtonRadius,
		IsDarkMode:     t.IsDarkMode,
	}
}

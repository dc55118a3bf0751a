// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// ButtonStyle is the visual treatment applied to storefront buttons.
type ButtonStyle string

const (
	ButtonStyleRounded ButtonStyle = "rounded"
	ButtonStyleSquare  ButtonStyle = "square"
	ButtonStylePill    ButtonStyle = "pill"
)

// Valid reports whether the style is one of the supported tags.
func (b ButtonStyle) Valid() bool {
	switch b {
	case ButtonStyleRounded, ButtonStyleSquare, ButtonStylePill:
		return true
	}
	return false
}

// Theme holds the store-wide visual style settings. Exactly one theme row
// exists per store; colors are free-form strings (any CSS color value is
// accepted, not just hex).
type Theme struct {
	ID             uuid.UUID   `json:"id"`
	StoreID        string      `json:"store_id"`
	PrimaryColor   string      `json:"primary_color"`
	SecondaryColor string      `json:"secondary_color"`
	AccentColor    string      `json:"accent_color"`
	FontFamily     string      `json:"font_family"`
	ButtonStyle    ButtonStyle `json:"button_style"`
	ButtonRadius   int         `json:"button_radius"`
	IsDarkMode     bool        `json:"is_dark_mode"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// ThemeUpdate is a partial theme edit. Nil fields keep their current
// values; set fields replace them. Used by ThemeStore.Update with
// COALESCE semantics so a color picker can submit a single field.
type ThemeUpdate struct {
	PrimaryColor   *string      `json:"primary_color"`
	SecondaryColor *string      `json:"secondary_color"`
	AccentColor    *string      `json:"accent_color"`
	FontFamily     *string      `json:"font_family"`
	ButtonStyle    *ButtonStyle `json:"button_style"`
	ButtonRadius   *int         `json:"button_radius"`
	IsDarkMode     *bool        `json:"is_dark_mode"`
}

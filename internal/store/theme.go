// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"storefront/internal/models"
)

// themeColumns lists the columns selected in store theme queries.
const themeColumns = `id, store_id, primary_color, secondary_color, accent_color,
	font_family, button_style, button_radius, is_dark_mode, created_at, updated_at`

// ThemeStore handles the single style record each store owns. The
// store_id column is UNIQUE, so a store can never accumulate duplicate
// theme rows.
type ThemeStore struct {
	db *sql.DB
}

// NewThemeStore creates a new ThemeStore.
func NewThemeStore(db *sql.DB) *ThemeStore {
	return &ThemeStore{db: db}
}

// scanTheme scans a store theme row from the result set.
func scanTheme(scanner interface{ Scan(...any) error }) (*models.Theme, error) {
	var t models.Theme
	err := scanner.Scan(
		&t.ID, &t.StoreID, &t.PrimaryColor, &t.SecondaryColor, &t.AccentColor,
		&t.FontFamily, &t.ButtonStyle, &t.ButtonRadius, &t.IsDarkMode,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Get retrieves a store's theme.
func (s *ThemeStore) Get(storeID string) (*models.Theme, error) {
	row := s.db.QueryRow(`SELECT `+themeColumns+` FROM store_themes WHERE store_id = $1`, storeID)
	t, err := scanTheme(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("theme for store %s: %w", storeID, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get theme: %w", err)
	}
	return t, nil
}

// Ensure creates the store's theme row with column defaults if it does
// not exist yet, then returns it. Called at store setup; a no-op when
// the row is already there.
func (s *ThemeStore) Ensure(storeID string) (*models.Theme, error) {
	_, err := s.db.Exec(`
		INSERT INTO store_themes (store_id)
		VALUES ($1)
		ON CONFLICT (store_id) DO NOTHING
	`, storeID)
	if err != nil {
		return nil, fmt.Errorf("ensure theme: %w", err)
	}
	return s.Get(storeID)
}

// Update applies a partial theme edit. Only non-nil fields change;
// everything else keeps its prior value via COALESCE. Colors and font
// are free-form strings; button_radius must be non-negative and
// button_style one of the supported tags.
func (s *ThemeStore) Update(storeID string, u models.ThemeUpdate) (*models.Theme, error) {
	if u.ButtonRadius != nil && *u.ButtonRadius < 0 {
		return nil, fmt.Errorf("button_radius must be non-negative: %w", models.ErrValidation)
	}
	if u.ButtonStyle != nil && !u.ButtonStyle.Valid() {
		return nil, fmt.Errorf("unknown button_style %q: %w", *u.ButtonStyle, models.ErrValidation)
	}

	row := s.db.QueryRow(`
		UPDATE store_themes SET
			primary_color   = COALESCE($1, primary_color),
			secondary_color = COALESCE($2, secondary_color),
			accent_color    = COALESCE($3, accent_color),
			font_family     = COALESCE($4, font_family),
			button_style    = COALESCE($5, button_style),
			button_radius   = COALESCE($6, button_radius),
			is_dark_mode    = COALESCE($7, is_dark_mode),
			updated_at      = NOW()
		WHERE store_id = $8
		RETURNING `+themeColumns,
		u.PrimaryColor, u.SecondaryColor, u.AccentColor, u.FontFamily,
		u.ButtonStyle, u.ButtonRadius, u.IsDarkMode, storeID,
	)
	t, err := scanTheme(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("theme for store %s: %w", storeID, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update theme: %w", err)
	}
	return t, nil
}

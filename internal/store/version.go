// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"storefront/internal/models"
)

// versionColumns lists the columns selected in theme version queries.
const versionColumns = `id, store_id, name, is_live, blocks_data, theme_data, created_at, updated_at`

// VersionStore manages named snapshots of a store's block list and
// theme. It depends on the BlockStore so that loading a version takes
// the same per-store mutation lock as live block edits.
type VersionStore struct {
	db     *sql.DB
	blocks *BlockStore
}

// NewVersionStore creates a new VersionStore sharing the BlockStore's
// per-store serialization.
func NewVersionStore(db *sql.DB, blocks *BlockStore) *VersionStore {
	return &VersionStore{db: db, blocks: blocks}
}

// scanVersion scans a theme version row. blocks_data and theme_data are
// nullable JSONB; NULL leaves the corresponding field nil.
func scanVersion(scanner interface{ Scan(...any) error }) (*models.ThemeVersion, error) {
	var v models.ThemeVersion
	var blocksJSON, themeJSON []byte
	err := scanner.Scan(
		&v.ID, &v.StoreID, &v.Name, &v.IsLive,
		&blocksJSON, &themeJSON, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(blocksJSON) > 0 {
		if err := json.Unmarshal(blocksJSON, &v.BlocksData); err != nil {
			return nil, fmt.Errorf("decode blocks_data: %w", err)
		}
	}
	if len(themeJSON) > 0 {
		v.ThemeData = &models.ThemeSnapshot{}
		if err := json.Unmarshal(themeJSON, v.ThemeData); err != nil {
			return nil, fmt.Errorf("decode theme_data: %w", err)
		}
	}
	return &v, nil
}

// ListByStore returns a store's versions, newest first.
func (s *VersionStore) ListByStore(storeID string) ([]models.ThemeVersion, error) {
	rows, err := s.db.Query(`
		SELECT `+versionColumns+`
		FROM store_theme_versions
		WHERE store_id = $1
		ORDER BY created_at DESC
	`, storeID)
	if err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}
	defer rows.Close()

	var versions []models.ThemeVersion
	for rows.Next() {
		v, err := scanVersion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan version: %w", err)
		}
		versions = append(versions, *v)
	}
	return versions, rows.Err()
}

// FindByID retrieves a version by its UUID.
func (s *VersionStore) FindByID(id uuid.UUID) (*models.ThemeVersion, error) {
	row := s.db.QueryRow(`SELECT `+versionColumns+` FROM store_theme_versions WHERE id = $1`, id)
	v, err := scanVersion(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("version %s: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find version by id: %w", err)
	}
	return v, nil
}

// Save captures the given blocks and theme into a new named version.
// Snapshots are taken by value before any write — later edits to the
// live blocks or theme never alter a saved version. A blank name fails
// validation and nothing is written.
func (s *VersionStore) Save(storeID, name string, blocks []models.Block, theme *models.Theme) (*models.ThemeVersion, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("version name is required: %w", models.ErrValidation)
	}
	if theme == nil {
		return nil, fmt.Errorf("theme snapshot is required: %w", models.ErrValidation)
	}

	blocksJSON, err := json.Marshal(models.SnapshotBlocks(blocks))
	if err != nil {
		return nil, fmt.Errorf("encode blocks_data: %w", err)
	}
	themeJSON, err := json.Marshal(models.SnapshotTheme(*theme))
	if err != nil {
		return nil, fmt.Errorf("encode theme_data: %w", err)
	}

	row := s.db.QueryRow(`
		INSERT INTO store_theme_versions (store_id, name, blocks_data, theme_data)
		VALUES ($1, $2, $3, $4)
		RETURNING `+versionColumns,
		storeID, name, blocksJSON, themeJSON,
	)
	v, err := scanVersion(row)
	if err != nil {
		return nil, fmt.Errorf("save version: %w", err)
	}
	return v, nil
}

// Load restores a version: inside one transaction it deletes the
// store's current blocks, inserts fresh copies of the snapshot blocks
// (new ids — snapshot ids are never reused, so blocks created since the
// snapshot cannot collide), and overwrites the theme row from the theme
// snapshot. Fails with NotFound when the version or its snapshot data
// is missing.
func (s *VersionStore) Load(id uuid.UUID) error {
	v, err := s.FindByID(id)
	if err != nil {
		return err
	}
	if v.BlocksData == nil || v.ThemeData == nil {
		return fmt.Errorf("version %s has no snapshot data: %w", id, models.ErrNotFound)
	}

	mu := s.blocks.lock(v.StoreID)
	mu.Lock()
	defer mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM store_blocks WHERE store_id = $1`, v.StoreID); err != nil {
		return fmt.Errorf("clear blocks: %w", err)
	}

	for _, snap := range v.BlocksData {
		if _, err := tx.Exec(`
			INSERT INTO store_blocks (store_id, block_type, block_order, content, is_active)
			VALUES ($1, $2, $3, $4, $5)
		`, v.StoreID, snap.Type, snap.Order, snap.Content, snap.IsActive); err != nil {
			return fmt.Errorf("restore block: %w", err)
		}
	}

	t := v.ThemeData
	if _, err := tx.Exec(`
		INSERT INTO store_themes (store_id, primary_color, secondary_color, accent_color,
		                          font_family, button_style, button_radius, is_dark_mode)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (store_id) DO UPDATE SET
			primary_color   = EXCLUDED.primary_color,
			secondary_color = EXCLUDED.secondary_color,
			accent_color    = EXCLUDED.accent_color,
			font_family     = EXCLUDED.font_family,
			button_style    = EXCLUDED.button_style,
			button_radius   = EXCLUDED.button_radius,
			is_dark_mode    = EXCLUDED.is_dark_mode,
			updated_at      = NOW()
	`, v.StoreID, t.PrimaryColor, t.SecondaryColor, t.AccentColor,
		t.FontFamily, t.ButtonStyle, t.ButtonRadius, t.IsDarkMode); err != nil {
		return fmt.Errorf("restore theme: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit load version: %w", err)
	}
	return nil
}

// SetLive marks a version as the store's live one. The clear-then-set
// runs in a single transaction so no reader ever observes two live
// versions; a partial unique index on (store_id) WHERE is_live backs
// the invariant at the schema level.
func (s *VersionStore) SetLive(id uuid.UUID) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var storeID string
	err = tx.QueryRow(`SELECT store_id FROM store_theme_versions WHERE id = $1`, id).Scan(&storeID)
	if err == sql.ErrNoRows {
		return fmt.Errorf("version %s: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("find version store: %w", err)
	}

	if _, err := tx.Exec(`
		UPDATE store_theme_versions SET is_live = FALSE, updated_at = NOW()
		WHERE store_id = $1 AND is_live = TRUE
	`, storeID); err != nil {
		return fmt.Errorf("clear live versions: %w", err)
	}

	if _, err := tx.Exec(`
		UPDATE store_theme_versions SET is_live = TRUE, updated_at = NOW()
		WHERE id = $1
	`, id); err != nil {
		return fmt.Errorf("set live version: %w", err)
	}

	return tx.Commit()
}

// Delete removes a version row. Live blocks and theme are untouched,
// and no other version is promoted — deleting the live version simply
// leaves the store with no live version.
func (s *VersionStore) Delete(id uuid.UUID) error {
	result, err := s.db.Exec(`DELETE FROM store_theme_versions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete version: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("version %s: %w", id, models.ErrNotFound)
	}
	return nil
}

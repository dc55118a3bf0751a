// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"storefront/internal/models"
	"storefront/internal/registry"
)

// blockColumns lists the columns selected in store block queries.
const blockColumns = `id, store_id, block_type, block_order, content, is_active, created_at, updated_at`

// BlockStore handles the ordered block collection of each store. Every
// mutation that touches ordering (add, remove, reorder) runs inside a
// transaction AND under a per-store mutex, so rapid editor actions
// cannot interleave their renumbering and leave gaps or duplicates.
type BlockStore struct {
	db    *sql.DB
	locks sync.Map // store id -> *sync.Mutex
}

// NewBlockStore creates a new BlockStore.
func NewBlockStore(db *sql.DB) *BlockStore {
	return &BlockStore{db: db}
}

// lock returns the mutation mutex for a store, creating it on first use.
func (s *BlockStore) lock(storeID string) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(storeID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// scanBlock scans a store block row from the result set.
func scanBlock(scanner interface{ Scan(...any) error }) (*models.Block, error) {
	var b models.Block
	err := scanner.Scan(
		&b.ID, &b.StoreID, &b.Type, &b.Order,
		&b.Content, &b.IsActive, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// List returns a store's blocks ordered by block_order ascending.
func (s *BlockStore) List(storeID string) ([]models.Block, error) {
	rows, err := s.db.Query(`
		SELECT `+blockColumns+`
		FROM store_blocks
		WHERE store_id = $1
		ORDER BY block_order ASC
	`, storeID)
	if err != nil {
		return nil, fmt.Errorf("list blocks: %w", err)
	}
	defer rows.Close()

	var blocks []models.Block
	for rows.Next() {
		b, err := scanBlock(rows)
		if err != nil {
			return nil, fmt.Errorf("scan block: %w", err)
		}
		blocks = append(blocks, *b)
	}
	return blocks, rows.Err()
}

// FindByID retrieves a block by its UUID.
func (s *BlockStore) FindByID(id uuid.UUID) (*models.Block, error) {
	row := s.db.QueryRow(`SELECT `+blockColumns+` FROM store_blocks WHERE id = $1`, id)
	b, err := scanBlock(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("block %s: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find block by id: %w", err)
	}
	return b, nil
}

// Add appends a new block to the end of the store's list. The block gets
// block_order = current count, the registry's default content for its
// type, and is_active = true.
func (s *BlockStore) Add(storeID string, blockType models.BlockType) (*models.Block, error) {
	mu := s.lock(storeID)
	mu.Lock()
	defer mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM store_blocks WHERE store_id = $1`, storeID).Scan(&count); err != nil {
		return nil, fmt.Errorf("count blocks: %w", err)
	}

	row := tx.QueryRow(`
		INSERT INTO store_blocks (store_id, block_type, block_order, content, is_active)
		VALUES ($1, $2, $3, $4, TRUE)
		RETURNING `+blockColumns,
		storeID, blockType, count, registry.DefaultContent(blockType),
	)
	b, err := scanBlock(row)
	if err != nil {
		return nil, fmt.Errorf("create block: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit add block: %w", err)
	}
	return b, nil
}

// UpdateContent replaces a block's content map wholesale. Ordering and
// visibility are untouched, so no per-store lock is needed.
func (s *BlockStore) UpdateContent(id uuid.UUID, content models.BlockContent) (*models.Block, error) {
	row := s.db.QueryRow(`
		UPDATE store_blocks SET content = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING `+blockColumns,
		content, id,
	)
	b, err := scanBlock(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("block %s: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update block content: %w", err)
	}
	return b, nil
}

// SetActive toggles a block's visibility flag. Inactive blocks stay in
// the list but are skipped by the preview renderer.
func (s *BlockStore) SetActive(id uuid.UUID, active bool) (*models.Block, error) {
	row := s.db.QueryRow(`
		UPDATE store_blocks SET is_active = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING `+blockColumns,
		active, id,
	)
	b, err := scanBlock(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("block %s: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("set block active: %w", err)
	}
	return b, nil
}

// Remove deletes a block, then renumbers every remaining block of the
// store back to the dense 0..n-1 sequence, preserving relative order.
func (s *BlockStore) Remove(id uuid.UUID) error {
	// Resolve the store first so the right mutex can be taken.
	var storeID string
	err := s.db.QueryRow(`SELECT store_id FROM store_blocks WHERE id = $1`, id).Scan(&storeID)
	if err == sql.ErrNoRows {
		return fmt.Errorf("block %s: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("find block store: %w", err)
	}

	mu := s.lock(storeID)
	mu.Lock()
	defer mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(`DELETE FROM store_blocks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete block: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("block %s: %w", id, models.ErrNotFound)
	}

	// Close the gap: renumber survivors by their current order.
	if _, err := tx.Exec(`
		UPDATE store_blocks b
		SET block_order = r.new_order, updated_at = NOW()
		FROM (
			SELECT id, ROW_NUMBER() OVER (ORDER BY block_order ASC) - 1 AS new_order
			FROM store_blocks
			WHERE store_id = $1
		) r
		WHERE b.id = r.id AND b.block_order <> r.new_order
	`, storeID); err != nil {
		return fmt.Errorf("renumber blocks: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit remove block: %w", err)
	}
	return nil
}

// Reorder renumbers a store's blocks to match the given id permutation
// (position in the slice becomes block_order). The slice must contain
// exactly the store's current block ids — anything missing, foreign, or
// duplicated fails validation and no block is touched.
func (s *BlockStore) Reorder(storeID string, ids []uuid.UUID) error {
	mu := s.lock(storeID)
	mu.Lock()
	defer mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.Query(`
		SELECT `+blockColumns+`
		FROM store_blocks
		WHERE store_id = $1
		ORDER BY block_order ASC
		FOR UPDATE
	`, storeID)
	if err != nil {
		return fmt.Errorf("lock blocks for reorder: %w", err)
	}

	var current []models.Block
	for rows.Next() {
		b, err := scanBlock(rows)
		if err != nil {
			rows.Close()
			return fmt.Errorf("scan block: %w", err)
		}
		current = append(current, *b)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("read blocks for reorder: %w", err)
	}

	reordered, err := ApplyOrder(current, ids)
	if err != nil {
		return err
	}

	for _, b := range reordered {
		if _, err := tx.Exec(`
			UPDATE store_blocks SET block_order = $1, updated_at = NOW()
			WHERE id = $2
		`, b.Order, b.ID); err != nil {
			return fmt.Errorf("apply block order: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reorder: %w", err)
	}
	return nil
}

// ApplyOrder is the pure reordering function: given the current blocks
// of one store and a full permutation of their ids, it returns copies
// renumbered 0..n-1 in permutation order. The UI layer owns translating
// a drag gesture into the permutation; this function owns the invariant.
func ApplyOrder(current []models.Block, ids []uuid.UUID) ([]models.Block, error) {
	if len(ids) != len(current) {
		return nil, fmt.Errorf("reorder expects %d ids, got %d: %w", len(current), len(ids), models.ErrValidation)
	}

	byID := make(map[uuid.UUID]models.Block, len(current))
	for _, b := range current {
		byID[b.ID] = b
	}

	out := make([]models.Block, 0, len(ids))
	seen := make(map[uuid.UUID]bool, len(ids))
	for i, id := range ids {
		b, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("reorder id %s does not belong to the store: %w", id, models.ErrValidation)
		}
		if seen[id] {
			return nil, fmt.Errorf("reorder id %s appears twice: %w", id, models.ErrValidation)
		}
		seen[id] = true
		b.Order = i
		out = append(out, b)
	}
	return out, nil
}

package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"storefront/internal/models"
	"storefront/internal/registry"
)

// demoStoreID is the store seeded for local development.
const demoStoreID = "demo-store"

// Seed populates the database with initial development data: a theme row
// and a starter block layout for the demo store. Seeding is skipped when
// the demo store already has a theme, so restarts are idempotent.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM store_themes WHERE store_id = $1", demoStoreID).Scan(&count); err != nil {
		return fmt.Errorf("seed check theme: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	if _, err := db.Exec("INSERT INTO store_themes (store_id) VALUES ($1)", demoStoreID); err != nil {
		return fmt.Errorf("seed insert theme: %w", err)
	}

	// A starter layout every new store gets: hero on top, products,
	// social proof, then the newsletter signup.
	starter := []models.BlockType{
		models.BlockTypeHero,
		models.BlockTypeProductGrid,
		models.BlockTypeTestimonials,
		models.BlockTypeNewsletter,
	}
	for i, bt := range starter {
		content, err := json.Marshal(registry.DefaultContent(bt))
		if err != nil {
			return fmt.Errorf("seed marshal %s content: %w", bt, err)
		}
		_, err = db.Exec(`
			INSERT INTO store_blocks (store_id, block_type, block_order, content)
			VALUES ($1, $2, $3, $4)
		`, demoStoreID, bt, i, content)
		if err != nil {
			return fmt.Errorf("seed insert %s block: %w", bt, err)
		}
	}

	slog.Info("database seeded with demo store", "store", demoStoreID, "blocks", len(starter))
	return nil
}

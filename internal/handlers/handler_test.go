// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler
// integration tests. Tests are skipped when PostgreSQL is unavailable;
// the preview cache is left nil so Valkey is not required.
package handlers

import (
	"database/sql"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"storefront/internal/database"
	"storefront/internal/preview"
	"storefront/internal/store"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "storefront")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "storefront")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testEnv bundles the handler groups mounted on a router, backed by a
// live database and a fresh store id that is cleaned up after the test.
type testEnv struct {
	DB      *sql.DB
	StoreID string
	Themes  *store.ThemeStore
	Blocks  *store.BlockStore
	Router  chi.Router
}

// newTestEnv builds the full handler stack against the test database.
// The preview cache is nil, matching a deployment without Valkey.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)
	storeID := "test-store-" + uuid.NewString()[:8]
	t.Cleanup(func() {
		db.Exec("DELETE FROM store_blocks WHERE store_id = $1", storeID)
		db.Exec("DELETE FROM store_theme_versions WHERE store_id = $1", storeID)
		db.Exec("DELETE FROM store_themes WHERE store_id = $1", storeID)
	})

	themes := store.NewThemeStore(db)
	blocks := store.NewBlockStore(db)
	versions := store.NewVersionStore(db, blocks)

	renderer, err := preview.New()
	if err != nil {
		t.Fatalf("preview.New: %v", err)
	}

	customize := NewCustomize(themes, blocks, versions, nil)
	storefront := NewStorefront(renderer, themes, blocks, nil)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Get("/blocks/types", customize.BlockTypes)
		r.Route("/stores/{storeID}", func(r chi.Router) {
			r.Get("/theme", customize.ThemeGet)
			r.Patch("/theme", customize.ThemeUpdate)
			r.Get("/blocks", customize.BlocksList)
			r.Post("/blocks", customize.BlockAdd)
			r.Put("/blocks/order", customize.BlocksReorder)
			r.Get("/versions", customize.VersionsList)
			r.Post("/versions", customize.VersionSave)
		})
		r.Route("/blocks/{id}", func(r chi.Router) {
			r.Get("/form", customize.BlockForm)
			r.Put("/content", customize.BlockUpdateContent)
			r.Put("/active", customize.BlockSetActive)
			r.Delete("/", customize.BlockRemove)
		})
		r.Route("/versions/{id}", func(r chi.Router) {
			r.Post("/load", customize.VersionLoad)
			r.Post("/live", customize.VersionSetLive)
			r.Delete("/", customize.VersionDelete)
		})
	})
	r.Get("/stores/{storeID}/preview", storefront.Preview)

	return &testEnv{
		DB:      db,
		StoreID: storeID,
		Themes:  themes,
		Blocks:  blocks,
		Router:  r,
	}
}

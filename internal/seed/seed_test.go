package seed

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/vsstudio/estimator/internal/db"
	"github.com/vsstudio/estimator/internal/migrations"
	"github.com/vsstudio/estimator/internal/rates"
)

func openMigrated(t *testing.T) *sql.DB {
	t.Helper()

	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "seed-test.db")
	database, err := db.Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	if err := migrations.Up(ctx, database); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	return database
}

func expectedInserts(data rates.TablesData) int {
	n := 1 + len(data.Locations) + len(data.Components) + len(data.Scopes)
	for _, byQuality := range data.Inclusions {
		for _, items := range byQuality {
			n += len(items)
		}
	}
	for _, s := range data.Scopes {
		n += len(s.ExcludedComponents())
	}
	return n
}

func TestRunIsIdempotent(t *testing.T) {
	database := openMigrated(t)
	data := rates.DefaultData()
	want := expectedInserts(data)

	for i := 0; i < 10; i++ {
		stats, err := Run(context.Background(), database, data)
		if err != nil {
			t.Fatalf("run seed (iteration=%d): %v", i, err)
		}
		if i == 0 {
			if stats.Inserts != want {
				t.Fatalf("expected %d inserts in first run, got %d", want, stats.Inserts)
			}
			continue
		}
		if stats.Inserts != 0 {
			t.Fatalf("expected 0 inserts in iteration %d, got %d", i, stats.Inserts)
		}
	}

	assertCount(t, database, `SELECT COUNT(*) FROM location_rates WHERE is_default`, nil, 1)
	assertCount(t, database, `SELECT COUNT(*) FROM location_rates WHERE name = ?`, "Mumbai", 1)
	assertCount(t, database, `SELECT COUNT(*) FROM component_rates`, nil, len(rates.Components))
	assertCount(t, database, `SELECT COUNT(*) FROM project_scopes`, nil, len(data.Scopes))
	assertCount(t, database, `SELECT COUNT(*) FROM scope_exclusions WHERE scope_id = ? AND component = ?`, []any{"full-project", "landscape"}, 1)
	assertCount(t, database, `SELECT COUNT(*) FROM component_inclusions WHERE component = ? AND quality = ?`, []any{"civilQuality", "luxury"}, 7)
}

func TestRunKeepsEditedRows(t *testing.T) {
	database := openMigrated(t)
	ctx := context.Background()

	if _, err := Run(ctx, database, rates.DefaultData()); err != nil {
		t.Fatalf("run seed: %v", err)
	}
	if _, err := database.Exec(`UPDATE location_rates SET standard = 3333 WHERE name = 'Mumbai'`); err != nil {
		t.Fatalf("edit location: %v", err)
	}
	if _, err := Run(ctx, database, rates.DefaultData()); err != nil {
		t.Fatalf("re-run seed: %v", err)
	}

	var standard float64
	if err := database.QueryRow(`SELECT standard FROM location_rates WHERE name = 'Mumbai'`).Scan(&standard); err != nil {
		t.Fatalf("query location: %v", err)
	}
	if standard != 3333 {
		t.Fatalf("standard=%v, want edited value 3333", standard)
	}
}

func TestRunFillsMissingRows(t *testing.T) {
	database := openMigrated(t)
	ctx := context.Background()

	partial := rates.DefaultData()
	partial.Locations = partial.Locations[:3]
	first, err := Run(ctx, database, partial)
	if err != nil {
		t.Fatalf("run partial seed: %v", err)
	}

	full := rates.DefaultData()
	second, err := Run(ctx, database, full)
	if err != nil {
		t.Fatalf("run full seed: %v", err)
	}

	if got, want := first.Inserts+second.Inserts, expectedInserts(full); got != want {
		t.Fatalf("total inserts=%d, want %d", got, want)
	}
	assertCount(t, database, `SELECT COUNT(*) FROM location_rates`, nil, len(full.Locations)+1)
}

func assertCount(t *testing.T, database *sql.DB, query string, args any, expected int) {
	t.Helper()

	var count int
	var err error
	switch v := args.(type) {
	case nil:
		err = database.QueryRow(query).Scan(&count)
	case []any:
		err = database.QueryRow(query, v...).Scan(&count)
	default:
		err = database.QueryRow(query, v).Scan(&count)
	}
	if err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != expected {
		t.Fatalf("expected count %d, got %d", expected, count)
	}
}

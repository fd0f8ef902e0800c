package ratestore

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vsstudio/estimator/internal/db"
	"github.com/vsstudio/estimator/internal/estimator"
	"github.com/vsstudio/estimator/internal/migrations"
	"github.com/vsstudio/estimator/internal/rates"
	"github.com/vsstudio/estimator/internal/seed"
)

func sampleInputs() []estimator.ProjectEstimate {
	base := estimator.NewProjectEstimate()
	base.ID = "store-test"
	base.City = "Pune"
	base.Area = 1800
	base.AreaUnit = estimator.SqFt

	premium := base.WithQuality(rates.AC, rates.QualityPremium).WithQuality(rates.Windows, rates.QualityPremium)
	premium.ProjectType = rates.ScopeFullLandscape
	premium.BuildingType = estimator.Commercial
	premium.Complexity = 8

	unknown := base
	unknown.City = "Shillong"
	unknown.ProjectType = rates.ScopeRenovation

	interior := base.WithQuality(rates.LooseFurniture, rates.QualityLuxury)
	interior.ProjectType = rates.ScopeInteriorOnly

	return []estimator.ProjectEstimate{base, premium, unknown, interior}
}

func TestOpen_LoadedTablesMatchBuiltIn(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "rates.db")

	tables, stats, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("open rate store: %v", err)
	}
	if stats.Inserts == 0 {
		t.Fatalf("expected first open to seed rows")
	}

	fromDB := estimator.New(tables)
	builtIn := estimator.New(rates.Default())
	for _, in := range sampleInputs() {
		got, err := fromDB.Calculate(in)
		if err != nil {
			t.Fatalf("calculate with stored tables (%s): %v", in.ProjectType, err)
		}
		want, err := builtIn.Calculate(in)
		if err != nil {
			t.Fatalf("calculate with built-in tables (%s): %v", in.ProjectType, err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("estimate mismatch for %s/%s:\n got=%+v\nwant=%+v", in.City, in.ProjectType, got, want)
		}
	}

	if got, want := tables.Inclusions(rates.Plumbing, rates.QualityLuxury), rates.Default().Inclusions(rates.Plumbing, rates.QualityLuxury); !reflect.DeepEqual(got, want) {
		t.Fatalf("inclusions=%v, want %v", got, want)
	}

	_, again, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen rate store: %v", err)
	}
	if again.Inserts != 0 {
		t.Fatalf("expected reopen to insert nothing, got %d", again.Inserts)
	}
}

func TestLoad_ReflectsEditedRates(t *testing.T) {
	ctx := context.Background()
	database, err := db.Open(ctx, filepath.Join(t.TempDir(), "rates.db"))
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}
	defer database.Close()

	if err := migrations.Up(ctx, database); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	if _, err := seed.Run(ctx, database, rates.DefaultData()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := database.Exec(`UPDATE location_rates SET standard = 2000 WHERE is_default`); err != nil {
		t.Fatalf("edit fallback: %v", err)
	}
	if _, err := database.Exec(`DELETE FROM scope_exclusions WHERE scope_id = 'full-project'`); err != nil {
		t.Fatalf("edit exclusions: %v", err)
	}

	tables, err := Load(ctx, database)
	if err != nil {
		t.Fatalf("load tables: %v", err)
	}

	if got := tables.ResolveLocationRate("Nowhere").Band.Standard; got != 2000 {
		t.Fatalf("fallback standard=%v, want 2000", got)
	}
	scope, err := tables.ResolveScope(rates.ScopeFullProject)
	if err != nil {
		t.Fatalf("resolve scope: %v", err)
	}
	if scope.Excludes(rates.Landscape) {
		t.Fatalf("expected edited full-project scope to include landscape")
	}
}

func TestLoad_RejectsEmptyDatabase(t *testing.T) {
	ctx := context.Background()
	database, err := db.Open(ctx, filepath.Join(t.TempDir(), "empty.db"))
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}
	defer database.Close()

	if err := migrations.Up(ctx, database); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	if _, err := Load(ctx, database); err == nil {
		t.Fatalf("expected error loading unseeded tables")
	}
}

// Package ratestore loads the rate tables from the SQLite rates database. Tables are read
// once at startup and never written back.
package ratestore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vsstudio/estimator/internal/db"
	"github.com/vsstudio/estimator/internal/migrations"
	"github.com/vsstudio/estimator/internal/rates"
	"github.com/vsstudio/estimator/internal/seed"
)

// Open opens the database at path, migrates it, seeds any missing built-in rows, and
// returns the loaded tables. The database is closed before returning.
func Open(ctx context.Context, path string) (*rates.Tables, seed.Stats, error) {
	database, err := db.Open(ctx, path)
	if err != nil {
		return nil, seed.Stats{}, err
	}
	defer database.Close()

	if err := migrations.Up(ctx, database); err != nil {
		return nil, seed.Stats{}, err
	}

	stats, err := seed.Run(ctx, database, rates.DefaultData())
	if err != nil {
		return nil, seed.Stats{}, fmt.Errorf("seed rate tables: %w", err)
	}

	tables, err := Load(ctx, database)
	if err != nil {
		return nil, stats, err
	}
	return tables, stats, nil
}

// Load reads every rate table and builds validated, immutable tables from them.
func Load(ctx context.Context, database *sql.DB) (*rates.Tables, error) {
	var data rates.TablesData
	var err error

	if data.Locations, data.Fallback, err = loadLocations(ctx, database); err != nil {
		return nil, err
	}
	if data.Components, err = loadComponents(ctx, database); err != nil {
		return nil, err
	}
	if data.Inclusions, err = loadInclusions(ctx, database); err != nil {
		return nil, err
	}
	if data.Scopes, err = loadScopes(ctx, database); err != nil {
		return nil, err
	}

	tables, err := rates.NewTables(data)
	if err != nil {
		return nil, fmt.Errorf("build rate tables: %w", err)
	}
	return tables, nil
}

func loadLocations(ctx context.Context, database *sql.DB) ([]rates.LocationRate, rates.LocationRate, error) {
	rows, err := database.QueryContext(ctx, `
		SELECT name, tier, economy, standard, premium, luxury, is_default
		FROM location_rates
		ORDER BY position, name
	`)
	if err != nil {
		return nil, rates.LocationRate{}, fmt.Errorf("query location rates: %w", err)
	}
	defer rows.Close()

	locations := make([]rates.LocationRate, 0)
	var fallback rates.LocationRate
	for rows.Next() {
		var loc rates.LocationRate
		var tier int
		var isDefault bool
		if err := rows.Scan(&loc.Name, &tier, &loc.Band.Economy, &loc.Band.Standard, &loc.Band.Premium, &loc.Band.Luxury, &isDefault); err != nil {
			return nil, rates.LocationRate{}, fmt.Errorf("scan location rate: %w", err)
		}
		loc.Tier = rates.Tier(tier)
		if isDefault {
			fallback = loc
			continue
		}
		locations = append(locations, loc)
	}

	if err := rows.Err(); err != nil {
		return nil, rates.LocationRate{}, fmt.Errorf("iterate location rates: %w", err)
	}

	return locations, fallback, nil
}

func loadComponents(ctx context.Context, database *sql.DB) (map[rates.Component]rates.ComponentRates, error) {
	rows, err := database.QueryContext(ctx, `
		SELECT component, standard, premium, luxury
		FROM component_rates
	`)
	if err != nil {
		return nil, fmt.Errorf("query component rates: %w", err)
	}
	defer rows.Close()

	components := make(map[rates.Component]rates.ComponentRates, len(rates.Components))
	for rows.Next() {
		var key string
		var r rates.ComponentRates
		if err := rows.Scan(&key, &r.Standard, &r.Premium, &r.Luxury); err != nil {
			return nil, fmt.Errorf("scan component rate: %w", err)
		}
		c, err := rates.ParseComponent(key)
		if err != nil {
			return nil, fmt.Errorf("load component rates: %w", err)
		}
		components[c] = r
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate component rates: %w", err)
	}

	return components, nil
}

func loadInclusions(ctx context.Context, database *sql.DB) (map[rates.Component]map[rates.QualityLevel][]string, error) {
	rows, err := database.QueryContext(ctx, `
		SELECT component, quality, item
		FROM component_inclusions
		ORDER BY component, quality, position
	`)
	if err != nil {
		return nil, fmt.Errorf("query component inclusions: %w", err)
	}
	defer rows.Close()

	inclusions := make(map[rates.Component]map[rates.QualityLevel][]string)
	for rows.Next() {
		var comp, quality, item string
		if err := rows.Scan(&comp, &quality, &item); err != nil {
			return nil, fmt.Errorf("scan component inclusion: %w", err)
		}
		c, err := rates.ParseComponent(comp)
		if err != nil {
			return nil, fmt.Errorf("load component inclusions: %w", err)
		}
		q, err := rates.ParseQualityLevel(quality)
		if err != nil {
			return nil, fmt.Errorf("load component inclusions: %w", err)
		}
		if inclusions[c] == nil {
			inclusions[c] = make(map[rates.QualityLevel][]string)
		}
		inclusions[c][q] = append(inclusions[c][q], item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate component inclusions: %w", err)
	}

	return inclusions, nil
}

func loadScopes(ctx context.Context, database *sql.DB) ([]rates.Scope, error) {
	rows, err := database.QueryContext(ctx, `
		SELECT s.id, s.label, s.description, s.base_rate_per_area, s.base_months, COALESCE(e.component, '')
		FROM project_scopes s
		LEFT JOIN scope_exclusions e ON e.scope_id = s.id
		ORDER BY s.position, s.id, e.component
	`)
	if err != nil {
		return nil, fmt.Errorf("query project scopes: %w", err)
	}
	defer rows.Close()

	scopes := make([]rates.Scope, 0)
	for rows.Next() {
		var s rates.Scope
		var id, excluded string
		if err := rows.Scan(&id, &s.Label, &s.Description, &s.BaseRatePerArea, &s.BaseMonths, &excluded); err != nil {
			return nil, fmt.Errorf("scan project scope: %w", err)
		}
		s.ID = rates.ScopeID(id)

		if n := len(scopes); n == 0 || scopes[n-1].ID != s.ID {
			s.Excluded = map[rates.Component]bool{}
			scopes = append(scopes, s)
		}
		if excluded == "" {
			continue
		}
		c, err := rates.ParseComponent(excluded)
		if err != nil {
			return nil, fmt.Errorf("load scope %q exclusions: %w", id, err)
		}
		scopes[len(scopes)-1].Excluded[c] = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate project scopes: %w", err)
	}

	return scopes, nil
}

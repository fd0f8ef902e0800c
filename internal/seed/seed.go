package seed

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vsstudio/estimator/internal/rates"
)

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
}

// Run writes the given rate tables into an empty or partially seeded database. Rows that
// already exist are left untouched, so running it repeatedly is safe and operator edits
// survive restarts.
func Run(ctx context.Context, db *sql.DB, data rates.TablesData) (Stats, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	stats := Stats{}

	if err := ensureLocations(ctx, tx, data, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}
	if err := ensureComponents(ctx, tx, data, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}
	if err := ensureInclusions(ctx, tx, data, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}
	if err := ensureScopes(ctx, tx, data, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	return stats, nil
}

func ensureLocations(ctx context.Context, tx *sql.Tx, data rates.TablesData, stats *Stats) error {
	var hasDefault bool
	if err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM location_rates WHERE is_default LIMIT 1)`).Scan(&hasDefault); err != nil {
		return fmt.Errorf("check default location existence: %w", err)
	}
	if !hasDefault {
		if err := insertLocation(ctx, tx, data.Fallback, true, 0); err != nil {
			return err
		}
		stats.Inserts++
	}

	for i, loc := range data.Locations {
		var exists bool
		if err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM location_rates WHERE name = ? LIMIT 1)`, loc.Name).Scan(&exists); err != nil {
			return fmt.Errorf("check location %q existence: %w", loc.Name, err)
		}
		if exists {
			continue
		}
		if err := insertLocation(ctx, tx, loc, false, i+1); err != nil {
			return err
		}
		stats.Inserts++
	}
	return nil
}

func insertLocation(ctx context.Context, tx *sql.Tx, loc rates.LocationRate, isDefault bool, position int) error {
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO location_rates (name, tier, economy, standard, premium, luxury, is_default, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, loc.Name, int(loc.Tier), loc.Band.Economy, loc.Band.Standard, loc.Band.Premium, loc.Band.Luxury, isDefault, position); err != nil {
		return fmt.Errorf("insert location %q: %w", loc.Name, err)
	}
	return nil
}

func ensureComponents(ctx context.Context, tx *sql.Tx, data rates.TablesData, stats *Stats) error {
	for _, c := range rates.Components {
		r, ok := data.Components[c]
		if !ok {
			continue
		}

		var exists bool
		if err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM component_rates WHERE component = ? LIMIT 1)`, string(c)).Scan(&exists); err != nil {
			return fmt.Errorf("check component %q existence: %w", c, err)
		}
		if exists {
			continue
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO component_rates (component, standard, premium, luxury)
			VALUES (?, ?, ?, ?)
		`, string(c), r.Standard, r.Premium, r.Luxury); err != nil {
			return fmt.Errorf("insert component %q: %w", c, err)
		}
		stats.Inserts++
	}
	return nil
}

func ensureInclusions(ctx context.Context, tx *sql.Tx, data rates.TablesData, stats *Stats) error {
	for _, c := range rates.Components {
		for _, q := range rates.QualityLevels {
			for i, item := range data.Inclusions[c][q] {
				res, err := tx.ExecContext(ctx, `
					INSERT INTO component_inclusions (component, quality, position, item)
					VALUES (?, ?, ?, ?)
					ON CONFLICT (component, quality, position) DO NOTHING
				`, string(c), string(q), i, item)
				if err != nil {
					return fmt.Errorf("insert inclusion %s/%s: %w", c, q, err)
				}
				n, err := res.RowsAffected()
				if err != nil {
					return fmt.Errorf("count inclusion inserts: %w", err)
				}
				stats.Inserts += int(n)
			}
		}
	}
	return nil
}

func ensureScopes(ctx context.Context, tx *sql.Tx, data rates.TablesData, stats *Stats) error {
	for i, s := range data.Scopes {
		var exists bool
		if err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM project_scopes WHERE id = ? LIMIT 1)`, string(s.ID)).Scan(&exists); err != nil {
			return fmt.Errorf("check scope %q existence: %w", s.ID, err)
		}
		if exists {
			continue
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO project_scopes (id, label, description, base_rate_per_area, base_months, position)
			VALUES (?, ?, ?, ?, ?, ?)
		`, string(s.ID), s.Label, s.Description, s.BaseRatePerArea, s.BaseMonths, i); err != nil {
			return fmt.Errorf("insert scope %q: %w", s.ID, err)
		}
		stats.Inserts++

		for _, c := range s.ExcludedComponents() {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO scope_exclusions (scope_id, component) VALUES (?, ?)
			`, string(s.ID), string(c)); err != nil {
				return fmt.Errorf("insert scope %q exclusion %q: %w", s.ID, c, err)
			}
			stats.Inserts++
		}
	}
	return nil
}

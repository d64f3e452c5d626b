// This file implements catalog item reads and the curated import path.
package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/impact-mesh/lantern/pkg/types"
)

const catalogColumns = `indicator_id, code, name, domain, maturity, definition,
    rationale, unit, data_source, default_baseline, default_target, active, created_at`

// QueryCatalog returns active indicators matching the filter, ordered by
// domain then code. Free-text search matches case-insensitively against any
// of name, code, definition.
func (b *Backend) QueryCatalog(ctx context.Context, filter types.CatalogFilter) ([]*types.Indicator, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}

	query := "SELECT " + catalogColumns + " FROM catalog_items WHERE active = 1"
	var args []any

	if filter.Domain != "" {
		query += " AND domain = ?"
		args = append(args, filter.Domain)
	}
	if filter.Maturity != "" {
		query += " AND maturity = ?"
		args = append(args, filter.Maturity)
	}
	if filter.Search != "" {
		query += " AND (lower(name) LIKE ? OR lower(code) LIKE ? OR lower(definition) LIKE ?)"
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		args = append(args, pattern, pattern, pattern)
	}

	query += " ORDER BY domain ASC, code ASC"

	// SQLite requires LIMIT before OFFSET; -1 means unbounded.
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	} else if filter.Offset > 0 {
		query += " LIMIT -1"
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", filter.Offset)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying catalog items: %w", err)
	}
	defer rows.Close()

	results := []*types.Indicator{}
	for rows.Next() {
		var ind types.Indicator
		var active int
		var createdAt string
		if err := rows.Scan(
			&ind.IndicatorID, &ind.Code, &ind.Name, &ind.Domain, &ind.Maturity,
			&ind.Definition, &ind.Rationale, &ind.Unit, &ind.DataSource,
			&ind.DefaultBaseline, &ind.DefaultTarget, &active, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("hydrating catalog item: %w", err)
		}
		ind.Active = active != 0
		ind.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		results = append(results, &ind)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating catalog items: %w", err)
	}

	return results, nil
}

// ImportCatalog upserts curated indicators keyed by code and returns the
// number of records written. An existing code keeps its indicator id; every
// other field is replaced by the imported record.
func (b *Backend) ImportCatalog(ctx context.Context, indicators []*types.Indicator) (int, error) {
	db, err := b.conn()
	if err != nil {
		return 0, err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()

	count := 0
	for _, ind := range indicators {
		if ind.Code == "" || ind.Name == "" {
			return 0, types.ErrInvalidData
		}

		id := ind.IndicatorID
		if id == "" {
			id = generateUUID()
		}
		createdAt := ind.CreatedAt
		if createdAt.IsZero() {
			createdAt = now
		}

		_, err := tx.ExecContext(ctx,
			`INSERT INTO catalog_items (indicator_id, code, name, domain, maturity,
                definition, rationale, unit, data_source, default_baseline,
                default_target, active, created_at)
             VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
             ON CONFLICT(code) DO UPDATE SET
                name = excluded.name,
                domain = excluded.domain,
                maturity = excluded.maturity,
                definition = excluded.definition,
                rationale = excluded.rationale,
                unit = excluded.unit,
                data_source = excluded.data_source,
                default_baseline = excluded.default_baseline,
                default_target = excluded.default_target,
                active = excluded.active`,
			id, ind.Code, ind.Name, ind.Domain, ind.Maturity,
			ind.Definition, ind.Rationale, ind.Unit, ind.DataSource,
			ind.DefaultBaseline, ind.DefaultTarget, boolToInt(ind.Active),
			createdAt.Format(time.RFC3339),
		)
		if err != nil {
			return 0, fmt.Errorf("importing catalog item %s: %w", ind.Code, err)
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing catalog import: %w", err)
	}

	return count, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

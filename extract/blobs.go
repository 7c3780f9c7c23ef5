package extract

import (
	"database/sql"
	"errors"
	"fmt"
)

// ActionBlobRow carries the raw blobs stored directly on one action row.
type ActionBlobRow struct {
	RowID              int64
	ID                 string
	Name               string
	Requirements       []byte
	OutputTypeInstance []byte
}

// ParameterBlobRow is one distinct parameter type-instance blob with its
// usage count across the catalog.
type ParameterBlobRow struct {
	Key          string
	Name         string
	TypeInstance []byte
	UsageCount   int64
}

// RequirementBlobRow is one distinct requirements blob with its usage count.
type RequirementBlobRow struct {
	Requirements []byte
	UsageCount   int64
}

// ActionBlobs returns the blobs stored on one action row, or (nil, nil) when
// the action does not exist.
//
// Parameters:
//   - actionID: Action identifier (Tools.id, not the row ID)
//
// Returns:
//   - *ActionBlobRow: Action blobs with display name, nil when absent
//   - error: Query or scan failure
func (s *Store) ActionBlobs(actionID string) (*ActionBlobRow, error) {
	row := s.db.QueryRow(`
		SELECT
			t.rowId,
			t.id,
			t.requirements,
			t.outputTypeInstance,
			tl.name
		FROM Tools t
		LEFT JOIN ToolLocalizations tl
			ON t.rowId = tl.toolId
			AND tl.locale = ?
		WHERE t.id = ?`, DefaultLocale, actionID)

	var (
		b    ActionBlobRow
		name sql.NullString
	)
	err := row.Scan(&b.RowID, &b.ID, &b.Requirements, &b.OutputTypeInstance, &name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query action blobs: %w", err)
	}
	b.Name = name.String

	return &b, nil
}

// DistinctParameterBlobs returns the distinct parameter type-instance blobs
// across the catalog, most used first.
//
// Parameters:
//   - limit: Maximum rows to return (0 for all)
//
// Returns:
//   - []ParameterBlobRow: Distinct blobs with a representative key and name
//   - error: Query or scan failure
func (s *Store) DistinctParameterBlobs(limit int) ([]ParameterBlobRow, error) {
	query := `
		SELECT
			p.typeInstance,
			p.key,
			pl.name,
			COUNT(*) AS usage_count
		FROM Parameters p
		LEFT JOIN ParameterLocalizations pl
			ON p.toolId = pl.toolId
			AND p.key = pl.key
			AND pl.locale = ?
		WHERE p.typeInstance IS NOT NULL
		GROUP BY p.typeInstance
		ORDER BY usage_count DESC`
	args := []any{DefaultLocale}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query parameter blobs: %w", err)
	}
	defer rows.Close()

	var blobs []ParameterBlobRow
	for rows.Next() {
		var (
			b    ParameterBlobRow
			name sql.NullString
		)
		if err := rows.Scan(&b.TypeInstance, &b.Key, &name, &b.UsageCount); err != nil {
			return nil, fmt.Errorf("failed to scan parameter blob row: %w", err)
		}
		b.Name = name.String
		blobs = append(blobs, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate parameter blob rows: %w", err)
	}

	return blobs, nil
}

// DistinctRequirementBlobs returns the distinct requirements blobs across
// the catalog, most used first.
//
// Parameters:
//   - limit: Maximum rows to return (0 for all)
//
// Returns:
//   - []RequirementBlobRow: Distinct requirements blobs
//   - error: Query or scan failure
func (s *Store) DistinctRequirementBlobs(limit int) ([]RequirementBlobRow, error) {
	query := `
		SELECT
			t.requirements,
			COUNT(*) AS usage_count
		FROM Tools t
		WHERE LENGTH(t.requirements) > 0
		GROUP BY t.requirements
		ORDER BY usage_count DESC`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query requirement blobs: %w", err)
	}
	defer rows.Close()

	var blobs []RequirementBlobRow
	for rows.Next() {
		var b RequirementBlobRow
		if err := rows.Scan(&b.Requirements, &b.UsageCount); err != nil {
			return nil, fmt.Errorf("failed to scan requirement blob row: %w", err)
		}
		blobs = append(blobs, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate requirement blob rows: %w", err)
	}

	return blobs, nil
}

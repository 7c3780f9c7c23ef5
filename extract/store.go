package extract

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// DefaultLocale is the locale used when none is specified.
const DefaultLocale = "en"

// Store provides read access to an action catalog database.
//
// All queries are plain reads; a Store is safe for concurrent use. The
// zero value is not usable, construct with Open.
type Store struct {
	db     *sql.DB
	logger *zap.Logger
}

// StoreOption configures a Store during Open.
type StoreOption func(*Store)

// WithLogger sets the logger used by the store and by builders created from
// it. The default is a no-op logger.
func WithLogger(logger *zap.Logger) StoreOption {
	return func(s *Store) {
		s.logger = logger
	}
}

// Open opens the catalog database at path read-only.
//
// Parameters:
//   - path: Database file path, ":memory:", or a file: DSN
//   - opts: Optional store configuration
//
// Returns:
//   - *Store: Opened store
//   - error: Missing file or open/ping failure
func Open(path string, opts ...StoreOption) (*Store, error) {
	// sql.Open would silently create an empty database for a bad path.
	if path != ":memory:" && !strings.HasPrefix(path, "file:") {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("catalog database not found: %s", path)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping catalog database: %w", err)
	}

	store := &Store{db: db, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(store)
	}

	store.logger.Debug("catalog database opened", zap.String("path", path))

	return store, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// ActionRow is one action joined with its display localization and owning
// app metadata. Missing localizations leave the text fields empty.
type ActionRow struct {
	RowID                    int64
	ID                       string
	ToolType                 string
	Flags                    int64
	VisibilityFlags          int64
	DeprecationReplacementID string
	SourceProvider           string
	Name                     string
	DescriptionSummary       string
	DescriptionNote          string
	DeprecationMessage       string
	ContainerID              string
	AppName                  string
}

// ParameterRow is one action parameter joined with its localization.
type ParameterRow struct {
	Key           string
	SortOrder     int64
	Flags         int64
	TypeInstance  []byte
	Relationships []byte
	Name          string
	Description   string
}

// TypeRow is one catalog type joined with its display representation.
type TypeRow struct {
	RowID               string
	ID                  []byte
	Kind                int64
	RuntimeFlags        int64
	RuntimeRequirements []byte
	Name                string
	ContainerID         string
}

// EntityProperty is one property of an entity type.
type EntityProperty struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// EnumCase is one case of an enum type.
type EnumCase struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
}

// ActionCount returns the total number of actions in the catalog.
func (s *Store) ActionCount() (int, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM Tools").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count actions: %w", err)
	}

	return count, nil
}

// TypeCount returns the total number of types in the catalog.
func (s *Store) TypeCount() (int, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM Types").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count types: %w", err)
	}

	return count, nil
}

const actionsQuery = `
	SELECT
		t.rowId,
		t.id,
		t.toolType,
		t.flags,
		t.visibilityFlags,
		t.deprecationReplacementId,
		t.sourceActionProvider,
		tl.name,
		tl.descriptionSummary,
		tl.descriptionNote,
		tl.deprecationMessage,
		cm.id AS container_id,
		cml.name AS app_name
	FROM Tools t
	LEFT JOIN ToolLocalizations tl
		ON t.rowId = tl.toolId
		AND tl.locale = ?
		AND tl.localizationUsage = 'display'
	LEFT JOIN ContainerMetadata cm
		ON t.sourceContainerId = cm.rowId
	LEFT JOIN ContainerMetadataLocalizations cml
		ON cm.rowId = cml.containerId
		AND cml.locale = ?`

// Actions returns every action with its display localization for locale,
// ordered by action identifier.
//
// Parameters:
//   - locale: Localization locale ("" falls back to DefaultLocale)
//
// Returns:
//   - []ActionRow: All catalog actions
//   - error: Query or scan failure
func (s *Store) Actions(locale string) ([]ActionRow, error) {
	return s.queryActions(actionsQuery+" ORDER BY t.id", locale)
}

// HiddenActions returns actions with non-zero visibility flags, most hidden
// first.
//
// Parameters:
//   - locale: Localization locale ("" falls back to DefaultLocale)
//
// Returns:
//   - []ActionRow: Hidden catalog actions
//   - error: Query or scan failure
func (s *Store) HiddenActions(locale string) ([]ActionRow, error) {
	query := actionsQuery + `
	WHERE t.visibilityFlags > 0
	ORDER BY t.visibilityFlags DESC, t.id`

	return s.queryActions(query, locale)
}

func (s *Store) queryActions(query, locale string) ([]ActionRow, error) {
	if locale == "" {
		locale = DefaultLocale
	}

	rows, err := s.db.Query(query, locale, locale)
	if err != nil {
		return nil, fmt.Errorf("failed to query actions: %w", err)
	}
	defer rows.Close()

	var actions []ActionRow
	for rows.Next() {
		var (
			a                                   ActionRow
			toolType, deprecationID, provider   sql.NullString
			name, summary, note, deprecationMsg sql.NullString
			containerID, appName                sql.NullString
		)

		err := rows.Scan(
			&a.RowID, &a.ID, &toolType, &a.Flags, &a.VisibilityFlags,
			&deprecationID, &provider,
			&name, &summary, &note, &deprecationMsg,
			&containerID, &appName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan action row: %w", err)
		}

		a.ToolType = toolType.String
		a.DeprecationReplacementID = deprecationID.String
		a.SourceProvider = provider.String
		a.Name = name.String
		a.DescriptionSummary = summary.String
		a.DescriptionNote = note.String
		a.DeprecationMessage = deprecationMsg.String
		a.ContainerID = containerID.String
		a.AppName = appName.String

		actions = append(actions, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate action rows: %w", err)
	}

	return actions, nil
}

// ActionParameters returns the parameters of one action in sort order.
//
// Parameters:
//   - toolID: Action row identifier
//   - locale: Localization locale ("" falls back to DefaultLocale)
//
// Returns:
//   - []ParameterRow: Parameters with localized names and descriptions
//   - error: Query or scan failure
func (s *Store) ActionParameters(toolID int64, locale string) ([]ParameterRow, error) {
	if locale == "" {
		locale = DefaultLocale
	}

	rows, err := s.db.Query(`
		SELECT
			p.key,
			p.sortOrder,
			p.flags,
			p.typeInstance,
			p.relationships,
			pl.name,
			pl.description
		FROM Parameters p
		LEFT JOIN ParameterLocalizations pl
			ON p.toolId = pl.toolId
			AND p.key = pl.key
			AND pl.locale = ?
		WHERE p.toolId = ?
		ORDER BY p.sortOrder`, locale, toolID)
	if err != nil {
		return nil, fmt.Errorf("failed to query parameters: %w", err)
	}
	defer rows.Close()

	var params []ParameterRow
	for rows.Next() {
		var (
			p                 ParameterRow
			name, description sql.NullString
		)
		if err := rows.Scan(&p.Key, &p.SortOrder, &p.Flags, &p.TypeInstance, &p.Relationships, &name, &description); err != nil {
			return nil, fmt.Errorf("failed to scan parameter row: %w", err)
		}
		p.Name = name.String
		p.Description = description.String
		params = append(params, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate parameter rows: %w", err)
	}

	return params, nil
}

// ParameterTypes returns the accepted type identifiers for one parameter.
func (s *Store) ParameterTypes(toolID int64, paramKey string) ([]string, error) {
	return s.queryStrings(
		"SELECT typeId FROM ToolParameterTypes WHERE toolId = ? AND key = ?",
		"parameter types", toolID, paramKey)
}

// ActionOutputTypes returns the output type identifiers of one action.
func (s *Store) ActionOutputTypes(toolID int64) ([]string, error) {
	return s.queryStrings(
		"SELECT typeIdentifier FROM ToolOutputTypes WHERE toolId = ?",
		"output types", toolID)
}

// ActionCategories returns the localized category names of one action.
func (s *Store) ActionCategories(toolID int64, locale string) ([]string, error) {
	if locale == "" {
		locale = DefaultLocale
	}

	return s.queryStrings(
		"SELECT category FROM Categories WHERE toolId = ? AND locale = ?",
		"categories", toolID, locale)
}

// ActionKeywords returns the localized search keywords of one action in
// their defined order.
func (s *Store) ActionKeywords(toolID int64, locale string) ([]string, error) {
	if locale == "" {
		locale = DefaultLocale
	}

	return s.queryStrings(
		"SELECT keyword FROM SearchKeywords WHERE toolId = ? AND locale = ? ORDER BY `order`",
		"keywords", toolID, locale)
}

func (s *Store) queryStrings(query, what string, args ...any) ([]string, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", what, err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", what, err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s rows: %w", what, err)
	}

	return values, nil
}

// TypeInfo returns one catalog type, or (nil, nil) when it does not exist.
//
// Parameters:
//   - typeID: Type row identifier
//
// Returns:
//   - *TypeRow: Type row, nil when absent
//   - error: Query or scan failure
func (s *Store) TypeInfo(typeID string) (*TypeRow, error) {
	row := s.db.QueryRow(`
		SELECT
			t.rowId,
			t.id,
			t.kind,
			t.runtimeFlags,
			t.runtimeRequirements,
			tdr.name,
			cm.id AS container_id
		FROM Types t
		LEFT JOIN TypeDisplayRepresentations tdr
			ON t.rowId = tdr.typeId
			AND tdr.locale = ?
		LEFT JOIN ContainerMetadata cm
			ON t.sourceContainerId = cm.rowId
		WHERE t.rowId = ?`, DefaultLocale, typeID)

	var (
		t                 TypeRow
		name, containerID sql.NullString
	)
	err := row.Scan(&t.RowID, &t.ID, &t.Kind, &t.RuntimeFlags, &t.RuntimeRequirements, &name, &containerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query type info: %w", err)
	}
	t.Name = name.String
	t.ContainerID = containerID.String

	return &t, nil
}

// EntityProperties returns the localized properties of an entity type.
func (s *Store) EntityProperties(typeID, locale string) ([]EntityProperty, error) {
	if locale == "" {
		locale = DefaultLocale
	}

	rows, err := s.db.Query(`
		SELECT
			ep.id,
			epl.displayName
		FROM EntityProperties ep
		LEFT JOIN EntityPropertyLocalizations epl
			ON ep.id = epl.propertyId
			AND ep.typeId = epl.typeId
			AND epl.locale = ?
		WHERE ep.typeId = ?
		ORDER BY ep.id`, locale, typeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query entity properties: %w", err)
	}
	defer rows.Close()

	var props []EntityProperty
	for rows.Next() {
		var (
			p           EntityProperty
			displayName sql.NullString
		)
		if err := rows.Scan(&p.ID, &displayName); err != nil {
			return nil, fmt.Errorf("failed to scan entity property row: %w", err)
		}
		p.DisplayName = displayName.String
		props = append(props, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate entity property rows: %w", err)
	}

	return props, nil
}

// EnumCases returns the localized cases of an enum type.
func (s *Store) EnumCases(typeID, locale string) ([]EnumCase, error) {
	if locale == "" {
		locale = DefaultLocale
	}

	rows, err := s.db.Query(`
		SELECT
			id,
			title,
			subtitle
		FROM EnumerationCases
		WHERE typeId = ? AND locale = ?
		ORDER BY id`, typeID, locale)
	if err != nil {
		return nil, fmt.Errorf("failed to query enum cases: %w", err)
	}
	defer rows.Close()

	var cases []EnumCase
	for rows.Next() {
		var (
			c               EnumCase
			title, subtitle sql.NullString
		)
		if err := rows.Scan(&c.ID, &title, &subtitle); err != nil {
			return nil, fmt.Errorf("failed to scan enum case row: %w", err)
		}
		c.Title = title.String
		c.Subtitle = subtitle.String
		cases = append(cases, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate enum case rows: %w", err)
	}

	return cases, nil
}

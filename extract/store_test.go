package extract

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/salvagekit/salvage/wire"
)

var fixtureDDL = []string{
	`CREATE TABLE Tools (
		rowId INTEGER PRIMARY KEY,
		id TEXT NOT NULL,
		toolType TEXT,
		flags INTEGER DEFAULT 0,
		visibilityFlags INTEGER DEFAULT 0,
		deprecationReplacementId TEXT,
		sourceActionProvider TEXT,
		sourceContainerId INTEGER,
		requirements BLOB,
		outputTypeInstance BLOB
	)`,
	`CREATE TABLE ToolLocalizations (
		toolId INTEGER,
		locale TEXT,
		localizationUsage TEXT,
		name TEXT,
		descriptionSummary TEXT,
		descriptionNote TEXT,
		deprecationMessage TEXT
	)`,
	`CREATE TABLE ContainerMetadata (rowId INTEGER PRIMARY KEY, id TEXT)`,
	`CREATE TABLE ContainerMetadataLocalizations (containerId INTEGER, locale TEXT, name TEXT)`,
	`CREATE TABLE Parameters (
		toolId INTEGER,
		key TEXT,
		sortOrder INTEGER,
		flags INTEGER DEFAULT 0,
		typeInstance BLOB,
		relationships BLOB
	)`,
	`CREATE TABLE ParameterLocalizations (toolId INTEGER, key TEXT, locale TEXT, name TEXT, description TEXT)`,
	`CREATE TABLE ToolParameterTypes (toolId INTEGER, key TEXT, typeId TEXT)`,
	`CREATE TABLE ToolOutputTypes (toolId INTEGER, typeIdentifier TEXT)`,
	`CREATE TABLE Categories (toolId INTEGER, locale TEXT, category TEXT)`,
	`CREATE TABLE SearchKeywords (toolId INTEGER, locale TEXT, keyword TEXT, ` + "`order`" + ` INTEGER)`,
	`CREATE TABLE Types (
		rowId TEXT PRIMARY KEY,
		id BLOB,
		kind INTEGER,
		runtimeFlags INTEGER DEFAULT 0,
		runtimeRequirements BLOB,
		sourceContainerId INTEGER
	)`,
	`CREATE TABLE TypeDisplayRepresentations (typeId TEXT, locale TEXT, name TEXT)`,
	`CREATE TABLE EntityProperties (typeId TEXT, id TEXT)`,
	`CREATE TABLE EntityPropertyLocalizations (typeId TEXT, propertyId TEXT, locale TEXT, displayName TEXT)`,
	`CREATE TABLE EnumerationCases (typeId TEXT, locale TEXT, id TEXT, title TEXT, subtitle TEXT)`,
}

// typeInstanceBlob builds a wire-encoded blob with one delimited string.
func typeInstanceBlob(text string) []byte {
	blob := wire.AppendUvarint(nil, 1<<3|uint64(wire.TypeDelimited))
	blob = wire.AppendUvarint(blob, uint64(len(text)))

	return append(blob, text...)
}

// requirementsBlob builds a wire-encoded blob with one varint field.
func requirementsBlob(value uint64) []byte {
	blob := wire.AppendUvarint(nil, 1<<3|uint64(wire.TypeVarint))

	return wire.AppendUvarint(blob, value)
}

// createFixtureDB writes a small catalog database and returns its path.
func createFixtureDB(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.sqlite")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	for _, stmt := range fixtureDDL {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}

	inserts := []struct {
		stmt string
		args []any
	}{
		{`INSERT INTO ContainerMetadata VALUES (1, 'com.apple.mobilenotes')`, nil},
		{`INSERT INTO ContainerMetadataLocalizations VALUES (1, 'en', 'Notes')`, nil},

		{`INSERT INTO Tools VALUES (1, 'com.apple.mobilenotes.CreateNote', 'intent', 0, 0, NULL, 'appintents', 1, ?, NULL)`, []any{requirementsBlob(14)}},
		{`INSERT INTO ToolLocalizations VALUES (1, 'en', 'display', 'Create Note', 'Creates a new note.', NULL, NULL)`, nil},

		{`INSERT INTO Tools VALUES (2, 'com.apple.photos.IncreaseWarmth', 'intent', 0, 3, NULL, 'appintents', 1, NULL, NULL)`, nil},
		{`INSERT INTO ToolLocalizations VALUES (2, 'en', 'display', 'photos_IncreaseWarmth_1.0.0_intent_title', NULL, NULL, NULL)`, nil},

		{`INSERT INTO Parameters VALUES (1, 'body', 0, 0, ?, NULL)`, []any{typeInstanceBlob("public.folder")}},
		{`INSERT INTO ParameterLocalizations VALUES (1, 'body', 'en', 'Body', 'The text of the note.')`, nil},
		{`INSERT INTO ToolParameterTypes VALUES (1, 'body', 'com.apple.notes.NoteEntity')`, nil},

		{`INSERT INTO ToolOutputTypes VALUES (1, 'com.apple.notes.NoteEntity')`, nil},
		{`INSERT INTO Categories VALUES (1, 'en', 'Documents')`, nil},
		{`INSERT INTO SearchKeywords VALUES (1, 'en', 'write', 2)`, nil},
		{`INSERT INTO SearchKeywords VALUES (1, 'en', 'note', 1)`, nil},

		{`INSERT INTO Types VALUES ('com.apple.notes.NoteEntity', NULL, 2, 0, NULL, 1)`, nil},
		{`INSERT INTO TypeDisplayRepresentations VALUES ('com.apple.notes.NoteEntity', 'en', 'Note')`, nil},
		{`INSERT INTO EntityProperties VALUES ('com.apple.notes.NoteEntity', 'title')`, nil},
		{`INSERT INTO EntityPropertyLocalizations VALUES ('com.apple.notes.NoteEntity', 'title', 'en', 'Title')`, nil},

		{`INSERT INTO Types VALUES ('com.apple.photos.WarmthMode', NULL, 3, 0, NULL, 1)`, nil},
		{`INSERT INTO EnumerationCases VALUES ('com.apple.photos.WarmthMode', 'en', 'low', 'Low', NULL)`, nil},
		{`INSERT INTO EnumerationCases VALUES ('com.apple.photos.WarmthMode', 'en', 'high', 'High', 'Stronger effect')`, nil},
	}
	for _, ins := range inserts {
		_, err := db.Exec(ins.stmt, ins.args...)
		require.NoError(t, err)
	}

	return path
}

func openFixture(t *testing.T) *Store {
	t.Helper()

	store, err := Open(createFixtureDB(t))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.sqlite"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}

func TestStore_Counts(t *testing.T) {
	store := openFixture(t)

	actions, err := store.ActionCount()
	require.NoError(t, err)
	require.Equal(t, 2, actions)

	types, err := store.TypeCount()
	require.NoError(t, err)
	require.Equal(t, 2, types)
}

func TestStore_Actions(t *testing.T) {
	store := openFixture(t)

	actions, err := store.Actions("en")
	require.NoError(t, err)
	require.Len(t, actions, 2)

	// Ordered by action identifier.
	notes := actions[0]
	require.Equal(t, "com.apple.mobilenotes.CreateNote", notes.ID)
	require.Equal(t, "Create Note", notes.Name)
	require.Equal(t, "Creates a new note.", notes.DescriptionSummary)
	require.Equal(t, "com.apple.mobilenotes", notes.ContainerID)
	require.Equal(t, "Notes", notes.AppName)
	require.Zero(t, notes.VisibilityFlags)

	photos := actions[1]
	require.Equal(t, "photos_IncreaseWarmth_1.0.0_intent_title", photos.Name)
	require.EqualValues(t, 3, photos.VisibilityFlags)
}

func TestStore_Actions_MissingLocale(t *testing.T) {
	store := openFixture(t)

	actions, err := store.Actions("de")
	require.NoError(t, err)
	require.Len(t, actions, 2)
	require.Empty(t, actions[0].Name)
}

func TestStore_HiddenActions(t *testing.T) {
	store := openFixture(t)

	hidden, err := store.HiddenActions("en")
	require.NoError(t, err)
	require.Len(t, hidden, 1)
	require.Equal(t, "com.apple.photos.IncreaseWarmth", hidden[0].ID)
}

func TestStore_ActionParameters(t *testing.T) {
	store := openFixture(t)

	params, err := store.ActionParameters(1, "en")
	require.NoError(t, err)
	require.Len(t, params, 1)

	body := params[0]
	require.Equal(t, "body", body.Key)
	require.Equal(t, "Body", body.Name)
	require.Equal(t, "The text of the note.", body.Description)
	require.NotEmpty(t, body.TypeInstance)

	types, err := store.ParameterTypes(1, "body")
	require.NoError(t, err)
	require.Equal(t, []string{"com.apple.notes.NoteEntity"}, types)
}

func TestStore_OutputTypesCategoriesKeywords(t *testing.T) {
	store := openFixture(t)

	outputs, err := store.ActionOutputTypes(1)
	require.NoError(t, err)
	require.Equal(t, []string{"com.apple.notes.NoteEntity"}, outputs)

	categories, err := store.ActionCategories(1, "en")
	require.NoError(t, err)
	require.Equal(t, []string{"Documents"}, categories)

	keywords, err := store.ActionKeywords(1, "en")
	require.NoError(t, err)
	require.Equal(t, []string{"note", "write"}, keywords)
}

func TestStore_TypeInfo(t *testing.T) {
	store := openFixture(t)

	info, err := store.TypeInfo("com.apple.notes.NoteEntity")
	require.NoError(t, err)
	require.NotNil(t, info)
	require.EqualValues(t, 2, info.Kind)
	require.Equal(t, "Note", info.Name)

	missing, err := store.TypeInfo("com.apple.nonexistent.Type")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestStore_EntityPropertiesAndEnumCases(t *testing.T) {
	store := openFixture(t)

	props, err := store.EntityProperties("com.apple.notes.NoteEntity", "en")
	require.NoError(t, err)
	require.Len(t, props, 1)
	require.Equal(t, "title", props[0].ID)
	require.Equal(t, "Title", props[0].DisplayName)

	cases, err := store.EnumCases("com.apple.photos.WarmthMode", "en")
	require.NoError(t, err)
	require.Len(t, cases, 2)
	require.Equal(t, "High", cases[0].Title)
	require.Equal(t, "Stronger effect", cases[0].Subtitle)
}

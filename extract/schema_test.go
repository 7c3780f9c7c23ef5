package extract

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilder_BuildActionSchema_CleanAction(t *testing.T) {
	store := openFixture(t)
	builder := NewBuilder(store, DefaultBuildOptions())

	actions, err := store.Actions("en")
	require.NoError(t, err)

	schema, err := builder.BuildActionSchema(&actions[0])
	require.NoError(t, err)

	require.Equal(t, "com.apple.mobilenotes.CreateNote", schema.ID)
	require.Equal(t, "Create Note", schema.Name)
	require.False(t, schema.NameMetadata.Synthetic)
	require.Equal(t, "Creates a new note.", schema.DescriptionSummary)
	require.False(t, schema.Hidden)
	require.Equal(t, "Notes", schema.App.Name)
	require.Nil(t, schema.Deprecation)

	require.Len(t, schema.Parameters, 1)
	body := schema.Parameters[0]
	require.Equal(t, "body", body.Key)
	require.Equal(t, "Body", body.Name)
	require.Equal(t, []string{"com.apple.notes.NoteEntity"}, body.AcceptedTypes)

	require.Equal(t, []string{"com.apple.notes.NoteEntity"}, schema.OutputTypes)
	require.Equal(t, []string{"Documents"}, schema.Categories)
	require.Equal(t, []string{"note", "write"}, schema.Keywords)
}

func TestBuilder_BuildActionSchema_RepairsKeyName(t *testing.T) {
	store := openFixture(t)
	builder := NewBuilder(store, DefaultBuildOptions())

	actions, err := store.Actions("en")
	require.NoError(t, err)

	schema, err := builder.BuildActionSchema(&actions[1])
	require.NoError(t, err)

	require.Equal(t, "Increase Warmth", schema.Name)
	require.True(t, schema.NameMetadata.Synthetic)
	require.Equal(t, "photos_IncreaseWarmth_1.0.0_intent_title", schema.NameMetadata.OriginalKey)
	require.Equal(t, "parsed_key", schema.NameMetadata.Source)
	require.Greater(t, schema.NameMetadata.Confidence, 0.8)
	require.True(t, schema.Hidden)
}

func TestBuilder_BuildActionSchema_NoFix(t *testing.T) {
	store := openFixture(t)
	opts := DefaultBuildOptions()
	opts.FixLocalizations = false
	builder := NewBuilder(store, opts)

	actions, err := store.Actions("en")
	require.NoError(t, err)

	schema, err := builder.BuildActionSchema(&actions[1])
	require.NoError(t, err)

	require.Equal(t, "photos_IncreaseWarmth_1.0.0_intent_title", schema.Name)
	require.False(t, schema.NameMetadata.Synthetic)
	require.Contains(t, schema.LocalizationIssues, "name_is_key")
}

func TestBuilder_BuildActionSchema_BlobAnalysis(t *testing.T) {
	store := openFixture(t)
	builder := NewBuilder(store, DefaultBuildOptions())

	actions, err := store.Actions("en")
	require.NoError(t, err)

	schema, err := builder.BuildActionSchema(&actions[0])
	require.NoError(t, err)

	require.NotNil(t, schema.Parameters[0].TypeInfo)
	require.Contains(t, schema.Parameters[0].TypeInfo.UTITypes, "public.folder")
}

func TestBuilder_BuildAll(t *testing.T) {
	store := openFixture(t)
	builder := NewBuilder(store, DefaultBuildOptions())

	schemas, err := builder.BuildAll()
	require.NoError(t, err)
	require.Len(t, schemas, 2)
	require.Equal(t, "com.apple.mobilenotes.CreateNote", schemas[0].ID)
	require.Equal(t, "com.apple.photos.IncreaseWarmth", schemas[1].ID)
}

func TestBuilder_TypeDetails(t *testing.T) {
	store := openFixture(t)
	builder := NewBuilder(store, DefaultBuildOptions())

	entity, err := builder.TypeDetails("com.apple.notes.NoteEntity")
	require.NoError(t, err)
	require.NotNil(t, entity)
	require.Equal(t, "entity", entity.KindName)
	require.True(t, entity.Parsed.Entity)
	require.Len(t, entity.Properties, 1)
	require.Empty(t, entity.EnumCases)

	enum, err := builder.TypeDetails("com.apple.photos.WarmthMode")
	require.NoError(t, err)
	require.NotNil(t, enum)
	require.Equal(t, "enum", enum.KindName)
	require.True(t, enum.Parsed.Enum)
	require.Len(t, enum.EnumCases, 2)

	missing, err := builder.TypeDetails("com.apple.nonexistent.Type")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestSummarizeActions(t *testing.T) {
	store := openFixture(t)
	builder := NewBuilder(store, DefaultBuildOptions())

	schemas, err := builder.BuildAll()
	require.NoError(t, err)

	summary := SummarizeActions(schemas)
	require.Equal(t, 2, summary.TotalCount)
	require.Equal(t, 2, summary.ByType["intent"])
	require.Equal(t, 1, summary.ByVisibility[0])
	require.Equal(t, 1, summary.ByVisibility[3])
	require.Equal(t, 2, summary.ByApp["Notes"])
	require.Equal(t, 1, summary.HiddenCount)
	require.Zero(t, summary.DeprecatedCount)
	require.Equal(t, 1, summary.WithParameters)
	require.Equal(t, 1, summary.ParameterCount)
}

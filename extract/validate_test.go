package extract

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func cleanSchema() *ActionSchema {
	return &ActionSchema{
		ID:                 "com.apple.mobilenotes.CreateNote",
		Name:               "Create Note",
		DescriptionSummary: "Creates a new note.",
		Parameters: []ParameterSchema{
			{Key: "body", Name: "Body", Description: "The text of the note.", AcceptedTypes: []string{"public.folder"}},
		},
		Categories: []string{"Documents"},
	}
}

func TestValidateActionSchema_Clean(t *testing.T) {
	validation := ValidateActionSchema(cleanSchema())

	require.True(t, validation.Valid)
	require.Empty(t, validation.Issues)
	require.Empty(t, validation.Warnings)
	// 100 + description, parameters, and categories bonuses, clamped.
	require.Equal(t, 100.0, validation.QualityScore)
}

func TestValidateActionSchema_UnrepairedKey(t *testing.T) {
	schema := cleanSchema()
	schema.Name = "photos_IncreaseWarmth_1.0.0_intent_title"

	validation := ValidateActionSchema(schema)
	require.False(t, validation.Valid)
	require.Len(t, validation.Issues, 1)
	require.Equal(t, IssueMissingLocalization, validation.Issues[0].Issue)
	require.Equal(t, "name", validation.Issues[0].Field)
}

func TestValidateActionSchema_SyntheticIsWarning(t *testing.T) {
	schema := cleanSchema()
	schema.Name = "Increase Warmth"
	schema.NameMetadata = FieldMetadata{
		Synthetic:   true,
		OriginalKey: "photos_IncreaseWarmth_1.0.0_intent_title",
		Confidence:  0.9,
		Source:      "parsed_key",
	}

	validation := ValidateActionSchema(schema)
	require.True(t, validation.Valid)
	require.Len(t, validation.Warnings, 1)
	require.Equal(t, WarnSyntheticLocalization, validation.Warnings[0].Issue)
	require.Equal(t, "photos_IncreaseWarmth_1.0.0_intent_title", validation.Warnings[0].OriginalKey)
}

func TestValidateActionSchema_ComplexTypes(t *testing.T) {
	schema := cleanSchema()
	schema.Parameters[0].AcceptedTypes = []string{
		"com.apple.shortcuts.com.agiletortoise.Drafts4.addto.DraftsAddMode",
	}

	validation := ValidateActionSchema(schema)
	require.True(t, validation.Valid)
	require.Len(t, validation.Warnings, 1)
	require.Equal(t, WarnComplexType, validation.Warnings[0].Issue)
}

func TestValidateActionSchema_HiddenNoName(t *testing.T) {
	schema := cleanSchema()
	schema.Name = ""
	schema.Hidden = true

	validation := ValidateActionSchema(schema)
	require.Len(t, validation.Warnings, 1)
	require.Equal(t, WarnHiddenNoName, validation.Warnings[0].Issue)
}

func TestQualityScore_ComplexTypePenaltyCapped(t *testing.T) {
	schema := cleanSchema()
	types := make([]string, 30)
	for i := range types {
		types[i] = fmt.Sprintf("com.apple.home.accessory.Mode%d", i)
	}
	schema.Parameters[0].AcceptedTypes = types

	validation := ValidateActionSchema(schema)
	require.Len(t, validation.Warnings, 30)
	// 30 complex types would cost 60 uncapped; the cap holds it to 20.
	// 100 - 20 + 15 bonus = 95, clamped to 95... then clamped at 100.
	require.Equal(t, 95.0, validation.QualityScore)
}

func TestQualityScore_IssuesWeighHeavily(t *testing.T) {
	schema := cleanSchema()
	schema.Name = "photos_IncreaseWarmth_1.0.0_intent_title"
	schema.DescriptionSummary = "browser_SearchWebsiteIntent_1.0.0_intent_parameter_website_description"

	validation := ValidateActionSchema(schema)
	require.Len(t, validation.Issues, 2)
	// 100 - 20 issues + 10 (parameters, categories); description bonus is
	// withheld because the description is still a key.
	require.Equal(t, 90.0, validation.QualityScore)
}

func TestGenerateValidationReport(t *testing.T) {
	schemas := []*ActionSchema{cleanSchema()}

	broken := cleanSchema()
	broken.ID = "com.apple.photos.Broken"
	broken.Name = "photos_Broken_1.0.0_intent_title"
	broken.DescriptionSummary = "photos_Broken_1.0.0_intent_description"
	broken.Categories = nil
	broken.Parameters = nil
	schemas = append(schemas, broken)

	rep := GenerateValidationReport(schemas)

	require.Equal(t, 2, rep.TotalSchemas)
	require.Equal(t, 1, rep.ValidSchemas)
	require.Equal(t, 1, rep.SchemasWithIssues)
	require.Equal(t, 2, rep.IssuesByType[IssueMissingLocalization])
	require.Equal(t, 1, rep.Quality.Excellent)
	require.Positive(t, rep.AverageQuality)
}

func TestGenerateValidationReport_Empty(t *testing.T) {
	rep := GenerateValidationReport(nil)
	require.Zero(t, rep.TotalSchemas)
	require.Zero(t, rep.AverageQuality)
}

func TestParseTypeIdentifier_ThirdParty(t *testing.T) {
	parsed := ParseTypeIdentifier("com.apple.shortcuts.com.agiletortoise.Drafts4.addto.DraftsAddMode")

	require.Equal(t, "com.apple.shortcuts", parsed.Namespace)
	require.True(t, parsed.ThirdParty)
	require.Equal(t, "com.agiletortoise.Drafts4", parsed.ThirdPartyBundle)
	require.Equal(t, "addto", parsed.Category)
	require.Equal(t, "DraftsAddMode", parsed.TypeName)
	require.True(t, parsed.Enum)
	require.False(t, parsed.Entity)
}

func TestParseTypeIdentifier_FirstParty(t *testing.T) {
	parsed := ParseTypeIdentifier("com.apple.Music.LibraryItemEntity")

	require.Equal(t, "com.apple", parsed.Namespace)
	require.False(t, parsed.ThirdParty)
	require.Equal(t, "com.apple.Music", parsed.BundleID)
	require.Equal(t, "LibraryItemEntity", parsed.TypeName)
	require.True(t, parsed.Entity)
}

func TestParseTypeIdentifier_Simple(t *testing.T) {
	parsed := ParseTypeIdentifier("public.folder")
	require.Equal(t, "public.folder", parsed.TypeName)
	require.Empty(t, parsed.Namespace)

	empty := ParseTypeIdentifier("")
	require.Empty(t, empty.TypeName)
}

func TestIsComplexTypeIdentifier(t *testing.T) {
	require.True(t, IsComplexTypeIdentifier("com.apple.shortcuts.com.agiletortoise.Drafts4.addto.DraftsAddMode"))
	require.True(t, IsComplexTypeIdentifier("com.apple.home.accessory.CameraMode"))
	require.False(t, IsComplexTypeIdentifier("com.apple.Music"))
	require.False(t, IsComplexTypeIdentifier("public.folder"))
	require.False(t, IsComplexTypeIdentifier(""))
}

func TestClassifyVisibility(t *testing.T) {
	public := ClassifyVisibility(0)
	require.Equal(t, "public", public.Level)
	require.True(t, public.LikelyDocumented)

	hidden := ClassifyVisibility(3)
	require.Equal(t, "hidden", hidden.Level)
	require.False(t, hidden.LikelyDocumented)

	unknown := ClassifyVisibility(42)
	require.Equal(t, "unknown", unknown.Level)
	require.Contains(t, unknown.Description, "42")
}

package lockey

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCleanEmbeddedKeys_VersionKey(t *testing.T) {
	input := "Optionally, what to sort the browser_searchablewebsiteentity_1.0.0_entity_type_display_representation by."
	output := CleanEmbeddedKeys(input)

	require.NotContains(t, strings.ToLower(output), "browser_searchablewebsiteentity")
	require.Contains(t, strings.ToLower(output), "searchablewebsite")
	require.Contains(t, output, "Optionally")
	require.True(t, strings.HasSuffix(output, "by."))
}

func TestCleanEmbeddedKeys_ConstantKey(t *testing.T) {
	input := "Shown as CONTROL_CENTER_TOGGLE_RECORDING_INTENT_TITLE in the sheet"
	output := CleanEmbeddedKeys(input)

	require.NotContains(t, output, "CONTROL_CENTER_TOGGLE_RECORDING_INTENT_TITLE")
	require.Contains(t, output, "control center toggle recording")
	require.Contains(t, output, "Shown as")
	require.Contains(t, output, "in the sheet")
}

func TestCleanEmbeddedKeys_NoKeys(t *testing.T) {
	input := "Nothing to repair in this sentence."
	require.Equal(t, input, CleanEmbeddedKeys(input))
	require.Equal(t, "", CleanEmbeddedKeys(""))
}

func TestGenerateReadable_ParsedKey(t *testing.T) {
	result := GenerateReadable("photos_IncreaseWarmth_1.0.0_intent_title", "")

	require.Equal(t, "Increase Warmth", result.Value)
	require.True(t, result.Synthetic)
	require.Equal(t, SourceParsedKey, result.Source)
	require.Equal(t, "photos_IncreaseWarmth_1.0.0_intent_title", result.OriginalKey)
	require.GreaterOrEqual(t, result.Confidence, 0.9)
}

func TestGenerateReadable_Original(t *testing.T) {
	result := GenerateReadable("Increase Warmth", "")

	require.Equal(t, "Increase Warmth", result.Value)
	require.False(t, result.Synthetic)
	require.Equal(t, SourceOriginal, result.Source)
	require.Empty(t, result.OriginalKey)
	require.Equal(t, 1.0, result.Confidence)
}

func TestGenerateReadable_CleanedEmbedded(t *testing.T) {
	input := "Optionally, what to sort the browser_searchablewebsiteentity_1.0.0_entity_type_display_representation by."
	result := GenerateReadable(input, "")

	require.True(t, result.Synthetic)
	require.Equal(t, SourceCleanedEmbedded, result.Source)
	require.Equal(t, input, result.OriginalKey)
	require.InDelta(t, 0.85, result.Confidence, 1e-9)
	require.Contains(t, result.Value, "Optionally")
	require.True(t, strings.HasSuffix(result.Value, "by."))
	require.NotContains(t, strings.ToLower(result.Value), "browser_searchablewebsiteentity")
}

func TestGenerateReadable_Fallback(t *testing.T) {
	result := GenerateReadable("", "Untitled Action")
	require.Equal(t, "Untitled Action", result.Value)
	require.Equal(t, SourceFallback, result.Source)
	require.False(t, result.Synthetic)
}

func TestGenerateReadable_EntityKey(t *testing.T) {
	result := GenerateReadable("browser_SearchableWebsiteEntity_1.0.0_entity_type_display_representation", "")
	require.True(t, result.Synthetic)
	require.Contains(t, result.Value, "Searchable Website")
}

func TestGenerateReadable_ConstantKey(t *testing.T) {
	result := GenerateReadable("CONTROL_CENTER_TOGGLE_RECORDING_INTENT_TITLE", "")
	require.True(t, result.Synthetic)
	require.Contains(t, result.Value, "Control Center")
}

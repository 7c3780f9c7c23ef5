package salvage

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/salvagekit/salvage/lockey"
	"github.com/salvagekit/salvage/wire"
)

func TestDecodeBlob(t *testing.T) {
	text := "Increase Warmth"
	blob := wire.AppendUvarint(nil, 1<<3|uint64(wire.TypeDelimited))
	blob = wire.AppendUvarint(blob, uint64(len(text)))
	blob = append(blob, text...)

	rep := DecodeBlob(blob)
	require.Len(t, rep.Strings, 1)
	require.Equal(t, "Increase Warmth", rep.Strings[0].Clean)

	empty := DecodeBlob(nil)
	require.Empty(t, empty.Strings)
}

func TestSanitize(t *testing.T) {
	cleaned, ok := Sanitize(`(com.apple.Home29`)
	require.True(t, ok)
	require.Equal(t, "com.apple.Home", cleaned)

	_, ok = Sanitize("bplist00")
	require.False(t, ok)
}

func TestGenerateReadableName(t *testing.T) {
	name := GenerateReadableName("photos_IncreaseWarmth_1.0.0_intent_title", "")
	require.True(t, name.Synthetic)
	require.Equal(t, "Increase Warmth", name.Value)
	require.Equal(t, lockey.SourceParsedKey, name.Source)

	plain := GenerateReadableName("Increase Warmth", "")
	require.False(t, plain.Synthetic)
	require.Equal(t, "Increase Warmth", plain.Value)
}

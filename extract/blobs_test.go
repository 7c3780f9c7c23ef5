package extract

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/salvagekit/salvage/report"
)

func TestStore_ActionBlobs(t *testing.T) {
	store := openFixture(t)

	blobs, err := store.ActionBlobs("com.apple.mobilenotes.CreateNote")
	require.NoError(t, err)
	require.NotNil(t, blobs)
	require.Equal(t, "Create Note", blobs.Name)
	require.NotEmpty(t, blobs.Requirements)
	require.Empty(t, blobs.OutputTypeInstance)

	analysis := report.AnalyzeRequirements(blobs.Requirements)
	require.Equal(t, []uint64{14}, analysis.LikelyOSVersions)

	missing, err := store.ActionBlobs("com.apple.nonexistent.Action")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestStore_DistinctParameterBlobs(t *testing.T) {
	store := openFixture(t)

	blobs, err := store.DistinctParameterBlobs(0)
	require.NoError(t, err)
	require.Len(t, blobs, 1)
	require.Equal(t, "body", blobs[0].Key)
	require.Equal(t, "Body", blobs[0].Name)
	require.EqualValues(t, 1, blobs[0].UsageCount)

	analysis := report.AnalyzeTypeInstance(blobs[0].TypeInstance)
	require.Contains(t, analysis.UTITypes, "public.folder")
}

func TestStore_DistinctRequirementBlobs(t *testing.T) {
	store := openFixture(t)

	blobs, err := store.DistinctRequirementBlobs(0)
	require.NoError(t, err)
	require.Len(t, blobs, 1)
	require.EqualValues(t, 1, blobs[0].UsageCount)

	limited, err := store.DistinctRequirementBlobs(5)
	require.NoError(t, err)
	require.Len(t, limited, 1)
}

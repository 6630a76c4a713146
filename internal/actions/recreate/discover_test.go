package recreate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiscoverMerges(t *testing.T) {
	t.Run("returns merges oldest first with mainline parent dropped", func(t *testing.T) {
		g := newFakeRunner().
			withMerge("m1", "feature-integration", "featA").
			withMerge("m2", "feature-integration", "featB")

		records, err := discoverMerges(context.Background(), g, "master", "other")
		require.NoError(t, err)
		require.Len(t, records, 2)
		require.Equal(t, "m1", records[0].SHA)
		require.Equal(t, []string{"featA"}, records[0].Branches)
		require.Equal(t, "m2", records[1].SHA)
		require.Equal(t, []string{"featB"}, records[1].Branches)
	})

	t.Run("drops names equal to base", func(t *testing.T) {
		g := newFakeRunner().
			withMerge("m1", "source", "master").
			withMerge("m2", "source", "featA")

		records, err := discoverMerges(context.Background(), g, "master", "source-branch")
		require.NoError(t, err)
		require.Len(t, records, 1)
		require.Equal(t, []string{"featA"}, records[0].Branches)
	})

	t.Run("drops names containing the source name", func(t *testing.T) {
		g := newFakeRunner().
			withMerge("m1", "mainline", "feature-integration~3").
			withMerge("m2", "mainline", "featA")

		records, err := discoverMerges(context.Background(), g, "master", "feature-integration")
		require.NoError(t, err)
		require.Len(t, records, 1)
		require.Equal(t, []string{"featA"}, records[0].Branches)
	})

	t.Run("octopus merges keep every non-mainline parent in order", func(t *testing.T) {
		g := newFakeRunner().
			withMerge("m1", "mainline", "featA", "featB")

		records, err := discoverMerges(context.Background(), g, "master", "source")
		require.NoError(t, err)
		require.Len(t, records, 1)
		require.Equal(t, []string{"featA", "featB"}, records[0].Branches)
	})

	t.Run("no merges yields no records", func(t *testing.T) {
		g := newFakeRunner()

		records, err := discoverMerges(context.Background(), g, "master", "source")
		require.NoError(t, err)
		require.Empty(t, records)
	})
}

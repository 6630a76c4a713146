package recreate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	bpferrors "github.com/2ndline/git-bpf/internal/errors"
)

func TestBackupManager(t *testing.T) {
	t.Run("backs up under prefixed name", func(t *testing.T) {
		g := newFakeRunner().withBranch("feature")
		m := NewBackupManager(g, "BACKUP", "feature")

		require.NoError(t, m.BackUp(context.Background()))
		require.False(t, g.branches["feature"])
		require.True(t, g.branches["BACKUP-feature"])
	})

	t.Run("stale backup is fatal before any rename", func(t *testing.T) {
		g := newFakeRunner().withBranch("feature", "BACKUP-feature")
		m := NewBackupManager(g, "BACKUP", "feature")

		err := m.BackUp(context.Background())
		require.ErrorIs(t, err, bpferrors.ErrBranchExists)
		require.True(t, g.branches["feature"], "source must be untouched")
		require.Empty(t, g.renames)
	})

	t.Run("restore renames backup to the original name", func(t *testing.T) {
		g := newFakeRunner().withBranch("feature")
		m := NewBackupManager(g, "BACKUP", "feature")
		require.NoError(t, m.BackUp(context.Background()))

		require.NoError(t, m.Restore(context.Background()))
		require.True(t, g.branches["feature"])
		require.False(t, g.branches["BACKUP-feature"])
	})

	t.Run("consume deletes the backup when replacing in place", func(t *testing.T) {
		g := newFakeRunner().withBranch("feature")
		m := NewBackupManager(g, "BACKUP", "feature")
		require.NoError(t, m.BackUp(context.Background()))

		require.NoError(t, m.Consume(context.Background(), "feature"))
		require.False(t, g.branches["BACKUP-feature"])
		require.Equal(t, []string{"BACKUP-feature"}, g.deletions)
	})

	t.Run("consume renames back when target is a new branch", func(t *testing.T) {
		g := newFakeRunner().withBranch("feature")
		m := NewBackupManager(g, "BACKUP", "feature")
		require.NoError(t, m.BackUp(context.Background()))

		require.NoError(t, m.Consume(context.Background(), "feature-v2"))
		require.True(t, g.branches["feature"], "old history stays under the original name")
		require.False(t, g.branches["BACKUP-feature"])
		require.Empty(t, g.deletions)
	})
}

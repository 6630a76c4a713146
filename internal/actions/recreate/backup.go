package recreate

import (
	"context"
	"fmt"

	bpferrors "github.com/2ndline/git-bpf/internal/errors"
	"github.com/2ndline/git-bpf/internal/git"
)

// BackupManager moves the source branch out of the way before reconstruction
// and is the single rollback point while the new base is being created.
// Lifecycle: BackUp, then either Restore (base validation failed) or Consume
// (the full replay succeeded).
type BackupManager struct {
	git    git.Runner
	prefix string
	source string
}

// NewBackupManager creates a manager for the given source branch. The prefix
// is injected rather than read from a global so test-isolated runs can vary
// it.
func NewBackupManager(g git.Runner, prefix, source string) *BackupManager {
	return &BackupManager{git: g, prefix: prefix, source: source}
}

// BackupName returns the name the source branch is parked under.
func (m *BackupManager) BackupName() string {
	return fmt.Sprintf("%s-%s", m.prefix, m.source)
}

// BackUp renames the source branch to the backup name. A pre-existing branch
// under the backup name is fatal: it is the remnant of an earlier run and the
// operator must remove it before anything is touched.
func (m *BackupManager) BackUp(ctx context.Context) error {
	backupName := m.BackupName()

	exists, err := m.git.BranchExists(ctx, backupName)
	if err != nil {
		return err
	}
	if exists {
		return bpferrors.NewBranchExistsError(backupName,
			fmt.Sprintf("a stale backup from a previous run; inspect it and delete it with 'git branch -D %s' before retrying", backupName))
	}

	if err := m.git.RenameBranch(ctx, m.source, backupName); err != nil {
		return fmt.Errorf("failed to back up %s: %w", m.source, err)
	}
	return nil
}

// Restore renames the backup back to the original source name. This is the
// only automatic rollback path and is valid only before the target branch has
// been created.
func (m *BackupManager) Restore(ctx context.Context) error {
	if err := m.git.RenameBranch(ctx, m.BackupName(), m.source); err != nil {
		return fmt.Errorf("failed to restore %s from backup: %w", m.source, err)
	}
	return nil
}

// Consume finishes the backup lifecycle after a fully successful replay. When
// the target replaced the source in place the backup is deleted; when the
// target is a distinct branch the backup is renamed back so the
// pre-recreation history stays inspectable under the original name.
func (m *BackupManager) Consume(ctx context.Context, target string) error {
	if target == m.source {
		if err := m.git.DeleteBranch(ctx, m.BackupName(), true); err != nil {
			return fmt.Errorf("failed to delete backup branch: %w", err)
		}
		return nil
	}
	return m.Restore(ctx)
}

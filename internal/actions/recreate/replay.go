package recreate

import (
	"context"
	"fmt"

	bpferrors "github.com/2ndline/git-bpf/internal/errors"
	"github.com/2ndline/git-bpf/internal/git"
	"github.com/2ndline/git-bpf/internal/runtime"
	"github.com/2ndline/git-bpf/internal/tui"
)

// replayOutcome is the tri-state result of replaying one plan entry.
type replayOutcome int

const (
	mergedClean replayOutcome = iota
	resolvedByCache
	unresolvedConflict
)

// replay merges each planned branch into the target branch in order. Merges
// are strictly sequential: every merge must observe the tree the previous one
// produced. An unresolved conflict halts the whole run; the working tree is
// left as-is and the returned error carries the recovery command.
func replay(rt *runtime.Context, plan []string, backupName string) error {
	ctx := rt.Context
	for i, branch := range plan {
		rt.Splog.Info("Merging %s [%d/%d]...", tui.ColorBranchName(branch), i+1, len(plan))

		outcome, err := replayOne(ctx, rt.Git, branch)
		if err != nil {
			return fmt.Errorf("merging %s failed; the original history is preserved at %s: %w",
				branch, backupName, err)
		}

		switch outcome {
		case mergedClean:
			// next entry
		case resolvedByCache:
			rt.Splog.Info("Conflicts in %s resolved from the recorded resolution cache", tui.ColorBranchName(branch))
		case unresolvedConflict:
			return bpferrors.NewUnresolvedConflictError(branch, RecoveryCommand(backupName))
		}
	}
	return nil
}

// replayOne performs a single no-ff merge and classifies the result. A
// conflicted merge where rerere reports nothing outstanding has already been
// staged from the cache and only needs committing.
func replayOne(ctx context.Context, g git.Runner, branch string) (replayOutcome, error) {
	status, err := g.Merge(ctx, branch)
	if err != nil {
		return unresolvedConflict, err
	}
	if status == git.MergeClean {
		return mergedClean, nil
	}

	outstanding, err := g.RerereStatus(ctx)
	if err != nil {
		return unresolvedConflict, err
	}
	if len(outstanding) > 0 {
		return unresolvedConflict, nil
	}

	if err := g.CommitNoEdit(ctx); err != nil {
		return unresolvedConflict, err
	}
	return resolvedByCache, nil
}

// RecoveryCommand is the exact command an operator must run to abandon a
// halted recreation and restore the original branch from its backup.
func RecoveryCommand(backupName string) string {
	return fmt.Sprintf("git reset --hard %s && git branch -D %s", backupName, backupName)
}

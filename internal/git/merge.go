package git

import (
	"context"
	"fmt"

	bpferrors "github.com/2ndline/git-bpf/internal/errors"
)

// Merge performs a no-fast-forward, no-edit merge of branchName into the
// current branch. A conflicted merge is a normal result, not an error: the
// conflicting state is left in the working tree for the resolution cache to
// act on.
func Merge(ctx context.Context, branchName string) (MergeStatus, error) {
	_, err := RunGitCommandWithContext(ctx, "merge", "--no-ff", "--no-edit", branchName)
	if err == nil {
		return MergeClean, nil
	}

	var cmdErr *bpferrors.GitCommandError
	if asGitCommandError(err, &cmdErr) && isConflictOutput(cmdErr.Stdout+cmdErr.Stderr) {
		return MergeConflicted, nil
	}
	return MergeConflicted, fmt.Errorf("failed to merge %s: %w", branchName, err)
}

// CommitNoEdit commits all tracked changes reusing the prepared merge message.
// Used after the resolution cache has staged a recorded resolution.
func CommitNoEdit(ctx context.Context) error {
	_, err := RunGitCommandWithContext(ctx, "commit", "-a", "--no-edit")
	if err != nil {
		return fmt.Errorf("failed to commit staged resolution: %w", err)
	}
	return nil
}

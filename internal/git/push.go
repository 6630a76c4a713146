package git

import (
	"context"
	"fmt"
	"strings"

	bpferrors "github.com/2ndline/git-bpf/internal/errors"
)

// PushBranch pushes a branch to the remote, optionally forcing. A forced push
// is what publishing a recreated branch requires: its history diverges from
// the remote's by construction.
func PushBranch(ctx context.Context, branchName, remote string, force bool) error {
	args := []string{"push", remote}
	if force {
		args = append(args, "--force")
	}
	args = append(args, branchName)

	_, err := RunGitCommandWithContext(ctx, args...)
	if err != nil {
		var cmdErr *bpferrors.GitCommandError
		if asGitCommandError(err, &cmdErr) && strings.Contains(cmdErr.Stderr, "stale info") {
			return fmt.Errorf("push of %s rejected due to external changes on the remote branch: %w", branchName, err)
		}
		return fmt.Errorf("failed to push branch %s to %s: %w", branchName, remote, err)
	}
	return nil
}

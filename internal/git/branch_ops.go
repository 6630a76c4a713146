package git

import (
	"context"
	"fmt"
)

// CreateAndCheckoutBranch creates a new branch from fromRef and checks it out
func CreateAndCheckoutBranch(ctx context.Context, branchName, fromRef string) error {
	args := []string{"checkout", "-b", branchName}
	if fromRef != "" {
		args = append(args, fromRef)
	}
	_, err := RunGitCommandWithContext(ctx, args...)
	if err != nil {
		return fmt.Errorf("failed to create and checkout branch %s: %w", branchName, err)
	}
	return nil
}

// DeleteBranch deletes a branch. With force set, unmerged branches are
// deleted as well.
func DeleteBranch(ctx context.Context, branchName string, force bool) error {
	flag := "-d"
	if force {
		flag = "-D"
	}
	_, err := RunGitCommandWithContext(ctx, "branch", flag, branchName)
	if err != nil {
		return fmt.Errorf("failed to delete branch %s: %w", branchName, err)
	}
	return nil
}

// RenameBranch renames a branch
func RenameBranch(ctx context.Context, oldName, newName string) error {
	_, err := RunGitCommandWithContext(ctx, "branch", "-m", oldName, newName)
	if err != nil {
		return fmt.Errorf("failed to rename branch %s to %s: %w", oldName, newName, err)
	}
	return nil
}

package git

import (
	"context"
	"fmt"
	"strings"
)

// ListMergeCommits returns every merge commit reachable in the given range
// expression (for example "master...feature"), oldest first, each with its
// parent SHAs in mainline-first order.
func ListMergeCommits(ctx context.Context, rangeExpr string) ([]MergeCommit, error) {
	lines, err := RunGitCommandLinesWithContext(ctx,
		"log", "--merges", "--reverse", "--format=%h %p", rangeExpr)
	if err != nil {
		return nil, fmt.Errorf("failed to list merge commits for %s: %w", rangeExpr, err)
	}

	merges := make([]MergeCommit, 0, len(lines))
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			// A merge commit always has at least two parents; anything
			// shorter is noise from an empty line.
			continue
		}
		merges = append(merges, MergeCommit{
			SHA:     fields[0],
			Parents: fields[1:],
		})
	}
	return merges, nil
}

// NameRev resolves a commit SHA to a symbolic name using the ref namespace,
// the same resolution `git name-rev --name-only` performs.
func NameRev(ctx context.Context, sha string) (string, error) {
	name, err := RunGitCommandWithContext(ctx, "name-rev", "--name-only", sha)
	if err != nil {
		return "", fmt.Errorf("failed to resolve name for %s: %w", sha, err)
	}
	return name, nil
}

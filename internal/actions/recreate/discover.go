// Package recreate rebuilds a long-lived branch by replaying the feature
// merges recorded in its history onto a fresh base, reusing rerere-recorded
// conflict resolutions where they exist.
package recreate

import (
	"context"
	"fmt"
	"strings"

	"github.com/2ndline/git-bpf/internal/git"
)

// MergeRecord is a read-only view over one merge commit: the branch names its
// non-mainline parents resolve to, in parent order.
type MergeRecord struct {
	SHA      string
	Branches []string
}

// discoverMerges walks every merge commit on the base...source path, oldest
// first, and resolves each non-mainline parent to a symbolic branch name.
// Names equal to base, or containing the source name (a branch re-merged into
// source under a related name), are dropped here.
func discoverMerges(ctx context.Context, g git.Runner, base, source string) ([]MergeRecord, error) {
	merges, err := g.ListMergeCommits(ctx, fmt.Sprintf("%s...%s", base, source))
	if err != nil {
		return nil, fmt.Errorf("failed to discover merges between %s and %s: %w", base, source, err)
	}

	records := make([]MergeRecord, 0, len(merges))
	for _, merge := range merges {
		if len(merge.Parents) < 2 {
			continue
		}

		record := MergeRecord{SHA: merge.SHA}
		// The first parent is the mainline the merge landed on; only the
		// remaining parents are replayable branches.
		for _, parent := range merge.Parents[1:] {
			name, err := g.NameRev(ctx, parent)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve parent %s of merge %s: %w", parent, merge.SHA, err)
			}
			if isSelfReference(name, base, source) {
				continue
			}
			record.Branches = append(record.Branches, name)
		}

		if len(record.Branches) > 0 {
			records = append(records, record)
		}
	}
	return records, nil
}

// isSelfReference reports whether a resolved name points back at the branches
// being recreated. The substring test against source is a heuristic against
// cyclic self-merges, not a correctness guarantee.
func isSelfReference(name, base, source string) bool {
	return name == base || strings.Contains(name, source)
}

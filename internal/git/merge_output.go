package git

import (
	"errors"
	"strings"

	bpferrors "github.com/2ndline/git-bpf/internal/errors"
)

// conflictMarkers are the phrases git prints when a merge stops on conflicts.
// Recorded-resolution replays still print "CONFLICT" before rerere stages the
// resolution, so both states funnel through MergeConflicted.
var conflictMarkers = []string{
	"CONFLICT",
	"Automatic merge failed",
	"fix conflicts and then commit the result",
}

func isConflictOutput(output string) bool {
	for _, marker := range conflictMarkers {
		if strings.Contains(output, marker) {
			return true
		}
	}
	return false
}

func asGitCommandError(err error, target **bpferrors.GitCommandError) bool {
	return errors.As(err, target)
}

// Package cli wires the cobra command tree. Commands stay thin: flags are
// parsed into an Options struct and handed to the matching action.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "git-bpf",
		Short: "git-bpf recreates long-lived branches by replaying their recorded feature merges",
		Long: `git-bpf supports a branch-per-feature workflow: a long-lived integration
branch is periodically thrown away and rebuilt from a fresh base by replaying,
in order, the feature branches that were merged into it. Conflict resolutions
recorded by git rerere are reused during the replay, so conflicts resolved
once never need resolving again.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newRecreateBranchCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newSyncRerereCmd())

	return rootCmd
}

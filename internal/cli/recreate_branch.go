package cli

import (
	"github.com/spf13/cobra"

	"github.com/2ndline/git-bpf/internal/actions/recreate"
	"github.com/2ndline/git-bpf/internal/runtime"
)

// newRecreateBranchCmd creates the recreate-branch command
func newRecreateBranchCmd() *cobra.Command {
	var (
		ancestor string
		branch   string
		remote   string
		exclude  []string
	)

	cmd := &cobra.Command{
		Use:   "recreate-branch <source>",
		Short: "Recreate a branch from a fresh base by replaying its feature merges",
		Long: `Recreate a branch from a fresh base by replaying its feature merges.

The source branch is renamed to a backup, a new branch is created from the
base on the chosen remote, and every feature branch recorded as a merge in
the source's history is merged again in the original order. Conflicts with a
rerere-recorded resolution are committed automatically; any other conflict
halts the run with instructions for restoring the original branch from its
backup.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flag and argument errors should show usage; action errors should not.
			cmd.SilenceUsage = true

			ctx, err := runtime.GetContext(cmd.Context())
			if err != nil {
				return err
			}
			defer ctx.Splog.Close()

			return recreate.Action(ctx, recreate.Options{
				Source:  args[0],
				Base:    ancestor,
				Target:  branch,
				Remote:  remote,
				Exclude: exclude,
			})
		},
	}

	cmd.Flags().StringVarP(&ancestor, "ancestor", "a", "master", "Base branch the recreated branch should descend from.")
	cmd.Flags().StringVarP(&branch, "branch", "b", "", "Name for the recreated branch, if different from the source.")
	cmd.Flags().StringVarP(&remote, "remote", "r", "origin", "Remote to read the base from and push the result to.")
	cmd.Flags().StringArrayVarP(&exclude, "exclude", "x", nil, "Branch name to omit from the replay (repeatable).")

	return cmd
}

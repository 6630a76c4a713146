package cli

import (
	"github.com/spf13/cobra"

	"github.com/2ndline/git-bpf/internal/actions/setup"
	"github.com/2ndline/git-bpf/internal/runtime"
)

// newInitCmd creates the init command
func newInitCmd() *cobra.Command {
	var rerereURL string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Enable rerere and optionally attach a shared resolution cache",
		Long: `Enable rerere recording for the repository and, when a shared resolution
repository is given (via --rerere-url or the bpf.rerere-url config key),
clone it into the rerere cache so recorded resolutions are shared across
clones. Safe to re-run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Flag and argument errors should show usage; action errors should not.
			cmd.SilenceUsage = true

			ctx, err := runtime.GetContext(cmd.Context())
			if err != nil {
				return err
			}
			defer ctx.Splog.Close()

			return setup.Action(ctx, setup.Options{
				RerereURL: rerereURL,
			})
		},
	}

	cmd.Flags().StringVar(&rerereURL, "rerere-url", "", "URL of the shared resolution repository.")

	return cmd
}

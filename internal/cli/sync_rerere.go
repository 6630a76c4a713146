package cli

import (
	"github.com/spf13/cobra"

	"github.com/2ndline/git-bpf/internal/actions/setup"
	"github.com/2ndline/git-bpf/internal/runtime"
)

// newSyncRerereCmd creates the sync-rerere command
func newSyncRerereCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync-rerere",
		Short: "Exchange recorded conflict resolutions with the shared cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Flag and argument errors should show usage; action errors should not.
			cmd.SilenceUsage = true

			ctx, err := runtime.GetContext(cmd.Context())
			if err != nil {
				return err
			}
			defer ctx.Splog.Close()

			return setup.SyncAction(ctx)
		},
	}
}

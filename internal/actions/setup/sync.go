package setup

import (
	"github.com/2ndline/git-bpf/internal/git"
	"github.com/2ndline/git-bpf/internal/runtime"
)

// SyncAction exchanges recorded resolutions with the shared resolution
// repository: pull first, then publish anything recorded locally since the
// last sync. A repository without a shared cache clone is a clean no-op.
func SyncAction(rt *runtime.Context) error {
	ctx := rt.Context
	splog := rt.Splog

	shared, err := git.IsSharedRerereCache(ctx)
	if err != nil {
		return err
	}
	if !shared {
		splog.Info("The rerere cache is not a shared clone; run 'git-bpf init' with a shared repository first.")
		return nil
	}

	published, err := git.SyncRerereCache(ctx)
	if err != nil {
		return err
	}
	if published == 0 {
		splog.Info("Resolution cache is up to date.")
		return nil
	}
	splog.Info("Published %d new resolutions to the shared cache.", published)
	return nil
}

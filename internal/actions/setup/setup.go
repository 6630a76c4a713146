// Package setup prepares a repository for cache-assisted branch recreation:
// it enables rerere recording and optionally wires the rerere cache to a
// shared resolution repository so resolutions recorded by one clone are
// reusable by every other.
package setup

import (
	"github.com/2ndline/git-bpf/internal/git"
	"github.com/2ndline/git-bpf/internal/runtime"
)

// ConfigRerereURL is the git config key holding the shared resolution
// repository URL.
const ConfigRerereURL = "bpf.rerere-url"

// Options contains options for initializing a repository
type Options struct {
	// RerereURL is the shared resolution repository to clone into the
	// rerere cache. When empty, the value of the bpf.rerere-url config key
	// is used; when that is also empty, only local rerere recording is
	// enabled.
	RerereURL string
}

// Action enables rerere and, when a share URL is known, clones the shared
// resolution cache. Re-running is harmless: config writes are idempotent and
// an existing shared cache clone is left alone.
func Action(rt *runtime.Context, opts Options) error {
	ctx := rt.Context
	g := rt.Git
	splog := rt.Splog

	if err := g.ConfigSet(ctx, "rerere.enabled", "true"); err != nil {
		return err
	}
	if err := g.ConfigSet(ctx, "rerere.autoupdate", "true"); err != nil {
		return err
	}
	splog.Info("rerere recording enabled (rerere.enabled, rerere.autoupdate)")

	url := opts.RerereURL
	if url == "" {
		configured, err := g.ConfigGet(ctx, ConfigRerereURL)
		if err != nil {
			return err
		}
		url = configured
	}

	if url == "" {
		splog.Info("No shared resolution repository configured; resolutions will be recorded locally only.")
		splog.Info("Set one with: git config %s <url>", ConfigRerereURL)
		return nil
	}

	if err := g.ConfigSet(ctx, ConfigRerereURL, url); err != nil {
		return err
	}
	if err := git.CloneRerereCache(ctx, url); err != nil {
		return err
	}
	splog.Info("Shared resolution cache ready; keep it fresh with 'git-bpf sync-rerere'.")
	return nil
}

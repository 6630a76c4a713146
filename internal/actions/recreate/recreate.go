package recreate

import (
	"errors"
	"fmt"

	bpferrors "github.com/2ndline/git-bpf/internal/errors"
	"github.com/2ndline/git-bpf/internal/runtime"
	"github.com/2ndline/git-bpf/internal/tui"
)

// DefaultBackupPrefix is the prefix a source branch is parked under while it
// is being recreated.
const DefaultBackupPrefix = "BRANCH-PER-FEATURE-PREFIX"

// Options contains options for recreating a branch
type Options struct {
	// Source is the existing branch being recreated.
	Source string

	// Base is the branch the recreated branch should descend from.
	// Defaults to master.
	Base string

	// Target is the name of the rebuilt branch. Defaults to Source,
	// replacing it in place.
	Target string

	// Remote is where the base is read from and the result is pushed to.
	// Defaults to origin.
	Remote string

	// Exclude lists branch names to omit from the replay, remote-agnostic.
	Exclude []string

	// BackupPrefix overrides the backup naming prefix. Defaults to
	// DefaultBackupPrefix.
	BackupPrefix string
}

func (o *Options) applyDefaults() {
	if o.Base == "" {
		o.Base = "master"
	}
	if o.Remote == "" {
		o.Remote = "origin"
	}
	if o.Target == "" {
		o.Target = o.Source
	}
	if o.BackupPrefix == "" {
		o.BackupPrefix = DefaultBackupPrefix
	}
}

// Action recreates a branch by replaying its recorded feature merges onto a
// fresh base. The run assumes exclusive ownership of the repository: no
// concurrent writers.
func Action(rt *runtime.Context, opts Options) error {
	opts.applyDefaults()
	ctx := rt.Context
	g := rt.Git
	splog := rt.Splog

	// Preconditions. Nothing is mutated until they all pass and the plan is
	// confirmed.
	if _, err := g.CurrentBranch(ctx); err != nil {
		return fmt.Errorf("cannot recreate a branch from a detached HEAD: %w", err)
	}

	exists, err := g.BranchExists(ctx, opts.Source)
	if err != nil {
		return err
	}
	if !exists {
		return bpferrors.NewBranchNotFoundError(opts.Source)
	}

	if opts.Target != opts.Source {
		targetExists, err := g.BranchExists(ctx, opts.Target)
		if err != nil {
			return err
		}
		if targetExists {
			return bpferrors.NewBranchExistsError(opts.Target,
				"delete it or pick a different name with -b")
		}
	}

	if enabled, err := g.RerereEnabled(ctx); err == nil && !enabled {
		splog.Warn("rerere is disabled; recorded conflict resolutions will not be reused (run 'git-bpf init')")
	}

	records, err := discoverMerges(ctx, g, opts.Base, opts.Source)
	if err != nil {
		return err
	}
	plan := buildPlan(records, opts.Exclude)
	splog.Debug("discovered %d feature merges, %d left after exclusions", len(records), len(plan))

	if len(plan) == 0 {
		splog.Info("No feature merges found between %s and %s; %s will be recreated as a copy of %s/%s.",
			opts.Base, opts.Source, tui.ColorBranchName(opts.Target), opts.Remote, opts.Base)
	} else {
		splog.Info("Recreating %s from %s/%s by replaying %d merges:",
			tui.ColorBranchName(opts.Source), opts.Remote, opts.Base, len(plan))
		for i, branch := range plan {
			splog.Info("  %2d. %s", i+1, tui.ColorBranchName(branch))
		}
		splog.Newline()
	}

	proceed, err := rt.Confirm(fmt.Sprintf("Proceed with recreating %s?", opts.Source), false)
	if err != nil {
		return err
	}
	if !proceed {
		splog.Info("Nothing has been changed.")
		return bpferrors.ErrAborted
	}

	backup := NewBackupManager(g, opts.BackupPrefix, opts.Source)
	if err := backup.BackUp(ctx); err != nil {
		return err
	}

	// The base must resolve on the chosen remote. This is the only automatic
	// rollback: the source branch gets its original name back and nothing
	// else has happened yet. A failed lookup rolls back the same way a
	// missing base does.
	baseExists, err := g.RemoteBranchExists(ctx, opts.Remote, opts.Base)
	if err != nil {
		if restoreErr := backup.Restore(ctx); restoreErr != nil {
			return fmt.Errorf("failed to look up %s/%s and restoring %s failed (its history is at %s): %w",
				opts.Remote, opts.Base, opts.Source, backup.BackupName(), restoreErr)
		}
		return fmt.Errorf("failed to look up %s/%s; %s was restored untouched: %w",
			opts.Remote, opts.Base, opts.Source, err)
	}
	if !baseExists {
		if restoreErr := backup.Restore(ctx); restoreErr != nil {
			return fmt.Errorf("base %s/%s does not exist and restoring %s failed (its history is at %s): %w",
				opts.Remote, opts.Base, opts.Source, backup.BackupName(), restoreErr)
		}
		return fmt.Errorf("base %s/%s does not exist; %s was restored untouched", opts.Remote, opts.Base, opts.Source)
	}

	if err := g.CreateAndCheckoutBranch(ctx, opts.Target, fmt.Sprintf("%s/%s", opts.Remote, opts.Base)); err != nil {
		return fmt.Errorf("failed to create %s from %s/%s; the original history is preserved at %s: %w",
			opts.Target, opts.Remote, opts.Base, backup.BackupName(), err)
	}

	if err := replay(rt, plan, backup.BackupName()); err != nil {
		var conflictErr *bpferrors.UnresolvedConflictError
		if errors.As(err, &conflictErr) {
			splog.Error("Merging %s produced conflicts with no recorded resolution.", tui.ColorBranchName(conflictErr.BranchName))
			splog.Info("Resolve them by hand and continue merging the remaining branches, or abandon the recreation with:")
			splog.Info("  %s", tui.ColorCommand(conflictErr.RecoveryCommand))
		}
		return err
	}

	if err := backup.Consume(ctx, opts.Target); err != nil {
		return err
	}
	splog.Info("Branch %s recreated from %s/%s.", tui.ColorBranchName(opts.Target), opts.Remote, opts.Base)

	push, err := rt.Confirm(fmt.Sprintf("Force-push %s to %s?", opts.Target, opts.Remote), false)
	if err != nil {
		return err
	}
	if !push {
		splog.Info("Not pushing. Publish later with: git push --force %s %s", opts.Remote, opts.Target)
		return nil
	}

	if err := g.PushBranch(ctx, opts.Target, opts.Remote, true); err != nil {
		return err
	}
	splog.Info("Pushed %s to %s.", tui.ColorBranchName(opts.Target), opts.Remote)
	return nil
}

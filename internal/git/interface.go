package git

import (
	"context"
)

// MergeCommit is a merge commit together with its parent SHAs, mainline first.
type MergeCommit struct {
	SHA     string
	Parents []string
}

// MergeStatus is the outcome reported by the backend merge operation.
// Conflicts are a normal result value, not an error.
type MergeStatus int

const (
	// MergeClean means the merge completed without conflicts
	MergeClean MergeStatus = iota

	// MergeConflicted means the merge stopped with conflicts in the working tree
	MergeConflicted
)

// Runner defines the interface for git operations used by the recreate
// orchestration. This allows the orchestration to be tested against a fake
// in-memory commit graph instead of a live repository.
type Runner interface {
	// Repository and Config
	InitDefaultRepo() error
	ConfigGet(ctx context.Context, key string) (string, error)
	ConfigSet(ctx context.Context, key, value string) error

	// Branch Management
	CurrentBranch(ctx context.Context) (string, error)
	BranchExists(ctx context.Context, name string) (bool, error)
	RemoteBranchExists(ctx context.Context, remote, name string) (bool, error)
	RenameBranch(ctx context.Context, oldName, newName string) error
	DeleteBranch(ctx context.Context, name string, force bool) error
	CreateAndCheckoutBranch(ctx context.Context, name, fromRef string) error

	// Commit Graph
	ListMergeCommits(ctx context.Context, rangeExpr string) ([]MergeCommit, error)
	NameRev(ctx context.Context, sha string) (string, error)

	// Merge and Resolution Cache
	Merge(ctx context.Context, branchName string) (MergeStatus, error)
	CommitNoEdit(ctx context.Context) error
	RerereStatus(ctx context.Context) ([]string, error)
	RerereEnabled(ctx context.Context) (bool, error)

	// Remote
	PushBranch(ctx context.Context, branchName, remote string, force bool) error
}

// NewRealRunner returns a standard implementation of Runner that calls
// the package-level git functions.
func NewRealRunner() Runner {
	return &realRunner{}
}

// realRunner implements Runner by calling the actual git package functions
type realRunner struct{}

func (r *realRunner) InitDefaultRepo() error {
	return InitDefaultRepo()
}

func (r *realRunner) ConfigGet(ctx context.Context, key string) (string, error) {
	return ConfigGet(ctx, key)
}

func (r *realRunner) ConfigSet(ctx context.Context, key, value string) error {
	return ConfigSet(ctx, key, value)
}

func (r *realRunner) CurrentBranch(ctx context.Context) (string, error) {
	return GetCurrentBranch()
}

func (r *realRunner) BranchExists(ctx context.Context, name string) (bool, error) {
	return BranchExists(name)
}

func (r *realRunner) RemoteBranchExists(ctx context.Context, remote, name string) (bool, error) {
	return RemoteBranchExists(remote, name)
}

func (r *realRunner) RenameBranch(ctx context.Context, oldName, newName string) error {
	return RenameBranch(ctx, oldName, newName)
}

func (r *realRunner) DeleteBranch(ctx context.Context, name string, force bool) error {
	return DeleteBranch(ctx, name, force)
}

func (r *realRunner) CreateAndCheckoutBranch(ctx context.Context, name, fromRef string) error {
	return CreateAndCheckoutBranch(ctx, name, fromRef)
}

func (r *realRunner) ListMergeCommits(ctx context.Context, rangeExpr string) ([]MergeCommit, error) {
	return ListMergeCommits(ctx, rangeExpr)
}

func (r *realRunner) NameRev(ctx context.Context, sha string) (string, error) {
	return NameRev(ctx, sha)
}

func (r *realRunner) Merge(ctx context.Context, branchName string) (MergeStatus, error) {
	return Merge(ctx, branchName)
}

func (r *realRunner) CommitNoEdit(ctx context.Context) error {
	return CommitNoEdit(ctx)
}

func (r *realRunner) RerereStatus(ctx context.Context) ([]string, error) {
	return RerereStatus(ctx)
}

func (r *realRunner) RerereEnabled(ctx context.Context) (bool, error) {
	return RerereEnabled(ctx)
}

func (r *realRunner) PushBranch(ctx context.Context, branchName, remote string, force bool) error {
	return PushBranch(ctx, branchName, remote, force)
}

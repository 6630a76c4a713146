package recreate

import (
	"context"
	"fmt"

	"github.com/2ndline/git-bpf/internal/git"
)

// fakeRunner is an in-memory git.Runner backed by a scripted commit graph.
// It records every mutating call so tests can assert on exactly what a run
// touched.
type fakeRunner struct {
	branches       map[string]bool // local branches
	remoteBranches map[string]bool // "origin/master"
	current        string

	mergeCommits []git.MergeCommit
	names        map[string]string // sha -> symbolic name

	// conflicts maps a branch name to the rerere status after merging it
	// conflicts. A present key with an empty slice means "conflicted, fully
	// resolved from the cache".
	conflicts map[string][]string

	rerereOn bool
	config   map[string]string

	// injected failures
	remoteLookupErr error
	createErr       error
	mergeErrs       map[string]error

	// recorded mutations
	merges     []string
	commits    int
	renames    [][2]string
	deletions  []string
	creations  []string
	pushes     []string
	lastMerged string
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		branches:       map[string]bool{},
		remoteBranches: map[string]bool{},
		names:          map[string]string{},
		conflicts:      map[string][]string{},
		config:         map[string]string{},
		mergeErrs:      map[string]error{},
		rerereOn:       true,
	}
}

func (f *fakeRunner) withBranch(names ...string) *fakeRunner {
	for _, name := range names {
		f.branches[name] = true
	}
	return f
}

func (f *fakeRunner) withRemoteBranch(remote, name string) *fakeRunner {
	f.remoteBranches[remote+"/"+name] = true
	return f
}

func (f *fakeRunner) withMerge(sha string, parentNames ...string) *fakeRunner {
	parents := make([]string, len(parentNames))
	for i, name := range parentNames {
		sha := fmt.Sprintf("%s-p%d", sha, i)
		f.names[sha] = name
		parents[i] = sha
	}
	f.mergeCommits = append(f.mergeCommits, git.MergeCommit{SHA: sha, Parents: parents})
	return f
}

func (f *fakeRunner) InitDefaultRepo() error { return nil }

func (f *fakeRunner) ConfigGet(_ context.Context, key string) (string, error) {
	return f.config[key], nil
}

func (f *fakeRunner) ConfigSet(_ context.Context, key, value string) error {
	f.config[key] = value
	return nil
}

func (f *fakeRunner) CurrentBranch(_ context.Context) (string, error) {
	return f.current, nil
}

func (f *fakeRunner) BranchExists(_ context.Context, name string) (bool, error) {
	return f.branches[name], nil
}

func (f *fakeRunner) RemoteBranchExists(_ context.Context, remote, name string) (bool, error) {
	if f.remoteLookupErr != nil {
		return false, f.remoteLookupErr
	}
	return f.remoteBranches[remote+"/"+name], nil
}

func (f *fakeRunner) RenameBranch(_ context.Context, oldName, newName string) error {
	if !f.branches[oldName] {
		return fmt.Errorf("no branch %s", oldName)
	}
	delete(f.branches, oldName)
	f.branches[newName] = true
	f.renames = append(f.renames, [2]string{oldName, newName})
	if f.current == oldName {
		f.current = newName
	}
	return nil
}

func (f *fakeRunner) DeleteBranch(_ context.Context, name string, _ bool) error {
	if !f.branches[name] {
		return fmt.Errorf("no branch %s", name)
	}
	delete(f.branches, name)
	f.deletions = append(f.deletions, name)
	return nil
}

func (f *fakeRunner) CreateAndCheckoutBranch(_ context.Context, name, fromRef string) error {
	if f.createErr != nil {
		return f.createErr
	}
	if f.branches[name] {
		return fmt.Errorf("branch %s already exists", name)
	}
	f.branches[name] = true
	f.current = name
	f.creations = append(f.creations, name+" from "+fromRef)
	return nil
}

func (f *fakeRunner) ListMergeCommits(_ context.Context, _ string) ([]git.MergeCommit, error) {
	return f.mergeCommits, nil
}

func (f *fakeRunner) NameRev(_ context.Context, sha string) (string, error) {
	name, ok := f.names[sha]
	if !ok {
		return "", fmt.Errorf("unknown sha %s", sha)
	}
	return name, nil
}

func (f *fakeRunner) Merge(_ context.Context, branchName string) (git.MergeStatus, error) {
	f.merges = append(f.merges, branchName)
	f.lastMerged = branchName
	if err := f.mergeErrs[branchName]; err != nil {
		return git.MergeConflicted, err
	}
	if _, conflicted := f.conflicts[branchName]; conflicted {
		return git.MergeConflicted, nil
	}
	return git.MergeClean, nil
}

func (f *fakeRunner) CommitNoEdit(_ context.Context) error {
	f.commits++
	return nil
}

func (f *fakeRunner) RerereStatus(_ context.Context) ([]string, error) {
	return f.conflicts[f.lastMerged], nil
}

func (f *fakeRunner) RerereEnabled(_ context.Context) (bool, error) {
	return f.rerereOn, nil
}

func (f *fakeRunner) PushBranch(_ context.Context, branchName, remote string, force bool) error {
	f.pushes = append(f.pushes, fmt.Sprintf("%s/%s force=%v", remote, branchName, force))
	return nil
}

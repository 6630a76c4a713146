// Package testhelpers provides a real-git repository fixture for integration
// tests: local repositories with scripted merge histories and a bare "remote"
// to read bases from.
package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// GitRepo represents a Git repository for testing purposes.
type GitRepo struct {
	t   *testing.T
	Dir string
}

// NewGitRepo initializes a new repository with a "master" default branch and
// an initial commit. Tests are skipped when git is not installed.
func NewGitRepo(t *testing.T) *GitRepo {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	dir := t.TempDir()
	repo := &GitRepo{t: t, Dir: dir}

	cmd := exec.Command("git", "-c", "init.defaultBranch=master", "init", dir, "-b", "master")
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		t.Fatalf("failed to init repo: %v", err)
	}

	repo.Git("config", "user.name", "Test User")
	repo.Git("config", "user.email", "test@example.com")
	repo.CommitFile("README.md", "initial\n", "initial commit")
	return repo
}

// Git runs a git command in the repository and fails the test on error.
func (r *GitRepo) Git(args ...string) string {
	r.t.Helper()
	output, err := r.TryGit(args...)
	if err != nil {
		r.t.Fatalf("git %s failed: %v\n%s", strings.Join(args, " "), err, output)
	}
	return output
}

// TryGit runs a git command in the repository and returns its combined output.
func (r *GitRepo) TryGit(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	output, err := cmd.CombinedOutput()
	return strings.TrimSpace(string(output)), err
}

// CommitFile writes a file and commits it.
func (r *GitRepo) CommitFile(name, content, message string) {
	r.t.Helper()
	path := filepath.Join(r.Dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		r.t.Fatalf("failed to create dir for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		r.t.Fatalf("failed to write %s: %v", name, err)
	}
	r.Git("add", name)
	r.Git("commit", "-m", message)
}

// CreateBranch creates a branch at the current HEAD without checking it out.
func (r *GitRepo) CreateBranch(name string) {
	r.t.Helper()
	r.Git("branch", name)
}

// Checkout checks out a branch.
func (r *GitRepo) Checkout(name string) {
	r.t.Helper()
	r.Git("checkout", name)
}

// MergeNoFF merges a branch into the current branch with a merge commit.
func (r *GitRepo) MergeNoFF(name string) {
	r.t.Helper()
	r.Git("merge", "--no-ff", "--no-edit", name)
}

// AddBareRemote creates a bare clone next to the repository, registers it
// under the given remote name and pushes all branches to it.
func (r *GitRepo) AddBareRemote(remote string) string {
	r.t.Helper()
	bareDir := r.t.TempDir()

	cmd := exec.Command("git", "clone", "--bare", r.Dir, bareDir)
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if output, err := cmd.CombinedOutput(); err != nil {
		r.t.Fatalf("failed to create bare remote: %v\n%s", err, output)
	}

	r.Git("remote", "add", remote, bareDir)
	r.Git("fetch", remote)
	return bareDir
}

// CurrentBranch returns the checked out branch name.
func (r *GitRepo) CurrentBranch() string {
	r.t.Helper()
	return r.Git("rev-parse", "--abbrev-ref", "HEAD")
}

// BranchExists reports whether a local branch exists.
func (r *GitRepo) BranchExists(name string) bool {
	_, err := r.TryGit("show-ref", "--verify", fmt.Sprintf("refs/heads/%s", name))
	return err == nil
}

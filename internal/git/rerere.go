package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// RerereStatus returns the conflict identifiers rerere still considers
// unresolved. An empty list after a conflicted merge means every conflict was
// satisfied by a recorded resolution and the merge can be committed as-is.
func RerereStatus(ctx context.Context) ([]string, error) {
	lines, err := RunGitCommandLinesWithContext(ctx, "rerere", "status")
	if err != nil {
		return nil, fmt.Errorf("failed to get rerere status: %w", err)
	}
	return lines, nil
}

// RerereEnabled reports whether rerere recording is turned on for the
// repository.
func RerereEnabled(ctx context.Context) (bool, error) {
	value, err := ConfigGet(ctx, "rerere.enabled")
	if err != nil {
		return false, err
	}
	return value == "true" || value == "1", nil
}

// RerereCacheDir returns the path of the rerere cache inside the git
// directory.
func RerereCacheDir(ctx context.Context) (string, error) {
	gitDir, err := GitDir(ctx)
	if err != nil {
		return "", err
	}
	return filepath.Join(gitDir, "rr-cache"), nil
}

// CloneRerereCache clones the shared resolution repository into the rerere
// cache directory so recorded resolutions are shared across clones. It is an
// error if a non-shared cache directory already exists; the operator must
// move it aside first.
func CloneRerereCache(ctx context.Context, url string) error {
	cacheDir, err := RerereCacheDir(ctx)
	if err != nil {
		return err
	}

	if info, statErr := os.Stat(cacheDir); statErr == nil && info.IsDir() {
		if _, gitErr := os.Stat(filepath.Join(cacheDir, ".git")); gitErr == nil {
			// Already a shared clone, nothing to do.
			return nil
		}
		return fmt.Errorf("rerere cache at %s exists but is not a shared clone; move it aside and re-run init", cacheDir)
	}

	_, err = RunGitCommandWithContext(ctx, "clone", url, cacheDir)
	if err != nil {
		return fmt.Errorf("failed to clone shared rerere cache from %s: %w", url, err)
	}
	return nil
}

// IsSharedRerereCache reports whether the rerere cache directory is a clone
// of a shared resolution repository.
func IsSharedRerereCache(ctx context.Context) (bool, error) {
	cacheDir, err := RerereCacheDir(ctx)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(filepath.Join(cacheDir, ".git")); err != nil {
		return false, nil
	}
	return true, nil
}

// SyncRerereCache pulls the shared resolution repository, commits any new
// local resolutions and pushes them back. Returns the number of new
// resolutions published.
func SyncRerereCache(ctx context.Context) (int, error) {
	cacheDir, err := RerereCacheDir(ctx)
	if err != nil {
		return 0, err
	}

	runner := NewCommandRunner(cacheDir)

	if _, err := runner.Run(ctx, "pull", "--ff-only"); err != nil {
		return 0, fmt.Errorf("failed to pull shared rerere cache: %w", err)
	}

	if _, err := runner.Run(ctx, "add", "-A"); err != nil {
		return 0, fmt.Errorf("failed to stage rerere cache changes: %w", err)
	}

	staged, err := runner.Run(ctx, "diff", "--cached", "--name-only")
	if err != nil {
		return 0, fmt.Errorf("failed to inspect rerere cache changes: %w", err)
	}
	if staged == "" {
		return 0, nil
	}

	count := len(strings.Split(staged, "\n"))
	message := fmt.Sprintf("Sharing %d rerere resolutions (%s)", count, time.Now().UTC().Format("20060102150405"))
	if _, err := runner.Run(ctx, "commit", "-m", message); err != nil {
		return 0, fmt.Errorf("failed to commit rerere cache changes: %w", err)
	}

	if _, err := runner.Run(ctx, "push"); err != nil {
		return 0, fmt.Errorf("failed to push shared rerere cache: %w", err)
	}
	return count, nil
}

package git

import (
	"context"
	"fmt"
)

// ConfigGet returns the value of a git config key, or "" when unset.
func ConfigGet(ctx context.Context, key string) (string, error) {
	value, err := RunGitCommandWithContext(ctx, "config", "--get", key)
	if err != nil {
		// git config --get exits non-zero for unset keys
		return "", nil
	}
	return value, nil
}

// ConfigSet sets a git config key in the local repository scope.
func ConfigSet(ctx context.Context, key, value string) error {
	_, err := RunGitCommandWithContext(ctx, "config", key, value)
	if err != nil {
		return fmt.Errorf("failed to set config %s: %w", key, err)
	}
	return nil
}

// GitDir returns the absolute path of the repository's git directory.
func GitDir(ctx context.Context) (string, error) {
	dir, err := RunGitCommandWithContext(ctx, "rev-parse", "--absolute-git-dir")
	if err != nil {
		return "", fmt.Errorf("failed to locate git directory: %w", err)
	}
	return dir, nil
}

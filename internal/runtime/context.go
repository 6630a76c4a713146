// Package runtime provides a context type that holds the git runner, logger
// and confirmation prompt for use throughout the application. This avoids
// passing multiple parameters.
package runtime

import (
	"context"
	"fmt"

	"github.com/2ndline/git-bpf/internal/git"
	"github.com/2ndline/git-bpf/internal/tui"
)

// ConfirmFunc asks a yes/no question and returns the answer.
type ConfirmFunc func(prompt string, defaultValue bool) (bool, error)

// Context provides access to the git backend and output for commands
type Context struct {
	Context context.Context
	Git     git.Runner
	Splog   *tui.Splog
	Confirm ConfirmFunc
}

// NewContext creates a new context with the given runner
func NewContext(ctx context.Context, runner git.Runner) *Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Context{
		Context: ctx,
		Git:     runner,
		Splog:   tui.NewSplog(),
		Confirm: tui.Confirm,
	}
}

// GetContext returns a context wired to the real repository in the current
// directory.
func GetContext(ctx context.Context) (*Context, error) {
	runner := git.NewRealRunner()
	if err := runner.InitDefaultRepo(); err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}
	return NewContext(ctx, runner), nil
}

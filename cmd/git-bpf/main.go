package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/2ndline/git-bpf/internal/cli"
	bpferrors "github.com/2ndline/git-bpf/internal/errors"
	"github.com/2ndline/git-bpf/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCmd(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, bpferrors.ErrAborted) {
			fmt.Fprintln(os.Stderr, "Aborted.")
		} else {
			fmt.Fprintln(os.Stderr, tui.ColorRed(fmt.Sprintf("Error: %v", err)))
		}
		os.Exit(1)
	}
}

package tui

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
)

// ErrInteractiveDisabled is returned when interactive prompts are disabled via GIT_BPF_NO_INTERACTIVE
var ErrInteractiveDisabled = fmt.Errorf("interactive prompts are disabled (GIT_BPF_NO_INTERACTIVE is set)")

// checkInteractiveAllowed returns an error if interactive mode is unavailable
func checkInteractiveAllowed() error {
	if os.Getenv("GIT_BPF_NO_INTERACTIVE") != "" {
		return ErrInteractiveDisabled
	}
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return fmt.Errorf("cannot prompt: stdin is not a terminal")
	}
	return nil
}

// Confirm asks a yes/no question and returns the answer. When prompting is
// unavailable (no TTY, or disabled for tests) the question is declined rather
// than answered, so every gate fails safe.
func Confirm(prompt string, defaultValue bool) (bool, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return false, nil
	}

	answer := defaultValue
	question := &survey.Confirm{
		Message: prompt,
		Default: defaultValue,
	}
	if err := survey.AskOne(question, &answer); err != nil {
		return false, fmt.Errorf("prompt failed: %w", err)
	}
	return answer, nil
}

// Package errors provides sentinel errors and custom error types for the git-bpf application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrBranchNotFound indicates that a branch does not exist
	ErrBranchNotFound = errors.New("branch not found")

	// ErrBranchExists indicates that a branch already exists where none may
	ErrBranchExists = errors.New("branch already exists")

	// ErrUnresolvedConflict indicates that a merge conflict had no cached resolution
	ErrUnresolvedConflict = errors.New("unresolved merge conflict")

	// ErrAborted indicates that the user declined a confirmation gate
	ErrAborted = errors.New("aborted by user")
)

// BranchNotFoundError represents an error when a branch is not found
type BranchNotFoundError struct {
	BranchName string
}

func (e *BranchNotFoundError) Error() string {
	return fmt.Sprintf("branch %s does not exist", e.BranchName)
}

// Is returns true if the target error is ErrBranchNotFound
func (e *BranchNotFoundError) Is(target error) bool {
	return target == ErrBranchNotFound
}

// NewBranchNotFoundError creates a new BranchNotFoundError
func NewBranchNotFoundError(branchName string) *BranchNotFoundError {
	return &BranchNotFoundError{BranchName: branchName}
}

// BranchExistsError represents an error when a branch unexpectedly already exists
type BranchExistsError struct {
	BranchName  string
	Remediation string
}

func (e *BranchExistsError) Error() string {
	if e.Remediation != "" {
		return fmt.Sprintf("branch %s already exists: %s", e.BranchName, e.Remediation)
	}
	return fmt.Sprintf("branch %s already exists", e.BranchName)
}

// Is returns true if the target error is ErrBranchExists
func (e *BranchExistsError) Is(target error) bool {
	return target == ErrBranchExists
}

// NewBranchExistsError creates a new BranchExistsError
func NewBranchExistsError(branchName, remediation string) *BranchExistsError {
	return &BranchExistsError{BranchName: branchName, Remediation: remediation}
}

// UnresolvedConflictError represents a merge conflict that the resolution cache
// could not satisfy. RecoveryCommand holds the exact shell command the operator
// must run to restore the original branch from its backup.
type UnresolvedConflictError struct {
	BranchName      string
	RecoveryCommand string
}

func (e *UnresolvedConflictError) Error() string {
	return fmt.Sprintf("merge of %s has conflicts with no recorded resolution", e.BranchName)
}

// Is returns true if the target error is ErrUnresolvedConflict
func (e *UnresolvedConflictError) Is(target error) bool {
	return target == ErrUnresolvedConflict
}

// NewUnresolvedConflictError creates a new UnresolvedConflictError
func NewUnresolvedConflictError(branchName, recoveryCommand string) *UnresolvedConflictError {
	return &UnresolvedConflictError{
		BranchName:      branchName,
		RecoveryCommand: recoveryCommand,
	}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}

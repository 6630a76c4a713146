package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrongArgumentCountShowsUsage(t *testing.T) {
	cmd := NewRootCmd("test", "none", "unknown")
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs([]string{"recreate-branch"})

	err := cmd.Execute()
	require.Error(t, err)
	require.Contains(t, out.String(), "Usage:")
	require.Contains(t, out.String(), "recreate-branch <source>")
}

func TestUnknownCommandFails(t *testing.T) {
	cmd := NewRootCmd("test", "none", "unknown")
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs([]string{"does-not-exist"})

	require.Error(t, cmd.Execute())
}

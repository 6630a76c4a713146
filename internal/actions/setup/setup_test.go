package setup

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/2ndline/git-bpf/internal/git"
	"github.com/2ndline/git-bpf/internal/runtime"
	"github.com/2ndline/git-bpf/internal/tui"
	"github.com/2ndline/git-bpf/testhelpers"
)

// configRunner is a git.Runner stub recording config writes. Only the
// methods the setup action touches are implemented.
type configRunner struct {
	git.Runner
	config map[string]string
}

func (c *configRunner) ConfigGet(_ context.Context, key string) (string, error) {
	return c.config[key], nil
}

func (c *configRunner) ConfigSet(_ context.Context, key, value string) error {
	c.config[key] = value
	return nil
}

func TestSetupWithoutSharedRepository(t *testing.T) {
	runner := &configRunner{config: map[string]string{}}
	out := &bytes.Buffer{}
	rt := &runtime.Context{
		Context: context.Background(),
		Git:     runner,
		Splog:   tui.NewSplogWithWriter(out),
	}

	err := Action(rt, Options{})
	require.NoError(t, err)

	require.Equal(t, "true", runner.config["rerere.enabled"])
	require.Equal(t, "true", runner.config["rerere.autoupdate"])
	require.Contains(t, out.String(), "recorded locally only")
}

func realSetupContext(t *testing.T, repo *testhelpers.GitRepo) *runtime.Context {
	t.Helper()
	git.SetWorkingDir(repo.Dir)
	git.ResetDefaultRepo()
	t.Cleanup(func() {
		git.SetWorkingDir("")
		git.ResetDefaultRepo()
	})

	runner := git.NewRealRunner()
	require.NoError(t, runner.InitDefaultRepo())
	return &runtime.Context{
		Context: context.Background(),
		Git:     runner,
		Splog:   tui.NewSplogWithWriter(&bytes.Buffer{}),
	}
}

func TestSetupClonesSharedCache(t *testing.T) {
	// A bare repository with one commit stands in for the shared resolution
	// repository.
	seed := testhelpers.NewGitRepo(t)
	sharedURL := seed.AddBareRemote("origin")

	repo := testhelpers.NewGitRepo(t)
	rt := realSetupContext(t, repo)

	err := Action(rt, Options{RerereURL: sharedURL})
	require.NoError(t, err)

	cacheDir := filepath.Join(repo.Dir, ".git", "rr-cache")
	require.DirExists(t, filepath.Join(cacheDir, ".git"))
	require.Equal(t, sharedURL, repo.Git("config", "--get", ConfigRerereURL))

	// Re-running leaves the existing clone alone.
	require.NoError(t, Action(rt, Options{RerereURL: sharedURL}))
}

func TestSyncRerere(t *testing.T) {
	seed := testhelpers.NewGitRepo(t)
	sharedURL := seed.AddBareRemote("origin")

	repo := testhelpers.NewGitRepo(t)
	rt := realSetupContext(t, repo)
	require.NoError(t, Action(rt, Options{RerereURL: sharedURL}))

	cacheDir := filepath.Join(repo.Dir, ".git", "rr-cache")
	for _, kv := range [][2]string{{"user.name", "Test User"}, {"user.email", "test@example.com"}} {
		require.NoError(t, exec.Command("git", "-C", cacheDir, "config", kv[0], kv[1]).Run())
	}

	// Nothing new recorded yet.
	require.NoError(t, SyncAction(rt))

	// A freshly recorded resolution gets published.
	resolutionDir := filepath.Join(repo.Dir, ".git", "rr-cache", "0000deadbeef")
	require.NoError(t, os.MkdirAll(resolutionDir, 0750))
	require.NoError(t, os.WriteFile(filepath.Join(resolutionDir, "preimage"), []byte("<<<\n"), 0600))

	require.NoError(t, SyncAction(rt))
}

func TestSyncRerereWithoutSharedCache(t *testing.T) {
	repo := testhelpers.NewGitRepo(t)
	rt := realSetupContext(t, repo)

	out := &bytes.Buffer{}
	rt.Splog = tui.NewSplogWithWriter(out)
	require.NoError(t, SyncAction(rt))
	require.Contains(t, out.String(), "not a shared clone")
}

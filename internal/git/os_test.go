package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

func TestOSGitClient_Init(t *testing.T) {
	requireGit(t)

	dir := t.TempDir()
	client := NewOSGitClient()

	isRepo, err := client.IsGitRepo(dir)
	require.NoError(t, err)
	require.False(t, isRepo, "temp dir unexpectedly inside a work tree")

	require.NoError(t, client.Init(dir))

	_, err = os.Stat(filepath.Join(dir, ".git"))
	require.NoError(t, err)

	isRepo, err = client.IsGitRepo(dir)
	require.NoError(t, err)
	require.True(t, isRepo)
}

func TestOSGitClient_InitMissingDirectory(t *testing.T) {
	requireGit(t)

	err := NewOSGitClient().Init(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestOSGitClient_WithContextCanceled(t *testing.T) {
	requireGit(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewOSGitClient().WithContext(ctx).Init(t.TempDir())
	require.Error(t, err)
}

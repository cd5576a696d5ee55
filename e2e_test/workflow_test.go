package e2e_test

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/elmen-dev/elmen/internal/cli"
	"github.com/stretchr/testify/require"
)

// fakeManager puts an executable named after the package manager first on
// PATH. It records its arguments to install.log in the directory it runs in.
func fakeManager(t *testing.T, name string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script package manager stub needs a POSIX shell")
	}

	bin := t.TempDir()
	script := "#!/bin/sh\necho \"$@\" > install.log\n"
	require.NoError(t, os.WriteFile(filepath.Join(bin, name), []byte(script), 0755))
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func setupWorkdir(t *testing.T, userAgent string) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("npm_config_user_agent", userAgent)
	for _, key := range []string{"ELMEN_BUILD", "ELMEN_PACKAGE_MANAGER", "ELMEN_TEST", "ELMEN_PRETTIER", "ELMEN_ESLINT", "ELMEN_GIT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func runElmen(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := cli.NewRootCommand(cli.NewOSDependencies())
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func TestFullWorkflow_Standalone(t *testing.T) {
	fakeManager(t, "npm")
	dir := setupWorkdir(t, "npm/10.5.0 node/v20.11.0 linux x64")

	args := []string{"--name", "my-lib", "--type", "standalone"}
	_, gitErr := exec.LookPath("git")
	if gitErr != nil {
		args = append(args, "--no-git")
	}

	out, err := runElmen(t, args...)
	require.NoError(t, err, out)

	root := filepath.Join(dir, "my-lib")
	for _, path := range []string{
		"tsconfig.json", "package.json", ".gitignore", "tsup.config.ts",
		".prettierignore", "vitest.config.ts", ".eslintrc.js", ".eslintignore",
		filepath.Join("src", "index.ts"),
	} {
		_, err := os.Stat(filepath.Join(root, path))
		require.NoError(t, err, path)
	}

	data, err := os.ReadFile(filepath.Join(root, "package.json"))
	require.NoError(t, err)

	var manifest map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &manifest))
	require.Equal(t, "my-lib", manifest["name"])
	require.Equal(t, "0.0.0", manifest["version"])
	require.Equal(t, "MIT", manifest["license"])
	require.NotContains(t, manifest, "workspaces")

	log, err := os.ReadFile(filepath.Join(root, "install.log"))
	require.NoError(t, err)
	require.Equal(t,
		"install -D @types/node tsup typescript prettier eslint eslint-config-unjs vitest @vitest/ui @vitest/coverage-v8",
		strings.TrimSpace(string(log)))

	if gitErr == nil {
		_, err := os.Stat(filepath.Join(root, ".git"))
		require.NoError(t, err)
	}

	require.Contains(t, out, "npm run build")
}

func TestFullWorkflow_IntegratedPnpm(t *testing.T) {
	fakeManager(t, "pnpm")
	dir := setupWorkdir(t, "pnpm/9.1.0 npm/? node/v20.11.0 linux x64")

	out, err := runElmen(t, "-n", "mono", "-t", "integrated", "-b", "unbuild", "--no-git", "--no-eslint")
	require.NoError(t, err, out)

	root := filepath.Join(dir, "mono")
	for _, sub := range []string{"apps", "packages"} {
		info, err := os.Stat(filepath.Join(root, sub))
		require.NoError(t, err)
		require.True(t, info.IsDir())
	}

	_, err = os.Stat(filepath.Join(root, "pnpm-workspace.yaml"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(root, ".git"))
	require.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(root, ".eslintrc.js"))
	require.True(t, os.IsNotExist(err))

	data, err := os.ReadFile(filepath.Join(root, "package.json"))
	require.NoError(t, err)
	require.NotContains(t, string(data), "workspaces")

	log, err := os.ReadFile(filepath.Join(root, "install.log"))
	require.NoError(t, err)
	require.Equal(t,
		"install -D @types/node unbuild typescript prettier vitest @vitest/ui @vitest/coverage-v8",
		strings.TrimSpace(string(log)))
}

func TestFullWorkflow_ExistingTargetIsRejected(t *testing.T) {
	fakeManager(t, "npm")
	dir := setupWorkdir(t, "npm/10.5.0 node/v20.11.0 linux x64")

	existing := filepath.Join(dir, "taken")
	require.NoError(t, os.Mkdir(existing, 0755))

	_, err := runElmen(t, "-n", "taken", "-t", "standalone")
	require.Error(t, err)
	require.Contains(t, err.Error(), "path already exists")

	entries, err := os.ReadDir(existing)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestFullWorkflow_InstallFailureLeavesFiles(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script package manager stub needs a POSIX shell")
	}
	bin := t.TempDir()
	script := "#!/bin/sh\necho 'ERR! network unreachable' >&2\nexit 1\n"
	require.NoError(t, os.WriteFile(filepath.Join(bin, "yarn"), []byte(script), 0755))
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))

	dir := setupWorkdir(t, "yarn/1.22.19 npm/? node/v20.11.0 linux x64")

	_, err := runElmen(t, "-n", "demo", "-t", "standalone", "--no-git")
	require.Error(t, err)
	require.Contains(t, err.Error(), "install failed")
	require.Contains(t, err.Error(), "ERR! network unreachable")

	_, err = os.Stat(filepath.Join(dir, "demo", "package.json"))
	require.NoError(t, err)
}

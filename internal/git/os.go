package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// OSGitClient implements GitClient using real git commands
type OSGitClient struct {
	ctx context.Context
}

// NewOSGitClient creates a new OSGitClient
func NewOSGitClient() *OSGitClient {
	return &OSGitClient{
		ctx: context.Background(),
	}
}

// WithContext returns a new client with the given context
func (g *OSGitClient) WithContext(ctx context.Context) GitClient {
	return &OSGitClient{
		ctx: ctx,
	}
}

// Init runs git init in dir. Output is suppressed; stderr is returned on failure.
func (g *OSGitClient) Init(dir string) error {
	cmd := exec.CommandContext(g.ctx, "git", "init")
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to initialize repository in %s: %w: %s", dir, err, strings.TrimSpace(stderr.String()))
	}

	return nil
}

// IsGitRepo checks if dir is inside a git work tree
func (g *OSGitClient) IsGitRepo(dir string) (bool, error) {
	if _, err := exec.LookPath("git"); err != nil {
		return false, fmt.Errorf("git not found: %w", err)
	}

	cmd := exec.CommandContext(g.ctx, "git", "rev-parse", "--is-inside-work-tree")
	cmd.Dir = dir

	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		// Not a git repo
		return false, nil
	}

	return strings.TrimSpace(out.String()) == "true", nil
}

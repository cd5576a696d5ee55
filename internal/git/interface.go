package git

import (
	"context"
)

// GitClient provides an abstraction over git operations for testability
type GitClient interface {
	// Init creates an empty repository in dir.
	Init(dir string) error

	// IsGitRepo reports whether dir is inside a work tree.
	IsGitRepo(dir string) (bool, error)

	// Context support for long-running commands
	WithContext(ctx context.Context) GitClient
}

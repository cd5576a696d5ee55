package pkgmanager

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// Runner executes an external command in a directory.
type Runner interface {
	Run(ctx context.Context, dir string, argv []string) error
}

// OSRunner runs commands with os/exec. Standard output is discarded; standard
// error is kept and attached to the returned error.
type OSRunner struct{}

// NewOSRunner creates a new OSRunner
func NewOSRunner() *OSRunner {
	return &OSRunner{}
}

func (r *OSRunner) Run(ctx context.Context, dir string, argv []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("no command specified")
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Stdout = io.Discard

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		errMsg := strings.TrimSpace(stderr.String())
		if errMsg != "" {
			return fmt.Errorf("%s failed: %w: %s", argv[0], err, errMsg)
		}
		return fmt.Errorf("%s failed: %w", argv[0], err)
	}

	return nil
}

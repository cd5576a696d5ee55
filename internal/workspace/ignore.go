package workspace

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	gitignore "github.com/denormal/go-gitignore"
	"github.com/elmen-dev/elmen/internal/filesystem"
)

// IgnoreMatch describes an enclosing .gitignore that matches a directory.
type IgnoreMatch struct {
	GitIgnorePath string
	Pattern       string
}

// IgnoredBy reports whether dir would be ignored by the nearest .gitignore at
// or above cwd. A nil match means the directory is not ignored or no
// .gitignore was found.
func IgnoredBy(fs filesystem.FileSystem, cwd, dir string) (*IgnoreMatch, error) {
	ignorePath, found := FindUp(fs, cwd, ".gitignore")
	if !found {
		return nil, nil
	}

	data, err := fs.ReadFile(ignorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ignorePath, err)
	}

	base := filepath.Dir(ignorePath)
	rel, err := filepath.Rel(base, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s relative to %s: %w", dir, base, err)
	}

	// Parse errors in someone else's .gitignore are not ours to report.
	ignore := gitignore.New(bytes.NewReader(data), base, func(gitignore.Error) bool { return true })

	// git never looks inside an excluded directory, so every ancestor counts.
	parts := strings.Split(filepath.ToSlash(rel), "/")
	for i := range parts {
		prefix := strings.Join(parts[:i+1], "/")
		if match := ignore.Relative(prefix, true); match != nil && match.Ignore() {
			return &IgnoreMatch{GitIgnorePath: ignorePath, Pattern: match.String()}, nil
		}
	}

	return nil, nil
}

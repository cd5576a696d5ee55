package workspace

import (
	"path/filepath"

	"github.com/elmen-dev/elmen/internal/filesystem"
)

// FindUp walks from startDir towards the filesystem root and returns the
// first existing candidate. Within one directory, candidates are tried in the
// given order.
func FindUp(fs filesystem.FileSystem, startDir string, candidates ...string) (string, bool) {
	dir := filepath.Clean(startDir)

	for {
		for _, name := range candidates {
			candidate := filepath.Join(dir, name)
			if fs.Exists(candidate) {
				return candidate, true
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

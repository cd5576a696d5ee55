package pkgmanager

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/elmen-dev/elmen/internal/filesystem"
	"github.com/elmen-dev/elmen/internal/workspace"
	"gopkg.in/yaml.v3"
)

// Detector resolves the package manager that is active for a directory.
type Detector interface {
	Detect(dir string) (Name, error)
}

// markers are checked per directory, nearest directory first. Install state
// in node_modules wins over lockfiles within the same directory.
var markers = []string{
	filepath.Join("node_modules", ".modules.yaml"),
	filepath.Join("node_modules", ".yarn-integrity"),
	filepath.Join("node_modules", ".package-lock.json"),
	"pnpm-lock.yaml",
	"yarn.lock",
	"package-lock.json",
}

// OSDetector detects the package manager from the invoking environment and
// the files around the working directory.
type OSDetector struct {
	fs     filesystem.FileSystem
	getenv func(string) string
}

// NewOSDetector creates a detector reading the process environment.
func NewOSDetector(fs filesystem.FileSystem) *OSDetector {
	return &OSDetector{fs: fs, getenv: os.Getenv}
}

// NewDetectorWithEnv creates a detector with a custom environment lookup.
func NewDetectorWithEnv(fs filesystem.FileSystem, getenv func(string) string) *OSDetector {
	return &OSDetector{fs: fs, getenv: getenv}
}

// Detect returns the package manager for dir. The user agent set by
// npm/yarn/pnpm when they launch a binary is preferred; otherwise the nearest
// install state or lockfile decides. Falls back to npm.
func (d *OSDetector) Detect(dir string) (Name, error) {
	if name, ok := fromUserAgent(d.getenv("npm_config_user_agent")); ok {
		return name, nil
	}

	path, found := workspace.FindUp(d.fs, dir, markers...)
	if !found {
		return NPM, nil
	}

	switch filepath.Base(path) {
	case ".modules.yaml":
		return d.fromModulesYAML(path)
	case ".yarn-integrity", "yarn.lock":
		return Yarn, nil
	case "pnpm-lock.yaml":
		return PNPM, nil
	default:
		return NPM, nil
	}
}

// fromUserAgent parses values like "pnpm/9.1.0 npm/? node/v20.11.0 linux x64".
func fromUserAgent(agent string) (Name, bool) {
	agent = strings.TrimSpace(agent)
	if agent == "" {
		return "", false
	}

	product, _, _ := strings.Cut(strings.Fields(agent)[0], "/")
	name, err := Parse(product)
	if err != nil {
		return "", false
	}
	return name, true
}

// fromModulesYAML reads the packageManager field pnpm records in
// node_modules/.modules.yaml, e.g. "pnpm@9.1.0".
func (d *OSDetector) fromModulesYAML(path string) (Name, error) {
	data, err := d.fs.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	var state struct {
		PackageManager string `yaml:"packageManager"`
	}
	if err := yaml.Unmarshal(data, &state); err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", path, err)
	}

	product, _, _ := strings.Cut(state.PackageManager, "@")
	if name, err := Parse(product); err == nil {
		return name, nil
	}
	return PNPM, nil
}

// StaticDetector always reports the same package manager.
type StaticDetector struct {
	Name Name
}

func (s StaticDetector) Detect(string) (Name, error) {
	return s.Name, nil
}

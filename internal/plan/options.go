// Package plan turns validated scaffolding options into a plan: the ordered
// files to create, the generated package manifest and the dev-dependency
// install command. Building a plan has no side effects.
package plan

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/elmen-dev/elmen/internal/filesystem"
)

// ProjectType is the shape of the scaffolded project.
type ProjectType string

const (
	// ProjectTypeIntegrated is a multi-package workspace with apps/ and packages/.
	ProjectTypeIntegrated ProjectType = "integrated"
	// ProjectTypeStandalone is a single package with a src/ entry point.
	ProjectTypeStandalone ProjectType = "standalone"
)

// BuildTool is the bundler configured for the project.
type BuildTool string

const (
	BuildToolTsup    BuildTool = "tsup"
	BuildToolUnbuild BuildTool = "unbuild"
)

// DefaultBuildTool is used when no build tool is requested.
const DefaultBuildTool = BuildToolTsup

var (
	ErrInvalidProjectName = errors.New("invalid project name")
	ErrInvalidProjectType = errors.New("invalid project type")
	ErrInvalidBuildTool   = errors.New("invalid build tool")
	ErrPathExists         = errors.New("path already exists")
)

// ProjectTypes lists the accepted project types.
func ProjectTypes() []ProjectType {
	return []ProjectType{ProjectTypeIntegrated, ProjectTypeStandalone}
}

// BuildTools lists the accepted build tools.
func BuildTools() []BuildTool {
	return []BuildTool{BuildToolTsup, BuildToolUnbuild}
}

// RawOptions are the parsed but unvalidated command-line options. The
// feature booleans are already resolved (true means the feature is wanted).
type RawOptions struct {
	Name     string
	Type     string
	Build    string
	Test     bool
	Prettier bool
	Eslint   bool
	Git      bool
}

// Options is a validated scaffolding request.
type Options struct {
	Name            string
	Type            ProjectType
	Build           BuildTool
	IncludeTest     bool
	IncludePrettier bool
	IncludeEslint   bool
	IncludeGit      bool
}

// Validate checks raw options and returns the normalized Options. The only
// filesystem access is an existence check for cwd/name.
func Validate(fs filesystem.FileSystem, cwd string, raw RawOptions) (Options, error) {
	name := strings.TrimSpace(raw.Name)
	if err := validateName(name); err != nil {
		return Options{}, err
	}

	projectType, err := parseProjectType(raw.Type)
	if err != nil {
		return Options{}, err
	}

	buildTool, err := parseBuildTool(raw.Build)
	if err != nil {
		return Options{}, err
	}

	target := filepath.Join(cwd, name)
	if fs.Exists(target) {
		return Options{}, fmt.Errorf("%w: %s", ErrPathExists, target)
	}

	return Options{
		Name:            name,
		Type:            projectType,
		Build:           buildTool,
		IncludeTest:     raw.Test,
		IncludePrettier: raw.Prettier,
		IncludeEslint:   raw.Eslint,
		IncludeGit:      raw.Git,
	}, nil
}

// validateName keeps the project directory exactly one level below cwd.
func validateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidProjectName)
	case name == "." || name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidProjectName, name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: %q must not contain path separators", ErrInvalidProjectName, name)
	}
	return nil
}

func parseProjectType(raw string) (ProjectType, error) {
	for _, t := range ProjectTypes() {
		if raw == string(t) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q (expected integrated or standalone)", ErrInvalidProjectType, raw)
}

func parseBuildTool(raw string) (BuildTool, error) {
	if raw == "" {
		return DefaultBuildTool, nil
	}
	for _, b := range BuildTools() {
		if raw == string(b) {
			return b, nil
		}
	}
	return "", fmt.Errorf("%w: %q (expected tsup or unbuild)", ErrInvalidBuildTool, raw)
}

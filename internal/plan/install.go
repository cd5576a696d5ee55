package plan

import (
	"strings"

	"github.com/elmen-dev/elmen/internal/pkgmanager"
)

// InstallDirective is the dev-dependency install command for a plan.
type InstallDirective struct {
	Command  string
	Packages []string
}

// Argv splits the command for execution without a shell. Package names never
// contain whitespace.
func (d InstallDirective) Argv() []string {
	return strings.Fields(d.Command)
}

func (d InstallDirective) String() string {
	return d.Command
}

// devDependencyGroups are concatenated in order; disabled groups contribute
// nothing, so the joined command has no doubled separators.
func devDependencies(opts Options) []string {
	groups := []struct {
		enabled  bool
		packages []string
	}{
		{true, []string{"@types/node", string(opts.Build), "typescript"}},
		{opts.IncludePrettier, []string{"prettier"}},
		{opts.IncludeEslint, []string{"eslint", "eslint-config-unjs"}},
		{opts.IncludeTest, []string{"vitest", "@vitest/ui", "@vitest/coverage-v8"}},
	}

	var packages []string
	for _, g := range groups {
		if g.enabled {
			packages = append(packages, g.packages...)
		}
	}
	return packages
}

func buildInstall(opts Options, pm pkgmanager.Name) InstallDirective {
	packages := devDependencies(opts)
	return InstallDirective{
		Command:  pm.InstallVerb() + " " + strings.Join(packages, " "),
		Packages: packages,
	}
}

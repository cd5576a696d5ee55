package plan

import (
	"github.com/elmen-dev/elmen/internal/pkgmanager"
	"github.com/elmen-dev/elmen/internal/templates"
)

// FileEntry is one item to create, relative to the project root. Empty
// content marks a directory.
type FileEntry struct {
	Path    string
	Content string
}

// IsDir reports whether the entry is a directory to create.
func (e FileEntry) IsDir() bool {
	return e.Content == ""
}

// Plan describes everything a scaffold run creates.
type Plan struct {
	Options        Options
	PackageManager pkgmanager.Name
	Files          []FileEntry
	Manifest       Manifest
	Install        InstallDirective
}

// Paths returns the entry paths in plan order.
func (p Plan) Paths() []string {
	paths := make([]string, len(p.Files))
	for i, f := range p.Files {
		paths[i] = f.Path
	}
	return paths
}

// File returns the entry at path.
func (p Plan) File(path string) (FileEntry, bool) {
	for _, f := range p.Files {
		if f.Path == path {
			return f, true
		}
	}
	return FileEntry{}, false
}

// buildContext is what the file rules are evaluated against.
type buildContext struct {
	opts     Options
	pm       pkgmanager.Name
	manifest Manifest
}

func (c buildContext) integrated() bool { return c.opts.Type == ProjectTypeIntegrated }

// fileRule emits its entries when applies returns true. Rules are evaluated
// in order and the order is the plan order.
type fileRule struct {
	applies func(c buildContext) bool
	entries func(c buildContext) []FileEntry
}

func always(buildContext) bool { return true }

func static(path, content string) func(buildContext) []FileEntry {
	return func(buildContext) []FileEntry {
		return []FileEntry{{Path: path, Content: content}}
	}
}

var fileRules = []fileRule{
	{always, static("tsconfig.json", templates.TSConfig)},
	{always, func(c buildContext) []FileEntry {
		return []FileEntry{{Path: "package.json", Content: c.manifest.Render()}}
	}},
	// Written even without git: it is static scaffolding.
	{always, static(".gitignore", templates.GitIgnore)},
	{
		func(c buildContext) bool { return c.opts.Build == BuildToolTsup },
		static("tsup.config.ts", templates.TsupConfig),
	},
	{
		func(c buildContext) bool { return c.opts.Build == BuildToolUnbuild },
		static("build.config.ts", templates.UnbuildConfig),
	},
	{
		func(c buildContext) bool { return c.opts.IncludePrettier },
		static(".prettierignore", templates.PrettierIgnore),
	},
	{
		func(c buildContext) bool { return c.opts.IncludeTest },
		static("vitest.config.ts", templates.VitestConfig),
	},
	{
		func(c buildContext) bool { return c.opts.IncludeEslint },
		func(buildContext) []FileEntry {
			return []FileEntry{
				{Path: ".eslintrc.js", Content: templates.EslintConfig},
				{Path: ".eslintignore", Content: templates.EslintIgnore},
			}
		},
	},
	{
		buildContext.integrated,
		func(buildContext) []FileEntry {
			return []FileEntry{{Path: "apps"}, {Path: "packages"}}
		},
	},
	{
		func(c buildContext) bool { return !c.integrated() },
		// src must precede src/index.ts.
		func(buildContext) []FileEntry {
			return []FileEntry{
				{Path: "src"},
				{Path: "src/index.ts", Content: templates.IndexTS},
			}
		},
	},
	{
		func(c buildContext) bool { return c.integrated() && c.pm == pkgmanager.PNPM },
		static("pnpm-workspace.yaml", templates.PnpmWorkspace),
	},
}

// Build assembles the plan for validated options and the detected package
// manager. It is deterministic and never fails.
func Build(opts Options, pm pkgmanager.Name) Plan {
	// pnpm declares workspaces in pnpm-workspace.yaml instead.
	usesWorkspaceField := opts.Type == ProjectTypeIntegrated && pm != pkgmanager.PNPM

	c := buildContext{
		opts:     opts,
		pm:       pm,
		manifest: buildManifest(opts, usesWorkspaceField),
	}

	var files []FileEntry
	for _, rule := range fileRules {
		if rule.applies(c) {
			files = append(files, rule.entries(c)...)
		}
	}

	return Plan{
		Options:        opts,
		PackageManager: pm,
		Files:          files,
		Manifest:       c.manifest,
		Install:        buildInstall(opts, pm),
	}
}

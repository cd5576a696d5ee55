package plan

import (
	"bytes"
	"encoding/json"
)

// Scripts are the package.json scripts. Field order is the rendered key order.
type Scripts struct {
	Build  string `json:"build"`
	Test   string `json:"test"`
	Format string `json:"format,omitempty"`
	Lint   string `json:"lint,omitempty"`
}

// Manifest is the generated package.json.
type Manifest struct {
	Name       string   `json:"name"`
	Version    string   `json:"version"`
	License    string   `json:"license"`
	Scripts    Scripts  `json:"scripts"`
	Workspaces []string `json:"workspaces,omitempty"`
}

const (
	initialVersion = "0.0.0"
	defaultLicense = "MIT"

	testScript   = "vitest"
	formatScript = `prettier --write "**/*.{ts,tsx,js,jsx,cjs,mjs}"`
	lintScript   = "eslint --cache --ext .ts,.js,.mjs,.cjs,.tsx,.jsx ."
)

var workspaceGlobs = []string{"apps/*", "packages/*"}

// Render serializes the manifest as two-space indented JSON with a trailing
// newline.
func (m Manifest) Render() string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	// Manifest only holds strings, encoding cannot fail.
	_ = enc.Encode(m)
	return buf.String()
}

func buildManifest(opts Options, usesWorkspaceField bool) Manifest {
	m := Manifest{
		Name:    opts.Name,
		Version: initialVersion,
		License: defaultLicense,
		Scripts: Scripts{
			Build: string(opts.Build),
			Test:  testScript,
		},
	}

	if opts.IncludePrettier {
		m.Scripts.Format = formatScript
	}
	if opts.IncludeEslint {
		m.Scripts.Lint = lintScript
	}
	if usesWorkspaceField {
		m.Workspaces = append([]string(nil), workspaceGlobs...)
	}

	return m
}

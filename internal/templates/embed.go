// Package templates provides the embedded bodies of the files written into a
// new project. The bodies are static; only package.json is generated.
package templates

import (
	_ "embed"
)

var (
	//go:embed files/tsconfig.json
	TSConfig string

	//go:embed files/gitignore
	GitIgnore string

	//go:embed files/prettierignore
	PrettierIgnore string

	//go:embed files/vitest.config.ts
	VitestConfig string

	//go:embed files/tsup.config.ts
	TsupConfig string

	//go:embed files/build.config.ts
	UnbuildConfig string

	//go:embed files/eslintrc.js
	EslintConfig string

	//go:embed files/eslintignore
	EslintIgnore string

	//go:embed files/pnpm-workspace.yaml
	PnpmWorkspace string

	//go:embed files/index.ts
	IndexTS string
)

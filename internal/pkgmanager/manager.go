// Package pkgmanager knows the Node package managers a project can be
// scaffolded for: how to detect the active one and how to run its installer.
package pkgmanager

import (
	"errors"
	"fmt"
	"strings"
)

// Name identifies a Node package manager.
type Name string

const (
	NPM  Name = "npm"
	Yarn Name = "yarn"
	PNPM Name = "pnpm"
)

// ErrUnknown is returned when a package manager name is not supported.
var ErrUnknown = errors.New("unknown package manager")

// All lists the supported package managers.
func All() []Name {
	return []Name{NPM, Yarn, PNPM}
}

// Parse converts a user supplied name into a Name.
func Parse(raw string) (Name, error) {
	switch Name(strings.ToLower(strings.TrimSpace(raw))) {
	case NPM:
		return NPM, nil
	case Yarn:
		return Yarn, nil
	case PNPM:
		return PNPM, nil
	}
	return "", fmt.Errorf("%w: %q (expected npm, yarn or pnpm)", ErrUnknown, raw)
}

func (n Name) String() string {
	return string(n)
}

// InstallVerb returns the command prefix that installs dev dependencies.
func (n Name) InstallVerb() string {
	switch n {
	case Yarn:
		return "yarn add -D"
	case PNPM:
		return "pnpm install -D"
	default:
		return "npm install -D"
	}
}

// RunScript returns the command that runs a package.json script.
func (n Name) RunScript(script string) string {
	switch n {
	case Yarn:
		return "yarn " + script
	case PNPM:
		return "pnpm " + script
	default:
		return "npm run " + script
	}
}

package cli

import (
	"github.com/spf13/pflag"
)

// Negatable feature flags. Each feature is switched off with --no-<feature>.
const (
	featureTest     = "test"
	featurePrettier = "prettier"
	featureEslint   = "eslint"
	featureGit      = "git"
)

var negatableFeatures = []struct {
	feature string
	usage   string
}{
	{featureTest, "Skip vitest setup"},
	{featurePrettier, "Skip prettier setup"},
	{featureEslint, "Skip eslint setup"},
	{featureGit, "Skip git init"},
}

func registerNegatable(flags *pflag.FlagSet) {
	for _, f := range negatableFeatures {
		flags.Bool("no-"+f.feature, false, f.usage)
	}
}

// ResolveNegatable returns whether feature is enabled. Without --no-<feature>
// the fallback applies; with it, the flag's value is inverted, so
// --no-test=false re-enables a feature a config file turned off.
func ResolveNegatable(flags *pflag.FlagSet, feature string, fallback bool) bool {
	name := "no-" + feature
	if !flags.Changed(name) {
		return fallback
	}

	disabled, err := flags.GetBool(name)
	if err != nil {
		return fallback
	}
	return !disabled
}

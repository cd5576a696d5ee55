package cli

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func newNegatableFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	registerNegatable(flags)
	require.NoError(t, flags.Parse(args))
	return flags
}

func TestResolveNegatable(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		fallback bool
		want     bool
	}{
		{name: "absent uses fallback true", fallback: true, want: true},
		{name: "absent uses fallback false", fallback: false, want: false},
		{name: "present disables", args: []string{"--no-test"}, fallback: true, want: false},
		{name: "explicit true disables", args: []string{"--no-test=true"}, fallback: true, want: false},
		{name: "explicit false enables", args: []string{"--no-test=false"}, fallback: false, want: true},
		{name: "other flag does not affect", args: []string{"--no-git"}, fallback: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := newNegatableFlags(t, tt.args...)
			require.Equal(t, tt.want, ResolveNegatable(flags, featureTest, tt.fallback))
		})
	}
}

func TestResolveNegatable_UnknownFeature(t *testing.T) {
	flags := newNegatableFlags(t)
	require.True(t, ResolveNegatable(flags, "missing", true))
	require.False(t, ResolveNegatable(flags, "missing", false))
}

func TestRegisterNegatable_AllFeatures(t *testing.T) {
	flags := newNegatableFlags(t, "--no-test", "--no-prettier", "--no-eslint", "--no-git")
	for _, f := range negatableFeatures {
		require.False(t, ResolveNegatable(flags, f.feature, true), f.feature)
	}
}

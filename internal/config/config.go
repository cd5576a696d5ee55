// Package config resolves user defaults for scaffolding from the environment
// (ELMEN_*) and an optional config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	envPrefix = "ELMEN"
	fileName  = "config"
	fileType  = "yaml"
)

// Keys understood in the config file and as ELMEN_<KEY> variables.
const (
	KeyBuild          = "build"
	KeyPackageManager = "package_manager"
	KeyTest           = "test"
	KeyPrettier       = "prettier"
	KeyEslint         = "eslint"
	KeyGit            = "git"
)

// Config holds the resolved defaults.
type Config struct {
	Build          string
	PackageManager string
	Test           bool
	Prettier       bool
	Eslint         bool
	Git            bool
}

// Dir returns the elmen config directory ($XDG_CONFIG_HOME/elmen or ~/.config/elmen).
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "elmen")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".elmen")
	}
	return filepath.Join(home, ".config", "elmen")
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// New returns a viper instance with defaults and environment binding. When
// path is non-empty it is used as the config file.
func New(path string) *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyBuild, "tsup")
	v.SetDefault(KeyPackageManager, "")
	v.SetDefault(KeyTest, true)
	v.SetDefault(KeyPrettier, true)
	v.SetDefault(KeyEslint, true)
	v.SetDefault(KeyGit, true)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType(fileType)
	}
	return v
}

// Load reads the config file at path, if any, and returns the resolved
// defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	v := New(path)

	if path != "" {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
				return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
			}
		}
	}

	return FromViper(v), nil
}

// FromViper extracts Config from an already populated viper instance.
func FromViper(v *viper.Viper) Config {
	return Config{
		Build:          v.GetString(KeyBuild),
		PackageManager: v.GetString(KeyPackageManager),
		Test:           v.GetBool(KeyTest),
		Prettier:       v.GetBool(KeyPrettier),
		Eslint:         v.GetBool(KeyEslint),
		Git:            v.GetBool(KeyGit),
	}
}

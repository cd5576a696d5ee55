package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/elmen-dev/elmen/internal/config"
	"github.com/elmen-dev/elmen/internal/filesystem"
	"github.com/elmen-dev/elmen/internal/git"
	"github.com/elmen-dev/elmen/internal/pkgmanager"
	"github.com/elmen-dev/elmen/internal/tui"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// Dependencies are the collaborators the command runs against.
type Dependencies struct {
	FS       filesystem.FileSystem
	Git      git.GitClient
	Runner   pkgmanager.Runner
	Detector pkgmanager.Detector
	Prompter tui.Prompter

	// Interactive reports whether prompts can be shown. Nil means never.
	Interactive func() bool

	// ConfigPath is the default for --config. Empty disables the config file.
	ConfigPath string
}

// NewRootCommand creates the root command
func NewRootCommand(deps Dependencies) *cobra.Command {
	create := newCreateCommand(deps)

	rootCmd := &cobra.Command{
		Use:   "elmen",
		Short: "Scaffold a TypeScript project",
		Long: `Scaffold a TypeScript project.

Creates an integrated workspace (apps/ and packages/) or a standalone package,
writes tsconfig, build and tooling config, installs dev dependencies with the
detected package manager and initializes a git repository.`,
		Example: `  elmen --name my-lib --type standalone
  elmen -n my-mono -t integrated -b unbuild --no-eslint
  elmen -n demo -t standalone --dry-run`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          create.Run,
	}

	registerCreateFlags(rootCmd, deps.ConfigPath)

	return rootCmd
}

// NewOSDependencies wires the command to the real filesystem, git and
// package manager binaries.
func NewOSDependencies() Dependencies {
	fs := filesystem.NewOSFileSystem()
	return Dependencies{
		FS:          fs,
		Git:         git.NewOSGitClient(),
		Runner:      pkgmanager.NewOSRunner(),
		Detector:    pkgmanager.NewOSDetector(fs),
		Prompter:    tui.NewHuhPrompter(),
		Interactive: stdioIsTerminal,
		ConfigPath:  config.FilePath(),
	}
}

func stdioIsTerminal() bool {
	return isTerminal(os.Stdin.Fd()) && isTerminal(os.Stdout.Fd())
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	rootCmd := NewRootCommand(NewOSDependencies())

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return fmt.Errorf("elmen: %w", err)
	}

	return nil
}

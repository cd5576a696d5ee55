package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/elmen-dev/elmen/internal/config"
	"github.com/elmen-dev/elmen/internal/filesystem"
	"github.com/elmen-dev/elmen/internal/git"
	"github.com/elmen-dev/elmen/internal/pkgmanager"
	"github.com/elmen-dev/elmen/internal/plan"
	"github.com/elmen-dev/elmen/internal/scaffold"
	"github.com/elmen-dev/elmen/internal/tui"
	"github.com/elmen-dev/elmen/internal/workspace"
	"github.com/spf13/cobra"
)

// ErrMissingOption is returned when a required option is neither given as a
// flag nor prompted for.
var ErrMissingOption = errors.New("missing required option")

// CreateCommand scaffolds a new project
type CreateCommand struct {
	fs          filesystem.FileSystem
	git         git.GitClient
	runner      pkgmanager.Runner
	detector    pkgmanager.Detector
	prompter    tui.Prompter
	interactive func() bool
}

func newCreateCommand(deps Dependencies) *CreateCommand {
	interactive := deps.Interactive
	if interactive == nil {
		interactive = func() bool { return false }
	}
	return &CreateCommand{
		fs:          deps.FS,
		git:         deps.Git,
		runner:      deps.Runner,
		detector:    deps.Detector,
		prompter:    deps.Prompter,
		interactive: interactive,
	}
}

func registerCreateFlags(cmd *cobra.Command, configPath string) {
	flags := cmd.Flags()
	flags.StringP("name", "n", "", "Project name, created as a directory in the current working directory")
	flags.StringP("type", "t", "", "Project type: integrated or standalone")
	flags.StringP("build", "b", "", "Build tool: tsup or unbuild (default tsup)")
	registerNegatable(flags)
	flags.String("package-manager", "", "Package manager to install with: npm, yarn or pnpm (default: detected)")
	flags.Bool("dry-run", false, "Print what would be created without touching the filesystem")
	flags.String("config", configPath, "Config file with default options")
}

// Run executes the create command
func (c *CreateCommand) Run(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	reporter := tui.NewReporter(cmd.OutOrStdout())

	configPath, _ := flags.GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	name, _ := flags.GetString("name")
	projectType, _ := flags.GetString("type")
	build, _ := flags.GetString("build")
	if build == "" {
		build = cfg.Build
	}

	answers := tui.ProjectAnswers{Name: name, Type: projectType}
	if err := c.collectRequired(&answers); err != nil {
		return err
	}

	cwd, err := c.fs.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	pmFlag, _ := flags.GetString("package-manager")
	pm, err := c.resolvePackageManager(pmFlag, cfg.PackageManager, cwd)
	if err != nil {
		return err
	}

	opts, err := plan.Validate(c.fs, cwd, plan.RawOptions{
		Name:     answers.Name,
		Type:     answers.Type,
		Build:    build,
		Test:     ResolveNegatable(flags, featureTest, cfg.Test),
		Prettier: ResolveNegatable(flags, featurePrettier, cfg.Prettier),
		Eslint:   ResolveNegatable(flags, featureEslint, cfg.Eslint),
		Git:      ResolveNegatable(flags, featureGit, cfg.Git),
	})
	if err != nil {
		return err
	}

	p := plan.Build(opts, pm)
	if err := p.Validate(); err != nil {
		return err
	}

	target := filepath.Join(cwd, opts.Name)

	if dryRun, _ := flags.GetBool("dry-run"); dryRun {
		out, err := tui.RenderDryRun(dryRunData(p, target))
		if err != nil {
			return err
		}
		reporter.Print(out)
		return nil
	}

	c.warnAboutSurroundings(cmd, reporter, cwd, target, opts)

	executor := scaffold.NewExecutor(c.fs, c.runner, c.git, reporter)
	if err := executor.Execute(cmd.Context(), p, target); err != nil {
		return err
	}

	summary, err := tui.RenderSummary(summaryData(p))
	if err != nil {
		return err
	}
	reporter.Print(summary)

	return nil
}

// collectRequired prompts for a missing name or type when a terminal is
// attached, otherwise reports them as missing.
func (c *CreateCommand) collectRequired(answers *tui.ProjectAnswers) error {
	var missing []string
	if strings.TrimSpace(answers.Name) == "" {
		missing = append(missing, "--name")
	}
	if answers.Type == "" {
		missing = append(missing, "--type")
	}
	if len(missing) == 0 {
		return nil
	}

	if c.prompter == nil || !c.interactive() {
		return fmt.Errorf("%w: %s", ErrMissingOption, strings.Join(missing, ", "))
	}

	types := make([]string, 0, len(plan.ProjectTypes()))
	for _, t := range plan.ProjectTypes() {
		types = append(types, string(t))
	}
	return c.prompter.PromptProject(answers, types)
}

// resolvePackageManager prefers the flag, then the config file, then
// detection in cwd.
func (c *CreateCommand) resolvePackageManager(flagValue, configValue, cwd string) (pkgmanager.Name, error) {
	if flagValue != "" {
		return pkgmanager.Parse(flagValue)
	}
	if configValue != "" {
		pm, err := pkgmanager.Parse(configValue)
		if err != nil {
			return "", fmt.Errorf("config %s: %w", config.KeyPackageManager, err)
		}
		return pm, nil
	}

	pm, err := c.detector.Detect(cwd)
	if err != nil {
		return "", fmt.Errorf("failed to detect package manager: %w", err)
	}
	return pm, nil
}

// warnAboutSurroundings reports conditions that do not stop a run but are
// probably not what the user wants.
func (c *CreateCommand) warnAboutSurroundings(cmd *cobra.Command, reporter *tui.Reporter, cwd, target string, opts plan.Options) {
	if opts.IncludeGit {
		if inRepo, err := c.git.WithContext(cmd.Context()).IsGitRepo(cwd); err == nil && inRepo {
			reporter.Warn("%s is inside a git repository, git init will create a nested one", cwd)
		}
	}

	match, err := workspace.IgnoredBy(c.fs, cwd, target)
	if err != nil {
		reporter.Warn("could not check .gitignore: %v", err)
		return
	}
	if match != nil {
		reporter.Warn("%s is ignored by %s (pattern %q)", opts.Name, match.GitIgnorePath, match.Pattern)
	}
}

func dryRunData(p plan.Plan, target string) tui.DryRunData {
	entries := make([]string, 0, len(p.Files))
	for _, f := range p.Files {
		if f.IsDir() {
			entries = append(entries, f.Path+"/")
			continue
		}
		entries = append(entries, f.Path)
	}

	return tui.DryRunData{
		Target:  target,
		Entries: entries,
		Scripts: scriptLines(p.Manifest.Scripts),
		Install: p.Install.String(),
		GitInit: p.Options.IncludeGit,
	}
}

func scriptLines(s plan.Scripts) []string {
	lines := []string{"build: " + s.Build, "test: " + s.Test}
	if s.Format != "" {
		lines = append(lines, "format: "+s.Format)
	}
	if s.Lint != "" {
		lines = append(lines, "lint: "+s.Lint)
	}
	return lines
}

func summaryData(p plan.Plan) tui.SummaryData {
	opts := p.Options
	data := tui.SummaryData{
		Name:     opts.Name,
		Type:     string(opts.Type),
		Build:    string(opts.Build),
		Commands: []string{p.PackageManager.RunScript("build")},
	}

	if opts.IncludeTest {
		data.Features = append(data.Features, "vitest")
		data.Commands = append(data.Commands, p.PackageManager.RunScript("test"))
	}
	if opts.IncludePrettier {
		data.Features = append(data.Features, "prettier")
		data.Commands = append(data.Commands, p.PackageManager.RunScript("format"))
	}
	if opts.IncludeEslint {
		data.Features = append(data.Features, "eslint")
		data.Commands = append(data.Commands, p.PackageManager.RunScript("lint"))
	}
	if opts.IncludeGit {
		data.Features = append(data.Features, "git")
	}
	return data
}

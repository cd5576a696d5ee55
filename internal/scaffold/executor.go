// Package scaffold applies a plan to disk: it creates the project directory,
// writes the planned files, installs dev dependencies and optionally
// initializes a git repository.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/elmen-dev/elmen/internal/filesystem"
	"github.com/elmen-dev/elmen/internal/git"
	"github.com/elmen-dev/elmen/internal/pkgmanager"
	"github.com/elmen-dev/elmen/internal/plan"
)

// Step names a phase of a scaffold run.
type Step string

const (
	StepCreateRoot Step = "create-root"
	StepWriteFiles Step = "write-files"
	StepInstall    Step = "install"
	StepGitInit    Step = "git-init"
)

// ErrTargetExists is returned when the project directory is already present.
var ErrTargetExists = errors.New("target directory already exists")

// StepError reports which step of a run failed. Nothing created before the
// failure is removed.
type StepError struct {
	Step Step
	Path string
	Err  error
}

func (e *StepError) Error() string {
	msg := string(e.Step) + " failed"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	msg += ": " + e.Err.Error()
	if e.Step != StepCreateRoot {
		msg += " (the partially created project was left in place)"
	}
	return msg
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Progress receives notices while a plan is executed. *tui.Reporter
// satisfies it.
type Progress interface {
	Start(format string, args ...interface{})
	Success(format string, args ...interface{})
}

// Executor runs plans against a filesystem, a command runner and git.
type Executor struct {
	fs       filesystem.FileSystem
	runner   pkgmanager.Runner
	git      git.GitClient
	progress Progress
}

// NewExecutor creates an Executor. A nil progress discards notices.
func NewExecutor(fs filesystem.FileSystem, runner pkgmanager.Runner, gitClient git.GitClient, progress Progress) *Executor {
	if progress == nil {
		progress = discard{}
	}
	return &Executor{
		fs:       fs,
		runner:   runner,
		git:      gitClient,
		progress: progress,
	}
}

// Execute creates root and everything p describes beneath it, in order.
func (e *Executor) Execute(ctx context.Context, p plan.Plan, root string) error {
	root = filepath.Clean(root)

	if err := e.createRoot(root); err != nil {
		return err
	}

	if err := e.writeFiles(p, root); err != nil {
		return err
	}
	e.progress.Success("Created %d entries in %s", len(p.Files), root)

	e.progress.Start("Installing dependencies with %s", p.PackageManager)
	if err := e.runner.Run(ctx, root, p.Install.Argv()); err != nil {
		return &StepError{Step: StepInstall, Path: root, Err: err}
	}
	e.progress.Success("Installed dev dependencies")

	if p.Options.IncludeGit {
		if err := e.git.WithContext(ctx).Init(root); err != nil {
			return &StepError{Step: StepGitInit, Path: root, Err: err}
		}
		e.progress.Success("Initialized git repository")
	}

	return nil
}

func (e *Executor) createRoot(root string) error {
	if e.fs.Exists(root) {
		return &StepError{Step: StepCreateRoot, Path: root, Err: ErrTargetExists}
	}

	if err := e.fs.Mkdir(root, 0755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			err = fmt.Errorf("%w: %v", ErrTargetExists, err)
		}
		return &StepError{Step: StepCreateRoot, Path: root, Err: err}
	}
	return nil
}

// writeFiles creates directory entries and writes file entries, creating any
// missing parent first.
func (e *Executor) writeFiles(p plan.Plan, root string) error {
	for _, entry := range p.Files {
		path := filepath.Join(root, filepath.FromSlash(entry.Path))

		if entry.IsDir() {
			if err := e.fs.MkdirAll(path, 0755); err != nil {
				return &StepError{Step: StepWriteFiles, Path: path, Err: err}
			}
			continue
		}

		if err := e.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return &StepError{Step: StepWriteFiles, Path: path, Err: err}
		}
		if err := e.fs.WriteFile(path, []byte(entry.Content), 0644); err != nil {
			return &StepError{Step: StepWriteFiles, Path: path, Err: err}
		}
	}
	return nil
}

type discard struct{}

func (discard) Start(string, ...interface{})   {}
func (discard) Success(string, ...interface{}) {}

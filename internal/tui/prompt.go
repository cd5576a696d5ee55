package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	huh "github.com/charmbracelet/huh"
)

// ErrAborted is returned when the user cancels a prompt.
var ErrAborted = errors.New("aborted")

// ProjectAnswers holds the values a prompt fills in. Fields that are already
// set are not asked for.
type ProjectAnswers struct {
	Name string
	Type string
}

// Prompter asks the user for missing required options.
type Prompter interface {
	PromptProject(answers *ProjectAnswers, types []string) error
}

// HuhPrompter prompts with huh forms.
type HuhPrompter struct {
	theme *huh.Theme
}

// NewHuhPrompter creates a prompter using the default theme.
func NewHuhPrompter() *HuhPrompter {
	return &HuhPrompter{theme: NewHuhTheme()}
}

// PromptProject asks for the project name and type when they are empty.
func (p *HuhPrompter) PromptProject(answers *ProjectAnswers, types []string) error {
	var fields []huh.Field

	if strings.TrimSpace(answers.Name) == "" {
		fields = append(fields, huh.NewInput().
			Title("Project name").
			Description("Directory created under the current working directory.").
			Value(&answers.Name).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("name cannot be empty")
				}
				return nil
			}))
	}

	if answers.Type == "" {
		opts := make([]huh.Option[string], 0, len(types))
		for _, t := range types {
			opts = append(opts, huh.NewOption(t, t))
		}
		fields = append(fields, huh.NewSelect[string]().
			Title("Project type").
			Description("integrated: apps/ + packages/ workspace • standalone: single package with src/").
			Options(opts...).
			Value(&answers.Type))
	}

	if len(fields) == 0 {
		return nil
	}

	form := huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(p.theme).
		WithShowHelp(true).
		WithProgramOptions(tea.WithAltScreen())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return fmt.Errorf("prompt failed: %w", err)
	}

	return nil
}

package tui

import (
	huh "github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// NewHuhTheme returns the form theme matching the console styles.
func NewHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	purple := lipgloss.Color("#7D56F4")
	green := lipgloss.Color("#04B575")
	gray := lipgloss.Color("#888888")

	t.Focused.Title = t.Focused.Title.Foreground(purple).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(gray)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(purple)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(purple)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(purple)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(lipgloss.Color("#FF0000"))
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(lipgloss.Color("#FF0000"))

	t.Blurred = t.Focused
	t.Blurred.Title = t.Blurred.Title.Foreground(gray).Bold(false)

	return t
}

package tui

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// SummaryData feeds the post-scaffold summary.
type SummaryData struct {
	Name     string
	Type     string
	Build    string
	Features []string
	Commands []string
}

const summaryTemplate = `{{ title }}

  {{ .Name }} ({{ .Type }}, {{ .Build }}) with {{ if .Features }}{{ .Features | join ", " }}{{ else }}no optional tooling{{ end }}

Next steps:
  cd {{ .Name }}
{{ .Commands | join "\n" | indent 2 }}
`

var summaryTmpl = template.Must(template.New("summary").
	Funcs(sprig.TxtFuncMap()).
	Funcs(template.FuncMap{
		"title": func() string { return SuccessStyle.Render("✓ Project created") },
	}).
	Parse(summaryTemplate))

// RenderSummary renders the next-steps block shown after a successful run.
func RenderSummary(data SummaryData) (string, error) {
	var b strings.Builder
	if err := summaryTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render summary: %w", err)
	}
	return b.String(), nil
}

// DryRunData describes a plan that was not executed.
type DryRunData struct {
	Target  string
	Entries []string
	Scripts []string
	Install string
	GitInit bool
}

const dryRunTemplate = `{{ heading "Dry run" }} nothing was written

Would create {{ .Target }}:
{{ .Entries | join "\n" | indent 2 }}

Scripts:
{{ .Scripts | join "\n" | indent 2 }}

Would run:
  {{ .Install }}
{{- if .GitInit }}
  git init
{{- end }}
`

var dryRunTmpl = template.Must(template.New("dry-run").
	Funcs(sprig.TxtFuncMap()).
	Funcs(template.FuncMap{
		"heading": func(s string) string { return TitleStyle.Render(s + ":") },
	}).
	Parse(dryRunTemplate))

// RenderDryRun renders the plan preview printed by --dry-run.
func RenderDryRun(data DryRunData) (string, error) {
	var b strings.Builder
	if err := dryRunTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render dry run: %w", err)
	}
	return b.String(), nil
}

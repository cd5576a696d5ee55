package tui

import (
	"fmt"
	"io"
)

// Reporter prints progress notices for a scaffold run.
type Reporter struct {
	out io.Writer
}

// NewReporter creates a Reporter writing to out.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Start announces a step that may take a while.
func (r *Reporter) Start(format string, args ...interface{}) {
	r.line(StartStyle.Render("◐"), format, args...)
}

func (r *Reporter) Success(format string, args ...interface{}) {
	r.line(SuccessStyle.Render("✔"), format, args...)
}

func (r *Reporter) Warn(format string, args ...interface{}) {
	r.line(WarnStyle.Render("⚠"), format, args...)
}

func (r *Reporter) Error(format string, args ...interface{}) {
	r.line(ErrorStyle.Render("✖"), format, args...)
}

func (r *Reporter) Info(format string, args ...interface{}) {
	r.line(SubtleStyle.Render("ℹ"), format, args...)
}

// Print writes a pre-rendered block as is.
func (r *Reporter) Print(block string) {
	_, _ = fmt.Fprint(r.out, block)
}

func (r *Reporter) line(icon, format string, args ...interface{}) {
	_, _ = fmt.Fprintf(r.out, "%s %s\n", icon, fmt.Sprintf(format, args...))
}

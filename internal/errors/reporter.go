package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tactlint/internal/ast"
)

// Level is a diagnostic's rendering severity, distinct from warning.Severity
// (spec §3.6): this is about how the Reporter formats the line, not about
// the ranking detectors attach to findings.
type Level string

const (
	LevelError Level = "error"
	LevelNote  Level = "note"
	LevelHelp  Level = "help"
)

// Suggestion is a suggested fix attached to a Diagnostic.
type Suggestion struct {
	Message     string
	Replacement string
}

// Diagnostic is the Reporter's rendering input: a UsageError or
// InternalError translated into source-anchored, human-facing text.
type Diagnostic struct {
	Level       Level
	ID          string // non-empty only for InternalError diagnostics
	Message     string
	Position    ast.Position
	Length      int
	Suggestions []Suggestion
	Notes       []string
}

// FromUsageError builds a Diagnostic from a UsageError (spec §7.1).
func FromUsageError(e *UsageError) Diagnostic {
	return Diagnostic{Level: LevelError, Message: e.Message, Position: e.Location}
}

// FromInternalError builds a Diagnostic from an InternalError (spec §7.2),
// carrying its correlation id so the rendered line can be matched back to
// the structured log entry.
func FromInternalError(e *InternalError) Diagnostic {
	return Diagnostic{
		Level:    LevelError,
		ID:       e.ID,
		Message:  e.Message,
		Position: e.Location,
		Notes:    []string{"this indicates a bug in the core, not in the analyzed program"},
	}
}

// Reporter renders Diagnostics with Rust-style source-context styling,
// grounded on the teacher's internal/errors.ErrorReporter
// (internal/errors/reporter.go): same boxed "-->"/"│" layout, reworked for
// the core's UsageError/InternalError taxonomy instead of compiler
// diagnostics.
type Reporter struct {
	filename string
	lines    []string
}

// NewReporter builds a Reporter that can render a Diagnostic's source
// context from the given file's text.
func NewReporter(filename, source string) *Reporter {
	return &Reporter{filename: filename, lines: strings.Split(source, "\n")}
}

// Format renders one Diagnostic.
func (r *Reporter) Format(d Diagnostic) string {
	var out strings.Builder

	levelColor := r.levelColor(d.Level)
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	if d.ID != "" {
		out.WriteString(fmt.Sprintf("%s[%s]: %s\n", levelColor(string(d.Level)), d.ID, d.Message))
	} else {
		out.WriteString(fmt.Sprintf("%s: %s\n", levelColor(string(d.Level)), d.Message))
	}

	width := r.lineNumberWidth(d.Position.Line)
	indent := strings.Repeat(" ", width)

	out.WriteString(fmt.Sprintf("%s %s %s:%d:%d\n", indent, dim("-->"), r.filename, d.Position.Line, d.Position.Column))
	out.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))

	if d.Position.Line > 1 && d.Position.Line-1 <= len(r.lines) {
		out.WriteString(fmt.Sprintf("%s %s %s\n",
			dim(fmt.Sprintf("%*d", width, d.Position.Line-1)), dim("│"), r.lines[d.Position.Line-2]))
	}
	if d.Position.Line > 0 && d.Position.Line <= len(r.lines) {
		out.WriteString(fmt.Sprintf("%s %s %s\n",
			bold(fmt.Sprintf("%*d", width, d.Position.Line)), dim("│"), r.lines[d.Position.Line-1]))
		out.WriteString(fmt.Sprintf("%s %s %s\n", indent, dim("│"), r.marker(d.Position.Column, d.Length)))
	}
	if d.Position.Line < len(r.lines) {
		out.WriteString(fmt.Sprintf("%s %s %s\n",
			dim(fmt.Sprintf("%*d", width, d.Position.Line+1)), dim("│"), r.lines[d.Position.Line]))
	}

	if len(d.Suggestions) > 0 {
		out.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))
		help := color.New(color.FgCyan).SprintFunc()
		for i, s := range d.Suggestions {
			if i == 0 {
				out.WriteString(fmt.Sprintf("%s %s %s: %s\n", indent, help("help"), help("try"), s.Message))
			} else {
				out.WriteString(fmt.Sprintf("%s %s %s\n", indent, help("    "), s.Message))
			}
			if s.Replacement != "" {
				out.WriteString(fmt.Sprintf("%s %s %s\n", indent, help("│"), help(s.Replacement)))
			}
		}
	}

	for _, note := range d.Notes {
		noteColor := color.New(color.FgBlue).SprintFunc()
		out.WriteString(fmt.Sprintf("%s %s %s %s\n", indent, dim("│"), noteColor("note:"), note))
	}

	out.WriteString("\n")
	return out.String()
}

func (r *Reporter) levelColor(level Level) func(...interface{}) string {
	switch level {
	case LevelNote:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	case LevelHelp:
		return color.New(color.FgGreen, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

func (r *Reporter) marker(column, length int) string {
	if length <= 0 {
		length = 1
	}
	spaces := strings.Repeat(" ", maxInt(0, column-1))
	markerColor := color.New(color.FgRed, color.Bold).SprintFunc()
	return spaces + markerColor(strings.Repeat("^", length))
}

func (r *Reporter) lineNumberWidth(line int) int {
	width := len(fmt.Sprintf("%d", line))
	if width < 3 {
		width = 3
	}
	return width
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

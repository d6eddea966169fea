// Package warning implements the detector-facing result type (spec §3.6,
// §4.G, component G): Warning carries severity and a source span; the
// detector host sorts by severity before reporting.
package warning

import (
	"github.com/segmentio/ksuid"

	"tactlint/internal/ast"
)

// Severity ranks a Warning (spec §3.6). Values are ordered so that plain
// integer comparison gives severity descending when sorted in reverse.
type Severity int

const (
	Info Severity = iota
	Low
	Medium
	High
	Critical
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Low:
		return "low"
	case Medium:
		return "medium"
	case High:
		return "high"
	case Critical:
		return "critical"
	default:
		return "unknown"
	}
}

// Category classifies the concern a Warning reports (spec §4.G: "security,
// best-practices, …"). Left as a plain string rather than a closed enum so
// new detectors can introduce categories without a core change.
type Category string

const (
	CategorySecurity      Category = "security"
	CategoryBestPractices Category = "best-practices"
	CategoryPerformance   Category = "performance"
	CategoryCorrectness   Category = "correctness"
)

// Warning is the unit of detector output (spec §3.6). ID is a ksuid so
// warnings can be correlated across a run without relying on slice
// position, the same identifier scheme internal/errors uses for
// InternalError.
type Warning struct {
	ID         string
	Title      string
	Severity   Severity
	Category   Category
	Location   ast.Span
	Extra      string
	Suggestion string
}

// New returns a Warning with a fresh ksuid identifier.
func New(title string, severity Severity, category Category, loc ast.Span) Warning {
	return Warning{
		ID:       ksuid.New().String(),
		Title:    title,
		Severity: severity,
		Category: category,
		Location: loc,
	}
}

// WithExtra attaches an optional extra description.
func (w Warning) WithExtra(extra string) Warning {
	w.Extra = extra
	return w
}

// WithSuggestion attaches an optional remediation suggestion.
func (w Warning) WithSuggestion(suggestion string) Warning {
	w.Suggestion = suggestion
	return w
}

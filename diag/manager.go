// Package diag implements the compiler's diagnostic accumulation: the
// "error manager" of spec.md §4.1/§7. Passes and the parser push
// diagnostics here instead of returning Go errors for user-facing problems;
// Go errors are reserved for internal invariant violations, which panic
// instead (see ast.InvariantViolation).
package diag

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gssc/gss/source"
)

// Kind distinguishes errors (which halt the pass pipeline) from warnings
// (which don't).
type Kind int

const (
	Warning Kind = iota
	Error
)

func (k Kind) String() string {
	if k == Error {
		return "error"
	}
	return "warning"
}

// Diagnostic is one reported problem with an attached location.
type Diagnostic struct {
	Kind     Kind
	Message  string
	Location source.Location
}

func (d Diagnostic) key() string {
	return fmt.Sprintf("%d|%s|%v", d.Kind, d.Message, d.Location)
}

// Manager accumulates diagnostics for a single compilation. It is not safe
// for concurrent use by multiple goroutines; each compilation owns one.
type Manager struct {
	seen  map[string]bool
	items []Diagnostic
}

// New creates an empty Manager.
func New() *Manager {
	return &Manager{seen: make(map[string]bool)}
}

// ReportError records an error diagnostic. Reporting an equal diagnostic
// twice is a no-op (idempotent per spec.md §4.1).
func (m *Manager) ReportError(loc source.Location, format string, args ...any) {
	m.report(Error, loc, format, args...)
}

// ReportWarning records a warning diagnostic.
func (m *Manager) ReportWarning(loc source.Location, format string, args ...any) {
	m.report(Warning, loc, format, args...)
}

func (m *Manager) report(kind Kind, loc source.Location, format string, args ...any) {
	d := Diagnostic{Kind: kind, Message: fmt.Sprintf(format, args...), Location: loc}
	key := d.key()
	if m.seen[key] {
		return
	}
	m.seen[key] = true
	m.items = append(m.items, d)
}

// HasErrors reports whether any Error-kind diagnostic has been recorded.
// The driver consults this after every pass and short-circuits the
// remaining passes if true (spec.md §7).
func (m *Manager) HasErrors() bool {
	for _, d := range m.items {
		if d.Kind == Error {
			return true
		}
	}
	return false
}

// Errors returns all error diagnostics sorted by location.
func (m *Manager) Errors() []Diagnostic { return m.filterSorted(Error) }

// Warnings returns all warning diagnostics sorted by location.
func (m *Manager) Warnings() []Diagnostic { return m.filterSorted(Warning) }

// All returns every diagnostic, sorted by location.
func (m *Manager) All() []Diagnostic {
	out := append([]Diagnostic(nil), m.items...)
	sort.SliceStable(out, func(i, j int) bool {
		return source.Compare(out[i].Location, out[j].Location) < 0
	})
	return out
}

func (m *Manager) filterSorted(kind Kind) []Diagnostic {
	var out []Diagnostic
	for _, d := range m.items {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return source.Compare(out[i].Location, out[j].Location) < 0
	})
	return out
}

// Format renders a diagnostic as "<file>:<line>:<column>: <kind>: <message>"
// followed by a caret line pointing at the offending span, matching
// spec.md §7's user-visible failure output.
func Format(d Diagnostic, src *source.File) string {
	if d.Location.IsUnknown() {
		return fmt.Sprintf("%s: %s", d.Kind, d.Message)
	}
	begin := d.Location.Begin()
	var b strings.Builder
	fmt.Fprintf(&b, "%s:%d:%d: %s: %s\n", d.Location.File().String(), begin.Line, begin.Column, d.Kind, d.Message)
	if src != nil {
		if line := lineText(src.Contents, begin.Line); line != "" {
			b.WriteString(line)
			b.WriteByte('\n')
			if begin.Column > 0 {
				b.WriteString(strings.Repeat(" ", begin.Column-1))
			}
			b.WriteString("^\n")
		}
	}
	return b.String()
}

// Summary renders the trailing "N error(s), N warning(s)" line.
func Summary(m *Manager) string {
	return fmt.Sprintf("%d error(s), %d warning(s)", len(m.Errors()), len(m.Warnings()))
}

func lineText(contents string, line int) string {
	cur := 1
	start := 0
	for i := 0; i < len(contents); i++ {
		if cur == line {
			start = i
			break
		}
		if contents[i] == '\n' {
			cur++
			start = i + 1
		}
	}
	if cur != line {
		return ""
	}
	end := strings.IndexByte(contents[start:], '\n')
	if end == -1 {
		return contents[start:]
	}
	return contents[start : start+end]
}

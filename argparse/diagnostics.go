package argparse

import (
	"strings"

	"github.com/dzonerzy/go-argparse/internal/growarray"
)

// Diagnostics accumulates parse problems in encounter order. Nothing here
// stops a scan; the matcher records and keeps going, and the caller reads
// the full report once the scan is done. Warnings are informational and
// never fail a parse.
type Diagnostics struct {
	parseErrors  *growarray.Array[string]
	unrecognized *growarray.Array[string]
	missing      *growarray.Array[string]
	warnings     *growarray.Array[string]
	suggestions  *growarray.Array[string]
}

// NewDiagnostics creates an empty diagnostic set.
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{
		parseErrors:  growarray.New[string](),
		unrecognized: growarray.New[string](),
		missing:      growarray.New[string](),
		warnings:     growarray.New[string](),
		suggestions:  growarray.New[string](),
	}
}

// recordError adds one parse error line for the named argument.
func (d *Diagnostics) recordError(label, message string) {
	d.parseErrors.Push("argument " + label + ": " + message)
}

// recordUnrecognized adds a token no registered argument matched.
func (d *Diagnostics) recordUnrecognized(token string) {
	d.unrecognized.Push(token)
}

// recordMissing adds a required argument that was never bound.
func (d *Diagnostics) recordMissing(label string) {
	d.missing.Push(label)
}

// recordWarning adds an informational line, e.g. a deprecation notice.
func (d *Diagnostics) recordWarning(message string) {
	d.warnings.Push(message)
}

// recordSuggestion adds a did-you-mean line for an unrecognized token.
func (d *Diagnostics) recordSuggestion(message string) {
	d.suggestions.Push(message)
}

// Failed reports whether the parse must be considered unsuccessful.
func (d *Diagnostics) Failed() bool {
	return d.parseErrors.Len() > 0 || d.unrecognized.Len() > 0 || d.missing.Len() > 0
}

// ErrorCount returns the number of failure-causing entries.
func (d *Diagnostics) ErrorCount() int {
	return d.parseErrors.Len() + d.unrecognized.Len() + d.missing.Len()
}

// Warnings returns the accumulated warning lines.
func (d *Diagnostics) Warnings() []string {
	return collect(d.warnings)
}

// Unrecognized returns the accumulated unrecognized tokens.
func (d *Diagnostics) Unrecognized() []string {
	return collect(d.unrecognized)
}

// Render produces the full report: one line per parse error, one aggregated
// unrecognized line, one aggregated missing-argument line, then suggestion
// lines. Render never mutates state; repeated calls return identical text.
func (d *Diagnostics) Render() string {
	var b strings.Builder

	it := d.parseErrors.Iter()
	for {
		line, ok := it.Next()
		if !ok {
			break
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	if d.unrecognized.Len() > 0 {
		b.WriteString("unrecognized argument(s): ")
		b.WriteString(joinArray(d.unrecognized))
		b.WriteByte('\n')
	}

	if d.missing.Len() > 0 {
		b.WriteString("the following argument(s) are required: ")
		b.WriteString(joinArray(d.missing))
		b.WriteByte('\n')
	}

	it = d.suggestions.Iter()
	for {
		line, ok := it.Next()
		if !ok {
			break
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	return b.String()
}

// RenderWarnings produces the warning lines separately from the failure
// report.
func (d *Diagnostics) RenderWarnings() string {
	var b strings.Builder
	it := d.warnings.Iter()
	for {
		line, ok := it.Next()
		if !ok {
			break
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// asError converts the accumulated state into an error, or nil when the
// parse succeeded.
func (d *Diagnostics) asError() error {
	if !d.Failed() {
		return nil
	}
	return NewArgError(ErrorTypeParseFailed, strings.TrimRight(d.Render(), "\n"))
}

// reset clears all accumulated entries for reuse.
func (d *Diagnostics) reset() {
	d.parseErrors.Clear()
	d.unrecognized.Clear()
	d.missing.Clear()
	d.warnings.Clear()
	d.suggestions.Clear()
}

func joinArray(arr *growarray.Array[string]) string {
	var b strings.Builder
	it := arr.Iter()
	first := true
	for {
		item, ok := it.Next()
		if !ok {
			break
		}
		if !first {
			b.WriteString(", ")
		}
		b.WriteString(item)
		first = false
	}
	return b.String()
}

func collect(arr *growarray.Array[string]) []string {
	out := make([]string, 0, arr.Len())
	it := arr.Iter()
	for {
		item, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, item)
	}
	return out
}

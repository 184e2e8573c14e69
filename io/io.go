// Package argio centralizes terminal IO and color capability detection for
// programs built on the parser. The parser core never prints; examples and
// applications route their output through a Manager.
package argio

import (
	stdio "io"
	"os"
)

// Manager centralizes IO streams and color capability.
type Manager struct {
	in  stdio.Reader
	out stdio.Writer
	err stdio.Writer

	forceColor bool
	noColor    bool
}

// New returns a manager bound to process stdio.
func New() *Manager {
	return &Manager{in: os.Stdin, out: os.Stdout, err: os.Stderr}
}

// WithIn sets the input reader and returns the manager for chaining.
func (m *Manager) WithIn(r stdio.Reader) *Manager { m.in = r; return m }

// WithOut sets the standard output writer and returns the manager for chaining.
func (m *Manager) WithOut(w stdio.Writer) *Manager { m.out = w; return m }

// WithErr sets the standard error writer and returns the manager for chaining.
func (m *Manager) WithErr(w stdio.Writer) *Manager { m.err = w; return m }

// ForceColor forces color output on, regardless of environment.
func (m *Manager) ForceColor() *Manager { m.forceColor = true; m.noColor = false; return m }

// NoColor disables color output, regardless of environment.
func (m *Manager) NoColor() *Manager { m.noColor = true; m.forceColor = false; return m }

// ColorAuto uses environment heuristics to determine color support.
func (m *Manager) ColorAuto() *Manager { m.noColor = false; m.forceColor = false; return m }

// In returns the configured input reader.
func (m *Manager) In() stdio.Reader { return m.in }

// Out returns the configured standard output writer.
func (m *Manager) Out() stdio.Writer { return m.out }

// Err returns the configured standard error writer.
func (m *Manager) Err() stdio.Writer { return m.err }

// SupportsColor reports whether ANSI color output is appropriate.
// Explicit configuration wins, then NO_COLOR/FORCE_COLOR, then the output
// must be a terminal with a TERM that is not dumb.
func (m *Manager) SupportsColor() bool {
	if m.noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	if m.forceColor || os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if !m.outIsTerminal() {
		return false
	}
	term := os.Getenv("TERM")
	return term != "" && term != "dumb"
}

// outIsTerminal reports whether the output writer is a character device.
func (m *Manager) outIsTerminal() bool {
	f, ok := m.out.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// Colorize wraps s with the given ANSI SGR code (e.g., "31" for red) and a
// trailing reset. If color is not supported, it returns s unchanged.
func (m *Manager) Colorize(s, code string) string {
	if !m.SupportsColor() {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}

// Bold returns s in bold when color is supported; otherwise s unchanged.
func (m *Manager) Bold(s string) string { return m.Colorize(s, "1") }

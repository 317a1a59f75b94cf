// Package styler replaces the source program's module-level ANSI color
// constants with a small collaborator constructed once from terminal
// capability, per spec.md's "Global color constants" design note. The
// Reporter consumes a Styler and holds no package-level styling state of
// its own; the ProgressReporter's line is not styled.
package styler

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Styler renders text with ANSI styling when the destination is a
// capable terminal, and as plain text otherwise.
type Styler struct {
	enabled bool

	blue   *color.Color
	cyan   *color.Color
	yellow *color.Color
}

// New builds a Styler for writing to a file descriptor such as os.Stdout.
// forceDisable wins over TTY detection, for callers of --no-color.
func New(fd *os.File, forceDisable bool) *Styler {
	enabled := !forceDisable && isatty.IsTerminal(fd.Fd())
	s := &Styler{
		enabled: enabled,
		blue:    color.New(color.FgBlue),
		cyan:    color.New(color.FgCyan),
		yellow:  color.New(color.FgYellow),
	}
	if !enabled {
		color.NoColor = true
	}
	return s
}

// Enabled reports whether this Styler applies ANSI codes at all.
func (s *Styler) Enabled() bool {
	return s.enabled
}

// Algorithm styles an algorithm-tag column (blue, matching the source
// program's FG_BLU fuzzer column).
func (s *Styler) Algorithm(text string) string {
	return s.render(s.blue, text)
}

// Label styles a field label such as "NS:" or "MX:" (yellow, matching
// FG_YEL).
func (s *Styler) Label(text string) string {
	return s.render(s.yellow, text)
}

// Value styles a field value such as a resolved IP (cyan, matching
// FG_CYA).
func (s *Styler) Value(text string) string {
	return s.render(s.cyan, text)
}

func (s *Styler) render(c *color.Color, text string) string {
	if !s.enabled {
		return text
	}
	return c.Sprint(text)
}

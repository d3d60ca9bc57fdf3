// Package diag is the scanner's optional diagnostic channel: a no-op by
// default, and a verbose caret-pointer writer when --verbose is passed,
// grounded on the teacher's internal/errors.CompilerError.Format (adapted
// here to a position model with no column, since the scanner only tracks
// line and byte offset).
package diag

import (
	"fmt"
	"io"
	"strings"
)

// Logger receives best-effort notes about scanner behavior that is never
// surfaced as an error (spec.md §7: "no error is surfaced to the tag
// sink... a diagnostic/verbose channel may log skipped constructs and
// context transitions").
type Logger interface {
	// Skip notes a construct the scanner stepped over without
	// recognizing (an unmatched end* keyword, an unhandled directive).
	Skip(file string, line int, msg string)
	// Transition notes a scope stack push/pop, for tracing nesting bugs.
	Transition(file string, line int, msg string)
}

// Nop discards every note. It is the scanner's default logger.
type Nop struct{}

func (Nop) Skip(string, int, string)       {}
func (Nop) Transition(string, int, string) {}

// Verbose writes one caret-style block per note to Out, in the teacher's
// CompilerError.Format style: a header line, the offending source line,
// and a caret under its first non-whitespace column.
type Verbose struct {
	Out    io.Writer
	Source []byte
	Color  bool
}

// NewVerbose returns a Verbose logger over source (the exact bytes passed
// to scanner.ScanFile, so line numbers line up).
func NewVerbose(out io.Writer, source []byte, color bool) *Verbose {
	return &Verbose{Out: out, Source: source, Color: color}
}

func (v *Verbose) Skip(file string, line int, msg string) {
	v.emit(file, line, "skip", msg)
}

func (v *Verbose) Transition(file string, line int, msg string) {
	v.emit(file, line, "scope", msg)
}

func (v *Verbose) emit(file string, line int, tag, msg string) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s] %s:%d: %s\n", tag, file, line, msg)

	if src := v.sourceLine(line); src != "" {
		lineNumStr := fmt.Sprintf("%4d | ", line)
		sb.WriteString(lineNumStr)
		sb.WriteString(src)
		sb.WriteString("\n")
		col := len(src) - len(strings.TrimLeft(src, " \t"))
		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+col))
		if v.Color {
			sb.WriteString("\033[1;33m")
		}
		sb.WriteString("^")
		if v.Color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	io.WriteString(v.Out, sb.String())
}

func (v *Verbose) sourceLine(line int) string {
	if len(v.Source) == 0 || line < 1 {
		return ""
	}
	lines := strings.Split(string(v.Source), "\n")
	if line > len(lines) {
		return ""
	}
	return lines[line-1]
}

package diff

import (
	"strings"

	"github.com/nutek/nutekcode/internal/q/uni"
)

// RenderOptions control Render. The zero value renders exactly like Format.
type RenderOptions struct {
	// Color highlights removed lines with a pink background and added lines with a green background (ANSI 256-color escapes).
	Color bool

	// MaxWidth, if positive, truncates each line (number and sigil included) to that many terminal columns, ending truncated lines with "…".
	MaxWidth int
}

// Colors (ANSI) for terminal output.
const (
	ansiReset     = "\x1b[0m"
	ansiBlackFG   = "\x1b[30m"
	ansiPinkLine  = "\x1b[48;5;224m" // light pink for removed lines
	ansiGreenLine = "\x1b[48;5;194m" // light green for added lines
)

const truncationTail = "…"

// Render renders ops like Format, for a terminal. Numbering, sigils, and line order are the same as Format; opts only add color and truncation. Every line, including
// the last, ends with "\n".
func Render(ops Sequence, opts RenderOptions) string {
	var b strings.Builder
	var n Counter
	for _, op := range ops {
		n = n.Next(op.Kind)
		line := formatLine(n, op)
		if opts.MaxWidth > 0 {
			line = uni.Truncate(line, opts.MaxWidth, truncationTail, nil)
		}
		if opts.Color && op.Kind != Unchanged {
			bg := ansiPinkLine
			if op.Kind == Added {
				bg = ansiGreenLine
			}
			b.WriteString(ansiBlackFG)
			b.WriteString(bg)
			b.WriteString(line)
			b.WriteString(ansiReset)
		} else {
			b.WriteString(line)
		}
		b.WriteString(defaultEOL)
	}
	return b.String()
}

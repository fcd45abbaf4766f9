package diff

import (
	"strconv"
	"strings"
)

// Counter is the line number shared by Format, Render, and Summarize. The zero value is ready to use.
//
// Next advances it by one for every op, then steps back for Added: an added line reuses the number of the op before it, so a removed line and the line that replaces
// it carry the same number, and the following unchanged line continues as if nothing had been replaced.
type Counter int

// Next returns the counter after an op of kind k.
func (c Counter) Next(k Kind) Counter {
	c++
	if k == Added {
		c--
	}
	return c
}

// Format renders ops as a numbered report, one line per op: "{number} {sigil}{text}\n", where sigil is ' ' for Unchanged, '-' for Removed, and '+' for Added.
// Numbers come from Counter.
//
// Example:
//
//	1  test
//	2 -4321
//	2 +Hello World!
//	3  Hello Nutek!
func Format(ops Sequence) string {
	var b strings.Builder
	var n Counter
	for _, op := range ops {
		n = n.Next(op.Kind)
		b.WriteString(formatLine(n, op))
		b.WriteString(defaultEOL)
	}
	return b.String()
}

// formatLine is a line of Format without its terminator.
func formatLine(n Counter, op Op) string {
	var b strings.Builder
	b.Grow(len(op.Line) + 8)
	b.WriteString(strconv.Itoa(int(n)))
	b.WriteByte(' ')
	b.WriteByte(op.Kind.sigil())
	b.WriteString(op.Line)
	return b.String()
}

package diff

import "strings"

// Kind classifies a line of a diff.
type Kind int

// Kinds of lines in a diff.
const (
	Removed Kind = iota
	Unchanged
	Added
)

func (k Kind) String() string {
	switch k {
	case Removed:
		return "removed"
	case Unchanged:
		return "unchanged"
	case Added:
		return "added"
	}
	panic("diff: unknown Kind")
}

// sigil is the one-character marker printed in front of a line of this kind.
func (k Kind) sigil() byte {
	switch k {
	case Removed:
		return '-'
	case Unchanged:
		return ' '
	case Added:
		return '+'
	}
	panic("diff: unknown Kind")
}

// Op is a single classified line. Line never contains the line terminator.
type Op struct {
	Kind Kind
	Line string
}

// Sequence is the ordered output of Compute. Callers must treat it as read-only.
type Sequence []Op

// Left returns the lines of the left text, in order (Removed and Unchanged ops).
func (s Sequence) Left() []string {
	return s.side(Added)
}

// Right returns the lines of the right text, in order (Added and Unchanged ops).
func (s Sequence) Right() []string {
	return s.side(Removed)
}

func (s Sequence) side(skip Kind) []string {
	lines := make([]string, 0, len(s))
	for _, op := range s {
		if op.Kind == skip {
			continue
		}
		lines = append(lines, op.Line)
	}
	return lines
}

// HasChanges reports whether any op is Removed or Added.
func (s Sequence) HasChanges() bool {
	for _, op := range s {
		if op.Kind != Unchanged {
			return true
		}
	}
	return false
}

// SplitLines splits text on '\n'. The terminators are dropped; a trailing '\n' yields a final empty line, and "" yields a single empty line.
func SplitLines(text string) []string {
	return strings.Split(text, defaultEOL)
}

// defaultEOL is the only line terminator recognized by this package.
const defaultEOL = "\n"

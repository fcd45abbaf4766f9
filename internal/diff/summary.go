package diff

import "unicode/utf8"

// Summary aggregates a Sequence. Character counts are in code points, not bytes.
type Summary struct {
	Removed    int `json:"removed"`     // Characters on Removed lines.
	NotChanged int `json:"not changed"` // Characters on Unchanged lines.
	Added      int `json:"added"`       // Characters on Added lines.

	// Lines is the final Counter value. Because a Removed/Added pair shares a number, it can be lower than the number of lines compared.
	Lines int `json:"lines"`
}

// Summary map keys.
const (
	KeyRemoved    = "removed"
	KeyNotChanged = "not changed"
	KeyAdded      = "added"
	KeyLines      = "lines"
)

// Summarize counts the characters of each kind in ops and the number of logical lines (see Counter).
func Summarize(ops Sequence) Summary {
	var s Summary
	var n Counter
	for _, op := range ops {
		n = n.Next(op.Kind)
		chars := utf8.RuneCountInString(op.Line)
		switch op.Kind {
		case Removed:
			s.Removed += chars
		case Unchanged:
			s.NotChanged += chars
		case Added:
			s.Added += chars
		default:
			panic("diff: unknown Kind")
		}
	}
	s.Lines = int(n)
	return s
}

// Map returns s keyed by KeyRemoved, KeyNotChanged, KeyAdded, and KeyLines.
func (s Summary) Map() map[string]int {
	return map[string]int{
		KeyRemoved:    s.Removed,
		KeyNotChanged: s.NotChanged,
		KeyAdded:      s.Added,
		KeyLines:      s.Lines,
	}
}

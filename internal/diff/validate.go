package diff

import "fmt"

// validate checks the Sequence invariants against the lines it was computed from and returns an error on the first violation.
func (s Sequence) validate(oldLines, newLines []string) error {
	var inHunkAdded bool
	for i, op := range s {
		switch op.Kind {
		case Removed:
			if inHunkAdded {
				return fmt.Errorf("op[%d]: Removed after Added in the same hunk", i)
			}
		case Added:
			inHunkAdded = true
		case Unchanged:
			inHunkAdded = false
		default:
			return fmt.Errorf("op[%d]: unknown kind %d", i, int(op.Kind))
		}
	}

	if err := sameLines(s.Left(), oldLines); err != nil {
		return fmt.Errorf("left side: %w", err)
	}
	if err := sameLines(s.Right(), newLines); err != nil {
		return fmt.Errorf("right side: %w", err)
	}
	return nil
}

func sameLines(got, want []string) error {
	if len(got) != len(want) {
		return fmt.Errorf("got %d lines, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			return fmt.Errorf("line %d: got %q, want %q", i, got[i], want[i])
		}
	}
	return nil
}

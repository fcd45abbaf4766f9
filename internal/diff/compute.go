package diff

import (
	"fmt"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Compute diffs left against right line by line and returns the classified lines.
//
// The result is a minimal edit script: lines are matched as atomic tokens along a longest common subsequence, and within each hunk all Removed ops come before all
// Added ops. Compute never fails; "" vs "" yields a single Unchanged empty line.
//
// Cost: the alignment is Myers' O(N*D) algorithm, where D is the size of the edit script, so near-identical texts are cheap. Completely different texts degrade
// to quadratic time in the number of lines.
func Compute(left, right string) Sequence {
	oldLines := SplitLines(left)
	newLines := SplitLines(right)

	var ops Sequence
	if oldRunes, newRunes, lineArray, ok := linesToRunes(oldLines, newLines); ok {
		dmp := diffmatchpatch.New()
		// A positive timeout enables the half-match heuristic and a deadline on the bisection, both of which can give up minimality.
		dmp.DiffTimeout = 0
		diffs := dmp.DiffMainRunes(oldRunes, newRunes, false)
		diffs = dmp.DiffCleanupMerge(diffs)
		ops = decodeDiffs(diffs, lineArray, len(oldLines)+len(newLines))
	} else {
		ops = lcsSequence(oldLines, newLines)
	}
	ops = groupHunks(ops)

	if err := ops.validate(oldLines, newLines); err != nil {
		panic(fmt.Errorf("Compute: validate failed with %v", err))
	}
	return ops
}

// linesToRunes maps every distinct line to a rune so diffmatchpatch can treat lines as characters. lineArray[runeToIndex(r)] is the line for r. ok is false when
// there are more distinct lines than valid runes.
func linesToRunes(oldLines, newLines []string) (oldRunes, newRunes []rune, lineArray []string, ok bool) {
	lineHash := make(map[string]rune, len(oldLines))
	encode := func(lines []string) ([]rune, bool) {
		out := make([]rune, len(lines))
		for i, line := range lines {
			r, seen := lineHash[line]
			if !seen {
				var valid bool
				r, valid = indexToRune(len(lineArray))
				if !valid {
					return nil, false
				}
				lineHash[line] = r
				lineArray = append(lineArray, line)
			}
			out[i] = r
		}
		return out, true
	}

	if oldRunes, ok = encode(oldLines); !ok {
		return nil, nil, nil, false
	}
	if newRunes, ok = encode(newLines); !ok {
		return nil, nil, nil, false
	}
	return oldRunes, newRunes, lineArray, true
}

// diffmatchpatch returns Diff.Text as string(runes), which replaces surrogates with U+FFFD. Indexes skip the surrogate block so every index survives the round
// trip.
const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
	surrogateLen = surrogateMax - surrogateMin + 1
)

func indexToRune(i int) (rune, bool) {
	if i < surrogateMin {
		return rune(i), true
	}
	r := rune(i + surrogateLen)
	if r > utf8.MaxRune {
		return 0, false
	}
	return r, true
}

func runeToIndex(r rune) int {
	if r > surrogateMax {
		return int(r) - surrogateLen
	}
	return int(r)
}

func decodeDiffs(diffs []diffmatchpatch.Diff, lineArray []string, capacity int) Sequence {
	ops := make(Sequence, 0, capacity)
	for _, d := range diffs {
		var kind Kind
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			kind = Removed
		case diffmatchpatch.DiffEqual:
			kind = Unchanged
		case diffmatchpatch.DiffInsert:
			kind = Added
		}
		for _, r := range d.Text {
			ops = append(ops, Op{Kind: kind, Line: lineArray[runeToIndex(r)]})
		}
	}
	return ops
}

// groupHunks reorders each hunk so its Removed ops precede its Added ops, keeping the relative order within each kind. This preserves both sides and the size
// of the edit script.
func groupHunks(ops Sequence) Sequence {
	out := make(Sequence, 0, len(ops))
	var added []Op
	for _, op := range ops {
		switch op.Kind {
		case Removed:
			out = append(out, op)
		case Added:
			added = append(added, op)
		case Unchanged:
			out = append(out, added...)
			added = added[:0]
			out = append(out, op)
		}
	}
	return append(out, added...)
}

// Package diff computes line-based diffs between a "left" and a "right" text and reports them.
//
// Representation: Compute returns a Sequence, an ordered slice of Op. Each Op carries one line (without its terminator) and a Kind:
//   - Removed: the line is only in the left text.
//   - Unchanged: the line is in both texts, in the same relative order.
//   - Added: the line is only in the right text.
//
// Invariants:
//   - The Removed and Unchanged lines, in order, are the left lines (Sequence.Left).
//   - The Added and Unchanged lines, in order, are the right lines (Sequence.Right).
//   - The script is minimal: the number of Unchanged ops is the length of a longest common subsequence of the two line lists.
//   - Within a hunk (a maximal run of non-Unchanged ops), every Removed op precedes every Added op.
//
// Consumers: Format renders a numbered report, Render does the same for terminals (optional color and truncation), and Summarize aggregates character counts.
// All three share one numbering rule, implemented by Counter: every op advances the number by one, except Added, which reuses the number of the op before it.
// A removed line and the line replacing it therefore share a number:
//
//	ops := diff.Compute("test\n4321\n", "test\nHello World!\n")
//	fmt.Print(diff.Format(ops))
//	// 1  test
//	// 2 -4321
//	// 2 +Hello World!
//	// 3
//
// Newlines: '\n' is the only line terminator. A trailing '\n' produces a final empty line, so "" and "\n" differ. A '\r' is part of the line it precedes.
//
// Everything in this package is pure and safe for concurrent use on independent inputs.
package diff

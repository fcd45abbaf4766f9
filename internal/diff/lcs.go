package diff

// lcsSequence aligns oldLines and newLines with the textbook longest-common-subsequence table. It needs O(N*M) time and memory, so Compute only falls back to it
// when the lines cannot be encoded for diffmatchpatch. Hunks are not grouped; callers run groupHunks.
func lcsSequence(oldLines, newLines []string) Sequence {
	// Common prefix and suffix never take part in an edit; keep them out of the table.
	prefix := 0
	for prefix < len(oldLines) && prefix < len(newLines) && oldLines[prefix] == newLines[prefix] {
		prefix++
	}
	suffix := 0
	for suffix < len(oldLines)-prefix && suffix < len(newLines)-prefix && oldLines[len(oldLines)-1-suffix] == newLines[len(newLines)-1-suffix] {
		suffix++
	}
	a := oldLines[prefix : len(oldLines)-suffix]
	b := newLines[prefix : len(newLines)-suffix]

	// table[i][j] is the LCS length of a[i:] and b[j:].
	table := make([][]int, len(a)+1)
	for i := range table {
		table[i] = make([]int, len(b)+1)
	}
	for i := len(a) - 1; i >= 0; i-- {
		for j := len(b) - 1; j >= 0; j-- {
			if a[i] == b[j] {
				table[i][j] = table[i+1][j+1] + 1
			} else {
				table[i][j] = max(table[i+1][j], table[i][j+1])
			}
		}
	}

	ops := make(Sequence, 0, len(oldLines)+len(newLines))
	for _, line := range oldLines[:prefix] {
		ops = append(ops, Op{Kind: Unchanged, Line: line})
	}
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			ops = append(ops, Op{Kind: Unchanged, Line: a[i]})
			i++
			j++
		case table[i+1][j] >= table[i][j+1]:
			ops = append(ops, Op{Kind: Removed, Line: a[i]})
			i++
		default:
			ops = append(ops, Op{Kind: Added, Line: b[j]})
			j++
		}
	}
	for ; i < len(a); i++ {
		ops = append(ops, Op{Kind: Removed, Line: a[i]})
	}
	for ; j < len(b); j++ {
		ops = append(ops, Op{Kind: Added, Line: b[j]})
	}
	for _, line := range oldLines[len(oldLines)-suffix:] {
		ops = append(ops, Op{Kind: Unchanged, Line: line})
	}
	return ops
}

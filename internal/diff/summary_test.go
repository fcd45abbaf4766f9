package diff

import (
	"encoding/json"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name  string
		left  string
		right string
		want  Summary
	}{
		{
			name:  "replaced line",
			left:  "test\n4321\nHello Nutek!\n",
			right: "test\nHello World!\nHello Nutek!\n",
			want:  Summary{Removed: 4, NotChanged: 16, Added: 12, Lines: 4},
		},
		{
			name:  "no common line",
			left:  "Hello World",
			right: "Hello Nutek!",
			want:  Summary{Removed: 11, NotChanged: 0, Added: 12, Lines: 1},
		},
		{
			name:  "code points not bytes",
			left:  "héllo\nsame",
			right: "🎶\nsame",
			want:  Summary{Removed: 5, NotChanged: 4, Added: 1, Lines: 2},
		},
		{
			name:  "empty",
			left:  "",
			right: "",
			want:  Summary{Lines: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Summarize(Compute(tt.left, tt.right)))
		})
	}
}

func TestSummarize_Identity(t *testing.T) {
	text := "alpha\nbeta\ngamma"
	s := Summarize(Compute(text, text))

	require.Zero(t, s.Removed)
	require.Zero(t, s.Added)
	require.Equal(t, utf8.RuneCountInString("alphabetagamma"), s.NotChanged)
	// Every op is Unchanged, so the counter ends at the number of lines.
	require.Equal(t, 3, s.Lines)
}

func TestSummarize_Conservation(t *testing.T) {
	left := "keep\nold one\nkeep too\nold two"
	right := "new\nkeep\nkeep too\nnew two\nnew three"
	s := Summarize(Compute(left, right))

	leftChars, rightChars := 0, 0
	for _, line := range SplitLines(left) {
		leftChars += utf8.RuneCountInString(line)
	}
	for _, line := range SplitLines(right) {
		rightChars += utf8.RuneCountInString(line)
	}
	require.Equal(t, leftChars, s.Removed+s.NotChanged)
	require.Equal(t, rightChars, s.Added+s.NotChanged)
}

func TestSummary_MapAndJSON(t *testing.T) {
	s := Summary{Removed: 4, NotChanged: 16, Added: 12, Lines: 4}

	require.Equal(t, map[string]int{"removed": 4, "not changed": 16, "added": 12, "lines": 4}, s.Map())

	b, err := json.Marshal(s)
	require.NoError(t, err)
	require.JSONEq(t, `{"removed":4,"not changed":16,"added":12,"lines":4}`, string(b))
}

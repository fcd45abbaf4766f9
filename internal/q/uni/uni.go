// Package uni measures and cuts text by terminal columns, one grapheme cluster at a time.
package uni

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"
)

// Options control width calculation. Currently only relevant for East Asian code points and their locale.
type Options struct {
	EastAsianWidth   bool // if true, treats certain East Asian code points as 2 wide (e.g., Chinese, Japanese, Korean). Use if the locale is one of CJK.
	TreatEmojiAsWide bool // Only considered if EastAsianWidth. If true, treats emoji as wide (2 columns).
}

// TextWidth returns the width of str for monospace fonts in terminals. If opts is nil, locale is assumed to be non-East Asian.
func TextWidth(str string, opts *Options) int {
	return condition(opts).StringWidth(str)
}

// Truncate returns str unchanged if it fits in width columns. Otherwise it returns the longest prefix of whole grapheme clusters that fits in width minus the width
// of tail, followed by tail. If tail alone is wider than width it is dropped. A non-positive width yields "".
func Truncate(str string, width int, tail string, opts *Options) string {
	if width <= 0 {
		return ""
	}
	cond := condition(opts)
	if cond.StringWidth(str) <= width {
		return str
	}

	tailWidth := cond.StringWidth(tail)
	if tailWidth > width {
		tail, tailWidth = "", 0
	}
	budget := width - tailWidth

	var b strings.Builder
	used := 0
	iter := graphemes.FromString(str)
	for iter.Next() {
		cluster := iter.Value()
		w := cond.StringWidth(cluster)
		if used+w > budget {
			break
		}
		used += w
		b.WriteString(cluster)
	}
	b.WriteString(tail)
	return b.String()
}

func condition(opts *Options) *runewidth.Condition {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	cond.StrictEmojiNeutral = true
	if opts == nil {
		return cond
	}

	cond.EastAsianWidth = opts.EastAsianWidth
	if opts.EastAsianWidth && opts.TreatEmojiAsWide {
		cond.StrictEmojiNeutral = false
	}
	return cond
}

// Package textnorm provides the text normalization shared by every stage of
// the pipeline: whitespace collapsing, zero-width character removal, and
// honorific stripping.
package textnorm

import (
	"regexp"
	"strings"
)

// zeroWidth strips zero-width spaces/joiners and BOMs that survive scraping.
var zeroWidth = strings.NewReplacer(
	"\u200b", "",
	"\u200c", "",
	"\u200d", "",
	"\ufeff", "",
)

// honorificRE matches a single leading honorific or title word.
var honorificRE = regexp.MustCompile(`(?i)^\s*(?:H\.E\.?|His Excellency|Her Excellency|Mr\.?|Mrs\.?|Ms\.?|Dr\.?|Prof\.?|President|Prime Minister|Secretary|Senator|Representative|Governor|Mayor|Ambassador|Chair(?:man|woman)?|Director|Minister|General|Admiral)\.?\s+`)

// Collapse squeezes all whitespace runs to single spaces and trims the ends.
func Collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Normalize removes zero-width characters and collapses whitespace.
func Normalize(s string) string {
	return Collapse(zeroWidth.Replace(s))
}

// StripHonorifics removes leading honorifics ("Mr.", "Dr.", "President",
// "H.E.", ...). Repeats until no honorific remains so stacked forms like
// "H.E. Mr. Xi Jinping" reduce to the bare name.
func StripHonorifics(s string) string {
	for {
		out := honorificRE.ReplaceAllString(s, "")
		if out == s {
			return strings.TrimSpace(out)
		}
		s = out
	}
}

// TokenCount reports the number of whitespace-separated tokens.
func TokenCount(s string) int {
	return len(strings.Fields(s))
}

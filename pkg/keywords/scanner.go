package keywords

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/coregx/ahocorasick"
)

// Result is the per-document outcome of a vocabulary scan.
type Result struct {
	// Counts maps keyword label to occurrence count, matched terms only.
	Counts map[string]int
	// Found lists matched labels in vocabulary order.
	Found []string
	// Total is the sum of all per-keyword occurrence counts, not the
	// number of distinct matched keywords.
	Total int
	// SlugCounts carries a count for every vocabulary term, zeros included,
	// keyed by the term slug for wide-table columns.
	SlugCounts map[string]int
}

// Scanner matches every vocabulary term against text in one automaton pass.
// Safe for concurrent use once built.
type Scanner struct {
	vocab    *Vocabulary
	ac       *ahocorasick.Automaton
	patterns []string
}

// NewScanner compiles the vocabulary into a case-insensitive automaton.
func NewScanner(v *Vocabulary) (*Scanner, error) {
	patterns := make([]string, len(v.Terms))
	for i, term := range v.Terms {
		patterns[i] = strings.ToLower(term.Label)
	}

	ac, err := ahocorasick.NewBuilder().
		AddStrings(patterns).
		SetMatchKind(ahocorasick.LeftmostLongest).
		SetPrefilter(true).
		Build()
	if err != nil {
		return nil, fmt.Errorf("keywords: compiling vocabulary automaton: %w", err)
	}

	return &Scanner{vocab: v, ac: ac, patterns: patterns}, nil
}

// Vocabulary returns the scanner's vocabulary.
func (s *Scanner) Vocabulary() *Vocabulary { return s.vocab }

// Scan counts word-boundary-anchored occurrences of every term in text.
// Boundaries are word-character transitions: "Taiwan's" counts, "Taiwanese"
// does not.
func (s *Scanner) Scan(text string) Result {
	haystack := strings.ToLower(text)
	counts := make([]int, len(s.vocab.Terms))

	for _, m := range s.ac.FindAllOverlapping([]byte(haystack)) {
		if m.PatternID < 0 || m.PatternID >= len(counts) {
			continue
		}
		if !boundedMatch(haystack, m.Start, m.End) {
			continue
		}
		counts[m.PatternID]++
	}

	res := Result{
		Counts:     make(map[string]int),
		SlugCounts: make(map[string]int, len(s.vocab.Terms)),
	}
	for i, term := range s.vocab.Terms {
		res.SlugCounts[term.Slug] = counts[i]
		if counts[i] > 0 {
			res.Counts[term.Label] = counts[i]
			res.Found = append(res.Found, term.Label)
			res.Total += counts[i]
		}
	}
	return res
}

// boundedMatch checks that the match is not embedded in a longer word.
func boundedMatch(s string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:start])
		if isWordRune(r) {
			return false
		}
	}
	if end < len(s) {
		r, _ := utf8.DecodeRuneInString(s[end:])
		if isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

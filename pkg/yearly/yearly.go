// Package yearly produces per-year top-N frequency tables of noun phrases
// and cleaned entities.
//
// Unlike the aggregation engine, documents with an unparseable date are not
// dropped here: they bucket into a literal "unknown" year group.
package yearly

import (
	"sort"
	"strings"
	"unicode"

	"github.com/speechlens/speechlens/pkg/corpus"
	"github.com/speechlens/speechlens/pkg/nlp"
	"github.com/speechlens/speechlens/pkg/textnorm"
)

// Entry is one (item, count) pair of a frequency table.
type Entry struct {
	Item  string
	Count int
}

// Report is the per-year result.
type Report struct {
	NounPhrases []Entry
	Entities    []Entry
}

// DefaultTopN matches the historical export size.
const DefaultTopN = 200

// Analyze partitions documents by year label and counts noun phrases and
// cleaned entities per group. Each table holds the top-N items sorted by
// count descending, ties broken by first-seen order within the year.
func Analyze(docs []corpus.Document, provider nlp.Provider, topN int) map[string]Report {
	if topN <= 0 {
		topN = DefaultTopN
	}

	phrases := make(map[string]*counter)
	entities := make(map[string]*counter)

	for i := range docs {
		doc := &docs[i]
		year := doc.YearLabel()

		if phrases[year] == nil {
			phrases[year] = newCounter()
			entities[year] = newCounter()
		}

		for _, np := range provider.NounPhrases(doc.Content) {
			np = textnorm.Collapse(strings.ToLower(np))
			if np != "" {
				phrases[year].add(np)
			}
		}
		for _, ent := range provider.ChunkEntities(doc.Content) {
			if cleaned := CleanEntity(ent.Text); cleaned != "" {
				entities[year].add(cleaned)
			}
		}
	}

	reports := make(map[string]Report, len(phrases))
	for year, pc := range phrases {
		reports[year] = Report{
			NounPhrases: pc.top(topN),
			Entities:    entities[year].top(topN),
		}
	}
	return reports
}

// CleanEntity normalizes an extracted entity span: strips non-alphanumeric
// edges, keeps only letters, whitespace, and hyphens, collapses whitespace,
// and rejects short or repeated-character noise. Returns "" for rejects.
func CleanEntity(raw string) string {
	s := strings.TrimFunc(raw, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsSpace(r) || r == '-' {
			b.WriteRune(r)
		}
	}
	s = textnorm.Collapse(b.String())

	if len(s) < 3 {
		return ""
	}

	// Noise filter: reject spans where one character dominates the
	// alphabetic content ("aaaaaa", "-----a").
	freq := make(map[rune]int)
	total := 0
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) {
			freq[r]++
			total++
		}
	}
	if total == 0 {
		return ""
	}
	for _, n := range freq {
		if float64(n)/float64(total) > 0.8 {
			return ""
		}
	}

	return s
}

// counter accumulates counts while remembering first-seen order, so ties
// rank deterministically.
type counter struct {
	counts map[string]int
	order  map[string]int
	next   int
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int), order: make(map[string]int)}
}

func (c *counter) add(item string) {
	if _, seen := c.counts[item]; !seen {
		c.order[item] = c.next
		c.next++
	}
	c.counts[item]++
}

func (c *counter) top(n int) []Entry {
	entries := make([]Entry, 0, len(c.counts))
	for item, count := range c.counts {
		entries = append(entries, Entry{Item: item, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return c.order[entries[i].Item] < c.order[entries[j].Item]
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

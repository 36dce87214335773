// Package aggregate turns annotated documents into grouped statistics and
// the compact lookup cache consumed by visualization.
//
// Grouping counts distinct document ids, not raw occurrence sums, so a
// verbose document never outweighs a terse one. Per-(year, country) totals
// are computed from the full document set, not only from documents with
// hits, so downstream percentage-of-corpus math stays correct. Documents
// with an unknown year are excluded from year-keyed aggregates but remain
// in per-document outputs.
package aggregate

import (
	"log/slog"
	"sort"

	"github.com/speechlens/speechlens/pkg/corpus"
	"github.com/speechlens/speechlens/pkg/keywords"
)

// CountRow is one (year, keyword, country) group.
type CountRow struct {
	Year      int
	KeywordID string
	Country   string
	Count     int // distinct documents with a positive hit
}

// TotalRow is one (year, country) group over the full document set.
type TotalRow struct {
	Year    int
	Country string
	Total   int // distinct documents regardless of keyword
}

// YearKeywordRow is one (year, keyword label) group for the grouped count
// table.
type YearKeywordRow struct {
	Year    int
	Keyword string
	Count   int
}

// Result bundles every aggregate output of a run.
type Result struct {
	Counts       []CountRow
	Totals       []TotalRow
	YearKeywords []YearKeywordRow
	Cache        Cache
}

// Aggregate groups annotated documents. Hits whose keyword label cannot be
// mapped to a vocabulary id are logged and skipped; they never abort the
// run.
func Aggregate(docs []corpus.Document, vocab *keywords.Vocabulary, log *slog.Logger) Result {
	type groupKey struct {
		year      int
		keywordID string
		country   string
	}
	type ykKey struct {
		year    int
		keyword string
	}
	type tKey struct {
		year    int
		country string
	}

	countDocs := make(map[groupKey]map[string]struct{})
	ykDocs := make(map[ykKey]map[string]struct{})
	totalDocs := make(map[tKey]map[string]struct{})

	cache := Cache{
		IDCountry: make(map[string]string),
		Keywords:  make(map[string]string),
	}
	for _, term := range vocab.Terms {
		cache.Keywords[term.ID] = term.Label
	}

	for i := range docs {
		doc := &docs[i]
		cache.IDCountry[doc.ID] = doc.Country

		if doc.Year == corpus.YearUnknown {
			continue
		}

		tk := tKey{doc.Year, doc.Country}
		if totalDocs[tk] == nil {
			totalDocs[tk] = make(map[string]struct{})
		}
		totalDocs[tk][doc.ID] = struct{}{}

		for _, label := range doc.KeywordsFound {
			id, ok := vocab.IDFor(label)
			if !ok {
				log.Warn("dropping hit with unknown keyword", "keyword", label, "doc", doc.ID)
				continue
			}

			gk := groupKey{doc.Year, id, doc.Country}
			if countDocs[gk] == nil {
				countDocs[gk] = make(map[string]struct{})
			}
			countDocs[gk][doc.ID] = struct{}{}

			yk := ykKey{doc.Year, label}
			if ykDocs[yk] == nil {
				ykDocs[yk] = make(map[string]struct{})
			}
			ykDocs[yk][doc.ID] = struct{}{}
		}
	}

	res := Result{Cache: cache}

	for k, ids := range countDocs {
		res.Counts = append(res.Counts, CountRow{k.year, k.keywordID, k.country, len(ids)})
	}
	sort.Slice(res.Counts, func(i, j int) bool {
		a, b := res.Counts[i], res.Counts[j]
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		if a.KeywordID != b.KeywordID {
			return a.KeywordID < b.KeywordID
		}
		return a.Country < b.Country
	})

	for k, ids := range totalDocs {
		res.Totals = append(res.Totals, TotalRow{k.year, k.country, len(ids)})
	}
	sort.Slice(res.Totals, func(i, j int) bool {
		a, b := res.Totals[i], res.Totals[j]
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		return a.Country < b.Country
	})

	for k, ids := range ykDocs {
		res.YearKeywords = append(res.YearKeywords, YearKeywordRow{k.year, k.keyword, len(ids)})
	}
	sort.Slice(res.YearKeywords, func(i, j int) bool {
		a, b := res.YearKeywords[i], res.YearKeywords[j]
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		return a.Keyword < b.Keyword
	})

	for _, row := range res.Counts {
		res.Cache.Counts = append(res.Cache.Counts, CacheCount{
			Year: row.Year, Keyword: row.KeywordID, Country: row.Country, Count: row.Count,
		})
	}
	for _, row := range res.Totals {
		res.Cache.Totals = append(res.Cache.Totals, CacheTotal{
			Year: row.Year, Country: row.Country, Total: row.Total,
		})
	}

	return res
}

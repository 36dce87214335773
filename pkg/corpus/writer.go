package corpus

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// WriteWide emits one row per document: the original columns followed by
// the annotation columns and one occurrence-count column per keyword slug.
func (c *Corpus) WriteWide(w io.Writer, slugs []string) error {
	cw := csv.NewWriter(w)

	header := append([]string(nil), c.Header...)
	header = append(header, "speaker", "year", "keywords_found", "keywords_count")
	for _, slug := range slugs {
		header = append(header, "count_"+slug)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("corpus: writing wide header: %w", err)
	}

	for i := range c.Docs {
		doc := &c.Docs[i]

		row := append([]string(nil), doc.row...)
		for len(row) < len(c.Header) {
			row = append(row, "")
		}
		row = append(row,
			doc.Speaker,
			doc.YearLabel(),
			strings.Join(doc.KeywordsFound, ";"),
			fmt.Sprintf("%d", doc.KeywordsCount),
		)
		for _, slug := range slugs {
			row = append(row, fmt.Sprintf("%d", doc.KeywordCounts[slug]))
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("corpus: writing wide row for %s: %w", doc.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteHits emits the long (document, keyword, year) hit table.
func WriteHits(w io.Writer, hits []Hit) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"id", "keyword", "year"}); err != nil {
		return fmt.Errorf("corpus: writing hits header: %w", err)
	}
	for _, h := range hits {
		if err := cw.Write([]string{h.DocID, h.Keyword, YearLabel(h.Year)}); err != nil {
			return fmt.Errorf("corpus: writing hit row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

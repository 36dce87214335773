package aggregate

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
)

// Cache is the compact lookup structure serialized for downstream readers.
// The id->country and keyword-id->label maps let a consumer avoid re-joining
// the large hit tables.
type Cache struct {
	IDCountry map[string]string `json:"id_country"`
	Keywords  map[string]string `json:"keywords"`
	Counts    []CacheCount      `json:"counts"`
	Totals    []CacheTotal      `json:"total_speeches"`
}

// CacheCount is one (year, keyword, country) entry of the cache.
type CacheCount struct {
	Year    int    `json:"year"`
	Keyword string `json:"keyword"`
	Country string `json:"country"`
	Count   int    `json:"count"`
}

// CacheTotal is one (year, country) total entry of the cache.
type CacheTotal struct {
	Year    int    `json:"year"`
	Country string `json:"country"`
	Total   int    `json:"total_speeches"`
}

// WriteJSON serializes the cache.
func (c Cache) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("aggregate: encoding cache: %w", err)
	}
	return nil
}

// WriteYearKeywordCSV emits the grouped (year, keyword, speech_count) table.
func WriteYearKeywordCSV(w io.Writer, rows []YearKeywordRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"year", "keyword", "speech_count"}); err != nil {
		return fmt.Errorf("aggregate: writing counts header: %w", err)
	}
	for _, r := range rows {
		rec := []string{fmt.Sprintf("%d", r.Year), r.Keyword, fmt.Sprintf("%d", r.Count)}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("aggregate: writing counts row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

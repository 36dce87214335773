// Package corpus holds the document model and the tabular I/O around it:
// CSV reading with header-synonym detection, date-to-year derivation, and
// the wide/long output tables.
package corpus

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// YearUnknown is the sentinel for documents whose date cannot be parsed.
const YearUnknown = 0

// Document is one speech record. Core fields are immutable once loaded;
// annotation fields are appended by the pipeline.
type Document struct {
	ID      string
	Title   string
	Content string
	Date    string // raw date text as loaded
	Country string
	Year    int // derived; YearUnknown when the date does not parse

	// Annotations.
	Speaker       string
	KeywordsFound []string       // matched labels, vocabulary order
	KeywordsCount int            // total occurrences across all keywords
	KeywordCounts map[string]int // slug -> occurrence count

	row []string // original CSV row for wide-table passthrough
}

// YearLabel renders the year for year-keyed outputs, "unknown" included.
func (d *Document) YearLabel() string {
	return YearLabel(d.Year)
}

// YearLabel formats a year value, mapping the sentinel to "unknown".
func YearLabel(year int) string {
	if year == YearUnknown {
		return "unknown"
	}
	return fmt.Sprintf("%d", year)
}

// Hit is one row of the long (document, keyword) table.
type Hit struct {
	DocID   string
	Keyword string
	Year    int
}

// Corpus is a loaded document set plus its original header.
type Corpus struct {
	Header []string
	Docs   []Document
}

// Accepted header synonyms, matched case-insensitively.
var (
	contentHeaders = []string{"content", "text", "transcript", "body", "speech"}
	dateHeaders    = []string{"date", "datetime", "time"}
	titleHeaders   = []string{"title"}
	idHeaders      = []string{"id"}
	countryHeaders = []string{"country"}
)

// ReadCSV loads a corpus table. The content column is required; a missing
// content column is a fatal input error reported with the detected and
// accepted names. Rows missing an id get a generated one. Unparseable dates
// are recovered as YearUnknown, never fatal.
func ReadCSV(r io.Reader, log *slog.Logger) (*Corpus, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("corpus: reading header: %w", err)
	}

	contentCol := findColumn(header, contentHeaders)
	if contentCol < 0 {
		return nil, fmt.Errorf("corpus: no content column found; got %v, accepted %v", header, contentHeaders)
	}
	idCol := findColumn(header, idHeaders)
	titleCol := findColumn(header, titleHeaders)
	dateCol := findColumn(header, dateHeaders)
	countryCol := findColumn(header, countryHeaders)

	c := &Corpus{Header: append([]string(nil), header...)}

	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("corpus: reading row %d: %w", len(c.Docs)+2, err)
		}

		doc := Document{
			ID:      field(rec, idCol),
			Title:   field(rec, titleCol),
			Content: field(rec, contentCol),
			Date:    field(rec, dateCol),
			Country: field(rec, countryCol),
			row:     rec,
		}
		if doc.ID == "" {
			doc.ID = uuid.NewString()
		}
		doc.Year = ParseYear(doc.Date)
		if doc.Date != "" && doc.Year == YearUnknown {
			log.Debug("unparseable date", "id", doc.ID, "date", doc.Date)
		}

		c.Docs = append(c.Docs, doc)
	}

	return c, nil
}

// dateLayouts are tried in order; the first parse wins.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006/01/02",
	"01/02/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"02 January 2006",
}

// ParseYear derives the calendar year from a raw date string, returning
// YearUnknown when nothing parses.
func ParseYear(raw string) int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return YearUnknown
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Year()
		}
	}
	return YearUnknown
}

func field(rec []string, col int) string {
	if col < 0 || col >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[col])
}

func findColumn(header []string, accepted []string) int {
	for _, want := range accepted {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), want) {
				return i
			}
		}
	}
	return -1
}

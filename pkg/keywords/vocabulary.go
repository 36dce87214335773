// Package keywords detects controlled-vocabulary terms in document text.
//
// The vocabulary is an ordered set of (id, label) pairs; every label is
// compiled into a single Aho-Corasick automaton and matched with word
// boundaries on both ends, so "Taiwan" never matches inside "Taiwanese".
// Suffixed forms are deliberately not folded: the vocabulary is strict.
package keywords

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
)

// Term is one vocabulary entry. ID is the stable external join key used by
// aggregates; Slug keys the per-keyword count column in the wide table.
type Term struct {
	ID    string
	Label string
	Slug  string
}

// Vocabulary is an ordered, label-deduplicated term set.
type Vocabulary struct {
	Terms []Term

	byLabel map[string]int // lowercased label -> index into Terms
}

// idHeaders and labelHeaders are the accepted column-name synonyms,
// matched case-insensitively.
var (
	idHeaders    = []string{"keyword_id", "id"}
	labelHeaders = []string{"keyword", "label", "term"}
)

// ParseCSV reads a vocabulary table with a header row. Rows with an empty
// label are skipped with a warning; duplicate labels (case-insensitive)
// keep the first occurrence. A missing label column is fatal.
func ParseCSV(r io.Reader, log *slog.Logger) (*Vocabulary, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("keywords: reading vocabulary header: %w", err)
	}

	idCol := findColumn(header, idHeaders)
	labelCol := findColumn(header, labelHeaders)
	if labelCol < 0 {
		return nil, fmt.Errorf("keywords: no label column found; got %v, accepted %v", header, labelHeaders)
	}

	v := &Vocabulary{byLabel: make(map[string]int)}
	used := make(map[string]bool)

	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("keywords: reading vocabulary row: %w", err)
		}
		if labelCol >= len(rec) {
			log.Warn("skipping malformed vocabulary row", "row", rec)
			continue
		}

		label := strings.TrimSpace(rec[labelCol])
		if label == "" || strings.EqualFold(label, "nan") {
			log.Warn("skipping vocabulary row with empty label", "row", rec)
			continue
		}
		if _, dup := v.byLabel[strings.ToLower(label)]; dup {
			log.Warn("skipping duplicate vocabulary label", "label", label)
			continue
		}

		id := ""
		if idCol >= 0 && idCol < len(rec) {
			id = strings.TrimSpace(rec[idCol])
		}

		slug := uniqueSlug(label, used)
		if id == "" {
			id = slug
		}

		v.byLabel[strings.ToLower(label)] = len(v.Terms)
		v.Terms = append(v.Terms, Term{ID: id, Label: label, Slug: slug})
	}

	if len(v.Terms) == 0 {
		return nil, fmt.Errorf("keywords: vocabulary is empty")
	}
	return v, nil
}

// FromLabels builds a vocabulary directly from labels; ids default to slugs.
func FromLabels(labels []string) *Vocabulary {
	v := &Vocabulary{byLabel: make(map[string]int)}
	used := make(map[string]bool)
	for _, label := range labels {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		if _, dup := v.byLabel[strings.ToLower(label)]; dup {
			continue
		}
		slug := uniqueSlug(label, used)
		v.byLabel[strings.ToLower(label)] = len(v.Terms)
		v.Terms = append(v.Terms, Term{ID: slug, Label: label, Slug: slug})
	}
	return v
}

// IDFor maps a label back to its term id; ok is false for unknown labels.
func (v *Vocabulary) IDFor(label string) (string, bool) {
	idx, ok := v.byLabel[strings.ToLower(label)]
	if !ok {
		return "", false
	}
	return v.Terms[idx].ID, true
}

var nonAlnumRunRE = regexp.MustCompile(`[^0-9a-z]+`)

// Slug lowercases the label and collapses non-alphanumeric runs to a single
// underscore.
func Slug(label string) string {
	s := nonAlnumRunRE.ReplaceAllString(strings.ToLower(label), "_")
	s = strings.Trim(s, "_")
	if s == "" {
		return "kw"
	}
	return s
}

// uniqueSlug disambiguates collisions with a numeric suffix.
func uniqueSlug(label string, used map[string]bool) string {
	base := Slug(label)
	slug := base
	for i := 1; used[slug]; i++ {
		slug = fmt.Sprintf("%s_%d", base, i)
	}
	used[slug] = true
	return slug
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

// Package store provides SQLite-backed persistence for pipeline results.
// Uses ncruces/go-sqlite3/driver which provides a database/sql interface.
//
// The store assumes single-writer batch execution: a re-run replaces the
// previous run's rows, last writer wins. There is no locking across
// concurrent pipeline invocations.
package store

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/speechlens/speechlens/pkg/aggregate"
	"github.com/speechlens/speechlens/pkg/corpus"
)

// Store is the SQLite-backed results store.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS documents (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    country TEXT NOT NULL,
    date TEXT NOT NULL,
    year INTEGER,
    speaker TEXT NOT NULL,
    keywords_found TEXT NOT NULL,
    keywords_count INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS hits (
    doc_id TEXT NOT NULL,
    keyword TEXT NOT NULL,
    year INTEGER,
    PRIMARY KEY (doc_id, keyword)
);

CREATE TABLE IF NOT EXISTS year_keyword_country_counts (
    year INTEGER NOT NULL,
    keyword_id TEXT NOT NULL,
    country TEXT NOT NULL,
    doc_count INTEGER NOT NULL,
    PRIMARY KEY (year, keyword_id, country)
);

CREATE TABLE IF NOT EXISTS year_country_totals (
    year INTEGER NOT NULL,
    country TEXT NOT NULL,
    total_docs INTEGER NOT NULL,
    PRIMARY KEY (year, country)
);

CREATE INDEX IF NOT EXISTS idx_hits_keyword ON hits(keyword);
CREATE INDEX IF NOT EXISTS idx_documents_year ON documents(year);
`

// Open opens (or creates) the results database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("store: opening %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: applying schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun replaces the persisted results with the given run's output.
func (s *Store) SaveRun(c *corpus.Corpus, hits []corpus.Hit, agg aggregate.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("store: beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"documents", "hits", "year_keyword_country_counts", "year_country_totals"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("store: clearing %s: %w", table, err)
		}
	}

	for i := range c.Docs {
		doc := &c.Docs[i]
		_, err := tx.Exec(
			`INSERT INTO documents (id, title, country, date, year, speaker, keywords_found, keywords_count)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			doc.ID, doc.Title, doc.Country, doc.Date, yearOrNull(doc.Year),
			doc.Speaker, strings.Join(doc.KeywordsFound, ";"), doc.KeywordsCount,
		)
		if err != nil {
			return fmt.Errorf("store: inserting document %s: %w", doc.ID, err)
		}
	}

	for _, h := range hits {
		_, err := tx.Exec(
			`INSERT OR REPLACE INTO hits (doc_id, keyword, year) VALUES (?, ?, ?)`,
			h.DocID, h.Keyword, yearOrNull(h.Year),
		)
		if err != nil {
			return fmt.Errorf("store: inserting hit (%s, %s): %w", h.DocID, h.Keyword, err)
		}
	}

	for _, row := range agg.Counts {
		_, err := tx.Exec(
			`INSERT INTO year_keyword_country_counts (year, keyword_id, country, doc_count)
			 VALUES (?, ?, ?, ?)`,
			row.Year, row.KeywordID, row.Country, row.Count,
		)
		if err != nil {
			return fmt.Errorf("store: inserting count row: %w", err)
		}
	}

	for _, row := range agg.Totals {
		_, err := tx.Exec(
			`INSERT INTO year_country_totals (year, country, total_docs) VALUES (?, ?, ?)`,
			row.Year, row.Country, row.Total,
		)
		if err != nil {
			return fmt.Errorf("store: inserting total row: %w", err)
		}
	}

	return tx.Commit()
}

// CountDocuments reports the number of persisted documents.
func (s *Store) CountDocuments() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM documents").Scan(&n); err != nil {
		return 0, fmt.Errorf("store: counting documents: %w", err)
	}
	return n, nil
}

// HitsForKeyword returns the document ids persisted for one keyword label.
func (s *Store) HitsForKeyword(keyword string) ([]string, error) {
	rows, err := s.db.Query("SELECT doc_id FROM hits WHERE keyword = ? ORDER BY doc_id", keyword)
	if err != nil {
		return nil, fmt.Errorf("store: querying hits: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("store: scanning hit: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func yearOrNull(year int) any {
	if year == corpus.YearUnknown {
		return nil
	}
	return year
}

package yearly

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// WriteReports writes two CSV files per year group into dir, named by the
// year literal (or "unknown"): <year>_noun_phrases.csv and
// <year>_entities.csv.
func WriteReports(dir string, reports map[string]Report) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("yearly: creating output dir: %w", err)
	}

	for year, report := range reports {
		npPath := filepath.Join(dir, year+"_noun_phrases.csv")
		if err := writeTable(npPath, "noun_phrase", report.NounPhrases); err != nil {
			return err
		}
		entPath := filepath.Join(dir, year+"_entities.csv")
		if err := writeTable(entPath, "entity", report.Entities); err != nil {
			return err
		}
	}
	return nil
}

func writeTable(path, column string, entries []Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("yearly: creating %s: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write([]string{column, "count"}); err != nil {
		return fmt.Errorf("yearly: writing %s: %w", path, err)
	}
	for _, e := range entries {
		if err := cw.Write([]string{e.Item, fmt.Sprintf("%d", e.Count)}); err != nil {
			return fmt.Errorf("yearly: writing %s: %w", path, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

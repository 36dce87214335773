// Command speechlens runs the batch annotation pipeline: it loads a speech
// corpus and a keyword vocabulary, attributes speakers, scans keywords,
// aggregates, and writes the output tables plus the compact JSON cache.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/speechlens/speechlens/internal/config"
	"github.com/speechlens/speechlens/internal/logger"
	"github.com/speechlens/speechlens/internal/store"
	"github.com/speechlens/speechlens/pkg/aggregate"
	"github.com/speechlens/speechlens/pkg/corpus"
	"github.com/speechlens/speechlens/pkg/keywords"
	"github.com/speechlens/speechlens/pkg/pipeline"
	"github.com/speechlens/speechlens/pkg/yearly"
)

func main() {
	log := logger.New("speechlens")

	cfg, err := config.Load()
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if err := run(cfg, log); err != nil {
		log.Error("pipeline failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Run, log *slog.Logger) error {
	vocabFile, err := os.Open(cfg.VocabularyPath)
	if err != nil {
		return fmt.Errorf("opening vocabulary: %w", err)
	}
	vocab, err := keywords.ParseCSV(vocabFile, log)
	vocabFile.Close()
	if err != nil {
		return err
	}
	log.Info("vocabulary loaded", "terms", len(vocab.Terms))

	corpusFile, err := os.Open(cfg.CorpusPath)
	if err != nil {
		return fmt.Errorf("opening corpus: %w", err)
	}
	c, err := corpus.ReadCSV(corpusFile, log)
	corpusFile.Close()
	if err != nil {
		return err
	}
	log.Info("corpus loaded", "documents", len(c.Docs))

	p, err := pipeline.New(vocab, pipeline.Config{
		Backend:        cfg.NLPBackend,
		RequireBackend: cfg.RequireBackend,
		TopN:           cfg.TopN,
		Logger:         log,
	})
	if err != nil {
		return err
	}

	results := p.Run(c)

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	slugs := make([]string, len(vocab.Terms))
	for i, term := range vocab.Terms {
		slugs[i] = term.Slug
	}

	if err := writeFile(cfg.OutputDir, "speeches_processed.csv", func(f *os.File) error {
		return c.WriteWide(f, slugs)
	}); err != nil {
		return err
	}
	if err := writeFile(cfg.OutputDir, "speech_keyword_hits.csv", func(f *os.File) error {
		return corpus.WriteHits(f, results.Hits)
	}); err != nil {
		return err
	}
	if err := writeFile(cfg.OutputDir, "keyword_year_counts.csv", func(f *os.File) error {
		return aggregate.WriteYearKeywordCSV(f, results.Aggregates.YearKeywords)
	}); err != nil {
		return err
	}
	if err := writeFile(cfg.OutputDir, "viz_cache.json", func(f *os.File) error {
		return results.Aggregates.Cache.WriteJSON(f)
	}); err != nil {
		return err
	}

	if err := yearly.WriteReports(filepath.Join(cfg.OutputDir, "yearly"), results.Yearly); err != nil {
		return err
	}

	if cfg.DBPath != "" {
		db, err := store.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.SaveRun(c, results.Hits, results.Aggregates); err != nil {
			return err
		}
		log.Info("results persisted", "db", cfg.DBPath)
	}

	log.Info("outputs written", "dir", cfg.OutputDir)
	return nil
}

func writeFile(dir, name string, write func(*os.File) error) error {
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Package pipeline wires the annotation stages together: speaker
// attribution, vocabulary scanning, aggregation, and the parallel yearly
// lexical frequency path.
package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/speechlens/speechlens/pkg/aggregate"
	"github.com/speechlens/speechlens/pkg/corpus"
	"github.com/speechlens/speechlens/pkg/keywords"
	"github.com/speechlens/speechlens/pkg/nlp"
	"github.com/speechlens/speechlens/pkg/nlp/heuristic"
	"github.com/speechlens/speechlens/pkg/nlp/prosenlp"
	"github.com/speechlens/speechlens/pkg/speaker"
	"github.com/speechlens/speechlens/pkg/yearly"
)

// NLP backend names accepted by Config.Backend.
const (
	BackendProse     = "prose"
	BackendHeuristic = "heuristic"
)

// Config controls pipeline construction.
type Config struct {
	// Backend selects the NLP provider; defaults to BackendProse.
	Backend string
	// RequireBackend makes an unavailable backend fatal instead of
	// degrading to the heuristic provider.
	RequireBackend bool
	// TopN bounds the yearly frequency tables.
	TopN int
	// Logger receives progress and data-quality warnings.
	Logger *slog.Logger
}

// Results bundles every output of one batch run.
type Results struct {
	Hits       []corpus.Hit
	Aggregates aggregate.Result
	Yearly     map[string]yearly.Report
}

// Pipeline is the single-threaded batch annotator. One instance per run.
type Pipeline struct {
	provider nlp.Provider
	resolver *speaker.Resolver
	scanner  *keywords.Scanner
	vocab    *keywords.Vocabulary
	topN     int
	log      *slog.Logger
}

// New builds a pipeline for the given vocabulary. Backend selection happens
// here: when the full pipeline cannot be constructed the policy decides
// between degrading to the heuristic provider and failing fast.
func New(vocab *keywords.Vocabulary, cfg Config) (*Pipeline, error) {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	provider, err := selectProvider(cfg, log)
	if err != nil {
		return nil, err
	}

	scanner, err := keywords.NewScanner(vocab)
	if err != nil {
		return nil, err
	}

	topN := cfg.TopN
	if topN <= 0 {
		topN = yearly.DefaultTopN
	}

	resolver := speaker.NewResolver(provider)
	resolver.Logger = log

	return &Pipeline{
		provider: provider,
		resolver: resolver,
		scanner:  scanner,
		vocab:    vocab,
		topN:     topN,
		log:      log,
	}, nil
}

func selectProvider(cfg Config, log *slog.Logger) (nlp.Provider, error) {
	backend := cfg.Backend
	if backend == "" {
		backend = BackendProse
	}

	switch backend {
	case BackendHeuristic:
		return heuristic.New(), nil
	case BackendProse:
		p, err := prosenlp.New()
		if err == nil {
			return p, nil
		}
		if cfg.RequireBackend {
			return nil, fmt.Errorf("pipeline: required NLP backend %q unavailable: %w", backend, err)
		}
		log.Warn("full NLP backend unavailable, degrading to heuristic provider", "error", err)
		return heuristic.New(), nil
	default:
		return nil, fmt.Errorf("pipeline: unknown NLP backend %q (want %q or %q)", backend, BackendProse, BackendHeuristic)
	}
}

// Provider exposes the bound NLP provider.
func (p *Pipeline) Provider() nlp.Provider { return p.provider }

// Run annotates every document in place, then aggregates and runs the
// yearly analysis. Per-document extraction misses are empty values, never
// errors; a single document cannot abort the run.
func (p *Pipeline) Run(c *corpus.Corpus) *Results {
	res := &Results{}

	for i := range c.Docs {
		doc := &c.Docs[i]

		doc.Speaker = p.resolver.Resolve(doc.Title, doc.Content)

		scan := p.scanner.Scan(doc.Content)
		doc.KeywordsFound = scan.Found
		doc.KeywordsCount = scan.Total
		doc.KeywordCounts = scan.SlugCounts

		for _, label := range scan.Found {
			res.Hits = append(res.Hits, corpus.Hit{DocID: doc.ID, Keyword: label, Year: doc.Year})
		}

		if doc.Speaker == "" {
			p.log.Debug("no speaker resolved", "id", doc.ID, "title", doc.Title)
		}
	}

	res.Aggregates = aggregate.Aggregate(c.Docs, p.vocab, p.log)
	res.Yearly = yearly.Analyze(c.Docs, p.provider, p.topN)

	p.log.Info("pipeline run complete",
		"documents", len(c.Docs),
		"hits", len(res.Hits),
		"year_groups", len(res.Yearly))

	return res
}

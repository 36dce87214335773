// Package config loads pipeline configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Run holds configuration for one batch pipeline invocation.
type Run struct {
	CorpusPath     string // input speeches CSV
	VocabularyPath string // keyword vocabulary CSV
	OutputDir      string // directory for tables, yearly reports, and cache
	DBPath         string // SQLite results database; empty disables persistence

	NLPBackend     string // "prose" or "heuristic"
	RequireBackend bool   // fail fast when the backend cannot load
	TopN           int    // yearly table size
}

// Load builds a Run config from environment variables.
func Load() (*Run, error) {
	requireBackend, err := getBool("SPEECHLENS_NLP_REQUIRE", false)
	if err != nil {
		return nil, err
	}
	topN, err := getInt("SPEECHLENS_TOP_N", 200)
	if err != nil {
		return nil, err
	}

	c := &Run{
		CorpusPath:     getEnv("SPEECHLENS_CORPUS", ""),
		VocabularyPath: getEnv("SPEECHLENS_VOCABULARY", ""),
		OutputDir:      getEnv("SPEECHLENS_OUT", "out"),
		DBPath:         getEnv("SPEECHLENS_DB", ""),
		NLPBackend:     getEnv("SPEECHLENS_NLP_BACKEND", "prose"),
		RequireBackend: requireBackend,
		TopN:           topN,
	}

	if c.CorpusPath == "" {
		return nil, fmt.Errorf("SPEECHLENS_CORPUS must point to the input corpus CSV")
	}
	if c.VocabularyPath == "" {
		return nil, fmt.Errorf("SPEECHLENS_VOCABULARY must point to the keyword CSV")
	}
	if c.TopN <= 0 {
		return nil, fmt.Errorf("SPEECHLENS_TOP_N must be positive")
	}
	switch c.NLPBackend {
	case "prose", "heuristic":
	default:
		return nil, fmt.Errorf("SPEECHLENS_NLP_BACKEND must be \"prose\" or \"heuristic\", got %q", c.NLPBackend)
	}

	return c, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(v)
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, raw)
	}
	return n, nil
}

func getBool(key string, fallback bool) (bool, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean, got %q", key, raw)
	}
	return b, nil
}

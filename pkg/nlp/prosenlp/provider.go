// Package prosenlp implements the nlp.Provider port on top of the prose
// statistical pipeline: averaged-perceptron POS tagging and chunked NER.
package prosenlp

import (
	"fmt"

	prose "github.com/jdkato/prose/v2"

	"github.com/speechlens/speechlens/pkg/nlp"
)

// Provider is the full-pipeline NLP backend.
type Provider struct{}

// New constructs the provider and probes the underlying model once so that
// an unusable installation surfaces at startup rather than mid-corpus.
func New() (*Provider, error) {
	if _, err := prose.NewDocument("probe", prose.WithExtraction(false)); err != nil {
		return nil, fmt.Errorf("prosenlp: model unavailable: %w", err)
	}
	return &Provider{}, nil
}

// Tag implements nlp.Provider.
func (p *Provider) Tag(text string) []nlp.TaggedToken {
	doc, err := prose.NewDocument(text, prose.WithExtraction(false))
	if err != nil {
		return nil
	}

	toks := doc.Tokens()
	out := make([]nlp.TaggedToken, 0, len(toks))
	for _, tok := range toks {
		out = append(out, nlp.TaggedToken{Text: tok.Text, Tag: tok.Tag})
	}
	return out
}

// ChunkEntities implements nlp.Provider. Labels follow the prose model
// (PERSON, GPE).
func (p *Provider) ChunkEntities(text string) []nlp.Entity {
	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil
	}

	ents := doc.Entities()
	out := make([]nlp.Entity, 0, len(ents))
	for _, e := range ents {
		out = append(out, nlp.Entity{Label: e.Label, Text: e.Text})
	}
	return out
}

// NounPhrases implements nlp.Provider using the shared phrase grammar over
// the statistical tagger's output.
func (p *Provider) NounPhrases(text string) []string {
	return nlp.AssembleNounPhrases(p.Tag(text))
}

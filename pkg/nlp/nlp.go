// Package nlp defines the capability port through which the pipeline reaches
// its NLP engine. Two interchangeable providers implement it: a lightweight
// lexicon/suffix tagger (pkg/nlp/heuristic) and a full statistical pipeline
// (pkg/nlp/prosenlp). The pipeline is agnostic to which is bound.
package nlp

import "strings"

// Penn-style tags used across providers. Only the coarse distinctions the
// pipeline relies on are guaranteed.
const (
	TagNoun       = "NN"
	TagNounPlural = "NNS"
	TagProperNoun = "NNP"
	TagProperNNS  = "NNPS"
	TagAdjective  = "JJ"
	TagVerb       = "VB"
	TagAdverb     = "RB"
	TagOther      = "OTHER"
)

// LabelPerson is the entity label accepted by the speaker resolver.
const LabelPerson = "PERSON"

// TaggedToken is one token with its part-of-speech tag.
type TaggedToken struct {
	Text string
	Tag  string
}

// Entity is a labeled span of text.
type Entity struct {
	Label string
	Text  string
}

// Provider is the NLP capability port. All calls are synchronous and pure:
// the same input always yields the same output.
type Provider interface {
	// Tag returns (token, part-of-speech) pairs for the text.
	Tag(text string) []TaggedToken
	// ChunkEntities returns labeled entity spans found in the text.
	ChunkEntities(text string) []Entity
	// NounPhrases returns lowercased noun phrases found in the text.
	NounPhrases(text string) []string
}

// IsNominal reports whether the tag is a noun tag (common or proper).
func IsNominal(tag string) bool {
	return strings.HasPrefix(tag, "NN")
}

// IsProper reports whether the tag marks a proper noun.
func IsProper(tag string) bool {
	return tag == TagProperNoun || tag == TagProperNNS
}

// AssembleNounPhrases builds noun phrases from a tagged token stream using a
// shared grammar: maximal runs of adjectives and nouns containing at least
// one noun. Phrases are lowercased and whitespace-normalized; single-token
// phrases shorter than three characters are dropped.
func AssembleNounPhrases(tokens []TaggedToken) []string {
	var phrases []string
	var run []string
	hasNoun := false

	flush := func() {
		if hasNoun && len(run) > 0 {
			phrase := strings.ToLower(strings.Join(run, " "))
			if len(run) > 1 || len(phrase) >= 3 {
				phrases = append(phrases, phrase)
			}
		}
		run = run[:0]
		hasNoun = false
	}

	for _, tok := range tokens {
		switch {
		case IsNominal(tok.Tag):
			run = append(run, tok.Text)
			hasNoun = true
		case tok.Tag == TagAdjective:
			run = append(run, tok.Text)
		default:
			flush()
		}
	}
	flush()

	return phrases
}

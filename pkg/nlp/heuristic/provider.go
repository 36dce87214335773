// Package heuristic implements the nlp.Provider port with a lightweight
// lexicon/suffix part-of-speech tagger. Entities are produced by chaining
// contiguous proper-noun tokens, the approach used when no statistical NER
// model is available.
package heuristic

import (
	"strings"
	"unicode"

	"github.com/orsinium-labs/stopwords"

	"github.com/speechlens/speechlens/pkg/nlp"
)

// Provider is the heuristic NLP backend. Safe for concurrent use.
type Provider struct {
	tagger *Tagger
	stops  *stopwords.Stopwords
}

// New creates the heuristic provider. It cannot fail: all resources are
// compiled in.
func New() *Provider {
	return &Provider{
		tagger: NewTagger(),
		stops:  stopwords.MustGet("en"),
	}
}

var posToTag = map[POS]string{
	Noun:        nlp.TagNoun,
	ProperNoun:  nlp.TagProperNoun,
	Verb:        nlp.TagVerb,
	Adjective:   nlp.TagAdjective,
	Adverb:      nlp.TagAdverb,
	Auxiliary:   nlp.TagVerb,
	Modal:       nlp.TagVerb,
	Punctuation: ".",
}

// Tag implements nlp.Provider.
func (p *Provider) Tag(text string) []nlp.TaggedToken {
	words := tokenize(text)
	tags := p.tagger.Tag(words)

	out := make([]nlp.TaggedToken, len(words))
	for i, w := range words {
		tag, ok := posToTag[tags[i]]
		if !ok {
			tag = nlp.TagOther
		}
		out[i] = nlp.TaggedToken{Text: w, Tag: tag}
	}
	return out
}

// ChunkEntities chains contiguous proper-noun or title-cased noun tokens
// into candidate spans. Runs of two to four name-shaped tokens are labeled
// PERSON; everything else is labeled ENTITY.
func (p *Provider) ChunkEntities(text string) []nlp.Entity {
	words := tokenize(text)
	tags := p.tagger.Tag(words)

	var entities []nlp.Entity
	var run []string

	flush := func() {
		if len(run) > 0 {
			entities = append(entities, nlp.Entity{
				Label: classifySpan(run),
				Text:  strings.Join(run, " "),
			})
			run = run[:0]
		}
	}

	for i, w := range words {
		if p.isEntityToken(w, tags[i]) {
			run = append(run, w)
			continue
		}
		flush()
	}
	flush()

	return entities
}

// NounPhrases implements nlp.Provider using the shared phrase grammar.
func (p *Provider) NounPhrases(text string) []string {
	return nlp.AssembleNounPhrases(p.Tag(text))
}

func (p *Provider) isEntityToken(word string, tag POS) bool {
	if p.stops.Contains(strings.ToLower(word)) {
		return false
	}
	if tag == ProperNoun {
		return true
	}
	// Title-cased common nouns join a run the way NNP-adjacent tokens do
	// in tagger output ("Foreign" in "Foreign Minister Wang Yi").
	return isTitleCased(word) && (tag == Noun || tag == Adjective)
}

func classifySpan(run []string) string {
	if len(run) < 2 || len(run) > 4 {
		return "ENTITY"
	}
	for _, tok := range run {
		if !isNameShaped(tok) {
			return "ENTITY"
		}
	}
	return nlp.LabelPerson
}

func isTitleCased(word string) bool {
	r := []rune(word)
	return len(r) > 0 && unicode.IsUpper(r[0])
}

// isNameShaped accepts capitalized tokens made of letters, periods,
// apostrophes, and hyphens ("Biden", "R.", "O'Brien", "Jean-Luc").
func isNameShaped(word string) bool {
	if !isTitleCased(word) {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) && r != '.' && r != '\'' && r != '’' && r != '-' {
			return false
		}
	}
	return true
}

// tokenize splits text into word and punctuation tokens. Periods stay glued
// to short abbreviation tokens ("R.", "Jr.", "H.E.") so initials survive as
// single tokens; elsewhere they split off as punctuation.
func tokenize(text string) []string {
	var tokens []string
	var cur strings.Builder

	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' || r == '’' || r == '-':
			cur.WriteRune(r)
		case r == '.':
			// Keep the period when the pending token is a short abbreviation
			// or already contains a period ("H.E").
			pending := cur.String()
			alpha := strings.Count(pending, "") - 1 - strings.Count(pending, ".")
			if pending != "" && (alpha <= 2 || strings.Contains(pending, ".")) {
				cur.WriteRune(r)
			} else {
				flush()
				tokens = append(tokens, ".")
			}
		case unicode.IsSpace(r):
			flush()
		default:
			flush()
			tokens = append(tokens, string(r))
		}
	}
	flush()

	return tokens
}

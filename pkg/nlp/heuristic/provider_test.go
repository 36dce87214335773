package heuristic

import (
	"reflect"
	"testing"

	"github.com/speechlens/speechlens/pkg/nlp"
)

func TestTag(t *testing.T) {
	p := New()

	toks := p.Tag("The president delivered a joint statement")

	want := []nlp.TaggedToken{
		{Text: "The", Tag: nlp.TagOther},
		{Text: "president", Tag: nlp.TagNoun},
		{Text: "delivered", Tag: nlp.TagVerb},
		{Text: "a", Tag: nlp.TagOther},
		{Text: "joint", Tag: nlp.TagAdjective},
		{Text: "statement", Tag: nlp.TagNoun},
	}
	if !reflect.DeepEqual(toks, want) {
		t.Errorf("Tag = %v, want %v", toks, want)
	}
}

func TestTagContextRules(t *testing.T) {
	p := New()

	// "address" resolves by context: noun after a determiner, verb after a
	// modal.
	toks := p.Tag("the address")
	if toks[1].Tag != nlp.TagNoun {
		t.Errorf("after determiner: address tagged %s, want %s", toks[1].Tag, nlp.TagNoun)
	}

	toks = p.Tag("leaders will address the summit")
	if toks[2].Tag != nlp.TagVerb {
		t.Errorf("after modal: address tagged %s, want %s", toks[2].Tag, nlp.TagVerb)
	}
}

func TestTagAcronymAtSentenceStart(t *testing.T) {
	p := New()

	toks := p.Tag("NATO expanded")
	if toks[0].Tag != nlp.TagProperNoun {
		t.Errorf("NATO tagged %s, want %s", toks[0].Tag, nlp.TagProperNoun)
	}

	// A sentence-initial capitalized common word is not a proper noun.
	toks = p.Tag("Cooperation matters")
	if toks[0].Tag == nlp.TagProperNoun {
		t.Errorf("sentence-initial %q misread as proper noun", toks[0].Text)
	}
}

func TestChunkEntities(t *testing.T) {
	p := New()

	ents := p.ChunkEntities("Foreign Minister Wang Yi met President Joe Biden in Beijing")

	want := []nlp.Entity{
		{Label: nlp.LabelPerson, Text: "Foreign Minister Wang Yi"},
		{Label: nlp.LabelPerson, Text: "President Joe Biden"},
		{Label: "ENTITY", Text: "Beijing"},
	}
	if !reflect.DeepEqual(ents, want) {
		t.Errorf("ChunkEntities = %v, want %v", ents, want)
	}
}

func TestChunkEntitiesStopwordBreaksRun(t *testing.T) {
	p := New()

	ents := p.ChunkEntities("Wang Yi and Antony Blinken")
	if len(ents) != 2 {
		t.Fatalf("got %d entities, want 2: %v", len(ents), ents)
	}
	if ents[0].Text != "Wang Yi" || ents[1].Text != "Antony Blinken" {
		t.Errorf("ChunkEntities = %v", ents)
	}
}

func TestNounPhrases(t *testing.T) {
	p := New()

	got := p.NounPhrases("The president delivered a joint statement")
	want := []string{"president", "joint statement"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NounPhrases = %v, want %v", got, want)
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"Joseph R. Biden Jr. spoke.", []string{"Joseph", "R.", "Biden", "Jr.", "spoke", "."}},
		{"H.E. Mr. Xi", []string{"H.E.", "Mr.", "Xi"}},
		{"hello, world", []string{"hello", ",", "world"}},
		{"O'Brien co-chaired", []string{"O'Brien", "co-chaired"}},
		{"", nil},
	}

	for _, tt := range tests {
		got := tokenize(tt.text)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("tokenize(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

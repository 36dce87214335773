package heuristic

import (
	"strings"
	"unicode"
)

// POS is the coarse part-of-speech set used by the lightweight tagger.
type POS int

const (
	Other POS = iota
	Noun
	ProperNoun
	Verb
	Adjective
	Adverb
	Determiner
	Preposition
	Auxiliary
	Modal
	Conjunction
	Pronoun
	Punctuation
)

// IsNominal reports whether the tag is noun-like.
func (p POS) IsNominal() bool {
	return p == Noun || p == ProperNoun
}

// IsVerbal reports whether the tag is verb-like.
func (p POS) IsVerbal() bool {
	return p == Verb || p == Auxiliary || p == Modal
}

// IsModifier reports whether the tag can modify a noun.
func (p POS) IsModifier() bool {
	return p == Adjective || p == Adverb
}

// Tagger performs part-of-speech tagging with a two-pass approach:
// a static lexicon/suffix baseline followed by contextual correction rules.
type Tagger struct {
	lexicon map[string]POS
}

// NewTagger creates a Tagger with the default English lexicon.
func NewTagger() *Tagger {
	t := &Tagger{lexicon: make(map[string]POS)}
	t.loadDefaultLexicon()
	return t
}

// Tag tags a slice of words.
func (t *Tagger) Tag(words []string) []POS {
	tags := make([]POS, len(words))

	for i, word := range words {
		tags[i] = t.lookupBaseline(word, i == 0)
	}

	for i := 0; i < len(tags); i++ {
		var prevTag POS = Other
		if i > 0 {
			prevTag = tags[i-1]
		}

		// Determiner or adjective forces noun: "the [address]", "joint [statement]"
		if (prevTag == Determiner || prevTag.IsModifier()) && tags[i].IsVerbal() {
			tags[i] = Noun
			continue
		}

		// Modal forces verb: "will [address]"
		if prevTag == Modal && tags[i].IsNominal() && tags[i] != ProperNoun {
			tags[i] = Verb
			continue
		}

		// Infinitive "to" forces verb: "agreed to [visit]"
		if i > 0 && strings.EqualFold(words[i-1], "to") && tags[i] == Noun {
			tags[i] = Verb
			continue
		}

		// "of" forces noun: "community of [interest]"
		if i > 0 && strings.EqualFold(words[i-1], "of") && tags[i].IsVerbal() {
			tags[i] = Noun
			continue
		}

		if len(words[i]) == 1 && unicode.IsPunct(rune(words[i][0])) {
			tags[i] = Punctuation
		}
	}

	return tags
}

func (t *Tagger) lookupBaseline(word string, sentenceStart bool) POS {
	lower := strings.ToLower(word)
	if pos, ok := t.lexicon[lower]; ok {
		return pos
	}
	return t.inferPOS(word, sentenceStart)
}

func (t *Tagger) inferPOS(word string, sentenceStart bool) POS {
	if len(word) == 1 && unicode.IsPunct(rune(word[0])) {
		return Punctuation
	}

	runes := []rune(word)
	if len(runes) > 0 && unicode.IsUpper(runes[0]) {
		// Sentence-initial capitalization alone is not evidence of a name;
		// require either a non-initial position or further uppercase letters.
		if !sentenceStart || isAllInitialisms(word) {
			return ProperNoun
		}
	}

	lower := strings.ToLower(word)
	switch {
	case strings.HasSuffix(lower, "ly"):
		return Adverb
	case strings.HasSuffix(lower, "ing"), strings.HasSuffix(lower, "ed"):
		return Verb
	case strings.HasSuffix(lower, "ness"), strings.HasSuffix(lower, "tion"),
		strings.HasSuffix(lower, "ment"), strings.HasSuffix(lower, "ity"),
		strings.HasSuffix(lower, "ism"), strings.HasSuffix(lower, "ship"):
		return Noun
	case strings.HasSuffix(lower, "ful"), strings.HasSuffix(lower, "less"),
		strings.HasSuffix(lower, "ous"), strings.HasSuffix(lower, "ive"),
		strings.HasSuffix(lower, "able"), strings.HasSuffix(lower, "ible"),
		strings.HasSuffix(lower, "al"):
		return Adjective
	}

	return Noun
}

// isAllInitialisms reports whether the word looks like an acronym (NATO, UN).
func isAllInitialisms(word string) bool {
	if len(word) < 2 {
		return false
	}
	for _, r := range word {
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

func (t *Tagger) loadDefaultLexicon() {
	for _, w := range []string{"the", "a", "an", "this", "that", "these", "those",
		"my", "your", "his", "her", "its", "our", "their", "some", "any", "no",
		"every", "each", "all", "both", "few", "many", "much", "most", "other"} {
		t.lexicon[w] = Determiner
	}

	for _, w := range []string{"in", "on", "at", "to", "for", "with", "by", "from",
		"of", "about", "into", "through", "during", "before", "after", "above",
		"below", "between", "under", "over", "against", "among", "around",
		"toward", "towards", "upon", "within", "without", "across", "along",
		"throughout", "amid"} {
		t.lexicon[w] = Preposition
	}

	for _, w := range []string{"is", "are", "was", "were", "be", "been", "being",
		"am", "have", "has", "had", "having", "do", "does", "did", "doing"} {
		t.lexicon[w] = Auxiliary
	}

	for _, w := range []string{"can", "could", "will", "would", "shall", "should",
		"may", "might", "must"} {
		t.lexicon[w] = Modal
	}

	for _, w := range []string{"and", "or", "but", "nor", "yet", "so", "because",
		"although", "while", "if", "unless", "until", "since", "when", "where",
		"whether", "as"} {
		t.lexicon[w] = Conjunction
	}

	for _, w := range []string{"i", "you", "he", "she", "it", "we", "they", "me",
		"him", "us", "them", "who", "whom", "whose", "which", "myself",
		"ourselves", "themselves"} {
		t.lexicon[w] = Pronoun
	}

	for _, w := range []string{"new", "old", "good", "great", "major", "joint",
		"mutual", "common", "foreign", "domestic", "economic", "political",
		"strategic", "bilateral", "multilateral", "global", "regional",
		"peaceful", "important", "key", "strong", "deep", "broad", "high",
		"low", "first", "last", "next"} {
		t.lexicon[w] = Adjective
	}

	for _, w := range []string{"very", "quite", "rather", "really", "too", "just",
		"only", "now", "then", "here", "there", "always", "never", "often",
		"also", "still", "already", "together", "further", "jointly"} {
		t.lexicon[w] = Adverb
	}

	for _, w := range []string{"say", "said", "says", "announce", "announced",
		"deliver", "delivered", "meet", "met", "visit", "visited", "sign",
		"signed", "agree", "agreed", "stress", "stressed", "note", "noted",
		"call", "called", "urge", "urged", "welcome", "welcomed", "attend",
		"attended", "hold", "held", "discuss", "discussed", "pointed", "make",
		"made", "take", "took", "give", "gave", "go", "went", "come", "came"} {
		t.lexicon[w] = Verb
	}

	for _, w := range []string{"speech", "remarks", "statement", "address",
		"government", "country", "nation", "people", "policy", "cooperation",
		"development", "relations", "relationship", "meeting", "summit",
		"conference", "agreement", "treaty", "peace", "security", "trade",
		"economy", "region", "world", "year", "time", "side", "sides",
		"president", "premier", "minister", "chairman", "ambassador",
		"secretary", "spokesperson", "delegation", "community", "friendship"} {
		t.lexicon[w] = Noun
	}
}

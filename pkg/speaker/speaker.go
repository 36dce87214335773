// Package speaker attributes a speech to the person who delivered it.
//
// Resolution runs an ordered fallback chain of extraction strategies over
// the document title and a bounded prefix of its body; the first strategy
// to yield a cleaned, two-token name wins. Two strategy families exist: a
// deterministic pattern family built around role nouns ("Remarks by ..."),
// and an NER family that asks the bound nlp.Provider for PERSON spans. All
// strategies are pure; resolution is deterministic for a given input.
package speaker

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/speechlens/speechlens/pkg/nlp"
	"github.com/speechlens/speechlens/pkg/textnorm"
)

// DefaultContentCap bounds how much of the body is handed to a strategy.
// Purely a latency guard for the NLP port, not a cancellation mechanism.
const DefaultContentCap = 8000

// leadingNameCap is the shorter head window used by the dateline-guarded
// leading-token heuristic.
const leadingNameCap = 400

// Strategy extracts a speaker candidate from one piece of text.
// It returns "" when it finds nothing.
type Strategy interface {
	Name() string
	Extract(text string) string
}

// Source selects which document field a chain step reads.
type Source int

const (
	SourceTitle Source = iota
	SourceContent
)

type step struct {
	source   Source
	strategy Strategy
}

// Resolver runs an ordered fallback chain of strategies.
type Resolver struct {
	// Logger, when set, records which strategy won at debug level.
	Logger *slog.Logger

	steps      []step
	contentCap int
}

// NewResolver builds the hybrid chain: pattern-on-title, NER-on-title,
// pattern-on-content, NER-on-content.
func NewResolver(provider nlp.Provider) *Resolver {
	return &Resolver{
		steps: []step{
			{SourceTitle, RoleNounPattern{}},
			{SourceTitle, PersonNER{Provider: provider}},
			{SourceContent, RoleNounPattern{}},
			{SourceContent, PersonNER{Provider: provider}},
		},
		contentCap: DefaultContentCap,
	}
}

// NewPatternResolver builds the regex-only chain used by the title/content
// extractor variant: "by <name>" anywhere in the title, then the
// leading-token content heuristic. No NLP backend required.
func NewPatternResolver() *Resolver {
	return &Resolver{
		steps: []step{
			{SourceTitle, ByClausePattern{}},
			{SourceContent, LeadingNamePattern{}},
		},
		contentCap: DefaultContentCap,
	}
}

// Resolve returns the best-guess speaker name, or "" when every strategy
// fails. Results always contain at least two whitespace-separated tokens.
func (r *Resolver) Resolve(title, content string) string {
	for _, st := range r.steps {
		text := title
		if st.source == SourceContent {
			text = capText(content, r.contentCap)
		}
		if text == "" {
			continue
		}
		name := st.strategy.Extract(text)
		if name != "" && textnorm.TokenCount(name) >= 2 {
			if r.Logger != nil {
				r.Logger.Debug("speaker resolved", "strategy", st.strategy.Name(), "speaker", name)
			}
			return name
		}
	}
	return ""
}

func capText(s string, n int) string {
	if n > 0 && len(s) > n {
		return s[:n]
	}
	return s
}

// RoleNounPattern matches "<role-noun> by <name>" and "<role-noun>: <name>"
// templates, capturing the name up to the next clause boundary.
type RoleNounPattern struct{}

func (RoleNounPattern) Name() string { return "role-noun-pattern" }

func (RoleNounPattern) Extract(text string) string {
	text = textnorm.Normalize(text)
	for _, re := range []*regexp.Regexp{roleNounByRE, roleNounSepRE} {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		candidate := truncateAtBoundary(m[1])
		name := CleanName(candidate)
		if name != "" && textnorm.TokenCount(name) >= 2 {
			return name
		}
	}
	return ""
}

// PersonNER asks the NLP port for entity spans and accepts the first
// contiguous PERSON span that survives honorific stripping with two tokens.
type PersonNER struct {
	Provider nlp.Provider
}

func (PersonNER) Name() string { return "person-ner" }

func (s PersonNER) Extract(text string) string {
	if s.Provider == nil {
		return ""
	}
	for _, ent := range s.Provider.ChunkEntities(text) {
		if ent.Label != nlp.LabelPerson {
			continue
		}
		name := textnorm.StripHonorifics(textnorm.Normalize(ent.Text))
		if textnorm.TokenCount(name) >= 2 {
			return name
		}
	}
	return ""
}

// ByClausePattern takes the text after the last " by " in a title.
type ByClausePattern struct{}

func (ByClausePattern) Name() string { return "by-clause" }

func (ByClausePattern) Extract(text string) string {
	text = textnorm.Normalize(text)
	lower := strings.ToLower(text)
	if idx := strings.LastIndex(lower, " by "); idx >= 0 {
		if name := CleanName(text[idx+4:]); name != "" {
			return name
		}
	}
	return ""
}

// LeadingNamePattern reads the head of the body: a "by <name>" credit, a
// capitalized leading token run (guarded against place names and datelines),
// or an "H.E. <name>" honorific form.
type LeadingNamePattern struct{}

func (LeadingNamePattern) Name() string { return "leading-name" }

func (LeadingNamePattern) Extract(text string) string {
	head := capText(strings.TrimSpace(text), leadingNameCap)
	if head == "" {
		return ""
	}

	if m := contentByRE.FindStringSubmatch(head); m != nil {
		if name := CleanName(m[1]); name != "" {
			return name
		}
	}

	if m := leadingNameRE.FindStringSubmatch(head); m != nil {
		name := CleanName(m[1])
		if name != "" && !placeDenylist[strings.ToLower(name)] && !datelineRE.MatchString(head) {
			return name
		}
	}

	if m := excellencyRE.FindStringSubmatch(head); m != nil {
		if name := CleanName(m[1]); name != "" {
			return name
		}
	}

	return ""
}

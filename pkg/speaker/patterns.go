package speaker

import (
	"regexp"
	"strings"
)

// Pattern family 1: role-noun templates anchored to "by" or a separator.
// RE2 has no lookahead, so each capture runs to end of line and is trimmed
// back to the first clause boundary afterwards.
var (
	roleNounByRE = regexp.MustCompile(`(?i)\b(?:remarks|statement|address|speech|comments|message|interview|press statement|prepared remarks|keynote(?: address| speech)?|toast)\s+by\s+(.+)`)

	roleNounSepRE = regexp.MustCompile(`(?i)\b(?:remarks|statement|address|speech|comments)\s*[:\-–—]\s*(.+)`)
)

// Pattern family 2: "<anything> by <name>" and content-head heuristics.
var (
	contentByRE = regexp.MustCompile(`(?i)\bby\s+(?:H\.E\.|His Excellency|Her Excellency)?\s*([A-Z][A-Za-z\-'’]+(?:\s+[A-Z][A-Za-z\-'’]+){0,3})`)

	leadingNameRE = regexp.MustCompile(`^\s*([A-Z][a-zA-Z.\-'’]+(?:\s+[A-Z][a-zA-Z.\-'’]+){0,3})\b`)

	excellencyRE = regexp.MustCompile(`H\.E\.\s*([A-Z][A-Za-z\-'’]+(?:\s+[A-Z][A-Za-z\-'’]+){0,3})`)

	// A capitalized token run immediately followed by a digit is a dateline
	// ("Beijing 14 May"), not a name.
	datelineRE = regexp.MustCompile(`^[A-Z][a-z]+\s+\d`)
)

// placeDenylist rejects leading-token candidates that are known datelines.
var placeDenylist = map[string]bool{
	"new york":       true,
	"beijing":        true,
	"tianjin":        true,
	"astana":         true,
	"rio de janeiro": true,
	"harbin":         true,
}

// clauseConnectors terminate a captured name: " at the United Nations" is
// trailing role text, not part of the name.
var clauseConnectors = []string{" at ", " on ", " to ", " in ", " with "}

// truncateAtBoundary cuts the candidate at the first clause boundary:
// comma, colon, semicolon, dash, newline, or a connector word.
func truncateAtBoundary(s string) string {
	cut := len(s)
	if i := strings.IndexAny(s, ",:;\n-–—"); i >= 0 && i < cut {
		cut = i
	}
	lower := strings.ToLower(s)
	for _, conn := range clauseConnectors {
		if i := strings.Index(lower, conn); i >= 0 && i < cut {
			cut = i
		}
	}
	return strings.TrimSpace(s[:cut])
}

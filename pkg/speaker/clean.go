package speaker

import (
	"regexp"
	"strings"

	"github.com/speechlens/speechlens/pkg/textnorm"
)

// rolePhrases truncate a candidate at the first occurrence of trailing role
// text ("Xi Jinping President of the People's Republic of China"). Longer
// phrases come first so they win over their prefixes.
var rolePhrases = []string{
	"President of the People’s Republic of China",
	"President of the People's Republic of China",
	"Premier of the State Council",
	"Member of the Political Bureau",
	"Foreign Minister",
	"Prime Minister",
	"Vice President",
	"Vice Premier",
	"President",
	"Premier",
	"Chairman",
}

// roleWords are bare role tokens that cannot end a name.
var roleWords = map[string]bool{
	"President":       true,
	"President-elect": true,
	"Premier":         true,
	"Vice":            true,
	"Councilor":       true,
	"Councillor":      true,
	"Minister":        true,
	"Chinese":         true,
	"Chairman":        true,
	"Member":          true,
	"Representative":  true,
	"Speaker":         true,
	"Delegate":        true,
	"Secretary":       true,
}

var (
	clausePunctRE = regexp.MustCompile(`[,\\\-–—(|/]`)
	capTokenRE    = regexp.MustCompile(`[A-Z][a-zA-Z.\-'’]+`)
)

// CleanName normalizes a raw speaker candidate: strips honorifics, truncates
// trailing role text, keeps the first clause, and drops trailing role words.
// Returns "" when nothing name-like remains.
func CleanName(raw string) string {
	t := textnorm.Normalize(raw)
	t = strings.Trim(t, ` "'[](){}`)
	t = textnorm.StripHonorifics(t)

	for _, phrase := range rolePhrases {
		idx := indexFold(t, phrase)
		if idx < 0 {
			continue
		}
		// Leading role text is stripped, trailing role text truncates.
		if idx == 0 {
			t = strings.TrimSpace(t[len(phrase):])
		} else {
			t = strings.TrimSpace(t[:idx])
		}
		break
	}

	if idx := clausePunctRE.FindStringIndex(t); idx != nil {
		t = t[:idx[0]]
	}
	t = strings.TrimLeft(t, " . ")

	parts := capTokenRE.FindAllString(t, -1)
	for len(parts) > 0 {
		last := strings.Trim(parts[len(parts)-1], ".,")
		if roleWords[last] {
			parts = parts[:len(parts)-1]
			continue
		}
		break
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, " ")
}

// indexFold is a case-insensitive strings.Index.
func indexFold(s, sub string) int {
	return strings.Index(strings.ToLower(s), strings.ToLower(sub))
}

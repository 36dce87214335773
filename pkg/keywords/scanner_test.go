package keywords

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScanCountsOccurrences(t *testing.T) {
	v := FromLabels([]string{"Taiwan", "NATO"})
	s, err := NewScanner(v)
	require.NoError(t, err)

	res := s.Scan("Taiwan and NATO discussed Taiwan's status.")

	require.Equal(t, 2, res.Counts["Taiwan"])
	require.Equal(t, 1, res.Counts["NATO"])
	require.Equal(t, 3, res.Total)
	require.Equal(t, []string{"Taiwan", "NATO"}, res.Found)
}

func TestScanWordBoundaries(t *testing.T) {
	v := FromLabels([]string{"Taiwan"})
	s, err := NewScanner(v)
	require.NoError(t, err)

	tests := []struct {
		name string
		text string
		want int
	}{
		{"embedded in longer word", "The Taiwanese delegation arrived.", 0},
		{"possessive", "Taiwan's position is clear.", 1},
		{"punctuation boundary", "We discussed Taiwan, among other topics.", 1},
		{"start and end of text", "Taiwan", 1},
		{"digit boundary", "Taiwan2024 summit", 0},
		{"underscore boundary", "Taiwan_policy memo", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := s.Scan(tt.text)
			require.Equal(t, tt.want, res.Counts["Taiwan"], "text: %q", tt.text)
		})
	}
}

func TestScanCaseInsensitive(t *testing.T) {
	v := FromLabels([]string{"South China Sea"})
	s, err := NewScanner(v)
	require.NoError(t, err)

	res := s.Scan("Tensions in the SOUTH CHINA SEA and the south china sea persisted.")
	require.Equal(t, 2, res.Counts["South China Sea"])
}

func TestScanOverlappingTerms(t *testing.T) {
	// Terms that contain each other are counted independently.
	v := FromLabels([]string{"China", "South China Sea"})
	s, err := NewScanner(v)
	require.NoError(t, err)

	res := s.Scan("The South China Sea dispute involves China.")
	require.Equal(t, 1, res.Counts["South China Sea"])
	require.Equal(t, 2, res.Counts["China"])
	require.Equal(t, 3, res.Total)
}

func TestScanNoMatches(t *testing.T) {
	v := FromLabels([]string{"Taiwan", "NATO"})
	s, err := NewScanner(v)
	require.NoError(t, err)

	res := s.Scan("Nothing to see here.")
	require.Empty(t, res.Counts)
	require.Empty(t, res.Found)
	require.Zero(t, res.Total)
	// SlugCounts still carries a zero for every term.
	require.Equal(t, map[string]int{"taiwan": 0, "nato": 0}, res.SlugCounts)
}

package keywords

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestParseCSV(t *testing.T) {
	in := strings.NewReader(strings.Join([]string{
		"keyword_id,keyword",
		"kw1,Taiwan",
		"kw2,South China Sea",
		"kw3,NATO",
	}, "\n"))

	v, err := ParseCSV(in, discardLogger())
	require.NoError(t, err)
	require.Len(t, v.Terms, 3)

	require.Equal(t, Term{ID: "kw1", Label: "Taiwan", Slug: "taiwan"}, v.Terms[0])
	require.Equal(t, Term{ID: "kw2", Label: "South China Sea", Slug: "south_china_sea"}, v.Terms[1])

	id, ok := v.IDFor("taiwan")
	require.True(t, ok)
	require.Equal(t, "kw1", id)

	_, ok = v.IDFor("Tibet")
	require.False(t, ok)
}

func TestParseCSVHeaderSynonyms(t *testing.T) {
	in := strings.NewReader("ID,Term\n7,Belt and Road\n")

	v, err := ParseCSV(in, discardLogger())
	require.NoError(t, err)
	require.Len(t, v.Terms, 1)
	require.Equal(t, "7", v.Terms[0].ID)
	require.Equal(t, "Belt and Road", v.Terms[0].Label)
}

func TestParseCSVSkipsBadRows(t *testing.T) {
	in := strings.NewReader(strings.Join([]string{
		"keyword_id,keyword",
		"kw1,Taiwan",
		"kw2,",
		"kw3,nan",
		"kw4,TAIWAN",
		"kw5,Xinjiang",
	}, "\n"))

	v, err := ParseCSV(in, discardLogger())
	require.NoError(t, err)
	require.Len(t, v.Terms, 2)
	require.Equal(t, "Taiwan", v.Terms[0].Label)
	require.Equal(t, "Xinjiang", v.Terms[1].Label)
}

func TestParseCSVMissingLabelColumn(t *testing.T) {
	in := strings.NewReader("foo,bar\n1,2\n")

	_, err := ParseCSV(in, discardLogger())
	require.Error(t, err)
	require.Contains(t, err.Error(), "no label column")
}

func TestParseCSVEmptyVocabulary(t *testing.T) {
	in := strings.NewReader("keyword_id,keyword\n")

	_, err := ParseCSV(in, discardLogger())
	require.Error(t, err)
}

func TestParseCSVMissingIDDefaultsToSlug(t *testing.T) {
	in := strings.NewReader("keyword\nHuman Rights\n")

	v, err := ParseCSV(in, discardLogger())
	require.NoError(t, err)
	require.Equal(t, "human_rights", v.Terms[0].ID)
}

func TestSlug(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"Taiwan", "taiwan"},
		{"South China Sea", "south_china_sea"},
		{"Nine-dash line", "nine_dash_line"},
		{"COVID-19", "covid_19"},
		{"  spaced  out  ", "spaced_out"},
		{"!!!", "kw"},
	}
	for _, tt := range tests {
		if got := Slug(tt.label); got != tt.want {
			t.Errorf("Slug(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}

func TestFromLabelsSlugCollision(t *testing.T) {
	v := FromLabels([]string{"One China", "One-China"})
	require.Len(t, v.Terms, 2)
	require.Equal(t, "one_china", v.Terms[0].Slug)
	require.Equal(t, "one_china_1", v.Terms[1].Slug)
}

package corpus

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestReadCSV(t *testing.T) {
	in := strings.NewReader(strings.Join([]string{
		"id,title,content,date,country",
		`s1,Opening Remarks,"Good morning, everyone.",2021-09-21,USA`,
		"s2,Closing,Thank you.,n/a,China",
	}, "\n"))

	c, err := ReadCSV(in, discardLogger())
	require.NoError(t, err)
	require.Len(t, c.Docs, 2)

	d := c.Docs[0]
	require.Equal(t, "s1", d.ID)
	require.Equal(t, "Opening Remarks", d.Title)
	require.Equal(t, "Good morning, everyone.", d.Content)
	require.Equal(t, 2021, d.Year)
	require.Equal(t, "USA", d.Country)

	require.Equal(t, YearUnknown, c.Docs[1].Year)
	require.Equal(t, "unknown", c.Docs[1].YearLabel())
}

func TestReadCSVHeaderSynonyms(t *testing.T) {
	in := strings.NewReader("Title,Transcript,Datetime,Country\nA Speech,Hello.,2020-01-01,France\n")

	c, err := ReadCSV(in, discardLogger())
	require.NoError(t, err)
	require.Len(t, c.Docs, 1)
	require.Equal(t, "Hello.", c.Docs[0].Content)
	require.Equal(t, 2020, c.Docs[0].Year)
	require.Equal(t, "France", c.Docs[0].Country)
}

func TestReadCSVMissingContentColumn(t *testing.T) {
	in := strings.NewReader("id,title,date\n1,A,2020-01-01\n")

	_, err := ReadCSV(in, discardLogger())
	require.Error(t, err)
	require.Contains(t, err.Error(), "no content column")
	require.Contains(t, err.Error(), "content")
}

func TestReadCSVGeneratesMissingIDs(t *testing.T) {
	in := strings.NewReader("content\nfirst speech\nsecond speech\n")

	c, err := ReadCSV(in, discardLogger())
	require.NoError(t, err)
	require.Len(t, c.Docs, 2)
	require.NotEmpty(t, c.Docs[0].ID)
	require.NotEmpty(t, c.Docs[1].ID)
	require.NotEqual(t, c.Docs[0].ID, c.Docs[1].ID)
}

func TestParseYear(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"2021-09-21", 2021},
		{"2021-09-21 10:30:00", 2021},
		{"2021/09/21", 2021},
		{"09/21/2021", 2021},
		{"September 21, 2021", 2021},
		{"21 September 2021", 2021},
		{"", YearUnknown},
		{"n/a", YearUnknown},
		{"soon", YearUnknown},
	}

	for _, tt := range tests {
		if got := ParseYear(tt.raw); got != tt.want {
			t.Errorf("ParseYear(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestWriteWide(t *testing.T) {
	in := strings.NewReader("id,content\ns1,Taiwan matters.\n")
	c, err := ReadCSV(in, discardLogger())
	require.NoError(t, err)

	doc := &c.Docs[0]
	doc.Speaker = "Wang Yi"
	doc.Year = 2021
	doc.KeywordsFound = []string{"Taiwan"}
	doc.KeywordsCount = 1
	doc.KeywordCounts = map[string]int{"taiwan": 1, "nato": 0}

	var buf bytes.Buffer
	require.NoError(t, c.WriteWide(&buf, []string{"taiwan", "nato"}))

	want := "id,content,speaker,year,keywords_found,keywords_count,count_taiwan,count_nato\n" +
		"s1,Taiwan matters.,Wang Yi,2021,Taiwan,1,1,0\n"
	require.Equal(t, want, buf.String())
}

func TestWriteWideJoinsKeywords(t *testing.T) {
	in := strings.NewReader("content\nwords\n")
	c, err := ReadCSV(in, discardLogger())
	require.NoError(t, err)

	c.Docs[0].KeywordsFound = []string{"Taiwan", "NATO"}
	c.Docs[0].KeywordsCount = 3

	var buf bytes.Buffer
	require.NoError(t, c.WriteWide(&buf, nil))

	require.Contains(t, buf.String(), "Taiwan;NATO")
	// Unknown year renders as the literal label.
	require.Contains(t, buf.String(), "unknown")
}

func TestWriteHits(t *testing.T) {
	hits := []Hit{
		{DocID: "s1", Keyword: "Taiwan", Year: 2021},
		{DocID: "s2", Keyword: "NATO", Year: YearUnknown},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteHits(&buf, hits))

	want := "id,keyword,year\ns1,Taiwan,2021\ns2,NATO,unknown\n"
	require.Equal(t, want, buf.String())
}

package aggregate

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/speechlens/speechlens/pkg/corpus"
	"github.com/speechlens/speechlens/pkg/keywords"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testDocs() []corpus.Document {
	return []corpus.Document{
		{ID: "d1", Country: "China", Year: 2021, KeywordsFound: []string{"Taiwan"}},
		{ID: "d2", Country: "China", Year: 2021},
		{ID: "d3", Country: "USA", Year: 2021, KeywordsFound: []string{"Taiwan", "NATO"}},
		{ID: "d4", Country: "USA", Year: 2022, KeywordsFound: []string{"NATO"}},
	}
}

func TestAggregateCounts(t *testing.T) {
	vocab := keywords.FromLabels([]string{"Taiwan", "NATO"})
	res := Aggregate(testDocs(), vocab, discardLogger())

	require.Equal(t, []CountRow{
		{2021, "nato", "USA", 1},
		{2021, "taiwan", "China", 1},
		{2021, "taiwan", "USA", 1},
		{2022, "nato", "USA", 1},
	}, res.Counts)

	require.Equal(t, []TotalRow{
		{2021, "China", 2},
		{2021, "USA", 1},
		{2022, "USA", 1},
	}, res.Totals)

	require.Equal(t, []YearKeywordRow{
		{2021, "NATO", 1},
		{2021, "Taiwan", 2},
		{2022, "NATO", 1},
	}, res.YearKeywords)
}

func TestAggregateCountsDistinctDocuments(t *testing.T) {
	// A document mentioning a keyword many times still counts once.
	docs := []corpus.Document{
		{ID: "d1", Country: "China", Year: 2021, KeywordsFound: []string{"Taiwan", "Taiwan", "Taiwan"}},
	}
	vocab := keywords.FromLabels([]string{"Taiwan"})
	res := Aggregate(docs, vocab, discardLogger())

	require.Equal(t, []CountRow{{2021, "taiwan", "China", 1}}, res.Counts)
}

func TestAggregateTotalsCoverAllDocuments(t *testing.T) {
	vocab := keywords.FromLabels([]string{"Taiwan", "NATO"})
	res := Aggregate(testDocs(), vocab, discardLogger())

	// Every count row is bounded by the total for its (year, country).
	totals := make(map[[2]interface{}]int)
	for _, tr := range res.Totals {
		totals[[2]interface{}{tr.Year, tr.Country}] = tr.Total
	}
	for _, cr := range res.Counts {
		total, ok := totals[[2]interface{}{cr.Year, cr.Country}]
		require.True(t, ok, "count row %+v has no matching total", cr)
		require.LessOrEqual(t, cr.Count, total)
	}
}

func TestAggregateExcludesUnknownYear(t *testing.T) {
	docs := []corpus.Document{
		{ID: "d1", Country: "China", Year: corpus.YearUnknown, KeywordsFound: []string{"Taiwan"}},
		{ID: "d2", Country: "China", Year: 2021, KeywordsFound: []string{"Taiwan"}},
	}
	vocab := keywords.FromLabels([]string{"Taiwan"})
	res := Aggregate(docs, vocab, discardLogger())

	require.Equal(t, []CountRow{{2021, "taiwan", "China", 1}}, res.Counts)
	require.Equal(t, []TotalRow{{2021, "China", 1}}, res.Totals)
	// The undated document still appears in the id->country map.
	require.Equal(t, "China", res.Cache.IDCountry["d1"])
}

func TestAggregateSkipsUnknownKeyword(t *testing.T) {
	docs := []corpus.Document{
		{ID: "d1", Country: "China", Year: 2021, KeywordsFound: []string{"Atlantis", "Taiwan"}},
	}
	vocab := keywords.FromLabels([]string{"Taiwan"})
	res := Aggregate(docs, vocab, discardLogger())

	require.Equal(t, []CountRow{{2021, "taiwan", "China", 1}}, res.Counts)
}

func TestAggregateDeterministic(t *testing.T) {
	vocab := keywords.FromLabels([]string{"Taiwan", "NATO"})
	first := Aggregate(testDocs(), vocab, discardLogger())
	for i := 0; i < 5; i++ {
		again := Aggregate(testDocs(), vocab, discardLogger())
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("aggregate output differs between runs")
		}
	}
}

func TestCacheRoundTrip(t *testing.T) {
	vocab := keywords.FromLabels([]string{"Taiwan", "NATO"})
	res := Aggregate(testDocs(), vocab, discardLogger())

	var buf bytes.Buffer
	require.NoError(t, res.Cache.WriteJSON(&buf))

	var decoded Cache
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, res.Cache.IDCountry, decoded.IDCountry)
	require.Equal(t, res.Cache.Keywords, decoded.Keywords)
	require.Equal(t, res.Cache.Counts, decoded.Counts)
	require.Equal(t, res.Cache.Totals, decoded.Totals)
}

func TestWriteYearKeywordCSV(t *testing.T) {
	rows := []YearKeywordRow{
		{2021, "NATO", 1},
		{2021, "Taiwan", 2},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteYearKeywordCSV(&buf, rows))

	want := "year,keyword,speech_count\n2021,NATO,1\n2021,Taiwan,2\n"
	require.Equal(t, want, buf.String())
}

package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ubonasm/edustudy/pkg/types"
)

func sampleRecords() []types.PaperRecord {
	return []types.PaperRecord{
		{
			Title:         "Adaptive Learning Systems",
			Authors:       "Alice Smith",
			Year:          2021,
			Abstract:      "A study of adaptive learning.",
			Venue:         "Computers & Education",
			CitationCount: 42,
			URL:           "https://example.org/p/1",
		},
		{
			Title:         "Curriculum Design Patterns",
			Authors:       "Bob Jones",
			Year:          2019,
			Abstract:      types.AbstractNone,
			Venue:         "Computers & Education",
			CitationCount: 7,
		},
		{
			Title:         "Teaching Without Dates",
			Authors:       types.AuthorsUnknown,
			Year:          types.YearUnknown,
			Abstract:      types.AbstractNone,
			Venue:         types.VenueUnknown,
			CitationCount: 1,
		},
	}
}

// --- Stats ---

func TestCollect(t *testing.T) {
	s := Collect(sampleRecords())

	if s.Count != 3 {
		t.Errorf("Count = %d, want 3", s.Count)
	}
	if s.MaxYear != 2021 {
		t.Errorf("MaxYear = %d, want 2021", s.MaxYear)
	}
	if s.TotalCitations != 50 {
		t.Errorf("TotalCitations = %d, want 50", s.TotalCitations)
	}
	// Two records share one venue; the placeholder venue does not count.
	if s.DistinctVenues != 1 {
		t.Errorf("DistinctVenues = %d, want 1", s.DistinctVenues)
	}
}

func TestCollectEmpty(t *testing.T) {
	s := Collect(nil)
	if s.Count != 0 || s.TotalCitations != 0 || s.DistinctVenues != 0 {
		t.Errorf("Collect(nil) = %+v, want zeroes", s)
	}
	if s.MaxYear != types.YearUnknown {
		t.Errorf("MaxYear = %d, want YearUnknown", s.MaxYear)
	}
}

func TestCollectAllYearsUnknown(t *testing.T) {
	s := Collect([]types.PaperRecord{{Title: "t", Year: types.YearUnknown}})
	if s.MaxYear != types.YearUnknown {
		t.Errorf("MaxYear = %d, want YearUnknown", s.MaxYear)
	}
}

// --- Highlight ---

func TestHighlight(t *testing.T) {
	mark := func(s string) string { return "[" + s + "]" }

	tests := []struct {
		name  string
		text  string
		query string
		want  string
	}{
		{"single term", "machine learning basics", "learning", "machine [learning] basics"},
		{"case insensitive keeps original", "Learning to Learn", "learning", "[Learning] to Learn"},
		{"multiple terms", "digital textbooks in use", "digital textbooks", "[digital] [textbooks] in use"},
		{"no match", "soccer tactics", "learning", "soccer tactics"},
		{"empty query", "some text", "", "some text"},
		{"empty text", "", "learning", ""},
		{"regex metacharacters literal", "cost (USD)", "(USD)", "cost [(USD)]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Highlight(tt.text, tt.query, mark); got != tt.want {
				t.Errorf("Highlight() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHighlightNilMark(t *testing.T) {
	if got := Highlight("text", "text", nil); got != "text" {
		t.Errorf("Highlight() = %q, want passthrough", got)
	}
}

// --- Table output ---

func TestFormatTable(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(sampleRecords(), &buf)
	out := buf.String()

	for _, want := range []string{
		"Rank", "Adaptive Learning Systems", "Alice Smith", "2021", "42",
		"3 results", "50 total citations", "newest 2021", "1 venues",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(nil, &buf)
	if !strings.Contains(buf.String(), "No results found.") {
		t.Errorf("output = %q", buf.String())
	}
}

// --- List output ---

func TestFormatList(t *testing.T) {
	var buf bytes.Buffer
	mark := func(s string) string { return ">" + s + "<" }
	FormatList(sampleRecords(), "adaptive", mark, &buf)
	out := buf.String()

	if !strings.Contains(out, "1. >Adaptive< Learning Systems") {
		t.Errorf("list output missing highlighted title:\n%s", out)
	}
	if !strings.Contains(out, "42 citations") {
		t.Errorf("list output missing citation line:\n%s", out)
	}
	// APA line is included per paper.
	if !strings.Contains(out, "Alice Smith (2021). Adaptive Learning Systems.") {
		t.Errorf("list output missing APA citation:\n%s", out)
	}
	// Placeholder abstracts are not rendered.
	if strings.Contains(out, types.AbstractNone) {
		t.Errorf("list output should skip placeholder abstracts:\n%s", out)
	}
}

func TestFormatListTruncatesAbstract(t *testing.T) {
	rec := types.PaperRecord{
		Title:    "Long One",
		Authors:  "A",
		Year:     2020,
		Abstract: strings.Repeat("learning ", 60),
		Venue:    types.VenueUnknown,
	}
	var buf bytes.Buffer
	FormatList([]types.PaperRecord{rec}, "", nil, &buf)
	if !strings.Contains(buf.String(), "...") {
		t.Error("long abstract not truncated")
	}
}

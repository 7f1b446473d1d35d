// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders ranked paper records for the terminal and
// computes the presentation-layer aggregates over them.
package report

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/ubonasm/edustudy/internal/cite"
	"github.com/ubonasm/edustudy/pkg/types"
)

// Stats holds the aggregates derived from a final record sequence. The
// pipeline does not compute these; they are presentation-layer
// derivations.
type Stats struct {
	// Count is the number of records.
	Count int

	// MaxYear is the most recent year among records with a known year,
	// or types.YearUnknown when none have one.
	MaxYear int

	// TotalCitations is the sum of citation counts.
	TotalCitations int

	// DistinctVenues counts distinct non-placeholder venues.
	DistinctVenues int
}

// Collect computes summary statistics over records.
func Collect(records []types.PaperRecord) Stats {
	s := Stats{
		Count:   len(records),
		MaxYear: types.YearUnknown,
	}
	venues := make(map[string]struct{})
	for _, r := range records {
		if r.HasYear() && r.Year > s.MaxYear {
			s.MaxYear = r.Year
		}
		s.TotalCitations += r.CitationCount
		if r.HasVenue() {
			venues[r.Venue] = struct{}{}
		}
	}
	s.DistinctVenues = len(venues)
	return s
}

// FormatTable writes records as a human-readable table to w, followed by
// the stats footer.
func FormatTable(records []types.PaperRecord, w io.Writer) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-60s  %-24s  %-4s  %-6s  %s\n",
		"Rank", "Title", "Authors", "Year", "Cites", "Venue")
	fmt.Fprintln(w, strings.Repeat("-", 120))

	for i, r := range records {
		year := ""
		if r.HasYear() {
			year = fmt.Sprintf("%d", r.Year)
		}
		fmt.Fprintf(w, "%-4d  %-60s  %-24s  %-4s  %-6d  %s\n",
			i+1, truncate(r.Title, 60), truncate(r.Authors, 24),
			year, r.CitationCount, truncate(r.Venue, 30))
	}

	writeStats(Collect(records), w)
}

// FormatList writes records as a detailed per-paper view with query
// terms highlighted via mark. Abstracts are truncated past 300 runes.
func FormatList(records []types.PaperRecord, query string, mark func(string) string, w io.Writer) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	for i, r := range records {
		fmt.Fprintf(w, "%d. %s\n", i+1, Highlight(r.Title, query, mark))

		year := "unknown"
		if r.HasYear() {
			year = fmt.Sprintf("%d", r.Year)
		}
		fmt.Fprintf(w, "   %s | %s | %d citations\n", r.Authors, year, r.CitationCount)
		if r.HasVenue() {
			fmt.Fprintf(w, "   %s\n", r.Venue)
		}

		if r.HasAbstract() {
			abstract := r.Abstract
			if len([]rune(abstract)) > 300 {
				abstract = string([]rune(abstract)[:300]) + "..."
			}
			fmt.Fprintf(w, "   %s\n", Highlight(abstract, query, mark))
		}

		fmt.Fprintf(w, "   %s\n", cite.APA(r))
		if r.URL != "" {
			fmt.Fprintf(w, "   %s\n", r.URL)
		}
		fmt.Fprintln(w)
	}

	writeStats(Collect(records), w)
}

func writeStats(s Stats, w io.Writer) {
	fmt.Fprintf(w, "\n%d results, %d total citations", s.Count, s.TotalCitations)
	if s.MaxYear != types.YearUnknown {
		fmt.Fprintf(w, ", newest %d", s.MaxYear)
	}
	if s.DistinctVenues > 0 {
		fmt.Fprintf(w, ", %d venues", s.DistinctVenues)
	}
	fmt.Fprintln(w)
}

// Highlight wraps every case-insensitive occurrence of each
// whitespace-separated query term in text using mark. Text and terms
// pass through untouched when either is empty.
func Highlight(text, query string, mark func(string) string) string {
	if text == "" || mark == nil {
		return text
	}
	highlighted := text
	for _, term := range strings.Fields(query) {
		re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(term))
		highlighted = re.ReplaceAllStringFunc(highlighted, mark)
	}
	return highlighted
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

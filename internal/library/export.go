// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package library

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/ubonasm/edustudy/internal/cite"
)

// csvHeader is the fixed CSV column set.
var csvHeader = []string{
	"No.", "title", "author", "year", "journal", "cites",
	"abstract", "URL", "APA style", "search words", "search date",
}

const exportDateFmt = "2006-01-02 15:04:05"

// ExportCSV writes saved papers to w as CSV, one numbered row per
// paper with its APA citation and save provenance.
func ExportCSV(w io.Writer, papers []SavedPaper) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for i, p := range papers {
		year := "unknown"
		if p.HasYear() {
			year = strconv.Itoa(p.Year)
		}
		row := []string{
			strconv.Itoa(i + 1),
			p.Title,
			p.Authors,
			year,
			p.Venue,
			strconv.Itoa(p.CitationCount),
			p.Abstract,
			p.URL,
			cite.APA(p.PaperRecord),
			p.SearchQuery,
			p.SavedAt.Format(exportDateFmt),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportBibTeX writes saved papers to w as a BibTeX bibliography with a
// generated header comment.
func ExportBibTeX(w io.Writer, papers []SavedPaper) error {
	entries := make([]string, len(papers))
	for i, p := range papers {
		entries[i] = cite.BibTeX(p.PaperRecord)
	}

	header := fmt.Sprintf(`%% BibTeX bibliography file
%% Generated by edustudy
%% Date: %s
%% Total entries: %d

`, time.Now().Format(exportDateFmt), len(papers))

	_, err := io.WriteString(w, header+strings.Join(entries, "\n\n")+"\n")
	return err
}

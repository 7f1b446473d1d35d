// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cite formats paper records as citations for reference
// managers: a simplified APA line and BibTeX entries.
package cite

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ubonasm/edustudy/pkg/types"
)

// APA renders a record as a simplified APA-style citation line. Venue
// italics are marked with asterisks for plain-text output. Unknown
// fields keep their placeholder text so the line is always complete.
func APA(rec types.PaperRecord) string {
	year := "(year unknown)"
	if rec.HasYear() {
		year = fmt.Sprintf("(%d)", rec.Year)
	}

	url := ""
	if rec.URL != "" {
		url = " " + rec.URL
	}

	return fmt.Sprintf("%s %s. %s. *%s*.%s", rec.Authors, year, rec.Title, rec.Venue, url)
}

// BibTeX renders a record as a BibTeX entry. The entry type is inferred
// from the venue name; the key combines the first author's last name,
// the year, and the first title word.
func BibTeX(rec types.PaperRecord) string {
	entry, venueField := entryType(rec.Venue)

	fields := []string{
		fmt.Sprintf("  title = {%s}", rec.Title),
		fmt.Sprintf("  author = {%s}", bibtexAuthors(rec.Authors)),
		fmt.Sprintf("  %s = {%s}", venueField, rec.Venue),
	}
	if rec.HasYear() {
		fields = append(fields, fmt.Sprintf("  year = {%d}", rec.Year))
	}
	if rec.URL != "" {
		fields = append(fields, fmt.Sprintf("  url = {%s}", rec.URL))
	}
	if rec.HasAbstract() && len(rec.Abstract) > 10 {
		fields = append(fields, fmt.Sprintf("  abstract = {%s}", escapeBibtex(rec.Abstract)))
	}

	return fmt.Sprintf("@%s{%s,\n%s\n}", entry, Key(rec), strings.Join(fields, ",\n"))
}

// Key builds the BibTeX citation key: first author's last name + year +
// first title word, with spaces and commas stripped.
func Key(rec types.PaperRecord) string {
	author := "Unknown"
	if rec.Authors != types.AuthorsUnknown {
		first := strings.Split(rec.Authors, ",")[0]
		parts := strings.Fields(first)
		if len(parts) > 0 {
			author = parts[len(parts)-1]
		}
	}

	year := "nd"
	if rec.HasYear() {
		year = strconv.Itoa(rec.Year)
	}

	word := "Unknown"
	if rec.Title != types.TitleUnknown {
		parts := strings.Fields(rec.Title)
		if len(parts) > 0 {
			word = parts[0]
		}
	}

	key := author + year + word
	key = strings.ReplaceAll(key, " ", "")
	return strings.ReplaceAll(key, ",", "")
}

// entryType infers the BibTeX entry type and venue field name from the
// venue name.
func entryType(venue string) (entry, venueField string) {
	if venue == types.VenueUnknown {
		return "misc", "howpublished"
	}
	lower := strings.ToLower(venue)
	for _, word := range []string{"conference", "proceedings", "workshop", "symposium"} {
		if strings.Contains(lower, word) {
			return "inproceedings", "booktitle"
		}
	}
	for _, word := range []string{"journal", "transactions", "letters"} {
		if strings.Contains(lower, word) {
			return "article", "journal"
		}
	}
	return "misc", "howpublished"
}

// bibtexAuthors converts a comma-joined author list to BibTeX's
// "and"-separated form.
func bibtexAuthors(authors string) string {
	if authors == types.AuthorsUnknown {
		return "Unknown Author"
	}
	parts := strings.Split(authors, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return strings.Join(parts, " and ")
}

func escapeBibtex(s string) string {
	r := strings.NewReplacer("{", "\\{", "}", "\\}", "%", "\\%")
	return r.Replace(s)
}

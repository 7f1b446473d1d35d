// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"strings"

	"github.com/ubonasm/edustudy/pkg/types"
)

// Normalize maps a raw API result to a fixed-shape PaperRecord. Missing
// fields receive the placeholder constants from pkg/types; a missing or
// non-positive year becomes the YearUnknown sentinel rather than 0.
func Normalize(p RawPaper) types.PaperRecord {
	rec := types.PaperRecord{
		Title:           p.Title,
		Authors:         joinAuthors(p.Authors),
		Year:            types.YearUnknown,
		Abstract:        p.Abstract,
		Venue:           p.Venue,
		URL:             p.URL,
		PublicationDate: p.PublicationDate,
	}

	if rec.Title == "" {
		rec.Title = types.TitleUnknown
	}
	if rec.Abstract == "" {
		rec.Abstract = types.AbstractNone
	}
	if rec.Venue == "" {
		rec.Venue = types.VenueUnknown
	}
	if p.Year != nil && *p.Year > 0 {
		rec.Year = *p.Year
	}
	if p.CitationCount != nil && *p.CitationCount > 0 {
		rec.CitationCount = *p.CitationCount
	}

	return rec
}

// joinAuthors renders the author list as a comma-joined sequence of
// names in source order, skipping entries without a name.
func joinAuthors(authors []RawAuthor) string {
	var names []string
	for _, a := range authors {
		if a.Name != "" {
			names = append(names, a.Name)
		}
	}
	if len(names) == 0 {
		return types.AuthorsUnknown
	}
	return strings.Join(names, ", ")
}

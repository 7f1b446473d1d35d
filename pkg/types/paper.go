// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the edustudy pipeline.
package types

// YearUnknown marks records whose source provided no usable publication
// year. It is distinct from 0 and from every real year the API returns.
const YearUnknown = -1

// Placeholder values substituted during normalization when the API omits
// a field. Kept as named constants so the normalization rules stay
// auditable in one place.
const (
	TitleUnknown   = "title unknown"
	AuthorsUnknown = "authors unknown"
	AbstractNone   = "no abstract"
	VenueUnknown   = "venue unknown"
)

// PaperRecord is one normalized search result. Every field is populated:
// missing source data is replaced by the placeholder constants above,
// never left absent silently. Records are immutable after normalization.
type PaperRecord struct {
	// Title is the paper title, or TitleUnknown.
	Title string `json:"title" yaml:"title"`

	// Authors is a comma-joined list of author names in source order,
	// or AuthorsUnknown when the source listed none.
	Authors string `json:"authors" yaml:"authors"`

	// Year is the publication year, or YearUnknown.
	Year int `json:"year" yaml:"year"`

	// Abstract is the paper abstract, or AbstractNone.
	Abstract string `json:"abstract" yaml:"abstract"`

	// Venue is the publication venue, or VenueUnknown.
	Venue string `json:"venue" yaml:"venue"`

	// CitationCount is the citation count; never negative, 0 when absent.
	CitationCount int `json:"citation_count" yaml:"citation_count"`

	// URL links to the paper. Empty means no outbound link exists.
	URL string `json:"url" yaml:"url"`

	// PublicationDate is the full publication date (YYYY-MM-DD) when
	// the source provided one; may be empty.
	PublicationDate string `json:"publication_date" yaml:"publication_date"`
}

// HasYear reports whether the record carries a real publication year.
func (r PaperRecord) HasYear() bool { return r.Year != YearUnknown }

// HasAbstract reports whether the record carries a real abstract.
func (r PaperRecord) HasAbstract() bool { return r.Abstract != AbstractNone }

// HasVenue reports whether the record carries a real venue.
func (r PaperRecord) HasVenue() bool { return r.Venue != VenueUnknown }

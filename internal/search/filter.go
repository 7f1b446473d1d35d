// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"strings"

	"github.com/ubonasm/edustudy/pkg/types"
)

// DomainTerms is the fixed vocabulary used to judge topical relevance.
// A raw result survives when its title+abstract contains any term as a
// case-insensitive substring. The heuristic is deliberately
// recall-oriented: out-of-context matches are accepted.
var DomainTerms = []string{
	"education", "learning", "teaching", "student", "school",
	"classroom", "pedagogy", "curriculum", "instruction",
}

// FilterRelevant keeps the raw results whose title+abstract mentions at
// least one domain term.
func FilterRelevant(raw []RawPaper) []RawPaper {
	var kept []RawPaper
	for _, p := range raw {
		if isRelevant(p) {
			kept = append(kept, p)
		}
	}
	return kept
}

func isRelevant(p RawPaper) bool {
	text := strings.ToLower(p.Title + " " + p.Abstract)
	for _, term := range DomainTerms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

// FilterYears keeps records whose year is a known integer inside the
// inclusive [from, to] range. Records carrying the unknown-year sentinel
// are always dropped, even for a maximally wide range: the date facet
// trades recall for precision, the opposite of the relevance filter.
func FilterYears(records []types.PaperRecord, from, to int) []types.PaperRecord {
	var kept []types.PaperRecord
	for _, r := range records {
		if !r.HasYear() {
			continue
		}
		if r.Year >= from && r.Year <= to {
			kept = append(kept, r)
		}
	}
	return kept
}

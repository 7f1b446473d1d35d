// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import "strings"

// DomainSynonyms are appended to every query to bias the external search
// engine toward education-related results. Order is fixed.
var DomainSynonyms = []string{"education", "learning", "teaching", "pedagogy", "educational"}

// EnhancedQuery builds the query string sent to the API: the raw query
// followed by the synonym list joined with OR. It is a pure function so
// alternative query-expansion strategies can be swapped in without
// touching the rest of the pipeline. A blank raw query yields "".
func EnhancedQuery(raw string, synonyms []string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if len(synonyms) == 0 {
		return raw
	}
	return raw + " " + strings.Join(synonyms, " OR ")
}

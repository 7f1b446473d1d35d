// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search queries the Semantic Scholar API and runs results
// through the education-relevance pipeline: query enhancement, relevance
// filtering, normalization, year filtering, and citation ranking.
package search

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/ubonasm/edustudy/pkg/types"
)

// ErrAPIConnection indicates a transport-level failure reaching the
// search service: timeout, DNS failure, refused connection, or a non-2xx
// HTTP status.
var ErrAPIConnection = errors.New("search API connection failed")

// ErrSearch covers any other failure while obtaining or parsing the
// response, such as a malformed body.
var ErrSearch = errors.New("search failed")

// Searcher fetches raw results from a paper-search service.
type Searcher interface {
	Name() string
	Search(ctx context.Context, query string, limit int, cfg types.SearchConfig) ([]RawPaper, error)
}

// Params holds one search invocation's inputs.
type Params struct {
	// Query is the user's raw search text. A blank query short-circuits
	// the pipeline to an empty result set without touching the network.
	Query string

	// Limit bounds the number of raw results requested (default 20).
	Limit int

	// YearFrom and YearTo bound the inclusive publication-year range.
	YearFrom int
	YearTo   int
}

// Run executes one full search: enhance the query, fetch raw results,
// keep education-relevant ones, normalize, drop records outside the year
// range, and rank by citation count. Each invocation is a single linear
// pass with no retained state.
//
// On a fetch failure Run returns the classified error together with an
// empty record set; callers surface the message and render zero results
// rather than aborting.
func Run(ctx context.Context, s Searcher, p Params, cfg types.SearchConfig) ([]types.PaperRecord, error) {
	if strings.TrimSpace(p.Query) == "" {
		return nil, nil
	}

	raw, err := s.Search(ctx, EnhancedQuery(p.Query, DomainSynonyms), p.Limit, cfg)
	if err != nil {
		return nil, err
	}

	relevant := FilterRelevant(raw)

	records := make([]types.PaperRecord, 0, len(relevant))
	for _, r := range relevant {
		records = append(records, Normalize(r))
	}

	records = FilterYears(records, p.YearFrom, p.YearTo)
	RankByCitations(records)
	return records, nil
}

// RankByCitations sorts records in place by citation count descending.
// The sort is stable: records with equal counts keep the order the
// prior stage produced.
func RankByCitations(records []types.PaperRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CitationCount > records[j].CitationCount
	})
}

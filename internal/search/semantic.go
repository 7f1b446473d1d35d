// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ubonasm/edustudy/internal/httputil"
	"github.com/ubonasm/edustudy/pkg/types"
)

// semanticAPIBase is the Semantic Scholar paper search endpoint. Declared
// as a var so tests can substitute an httptest server.
var semanticAPIBase = "https://api.semanticscholar.org/graph/v1/paper/search"

const semanticFields = "paperId,title,authors,year,abstract,venue,citationCount,publicationDate,url"

const (
	defaultLimit = 20
	maxLimit     = 100
)

// SemanticScholarClient queries the Semantic Scholar API.
type SemanticScholarClient struct {
	Client *http.Client
	APIKey string
}

// Name returns the service identifier.
func (c *SemanticScholarClient) Name() string { return "semantic_scholar" }

// Search issues one GET request to the Semantic Scholar API and returns
// the raw result sequence. Failures are classified: transport errors and
// non-2xx statuses wrap ErrAPIConnection, everything else wraps
// ErrSearch. There are no retries; every invocation is a fresh call.
func (c *SemanticScholarClient) Search(ctx context.Context, query string, limit int, cfg types.SearchConfig) ([]RawPaper, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: empty query", ErrSearch)
	}

	params := url.Values{
		"query":  {query},
		"limit":  {fmt.Sprintf("%d", clampLimit(limit))},
		"fields": {semanticFields},
	}

	reqURL := semanticAPIBase + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %v", ErrSearch, err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)
	req.Header.Set("Accept", "application/json")
	if c.APIKey != "" {
		req.Header.Set("x-api-key", c.APIKey)
	}

	resp, err := httputil.Do(ctx, c.Client, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAPIConnection, err)
	}
	defer resp.Body.Close()

	var sr semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("%w: parsing response: %v", ErrSearch, err)
	}

	return sr.Data, nil
}

// clampLimit bounds the requested result count to the API's valid range.
func clampLimit(n int) int {
	switch {
	case n <= 0:
		return defaultLimit
	case n > maxLimit:
		return maxLimit
	default:
		return n
	}
}

// Semantic Scholar API JSON structures. Year and CitationCount are
// pointers so a null or absent field is distinguishable from a literal 0.
type semanticResponse struct {
	Total  int        `json:"total"`
	Offset int        `json:"offset"`
	Data   []RawPaper `json:"data"`
}

// RawPaper is one unprocessed result object from the API.
type RawPaper struct {
	PaperID         string      `json:"paperId"`
	Title           string      `json:"title"`
	Abstract        string      `json:"abstract"`
	Year            *int        `json:"year"`
	Venue           string      `json:"venue"`
	CitationCount   *int        `json:"citationCount"`
	PublicationDate string      `json:"publicationDate"`
	URL             string      `json:"url"`
	Authors         []RawAuthor `json:"authors"`
}

// RawAuthor is one author entry from the API.
type RawAuthor struct {
	AuthorID string `json:"authorId"`
	Name     string `json:"name"`
}

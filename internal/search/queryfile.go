// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/ubonasm/edustudy/pkg/types"
)

// QueryFile is the on-disk representation of a search and its results.
// A search can be saved to a file and reloaded later without re-querying
// the API.
type QueryFile struct {
	Query   QueryParams         `yaml:"query"`
	Records []types.PaperRecord `yaml:"records"`
	Summary QuerySummary        `yaml:"summary"`
}

// QueryParams stores the search parameters in a serializable form.
type QueryParams struct {
	Raw      string `yaml:"raw"`
	Enhanced string `yaml:"enhanced"`
	Limit    int    `yaml:"limit"`
	YearFrom int    `yaml:"year_from"`
	YearTo   int    `yaml:"year_to"`
}

// QuerySummary stores result statistics and a timestamp.
type QuerySummary struct {
	Total       int       `yaml:"total"`
	SearchError string    `yaml:"search_error,omitempty"`
	Timestamp   time.Time `yaml:"timestamp"`
}

// WriteQueryFile saves search parameters and records to a YAML file.
func WriteQueryFile(path string, p Params, records []types.PaperRecord, searchErr error) error {
	qf := QueryFile{
		Query: QueryParams{
			Raw:      p.Query,
			Enhanced: EnhancedQuery(p.Query, DomainSynonyms),
			Limit:    p.Limit,
			YearFrom: p.YearFrom,
			YearTo:   p.YearTo,
		},
		Records: records,
		Summary: QuerySummary{
			Total:     len(records),
			Timestamp: time.Now(),
		},
	}
	if searchErr != nil {
		qf.Summary.SearchError = searchErr.Error()
	}

	data, err := yaml.Marshal(&qf)
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadQueryFile loads a previously saved query file from disk.
func ReadQueryFile(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing query file: %w", err)
	}
	return &qf, nil
}

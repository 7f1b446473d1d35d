package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "edustudy/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the search stage.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the maximum number of results requested from the
	// API (default 20, clamped to the API bound of 100).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// SemanticScholarAPIKey is an optional API key for higher rate limits.
	SemanticScholarAPIKey string `json:"semantic_scholar_api_key,omitempty" yaml:"semantic_scholar_api_key,omitempty"`
}

// LibraryConfig holds settings for the saved-paper library.
type LibraryConfig struct {
	// LibraryDir is the directory holding the library database
	// (contains library.db).
	LibraryDir string `json:"library_dir" yaml:"library_dir"`
}

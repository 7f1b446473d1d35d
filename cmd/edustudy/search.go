package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ubonasm/edustudy/internal/library"
	"github.com/ubonasm/edustudy/internal/report"
	"github.com/ubonasm/edustudy/internal/search"
	"github.com/ubonasm/edustudy/pkg/types"
)

const (
	defaultTimeout   = 10 * time.Second
	defaultYearFrom  = 2000
	defaultUserAgent = "edustudy/0.1"
)

// ansiMark wraps a matched query term for terminal highlighting.
func ansiMark(s string) string { return "\x1b[1;33m" + s + "\x1b[0m" }

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search Semantic Scholar for education papers",
	Long: `Search queries the Semantic Scholar API with the query expanded by
education synonyms, keeps education-relevant results inside the given
publication-year range, and ranks them by citation count.

A failed API call prints a warning and renders zero results; it never
aborts. An empty query performs no network call at all.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().Int("limit", 0, "maximum raw results to request (default 20)")
	searchCmd.Flags().Int("year-from", defaultYearFrom, "publication year range start (inclusive)")
	searchCmd.Flags().Int("year-to", 0, "publication year range end (inclusive, default current year)")
	searchCmd.Flags().Duration("timeout", defaultTimeout, "HTTP request timeout")
	searchCmd.Flags().Bool("json", false, "output records as JSON")
	searchCmd.Flags().Bool("long", false, "detailed view with highlighted query terms")
	searchCmd.Flags().Bool("save", false, "save results to the library")
	searchCmd.Flags().String("out", "", "write the search and its results to a YAML query file")
	searchCmd.Flags().String("library-dir", "", "library directory (default \"library\")")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	if strings.TrimSpace(query) == "" {
		fmt.Fprintln(os.Stderr, "empty query: nothing to search")
		fmt.Println("No results found.")
		return nil
	}

	limit, _ := cmd.Flags().GetInt("limit")
	if limit == 0 {
		limit = viper.GetInt("search.max_results")
	}
	yearFrom, _ := cmd.Flags().GetInt("year-from")
	yearTo, _ := cmd.Flags().GetInt("year-to")
	if yearTo == 0 {
		yearTo = time.Now().Year()
	}
	timeout, _ := cmd.Flags().GetDuration("timeout")

	cfg := types.SearchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		MaxResults:            limit,
		SemanticScholarAPIKey: apiKey(),
	}

	client := &search.SemanticScholarClient{
		Client: &http.Client{Timeout: cfg.Timeout},
		APIKey: cfg.SemanticScholarAPIKey,
	}

	params := search.Params{
		Query:    query,
		Limit:    limit,
		YearFrom: yearFrom,
		YearTo:   yearTo,
	}

	records, searchErr := search.Run(context.Background(), client, params, cfg)
	if searchErr != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", searchErr)
	}

	if out, _ := cmd.Flags().GetString("out"); out != "" {
		if err := search.WriteQueryFile(out, params, records, searchErr); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "Saved query file:", out)
	}

	if save, _ := cmd.Flags().GetBool("save"); save && len(records) > 0 {
		added, err := saveToLibrary(cmd, records, query)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved %d new paper(s) to the library\n", added)
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	longOutput, _ := cmd.Flags().GetBool("long")

	switch {
	case jsonOutput:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case longOutput:
		report.FormatList(records, query, ansiMark, os.Stdout)
	default:
		report.FormatTable(records, os.Stdout)
	}
	return nil
}

func saveToLibrary(cmd *cobra.Command, records []types.PaperRecord, query string) (int, error) {
	store, err := library.Open(libraryConfig(cmd))
	if err != nil {
		return 0, err
	}
	defer store.Close()

	return store.Save(context.Background(), records, query)
}

func libraryConfig(cmd *cobra.Command) types.LibraryConfig {
	dir, _ := cmd.Flags().GetString("library-dir")
	if dir == "" {
		dir = viper.GetString("library.dir")
	}
	return types.LibraryConfig{LibraryDir: dir}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ubonasm/edustudy/internal/library"
	"github.com/ubonasm/edustudy/internal/report"
	"github.com/ubonasm/edustudy/pkg/types"
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Manage the saved-paper library (list, export, clear)",
	Long: `Library manages papers saved from search results in a local SQLite
database. Use subcommands to list them, export them as CSV or BibTeX,
or clear the library.`,
}

// --- list subcommand ---

var libraryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved papers",
	RunE:  runLibraryList,
}

func runLibraryList(cmd *cobra.Command, args []string) error {
	store, err := library.Open(libraryConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	filter, _ := cmd.Flags().GetString("query")
	papers, err := store.List(context.Background(), filter)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(papers)
	}

	report.FormatTable(papersToRecords(papers), os.Stdout)
	return nil
}

// papersToRecords strips save-time provenance for table rendering.
func papersToRecords(papers []library.SavedPaper) []types.PaperRecord {
	records := make([]types.PaperRecord, len(papers))
	for i, p := range papers {
		records[i] = p.PaperRecord
	}
	return records
}

// --- export subcommand ---

var libraryExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the library as CSV or BibTeX",
	Long: `Export writes all saved papers to a file (or stdout) as CSV with
APA citations, or as a BibTeX bibliography.`,
	RunE: runLibraryExport,
}

func runLibraryExport(cmd *cobra.Command, args []string) error {
	store, err := library.Open(libraryConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	papers, err := store.List(context.Background(), "")
	if err != nil {
		return err
	}

	out := os.Stdout
	if path, _ := cmd.Flags().GetString("out"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		defer f.Close()
		out = f
		defer fmt.Fprintln(os.Stderr, "Exported to", path)
	}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "csv", "":
		return library.ExportCSV(out, papers)
	case "bibtex":
		return library.ExportBibTeX(out, papers)
	default:
		return fmt.Errorf("unsupported format %q: use csv or bibtex", format)
	}
}

// --- clear subcommand ---

var libraryClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all saved papers",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := library.Open(libraryConfig(cmd))
		if err != nil {
			return err
		}
		defer store.Close()

		removed, err := store.Clear(context.Background())
		if err != nil {
			return err
		}
		fmt.Printf("Removed %d paper(s)\n", removed)
		return nil
	},
}

func init() {
	libraryCmd.PersistentFlags().String("library-dir", "", "library directory (default \"library\")")

	libraryListCmd.Flags().String("query", "", "filter by title/abstract substring")
	libraryListCmd.Flags().Bool("json", false, "output papers as JSON")

	libraryExportCmd.Flags().String("format", "csv", "export format: csv or bibtex")
	libraryExportCmd.Flags().String("out", "", "output file (default stdout)")

	libraryCmd.AddCommand(libraryListCmd)
	libraryCmd.AddCommand(libraryExportCmd)
	libraryCmd.AddCommand(libraryClearCmd)

	rootCmd.AddCommand(libraryCmd)
}

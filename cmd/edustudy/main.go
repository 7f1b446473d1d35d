// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the edustudy CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ubonasm/edustudy/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// apiKey resolves the Semantic Scholar API key: the .secrets/ file
// first, then config/environment via viper.
func apiKey() string {
	if v, ok := loadedSecrets["semantic-scholar-api-key"]; ok {
		return v
	}
	return viper.GetString("semantic_scholar_api_key")
}

// rootCmd is the base command for the edustudy CLI.
var rootCmd = &cobra.Command{
	Use:   "edustudy",
	Short: "Search education research papers via Semantic Scholar",
	Long: `edustudy searches the Semantic Scholar paper database with an
education-focused pipeline: queries are expanded with education synonyms,
results are filtered to education-relevant papers inside a publication-year
range and ranked by citation count.

Search results can be rendered as a table, a detailed list with keyword
highlighting, or JSON, and saved into a local library exportable as CSV
or BibTeX.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./edustudy.yaml or ~/.config/edustudy/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("edustudy")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "edustudy"))
		}
	}

	viper.SetEnvPrefix("EDUSTUDY")
	viper.AutomaticEnv()

	viper.SetDefault("search.max_results", 20)
	viper.SetDefault("library.dir", "library")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdfdesk CLI.
// Implements: prd001-merge, prd002-split, prd004-history (CLI surface).
// See docs/ARCHITECTURE § CLI Surface.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdfdesk/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the pdfdesk CLI.
var rootCmd = &cobra.Command{
	Use:   "pdfdesk",
	Short: "Batch merge and split for folders of PDF files",
	Long: `pdfdesk merges multiple PDF files into one and partitions one PDF into
several, working over folder trees of documents.

Each operation is a subcommand: merge, split, and scan. The favorites and
history subcommands manage the pinned-folder list and the record of past
batch runs.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdfdesk.yaml or ~/.config/pdfdesk/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdfdesk")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdfdesk"))
		}
	}

	viper.SetEnvPrefix("PDFDESK")
	viper.AutomaticEnv()

	viper.SetDefault("engine.output_dir", "output")
	viper.SetDefault("engine.naming_pattern", "part_[N].pdf")
	viper.SetDefault("favorites.path", filepath.Join(".pdfdesk", "favorites.json"))
	viper.SetDefault("history.dir", ".pdfdesk")
	viper.SetDefault("history.max_results", 20)
	viper.SetDefault("update.repo", "pdiddy/pdfdesk")
	viper.SetDefault("secrets.dir", filepath.Join(".pdfdesk", "secrets"))

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func engineConfig() types.EngineConfig {
	return types.EngineConfig{
		OutputDir:     viper.GetString("engine.output_dir"),
		NamingPattern: viper.GetString("engine.naming_pattern"),
	}
}

func favoritesConfig() types.FavoritesConfig {
	return types.FavoritesConfig{
		Path: viper.GetString("favorites.path"),
	}
}

func historyConfig() types.HistoryConfig {
	return types.HistoryConfig{
		HistoryDir: viper.GetString("history.dir"),
		MaxResults: viper.GetInt("history.max_results"),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

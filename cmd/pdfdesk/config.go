package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdfdesk/pkg/types"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the pdfdesk configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a pdfdesk.yaml with the default settings",
	RunE:  runConfigInit,
}

func init() {
	configInitCmd.Flags().Bool("force", false, "overwrite an existing pdfdesk.yaml")

	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func defaultConfig() types.Config {
	return types.Config{
		Engine: types.EngineConfig{
			OutputDir:     "output",
			NamingPattern: "part_[N].pdf",
		},
		Favorites: types.FavoritesConfig{
			Path: filepath.Join(".pdfdesk", "favorites.json"),
		},
		History: types.HistoryConfig{
			HistoryDir: ".pdfdesk",
			MaxResults: 20,
		},
		Update: types.UpdateConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   defaultUpdateTimeout,
				UserAgent: defaultUserAgent,
			},
			Repo:       "pdiddy/pdfdesk",
			MaxRetries: 3,
		},
	}
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	const path = "pdfdesk.yaml"

	force, _ := cmd.Flags().GetBool("force")
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	data, err := yaml.Marshal(defaultConfig())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

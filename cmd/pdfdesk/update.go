package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdfdesk/internal/secrets"
	"github.com/pdiddy/pdfdesk/internal/update"
	"github.com/pdiddy/pdfdesk/pkg/types"
)

const (
	defaultUpdateTimeout = 15 * time.Second
	defaultUserAgent     = "pdfdesk/0.1"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check GitHub for a newer release",
	RunE:  runUpdate,
}

func init() {
	updateCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 15s)")

	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultUpdateTimeout
	}

	cfg := types.UpdateConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		Repo: viper.GetString("update.repo"),
	}

	// An optional github-token raises the API rate limit.
	cfg.Token = secrets.GitHubToken(viper.GetString("secrets.dir"))

	client := &http.Client{Timeout: cfg.Timeout}
	release, err := update.Latest(cmd.Context(), client, cfg)
	if err != nil {
		return err
	}

	if update.IsNewer(version, release.Tag) {
		fmt.Printf("new release available: %s (%s)\n", release.Tag, release.URL)
		return nil
	}
	fmt.Printf("pdfdesk %s is up to date (latest release: %s)\n", version, release.Tag)
	return nil
}

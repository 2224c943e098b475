package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pdfdesk/internal/history"
	"github.com/pdiddy/pdfdesk/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent batch operations",
	Long: `History lists the most recent merge and split runs recorded in the
history database, newest first, with their per-item outcomes.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 0, "maximum number of runs to list (default from config)")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := history.NewStore(historyConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := store.Recent(cmd.Context(), limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no recorded runs")
		return nil
	}

	for _, run := range runs {
		fmt.Printf("#%d  %s  %s  %s -> %s  (%d ok, %d failed, %s)\n",
			run.ID, run.Started.Local().Format("2006-01-02 15:04"),
			run.Operation, run.Source, run.Output,
			run.Succeeded, run.Failed, run.Duration.Round(time.Millisecond))
		for _, item := range run.Items {
			if item.Error != "" {
				fmt.Printf("    failed: %s (%s)\n", item.Item, item.Error)
			}
		}
	}
	return nil
}

// recordRun writes one engine run into the history database. History is a
// side channel; failures to record are warnings, never batch failures.
func recordRun(ctx context.Context, operation, source, output string, started time.Time, result *types.BatchResult, runErr error) {
	store, err := history.NewStore(historyConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history unavailable: %v\n", err)
		return
	}
	defer store.Close()

	run := history.Run{
		Operation: operation,
		Source:    source,
		Output:    output,
		Started:   started,
		Duration:  time.Since(started),
		Succeeded: result.Succeeded(),
		Failed:    result.Failed(),
		Items:     history.ItemsFromResult(result),
	}
	if runErr != nil {
		// A whole-batch failure shows up as zero successes plus the error
		// on the items that carry one.
		run.Output = ""
	}
	if _, err := store.Record(ctx, run); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record history: %v\n", err)
	}
}

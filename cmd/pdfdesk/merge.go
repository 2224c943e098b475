package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pdfdesk/internal/merge"
	"github.com/pdiddy/pdfdesk/internal/pdfdoc"
	"github.com/pdiddy/pdfdesk/internal/scan"
	"github.com/pdiddy/pdfdesk/pkg/progress"
)

var mergeCmd = &cobra.Command{
	Use:   "merge <output.pdf> [input.pdf...]",
	Short: "Merge PDF files into a single document",
	Long: `Merge copies every page of every input file, in the given order, into one
new PDF. Inputs that are missing or unreadable are skipped with a warning;
the merge fails only when no pages could be copied at all or the output
cannot be written.

With --dir, the inputs are every PDF found under the given folder tree, in
sorted path order, instead of explicit arguments.`,
	RunE: runMerge,
}

func init() {
	mergeCmd.Flags().String("dir", "", "merge every PDF under this folder tree instead of listing inputs")
	mergeCmd.Flags().Bool("progress", false, "print progress percentages")
	mergeCmd.Flags().Bool("no-history", false, "do not record this run in the history database")

	rootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide the output file path")
	}
	outputPath := args[0]
	inputs := args[1:]

	dir, _ := cmd.Flags().GetString("dir")
	if dir != "" {
		if len(inputs) > 0 {
			return fmt.Errorf("use either --dir or explicit input files, not both")
		}
		var err error
		inputs, err = scan.PDFs(dir)
		if err != nil {
			return err
		}
	}
	if len(inputs) == 0 {
		return fmt.Errorf("provide one or more input PDF files")
	}

	opts := merge.Options{Log: os.Stdout}
	if on, _ := cmd.Flags().GetBool("progress"); on {
		opts.Progress = progressPrinter()
	}

	started := time.Now()
	result, err := merge.Merge(cmd.Context(), pdfdoc.New(), inputs, outputPath, opts)

	if skip, _ := cmd.Flags().GetBool("no-history"); !skip && result != nil {
		recordRun(cmd.Context(), "merge", fmt.Sprintf("%d sources", len(inputs)), outputPath, started, result, err)
	}

	if err != nil {
		return err
	}
	if result.Failed() > 0 {
		fmt.Fprintf(os.Stdout, "warning: %d of %d sources skipped\n", result.Failed(), len(inputs))
	}
	return nil
}

// progressPrinter returns a sink that prints each distinct percentage.
func progressPrinter() progress.Sink {
	last := -1
	return progress.Func(func(percent int) {
		if percent != last {
			fmt.Printf("  %3d%%\n", percent)
			last = percent
		}
	})
}

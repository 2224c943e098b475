package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pdfdesk/internal/pdfdoc"
	"github.com/pdiddy/pdfdesk/internal/split"
	"github.com/pdiddy/pdfdesk/pkg/types"
)

var splitCmd = &cobra.Command{
	Use:   "split <input.pdf>",
	Short: "Partition a PDF into several documents",
	Long: `Split partitions one PDF into several output files using one of three
strategies:

  --ranges 1-3,5,9-12   one output per page range, in the given order
  --pages               one single-page output per page
  --parts N             N parts of equal page count (the last may be shorter)

Output files are named by the pattern's [N] placeholder, replaced with the
zero-padded part number. A part that fails is skipped; the remaining parts
are still produced.`,
	RunE: runSplit,
}

func init() {
	splitCmd.Flags().String("ranges", "", "comma-separated page ranges, e.g. 1-3,5,9-12")
	splitCmd.Flags().Bool("pages", false, "one single-page output per page")
	splitCmd.Flags().Int("parts", 0, "number of equal parts")
	splitCmd.Flags().String("out", "", "output directory (default from config)")
	splitCmd.Flags().String("pattern", "", "output naming pattern with [N] placeholder (default from config)")
	splitCmd.Flags().Bool("progress", false, "print progress percentages")
	splitCmd.Flags().Bool("no-history", false, "do not record this run in the history database")

	rootCmd.AddCommand(splitCmd)
}

func runSplit(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("provide exactly one input PDF file")
	}
	sourcePath := args[0]

	rangeSpec, _ := cmd.Flags().GetString("ranges")
	byPage, _ := cmd.Flags().GetBool("pages")
	parts, _ := cmd.Flags().GetInt("parts")

	modes := 0
	for _, on := range []bool{rangeSpec != "", byPage, parts != 0} {
		if on {
			modes++
		}
	}
	if modes != 1 {
		return fmt.Errorf("choose exactly one of --ranges, --pages, or --parts")
	}

	cfg := engineConfig()
	outputDir, _ := cmd.Flags().GetString("out")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}
	pattern, _ := cmd.Flags().GetString("pattern")
	if pattern == "" {
		pattern = cfg.NamingPattern
	}
	if !split.ValidPattern(pattern) {
		return fmt.Errorf("naming pattern %q has no %s placeholder", pattern, split.SequenceToken)
	}

	opts := split.Options{Log: os.Stdout}
	if on, _ := cmd.Flags().GetBool("progress"); on {
		opts.Progress = progressPrinter()
	}

	lib := pdfdoc.New()
	started := time.Now()

	var operation string
	var result *types.BatchResult
	var err error
	switch {
	case rangeSpec != "":
		operation = "split-ranges"
		var ranges []types.PageRange
		ranges, err = types.ParseRanges(rangeSpec)
		if err == nil {
			result, err = split.ByRanges(cmd.Context(), lib, sourcePath, ranges, outputDir, pattern, opts)
		}
	case byPage:
		operation = "split-pages"
		result, err = split.ByPage(cmd.Context(), lib, sourcePath, outputDir, pattern, opts)
	default:
		operation = "split-equal"
		result, err = split.Equally(cmd.Context(), lib, sourcePath, parts, outputDir, pattern, opts)
	}

	if skip, _ := cmd.Flags().GetBool("no-history"); !skip && result != nil {
		recordRun(cmd.Context(), operation, sourcePath, outputDir, started, result, err)
	}

	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "\nproduced %d file(s), %d part(s) failed\n", result.Produced(), result.Failed())
	return nil
}

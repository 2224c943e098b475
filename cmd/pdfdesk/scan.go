package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pdfdesk/internal/pdfdoc"
	"github.com/pdiddy/pdfdesk/internal/scan"
)

var scanCmd = &cobra.Command{
	Use:   "scan [folder]",
	Short: "List PDF files under a folder tree",
	Long: `Scan walks a folder tree and lists every PDF file it finds, in sorted
path order. With --counts each file is opened to report its page count;
files that do not parse as PDFs are skipped with a warning.`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().Bool("counts", false, "open each file and report its page count")

	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	paths, err := scan.PDFs(root)
	if err != nil {
		return err
	}

	if counts, _ := cmd.Flags().GetBool("counts"); counts {
		for _, entry := range scan.Enrich(pdfdoc.New(), paths, os.Stderr) {
			fmt.Printf("%6d  %s\n", entry.Pages, entry.Path)
		}
		return nil
	}

	for _, path := range paths {
		fmt.Println(path)
	}
	return nil
}

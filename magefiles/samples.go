//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	gofpdf "github.com/lvillar/gofpdf"
)

// Samples generates labeled sample PDFs under samples/ for manual testing
// of the merge and split commands.
func Samples() error {
	if err := os.MkdirAll("samples", 0o755); err != nil {
		return fmt.Errorf("creating samples: %w", err)
	}
	docs := []struct {
		name  string
		pages int
	}{
		{"report", 10},
		{"invoice", 3},
		{"letter", 1},
	}
	for _, d := range docs {
		path := filepath.Join("samples", d.name+".pdf")
		pdf := gofpdf.New("P", "mm", "A4", "")
		pdf.SetFont("Helvetica", "", 24)
		for i := 1; i <= d.pages; i++ {
			pdf.AddPage()
			pdf.SetXY(20, 40)
			pdf.Cell(0, 10, fmt.Sprintf("%s, page %d of %d", d.name, i, d.pages))
		}
		if err := pdf.OutputFileAndClose(path); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Println("  ", path)
	}
	fmt.Println("Sample PDFs generated.")
	return nil
}

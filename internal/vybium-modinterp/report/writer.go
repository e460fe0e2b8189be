package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vybium/vybium-modinterp/internal/vybium-modinterp/extract"
)

const previewPairs = 5

// Writer renders results as the human-readable report
type Writer struct {
	Modulus int64

	// Verbose adds statistics and digests to each file section
	Verbose bool
}

// NewWriter creates a report writer for the given modulus
func NewWriter(modulus int64) *Writer {
	return &Writer{Modulus: modulus}
}

// WriteResults renders every result, separated by a dashed line
func (w *Writer) WriteResults(out io.Writer, results []*FileResult) error {
	bw := bufio.NewWriter(out)
	if len(results) == 0 {
		fmt.Fprintln(bw, "No results found in any files.")
		return bw.Flush()
	}

	for _, r := range results {
		w.writeResult(bw, r)
		fmt.Fprintf(bw, "\n%s\n\n", strings.Repeat("-", 50))
	}
	return bw.Flush()
}

func (w *Writer) writeResult(bw *bufio.Writer, r *FileResult) {
	fmt.Fprintf(bw, "File: %s\n", r.Name)

	if r.ReadErr != nil {
		fmt.Fprintf(bw, "Error reading file: %v\n", r.ReadErr)
		return
	}
	if len(r.Pairs) == 0 {
		fmt.Fprintln(bw, "No valid number pairs found.")
		return
	}

	preview := r.Pairs
	if len(preview) > previewPairs {
		preview = preview[:previewPairs]
	}
	fmt.Fprintf(bw, "Found %d number pairs\n", len(r.Pairs))
	fmt.Fprintf(bw, "First few pairs: %s...\n", extract.FormatPairs(preview))

	if r.Sampled != nil {
		fmt.Fprintf(bw, "Used %d sampled pairs for polynomial calculation\n", len(r.Sampled))
	}

	if w.Verbose && r.Stats != nil {
		fmt.Fprintf(bw, "X stats: %s\n", r.Stats.X)
		fmt.Fprintf(bw, "Y stats: %s\n", r.Stats.Y)
	}

	if r.XPoly != nil {
		fmt.Fprintf(bw, "\nLagrange Polynomial for X values (mod %d):\n", w.Modulus)
		fmt.Fprintf(bw, "P_x(i) = %s\n", r.XPoly)
		fmt.Fprintf(bw, "(Where i is the index from 0 to n-1 mod %d)\n", w.Modulus)
	}
	if r.YPoly != nil {
		fmt.Fprintf(bw, "\nLagrange Polynomial for Y values (mod %d):\n", w.Modulus)
		fmt.Fprintf(bw, "P_y(i) = %s\n", r.YPoly)
		fmt.Fprintf(bw, "(Where i is the index from 0 to n-1 mod %d)\n", w.Modulus)
	}

	if w.Verbose && r.Digest != "" {
		fmt.Fprintf(bw, "\nDigest: %s\n", r.Digest)
	}

	if r.Err != nil {
		fmt.Fprintf(bw, "\nError calculating Lagrange polynomial: %v\n", r.Err)
	}
}

// SaveResults writes the report to path, replacing any existing file
func (w *Writer) SaveResults(path string, results []*FileResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := w.WriteResults(f, results); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

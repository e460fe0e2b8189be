// Command vybium-modinterp extracts "(x,y)" pairs from the text files of a
// folder and fits Lagrange polynomials mod m to the x and y sequences.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/vybium/vybium-modinterp/internal/vybium-modinterp/batch"
	"github.com/vybium/vybium-modinterp/internal/vybium-modinterp/log"
	"github.com/vybium/vybium-modinterp/internal/vybium-modinterp/report"
	"github.com/vybium/vybium-modinterp/internal/vybium-modinterp/utils"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// options holds the flags that are not part of utils.Config
type options struct {
	dir         string
	save        bool
	verbose     bool
	interactive bool
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg := utils.DefaultConfig()
	var opt options

	fs := flag.NewFlagSet("vybium-modinterp", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opt.dir, "dir", "", "folder containing the input text files")
	fs.Int64Var(&cfg.Modulus, "modulus", cfg.Modulus, "ring modulus m")
	fs.IntVar(&cfg.SampleSize, "sample", cfg.SampleSize, "number of evenly spaced pairs to use (0 = all)")
	fs.StringVar(&cfg.Pattern, "pattern", cfg.Pattern, "glob selecting input files inside the folder")
	fs.BoolVar(&opt.save, "save", false, "save the report to a file")
	fs.StringVar(&cfg.OutputFile, "out", cfg.OutputFile, "report file (default lagrange_polynomials_mod<m>.txt in the folder)")
	fs.StringVar(&cfg.HashFunction, "hash", cfg.HashFunction, "result digest (sha3, sha256, blake3, tip5)")
	fs.StringVar(&cfg.ChartDir, "chart-dir", cfg.ChartDir, "write an HTML chart per file into this folder")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "files processed concurrently")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log verbosity (debug, info, warn, error)")
	fs.BoolVar(&opt.verbose, "verbose", false, "include statistics and digests in the report")
	fs.BoolVar(&opt.interactive, "interactive", false, "prompt for folder, sampling and saving")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	in := bufio.NewReader(stdin)
	if opt.interactive {
		printBanner(stdout, cfg.Modulus)
		opt.dir = prompt(in, stdout, "Enter the folder path containing text files: ")
		if answer := prompt(in, stdout, "For large datasets, using a smaller sample can help.\nDo you want to use sampling? (y/n): "); strings.EqualFold(answer, "y") {
			input := prompt(in, stdout, "Enter the number of points to sample (e.g., 26 for a polynomial of degree 25): ")
			size, err := strconv.Atoi(input)
			if err != nil || size < 0 {
				fmt.Fprintln(stdout, "Invalid input. Using all points.")
				size = 0
			}
			cfg.SampleSize = size
		}
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "invalid configuration: %v\n", err)
		return 1
	}
	if opt.dir == "" {
		fmt.Fprintln(stderr, "a folder is required: use -dir or -interactive")
		return 1
	}

	level, _ := log.ParseLevel(cfg.LogLevel)
	logger := log.New(stderr, level)

	processor, err := batch.NewProcessor(cfg, logger)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}

	results, err := processor.ProcessFolder(ctx, opt.dir)
	switch {
	case errors.Is(err, batch.ErrNotDirectory):
		fmt.Fprintf(stderr, "Error: '%s' is not a valid directory\n", opt.dir)
		return 1
	case errors.Is(err, batch.ErrNoFiles):
		fmt.Fprintf(stderr, "No files matching %s found in '%s'\n", cfg.Pattern, opt.dir)
		return 1
	case err != nil:
		logger.Error("processing failed", "err", err)
		return 1
	}

	writer := report.NewWriter(cfg.Modulus)
	writer.Verbose = opt.verbose

	fmt.Fprintln(stdout, "\n=== Results ===")
	if err := writer.WriteResults(stdout, results); err != nil {
		logger.Error("failed to write results", "err", err)
		return 1
	}

	if opt.interactive && !opt.save {
		answer := prompt(in, stdout, "\nDo you want to save all results to a file? (y/n): ")
		opt.save = strings.EqualFold(answer, "y")
	}
	if opt.save {
		path := cfg.OutputPath(opt.dir)
		if err := writer.SaveResults(path, results); err != nil {
			logger.Error("failed to save results", "err", err)
			return 1
		}
		fmt.Fprintf(stdout, "Results saved to: %s\n", path)
	}

	return 0
}

func printBanner(w io.Writer, modulus int64) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Lagrange Polynomial Calculator for X and Y Values (mod %d)\n", modulus)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "This program extracts number pairs in the format (x,y) from text files")
	fmt.Fprintf(w, "and calculates separate equations for x and y values mod %d.\n", modulus)
	fmt.Fprintln(w, "Each pair is indexed from 0 to n-1, and these indices are used as x-coordinates.")
	fmt.Fprintln(w, rule)
}

// prompt writes question and returns the next input line without surrounding spaces
func prompt(in *bufio.Reader, out io.Writer, question string) string {
	fmt.Fprint(out, question)
	line, _ := in.ReadString('\n')
	return strings.TrimSpace(line)
}

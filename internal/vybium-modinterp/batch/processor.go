// Package batch runs the interpolation engine over every matching file of a
// folder.
package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"

	"github.com/vybium/vybium-modinterp/internal/vybium-modinterp/extract"
	"github.com/vybium/vybium-modinterp/internal/vybium-modinterp/log"
	"github.com/vybium/vybium-modinterp/internal/vybium-modinterp/report"
	"github.com/vybium/vybium-modinterp/internal/vybium-modinterp/utils"
	vybiummodinterp "github.com/vybium/vybium-modinterp/pkg/vybium-modinterp"
)

var (
	// ErrNotDirectory is returned when the input path is not a directory
	ErrNotDirectory = errors.New("not a valid directory")

	// ErrNoFiles is returned when no file in the folder matches the pattern
	ErrNoFiles = errors.New("no matching files found")
)

// Processor extracts pairs from files and interpolates them
type Processor struct {
	cfg    *utils.Config
	logger *log.Logger
}

// NewProcessor creates a processor; the configuration is validated and copied
func NewProcessor(cfg *utils.Config, logger *log.Logger) (*Processor, error) {
	if cfg == nil {
		cfg = utils.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, &vybiummodinterp.Error{
			Code:    vybiummodinterp.ErrInvalidConfig,
			Message: "invalid configuration",
			Cause:   err,
		}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Processor{cfg: cfg.Clone(), logger: logger.Module("batch")}, nil
}

// Config returns a copy of the processor configuration
func (p *Processor) Config() *utils.Config {
	return p.cfg.Clone()
}

// ProcessFolder processes every file in dir matching the configured pattern.
// Files are handled concurrently; the results are sorted by file name.
// Per-file read and interpolation failures are recorded in the results, not
// returned.
func (p *Processor) ProcessFolder(ctx context.Context, dir string) ([]*report.FileResult, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("'%s': %w", dir, ErrNotDirectory)
	}

	paths, err := filepath.Glob(filepath.Join(dir, p.cfg.Pattern))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}
	files := paths[:0]
	for _, path := range paths {
		if fi, err := os.Stat(path); err == nil && fi.Mode().IsRegular() {
			files = append(files, path)
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("'%s' (pattern %s): %w", dir, p.cfg.Pattern, ErrNoFiles)
	}

	p.logger.Info("processing folder", "dir", dir, "files", len(files), "modulus", p.cfg.Modulus)

	results := make([]*report.FileResult, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Workers)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = p.ProcessFile(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortFunc(results, func(a, b *report.FileResult) bool { return a.Name < b.Name })
	return results, nil
}

// ProcessFile extracts and interpolates a single file
func (p *Processor) ProcessFile(path string) *report.FileResult {
	name := filepath.Base(path)

	pairs, err := extract.ExtractFile(path)
	if err != nil {
		p.logger.Error("error processing file", "file", name, "err", err)
		return &report.FileResult{Name: name, ReadErr: err}
	}
	return p.ProcessPairs(name, pairs)
}

// ProcessPairs samples the pairs, interpolates both axes and fills in the
// statistics, digest and chart for a successful result.
func (p *Processor) ProcessPairs(name string, pairs []extract.Pair) *report.FileResult {
	logger := p.logger.With("file", name)
	result := &report.FileResult{Name: name, Pairs: pairs}
	if len(pairs) == 0 {
		logger.Warn("no number pairs found")
		return result
	}

	if p.cfg.SampleSize > 0 {
		result.Sampled = extract.Sample(pairs, p.cfg.SampleSize)
	}
	result.Stats = report.Summarize(pairs)

	used := result.Used()
	points := make([]vybiummodinterp.Point, len(used))
	for i, pair := range used {
		x, y := pair.Reduce(p.cfg.Modulus)
		points[i] = vybiummodinterp.Point{X: x, Y: y}
	}

	axes, err := vybiummodinterp.InterpolateSequence(points, p.cfg.Modulus)
	if err != nil {
		logger.Warn("interpolation failed", "pairs", len(used), "code", vybiummodinterp.CodeOf(err).String(), "err", err)
		result.Err = err
		return result
	}
	result.XPoly = axes.X
	result.YPoly = axes.Y

	digest, err := report.Digest(p.cfg.HashFunction, axes.X.Coefficients(), axes.Y.Coefficients())
	if err != nil {
		logger.Error("digest failed", "err", err)
	}
	result.Digest = digest

	if p.cfg.ChartDir != "" {
		path, err := report.SaveChart(p.cfg.ChartDir, result, p.cfg.Modulus)
		if err != nil {
			logger.Error("chart failed", "err", err)
		} else {
			logger.Debug("chart written", "path", path)
		}
	}

	logger.Info("interpolated", "pairs", len(pairs), "used", len(used), "degree_x", axes.X.Degree(), "degree_y", axes.Y.Degree())
	return result
}

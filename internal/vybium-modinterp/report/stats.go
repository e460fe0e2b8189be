package report

import (
	"fmt"
	"math/big"

	"github.com/montanaflynn/stats"

	"github.com/vybium/vybium-modinterp/internal/vybium-modinterp/extract"
)

// AxisStats summarises one coordinate of the raw pairs
type AxisStats struct {
	Mean   float64
	Median float64
	StdDev float64
	Min    float64
	Max    float64
}

// Stats summarises the raw pairs of a file
type Stats struct {
	X AxisStats
	Y AxisStats
}

// Summarize computes statistics over the raw (unreduced) pair values.
// It returns nil for an empty input.
func Summarize(pairs []extract.Pair) *Stats {
	if len(pairs) == 0 {
		return nil
	}

	xs := make(stats.Float64Data, len(pairs))
	ys := make(stats.Float64Data, len(pairs))
	for i, p := range pairs {
		xs[i], _ = new(big.Float).SetInt(p.X).Float64()
		ys[i], _ = new(big.Float).SetInt(p.Y).Float64()
	}

	return &Stats{X: summarizeAxis(xs), Y: summarizeAxis(ys)}
}

func summarizeAxis(data stats.Float64Data) AxisStats {
	var s AxisStats
	// errors only occur on empty input, which Summarize rules out
	s.Mean, _ = stats.Mean(data)
	s.Median, _ = stats.Median(data)
	s.StdDev, _ = stats.StandardDeviation(data)
	s.Min, _ = stats.Min(data)
	s.Max, _ = stats.Max(data)
	return s
}

// String renders the statistics on one line
func (a AxisStats) String() string {
	return fmt.Sprintf("mean=%.2f median=%.2f stddev=%.2f min=%.0f max=%.0f", a.Mean, a.Median, a.StdDev, a.Min, a.Max)
}

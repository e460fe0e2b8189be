// Package report renders batch interpolation results: the text report,
// result digests, pair statistics and HTML charts.
package report

import (
	"github.com/vybium/vybium-modinterp/internal/vybium-modinterp/extract"
	vybiummodinterp "github.com/vybium/vybium-modinterp/pkg/vybium-modinterp"
)

// FileResult holds everything computed for one input file
type FileResult struct {
	Name string

	// Pairs are all pairs found in the file
	Pairs []extract.Pair

	// Sampled is nil unless a sample size was configured
	Sampled []extract.Pair

	// XPoly and YPoly are nil when interpolation failed or no pairs were found
	XPoly *vybiummodinterp.Polynomial
	YPoly *vybiummodinterp.Polynomial

	// Err is the interpolation failure, if any
	Err error

	// ReadErr is set when the file could not be read
	ReadErr error

	Stats  *Stats
	Digest string
}

// Used returns the pairs that fed the interpolation
func (r *FileResult) Used() []extract.Pair {
	if r.Sampled != nil {
		return r.Sampled
	}
	return r.Pairs
}

// OK reports whether both polynomials were produced
func (r *FileResult) OK() bool {
	return r.XPoly != nil && r.YPoly != nil
}

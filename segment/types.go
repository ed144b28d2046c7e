// SPDX-License-Identifier: MIT

package segment

import (
	"context"

	"github.com/katalvlaran/segimage/labelmap"
	"github.com/katalvlaran/segimage/raster"
	"github.com/katalvlaran/segimage/segerr"
)

// ErrNilImage indicates Segment was called without an image.
var ErrNilImage = segerr.Wrap(segerr.ErrInput, "segment: image is nil")

// Segmenter partitions an image into superpixels. Returned label maps are
// dense: every label in [1,MaxLabel] owns at least one pixel.
type Segmenter interface {
	Segment(ctx context.Context, img *raster.RGB) (*labelmap.LabelMap, error)
}

// Defaults for SLIC.
const (
	DefaultSegments    = 280
	DefaultCompactness = 2.0
	DefaultSigma       = 1.0
	DefaultIterations  = 10
)

// minSizeFactor scales the expected segment size to the smallest fragment
// kept during connectivity enforcement.
const minSizeFactor = 0.5

// SLIC is a simple-linear-iterative-clustering segmenter. It is safe for
// concurrent use; all state lives in Segment.
type SLIC struct {
	segments    int
	compactness float64
	sigma       float64
	iterations  int
}

// Option configures SLIC.
type Option func(*SLIC)

// WithSegments sets the approximate number of superpixels. Panics if n < 1.
func WithSegments(n int) Option {
	if n < 1 {
		panic("segment: WithSegments(n < 1)")
	}
	return func(s *SLIC) { s.segments = n }
}

// WithCompactness sets the color/space trade-off m. Panics if m <= 0.
func WithCompactness(m float64) Option {
	if m <= 0 {
		panic("segment: WithCompactness(m <= 0)")
	}
	return func(s *SLIC) { s.compactness = m }
}

// WithSigma sets the Gaussian pre-smoothing width; 0 disables it.
// Panics if sigma < 0.
func WithSigma(sigma float64) Option {
	if sigma < 0 {
		panic("segment: WithSigma(sigma < 0)")
	}
	return func(s *SLIC) { s.sigma = sigma }
}

// WithIterations sets the number of k-means iterations. Panics if n < 1.
func WithIterations(n int) Option {
	if n < 1 {
		panic("segment: WithIterations(n < 1)")
	}
	return func(s *SLIC) { s.iterations = n }
}

// NewSLIC returns a SLIC segmenter with defaults overridden by opts.
func NewSLIC(opts ...Option) *SLIC {
	s := &SLIC{
		segments:    DefaultSegments,
		compactness: DefaultCompactness,
		sigma:       DefaultSigma,
		iterations:  DefaultIterations,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

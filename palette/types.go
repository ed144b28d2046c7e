// SPDX-License-Identifier: MIT

package palette

import (
	"github.com/katalvlaran/segimage/raster"
	"github.com/katalvlaran/segimage/segerr"
)

// Sentinel errors for palette operations.
var (
	// ErrNilPartition indicates Assign was called without a partition.
	ErrNilPartition = segerr.Wrap(segerr.ErrInput, "palette: partition is nil")
	// ErrUnknownCommunity indicates a community the table holds no color for,
	// typically a table assigned from a different partition.
	ErrUnknownCommunity = segerr.Wrap(segerr.ErrData, "palette: community has no color")
)

// DefaultSeed is the seed used when none is supplied.
const DefaultSeed int64 = 0

// colorSpace is the number of distinct 24-bit colors.
const colorSpace = 1 << 24

// Table maps community ID c to colors[c].
type Table struct {
	colors []raster.Pixel
	seed   int64
}

// Option configures Assign.
type Option func(*options)

type options struct {
	seed int64
}

// WithSeed sets the generator seed. Every int64 is accepted as given.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

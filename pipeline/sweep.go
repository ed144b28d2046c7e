// SPDX-License-Identifier: MIT

package pipeline

// Sweep returns n evenly spaced values from lo to hi inclusive. n == 1
// yields {lo}; n < 1 yields nil.
func Sweep(lo, hi float64, n int) []float64 {
	if n < 1 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}

// DefaultSweep is the resolution sweep 0.01..1 in 11 steps.
func DefaultSweep() []float64 { return Sweep(0.01, 1, 11) }

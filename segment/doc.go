// SPDX-License-Identifier: MIT

// Package segment produces superpixel label maps from RGB images.
//
// Segmenter is the contract the rest of segimage depends on: any provider
// returning a dense label map (labels 1..N, no gaps) will do. SLIC is the
// built-in provider:
//
//   - pixels are converted to CIE L*a*b* (D65) with go-colorful;
//   - each Lab plane is smoothed with a Gaussian of width sigma;
//   - cluster centers start on a regular grid of step S = √(W·H/n) and are
//     nudged to the lowest-gradient pixel of their 3×3 neighbourhood;
//   - k-means iterations assign pixels within 2S×2S of a center by
//     D² = dc² + (m/S)²·ds², with m the compactness;
//   - 4-connected fragments smaller than half the expected segment size are
//     merged into a previously labeled neighbour, and labels are compacted.
//
// Defaults: 280 segments, compactness 2, sigma 1, 10 iterations.
package segment

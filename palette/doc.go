// SPDX-License-Identifier: MIT

// Package palette assigns a reproducible 24-bit color to every community of
// a partition.
//
// Assign sorts the community IDs, seeds a fresh generator with the
// configured seed (DefaultSeed unless WithSeed is given) and draws one color
// per ID in ascending order. The same ID set and seed always give the same
// Table, whichever form the partition was built from. The generator is
// created per call and never shared.
//
// Seeds exist for reproducibility only; the colors carry no security meaning.
package palette

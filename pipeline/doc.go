// SPDX-License-Identifier: MIT

// Package pipeline runs segimage end to end for one input image:
//
//	load → segment (or read label map) → graph → per resolution:
//	partition → map labels → assign colors → render → write
//
// Every run gets a UUID run_id attached to its log records. Stage timings
// and failures go to a metrics.Registry. All images of a run are rendered
// before the first one is written, and each file is written atomically, so
// a failed run leaves no output behind. ctx is checked between stages.
package pipeline

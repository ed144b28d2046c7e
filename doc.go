// Package segimage turns raster images into region-adjacency graphs over
// superpixels and turns partitions of those graphs back into colorized
// images.
//
// What is segimage?
//
//	A small pipeline of pure, deterministic stages:
//		• labelmap – superpixel label grids, 4/8-neighbour offsets, components
//		• segment  – default SLIC segmenter (Lab space, Gaussian pre-smoothing)
//		• rag      – mean gray intensity per superpixel, 8-connected adjacency,
//		             graph assembly, gonum handoff
//		• partition – Groups/Membership union, seeded Louvain partitioner
//		• palette  – seeded 24-bit color per community id
//		• visual   – label image and RGB rendering
//		• codec    – png/jpeg/tiff/bmp images, CSV and 16-bit label maps
//		• drawing  – DOT markup of the graph with community fill colors
//		• pipeline – staged run with logging, metrics and atomic outputs
//
// Determinism:
//
//	Every random choice is made by a per-call generator seeded from
//	configuration (default 0). The same image, label map and seeds always
//	produce byte-identical outputs, regardless of worker count.
//
// Quick example:
//
//	    1 1 2 2          v0 ── v1      Groups {{0,1}}
//	    1 1 2 2   ──▶   w=|Δgray|  ──▶  one color
//
// Command line:
//
//	go install github.com/katalvlaran/segimage/cmd/segimage@latest
//	segimage -out ./out -sweep photo.jpg
package segimage

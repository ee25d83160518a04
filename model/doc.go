// Package model defines the data types shared across the comparison
// pipeline: axis-aligned rectangles and affine transforms, per-page text
// and word records, and the comparison results handed to renderers.
//
// All types are plain values created fresh per comparison. Nothing in this
// package is shared across concurrent comparisons.
package model

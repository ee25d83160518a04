// Package pagediff compares two versions of a paginated document and
// reports which pages correspond to which, and which words changed within
// corresponding pages.
//
// The package operates on already-extracted content: per-page text, word
// lists with bounding boxes, and page dimensions, supplied as a
// model.Document. Extracting that content from a file is a document
// parser's job, and rendering the results is a renderer's (one raster
// renderer ships in the render subpackage).
//
// Basic usage:
//
//	results, warnings, err := pagediff.Compare(docA, docB).Results()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", pagediff.FormatWarnings(warnings))
//	}
//
// With options:
//
//	results, _, err := pagediff.Compare(docA, docB).
//	    SimilarityThreshold(0.75).
//	    LookaheadWindow(5).
//	    Results()
//
// For advanced use cases the lower-level align, worddiff, and report
// packages are also available.
package pagediff

import (
	"github.com/tsawler/pagediff/model"
)

// Compare creates a Comparer over two extracted documents, with document
// A as the original and document B as the modified version.
//
// Example:
//
//	results, warnings, err := pagediff.Compare(docA, docB).Results()
func Compare(a, b *model.Document) *Comparer {
	return &Comparer{
		docA:    a,
		docB:    b,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	plan := pagediff.Must(pagediff.Compare(docA, docB).Alignment())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustResults is a helper that wraps a call to Results() and panics if
// the error is non-nil, discarding warnings.
//
// Example:
//
//	results := pagediff.MustResults(pagediff.Compare(docA, docB).Results())
func MustResults[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

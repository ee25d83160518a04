// Package align maps page indices of one document onto page indices of
// another in the presence of inserted, deleted, and shifted pages. It
// performs a single greedy forward pass over both page sequences and emits
// an ordered plan of typed index ranges.
//
// The aligner is deliberately not a global optimal alignment: it trades
// optimality for a bounded, single-pass scan that behaves well on the
// common case of small localized insertions and deletions.
package align

import (
	"github.com/tsawler/pagediff/match"
	"github.com/tsawler/pagediff/model"
)

// Config holds tuning parameters for page alignment.
type Config struct {
	// SimilarityThreshold is the minimum page-text similarity ratio for
	// two pages to be considered the same page. Pairs at or below the
	// threshold are reported as Replace rather than Equal.
	SimilarityThreshold float64

	// LookaheadWindow bounds how far ahead of the current cursor the
	// aligner probes for a better match before declaring pages inserted
	// or deleted.
	LookaheadWindow int
}

// DefaultConfig returns the alignment parameters calibrated for typical
// revised documents: threshold 0.6, lookahead 3.
func DefaultConfig() Config {
	return Config{
		SimilarityThreshold: 0.6,
		LookaheadWindow:     3,
	}
}

// Aligner aligns the page sequences of two documents.
type Aligner struct {
	config Config
}

// NewAligner creates an aligner with default configuration.
func NewAligner() *Aligner {
	return NewAlignerWithConfig(DefaultConfig())
}

// NewAlignerWithConfig creates an aligner with custom configuration.
func NewAlignerWithConfig(config Config) *Aligner {
	if config.LookaheadWindow < 1 {
		config.LookaheadWindow = 1
	}
	return &Aligner{config: config}
}

// skip records the best lookahead candidate found in one direction:
// matching the current page against a page `skip` positions ahead on the
// other side, with the given similarity.
type skip struct {
	skip  int
	ratio float64
}

// Align maps the pages of document A onto the pages of document B and
// returns the resulting plan. The plan always satisfies the coverage
// invariant: every index of A and of B appears in exactly one operation.
//
// Two cursors sweep both sequences in a single forward pass. At each step
// the current pair is scored; if a page within the lookahead window on
// either side scores strictly better and above the threshold, the skipped
// pages are emitted as an Insert or Delete and only that side's cursor
// advances. Otherwise the pair is emitted as Equal or Replace depending on
// the threshold and both cursors advance.
func (al *Aligner) Align(textA, textB []model.PageText) Plan {
	lenA, lenB := len(textA), len(textB)
	threshold := al.config.SimilarityThreshold
	window := al.config.LookaheadWindow

	var plan Plan
	i, j := 0, 0

	for i < lenA || j < lenB {
		if i >= lenA {
			plan = append(plan, Op{Tag: match.Insert, A1: i, A2: i, B1: j, B2: lenB})
			break
		}
		if j >= lenB {
			plan = append(plan, Op{Tag: match.Delete, A1: i, A2: lenA, B1: j, B2: j})
			break
		}

		runesA := match.Runes(textA[i].Content)
		runesB := match.Runes(textB[j].Content)
		current := match.Ratio(runesA, runesB)

		// Probe ahead on side B: does A[i] match better against a later
		// page of B, meaning B has extra pages here? Keep the earliest
		// candidate among equal scores.
		bestInsert := skip{}
		for k := 1; k < minInt(window, lenB-j); k++ {
			r := match.Ratio(runesA, match.Runes(textB[j+k].Content))
			if r > current && r > threshold && r > bestInsert.ratio {
				bestInsert = skip{skip: k, ratio: r}
			}
		}

		// Symmetric probe on side A for extra pages of A.
		bestDelete := skip{}
		for k := 1; k < minInt(window, lenA-i); k++ {
			r := match.Ratio(match.Runes(textA[i+k].Content), runesB)
			if r > current && r > threshold && r > bestDelete.ratio {
				bestDelete = skip{skip: k, ratio: r}
			}
		}

		switch {
		// When both directions qualify, the strictly better score wins;
		// an exact tie resolves to Delete.
		case bestInsert.skip > 0 && bestInsert.ratio > bestDelete.ratio:
			plan = append(plan, Op{Tag: match.Insert, A1: i, A2: i, B1: j, B2: j + bestInsert.skip})
			j += bestInsert.skip
		case bestDelete.skip > 0:
			plan = append(plan, Op{Tag: match.Delete, A1: i, A2: i + bestDelete.skip, B1: j, B2: j})
			i += bestDelete.skip
		case current > threshold:
			plan = append(plan, Op{Tag: match.Equal, A1: i, A2: i + 1, B1: j, B2: j + 1})
			i++
			j++
		default:
			plan = append(plan, Op{Tag: match.Replace, A1: i, A2: i + 1, B1: j, B2: j + 1})
			i++
			j++
		}
	}

	return coalesce(plan)
}

// coalesce merges runs of adjacent same-tag operations into single ops
// spanning the combined ranges, so that e.g. aligning a document against
// itself yields one Equal op rather than one per page. Ranges are already
// contiguous by construction.
func coalesce(plan Plan) Plan {
	if len(plan) < 2 {
		return plan
	}
	merged := plan[:1]
	for _, op := range plan[1:] {
		last := &merged[len(merged)-1]
		if op.Tag == last.Tag {
			last.A2 = op.A2
			last.B2 = op.B2
			continue
		}
		merged = append(merged, op)
	}
	return merged
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

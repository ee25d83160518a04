package pagediff

import (
	"fmt"

	"github.com/tsawler/pagediff/align"
	"github.com/tsawler/pagediff/match"
	"github.com/tsawler/pagediff/model"
	"github.com/tsawler/pagediff/report"
	"github.com/tsawler/pagediff/textdiff"
)

// Comparer provides a fluent interface for comparing two documents.
// Each configuration method returns a new Comparer instance, making it
// safe to share a configured base and branch off it.
type Comparer struct {
	docA, docB *model.Document

	// Configuration
	options compareOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a copy of the Comparer with copied options.
// This ensures immutability - each chain method returns a new instance.
func (c *Comparer) clone() *Comparer {
	return &Comparer{
		docA:     c.docA,
		docB:     c.docB,
		options:  c.options.clone(),
		err:      c.err,
		warnings: append([]Warning(nil), c.warnings...),
	}
}

// checkDocs validates that both documents were supplied.
func (c *Comparer) checkDocs() error {
	if c.err != nil {
		return c.err
	}
	if c.docA == nil || c.docB == nil {
		return fmt.Errorf("both documents are required")
	}
	return nil
}

// ============================================================================
// Configuration Methods (return new Comparer instance)
// ============================================================================

// SimilarityThreshold sets the minimum page-text similarity for two pages
// to count as the same page. Values must lie in (0, 1); out-of-range
// values fail the comparison at the terminal operation.
//
// Example:
//
//	results, _, err := pagediff.Compare(a, b).SimilarityThreshold(0.75).Results()
func (c *Comparer) SimilarityThreshold(threshold float64) *Comparer {
	newCmp := c.clone()
	if threshold <= 0 || threshold >= 1 {
		if newCmp.err == nil {
			newCmp.err = fmt.Errorf("similarity threshold %v out of range (0, 1)", threshold)
		}
		return newCmp
	}
	newCmp.options.similarityThreshold = threshold
	return newCmp
}

// LookaheadWindow sets how many pages ahead the aligner probes for a
// better match before declaring pages inserted or deleted.
//
// Example:
//
//	results, _, err := pagediff.Compare(a, b).LookaheadWindow(5).Results()
func (c *Comparer) LookaheadWindow(window int) *Comparer {
	newCmp := c.clone()
	if window < 1 {
		if newCmp.err == nil {
			newCmp.err = fmt.Errorf("lookahead window must be at least 1, got %d", window)
		}
		return newCmp
	}
	newCmp.options.lookaheadWindow = window
	return newCmp
}

// Layout sets the side-by-side report geometry used when projecting
// highlight regions into the output space.
//
// Example:
//
//	layout := report.LayoutConfig{Margin: 30, Gap: 15, LabelHeight: 40}
//	results, _, err := pagediff.Compare(a, b).Layout(layout).Results()
func (c *Comparer) Layout(layout report.LayoutConfig) *Comparer {
	newCmp := c.clone()
	newCmp.options.layout = layout
	return newCmp
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Alignment computes and returns the page alignment plan between the two
// documents.
//
// Example:
//
//	plan, err := pagediff.Compare(docA, docB).Alignment()
//	for _, op := range plan {
//	    fmt.Println(op)
//	}
func (c *Comparer) Alignment() (align.Plan, error) {
	if err := c.checkDocs(); err != nil {
		return nil, err
	}

	aligner := align.NewAlignerWithConfig(align.Config{
		SimilarityThreshold: c.options.similarityThreshold,
		LookaheadWindow:     c.options.lookaheadWindow,
	})
	plan := aligner.Align(c.docA.PageTexts(), c.docB.PageTexts())

	if err := plan.Validate(c.docA.PageCount(), c.docB.PageCount()); err != nil {
		// A plan failing its own invariant is a bug, not a data condition.
		panic(fmt.Sprintf("pagediff: aligner produced invalid plan: %v", err))
	}
	return plan, nil
}

// Results runs the full comparison and returns one result per output
// report page: matched pairs with word-level highlight regions projected
// into the side-by-side layout, and singletons for pages present on only
// one side.
//
// Returns the results, any warnings encountered during processing, and
// an error if the comparison could not run. Warnings indicate non-fatal
// issues (e.g. a page pair with no text layer) where comparison
// succeeded but results may be incomplete.
//
// Example:
//
//	results, warnings, err := pagediff.Compare(docA, docB).Results()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", pagediff.FormatWarnings(warnings))
//	}
func (c *Comparer) Results() ([]model.PageComparisonResult, []Warning, error) {
	plan, err := c.Alignment()
	if err != nil {
		return nil, nil, err
	}

	transforms := c.resolveTransforms(plan)

	planner := report.NewPlanner(
		func(side model.Side, pageIndex int) []model.Word {
			return c.pageOn(side, pageIndex).Words
		},
		func(side model.Side, pageIndex int) model.Transform {
			return transforms[side][pageIndex]
		},
	)
	results := planner.Plan(plan)

	warnings := append([]Warning(nil), c.warnings...)
	warnings = append(warnings, c.checkPairs(results)...)
	return results, warnings, nil
}

// TextDiff compares the full concatenated text of both documents and
// returns a unified diff with a normalized similarity score. This is the
// flat, page-agnostic view of the same change set.
//
// Example:
//
//	diff, err := pagediff.Compare(docA, docB).TextDiff()
//	fmt.Println(diff.UnifiedDiff)
func (c *Comparer) TextDiff() (*textdiff.Result, error) {
	if err := c.checkDocs(); err != nil {
		return nil, err
	}
	return textdiff.CompareDocuments(c.docA.PageTexts(), c.docB.PageTexts()), nil
}

// Summary runs the full comparison and returns aggregate counts: how many
// pages matched, changed, were inserted or deleted, and how many words
// were added or removed.
//
// Example:
//
//	summary, warnings, err := pagediff.Compare(docA, docB).Summary()
//	fmt.Printf("%d pages changed\n", summary.PagesChanged)
func (c *Comparer) Summary() (*Summary, []Warning, error) {
	results, warnings, err := c.Results()
	if err != nil {
		return nil, warnings, err
	}
	summary := Summarize(results)
	return &summary, warnings, nil
}

// ============================================================================
// Internal helpers
// ============================================================================

// pageOn returns the page at the given index on the given side.
func (c *Comparer) pageOn(side model.Side, pageIndex int) *model.Page {
	if side == model.SideA {
		return c.docA.Pages[pageIndex]
	}
	return c.docB.Pages[pageIndex]
}

// resolveTransforms walks the plan the same way the planner resolves it
// and computes, for every page that will appear in a result, the
// transform projecting it into its report page. Pair placements depend on
// both pages' dimensions, which is why this happens against the plan
// rather than per document.
func (c *Comparer) resolveTransforms(plan align.Plan) map[model.Side]map[int]model.Transform {
	layout := c.options.layout
	transforms := map[model.Side]map[int]model.Transform{
		model.SideA: make(map[int]model.Transform),
		model.SideB: make(map[int]model.Transform),
	}

	single := func(side model.Side, pageIndex int) {
		pl := layout.SingleLayout(c.pageOn(side, pageIndex).Size(), side)
		if side == model.SideA {
			transforms[side][pageIndex] = pl.ATransform
		} else {
			transforms[side][pageIndex] = pl.BTransform
		}
	}

	for _, op := range plan {
		switch op.Tag {
		case match.Equal, match.Replace:
			count := op.A2 - op.A1
			if op.B2-op.B1 > count {
				count = op.B2 - op.B1
			}
			for k := 0; k < count; k++ {
				hasA := op.A1+k < op.A2
				hasB := op.B1+k < op.B2
				switch {
				case hasA && hasB:
					pl := layout.PairLayout(c.pageOn(model.SideA, op.A1+k).Size(), c.pageOn(model.SideB, op.B1+k).Size())
					transforms[model.SideA][op.A1+k] = pl.ATransform
					transforms[model.SideB][op.B1+k] = pl.BTransform
				case hasA:
					single(model.SideA, op.A1+k)
				case hasB:
					single(model.SideB, op.B1+k)
				}
			}
		case match.Delete:
			for k := op.A1; k < op.A2; k++ {
				single(model.SideA, k)
			}
		case match.Insert:
			for k := op.B1; k < op.B2; k++ {
				single(model.SideB, k)
			}
		}
	}
	return transforms
}

// checkPairs scans resolved pairs for conditions worth surfacing:
// image-only pairs with no text layer, and changed pairs with no word
// data to highlight.
func (c *Comparer) checkPairs(results []model.PageComparisonResult) []Warning {
	var warnings []Warning
	for _, res := range results {
		if !res.IsPair() {
			continue
		}
		pageA := c.docA.Pages[res.AIndex]
		pageB := c.docB.Pages[res.BIndex]

		if pageA.Text == "" && pageB.Text == "" {
			warnings = append(warnings, Warning{
				Code:    WarnImageOnlyPair,
				Message: fmt.Sprintf("pages A:%d/B:%d have no text layer; visual differences are not detected", res.AIndex+1, res.BIndex+1),
			})
			continue
		}
		if pageA.Text != pageB.Text && len(pageA.Words) == 0 && len(pageB.Words) == 0 {
			warnings = append(warnings, Warning{
				Code:    WarnNoWordData,
				Message: fmt.Sprintf("pages A:%d/B:%d differ but no word data was supplied; no highlights produced", res.AIndex+1, res.BIndex+1),
			})
		}
	}
	return warnings
}

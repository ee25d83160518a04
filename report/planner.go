package report

import (
	"fmt"

	"github.com/tsawler/pagediff/align"
	"github.com/tsawler/pagediff/match"
	"github.com/tsawler/pagediff/model"
	"github.com/tsawler/pagediff/worddiff"
)

// WordSource supplies the word list of one page of one document. It is
// how the planner reaches back to the document parser without knowing
// anything about file formats. A nil return means no words are available
// for that page; the pair is still reported, just without highlights.
type WordSource func(side model.Side, pageIndex int) []model.Word

// TransformSource supplies the transform that projects one page's native
// coordinates into the output layout space. Typically built from
// LayoutConfig's PairLayout and SingleLayout per resolved result page.
type TransformSource func(side model.Side, pageIndex int) model.Transform

// Planner walks an alignment plan and produces the ordered page
// comparison results a renderer consumes.
type Planner struct {
	words      WordSource
	transforms TransformSource
}

// NewPlanner creates a planner over the given page-data callbacks.
// Either callback may be nil: a nil WordSource suppresses word-level
// highlighting, a nil TransformSource leaves regions in native page
// coordinates.
func NewPlanner(words WordSource, transforms TransformSource) *Planner {
	return &Planner{words: words, transforms: transforms}
}

// Plan resolves every alignment operation into one result per output
// page. Results follow plan order, then ascending page index within each
// operation; consumers may rely on this ordering for report pagination.
//
// Matched pairs (from Equal and Replace ops) are word-diffed and their
// changed words projected into the output space, A-side words as Removed
// regions and B-side words as Added. Pages present on only one side
// become singleton results with no regions.
//
// Plan panics if the alignment plan violates its coverage invariant;
// that is a bug in the caller, never a data condition.
func (pl *Planner) Plan(plan align.Plan) []model.PageComparisonResult {
	if err := plan.Validate(plan.LenA(), plan.LenB()); err != nil {
		panic(fmt.Sprintf("report: invalid alignment plan: %v", err))
	}

	var results []model.PageComparisonResult
	for _, op := range plan {
		switch op.Tag {
		case match.Equal, match.Replace:
			count := maxInt(op.A2-op.A1, op.B2-op.B1)
			for k := 0; k < count; k++ {
				idxA, idxB := model.NoPage, model.NoPage
				if op.A1+k < op.A2 {
					idxA = op.A1 + k
				}
				if op.B1+k < op.B2 {
					idxB = op.B1 + k
				}
				results = append(results, pl.resolve(idxA, idxB))
			}

		case match.Delete:
			for k := op.A1; k < op.A2; k++ {
				results = append(results, model.PageComparisonResult{AIndex: k, BIndex: model.NoPage})
			}

		case match.Insert:
			for k := op.B1; k < op.B2; k++ {
				results = append(results, model.PageComparisonResult{AIndex: model.NoPage, BIndex: k})
			}
		}
	}
	return results
}

// resolve builds the result for one output page of an Equal/Replace op:
// a diffed pair when both indices are present, a singleton otherwise.
func (pl *Planner) resolve(idxA, idxB int) model.PageComparisonResult {
	result := model.PageComparisonResult{AIndex: idxA, BIndex: idxB}
	if idxA == model.NoPage || idxB == model.NoPage {
		return result
	}

	result.Shifted = idxA != idxB
	if pl.words == nil {
		return result
	}

	wordsA := pl.words(model.SideA, idxA)
	wordsB := pl.words(model.SideB, idxB)
	ops := worddiff.Diff(wordsA, wordsB)

	for _, op := range ops {
		if op.Tag == match.Equal {
			continue
		}
		// A-side words of a Replace or Delete run are removals.
		for w := op.A1; w < op.A2; w++ {
			result.Regions = append(result.Regions, model.HighlightRegion{
				Side: model.SideA,
				Kind: model.Removed,
				Box:  pl.project(model.SideA, idxA, wordsA[w].Box),
			})
		}
		// B-side words of a Replace or Insert run are additions.
		for w := op.B1; w < op.B2; w++ {
			result.Regions = append(result.Regions, model.HighlightRegion{
				Side: model.SideB,
				Kind: model.Added,
				Box:  pl.project(model.SideB, idxB, wordsB[w].Box),
			})
		}
	}
	return result
}

func (pl *Planner) project(side model.Side, pageIndex int, box model.Rect) model.Rect {
	if pl.transforms == nil {
		return box
	}
	return pl.transforms(side, pageIndex).Apply(box)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

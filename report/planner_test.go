package report

import (
	"testing"

	"github.com/tsawler/pagediff/align"
	"github.com/tsawler/pagediff/match"
	"github.com/tsawler/pagediff/model"
)

// pageWords maps (side, page index) to a word list for planner tests.
type pageWords map[model.Side]map[int][]model.Word

func (pw pageWords) source(side model.Side, pageIndex int) []model.Word {
	return pw[side][pageIndex]
}

func word(text string, x float64) model.Word {
	return model.Word{Text: text, Box: model.NewRect(x, 700, x+40, 712)}
}

func TestPlanner_EqualPairNoRegions(t *testing.T) {
	words := pageWords{
		model.SideA: {0: {word("Hello", 72)}},
		model.SideB: {0: {word("Hello", 72)}},
	}
	planner := NewPlanner(words.source, nil)

	plan := align.Plan{{Tag: match.Equal, A1: 0, A2: 1, B1: 0, B2: 1}}
	results := planner.Plan(plan)

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	res := results[0]
	if !res.IsPair() || res.AIndex != 0 || res.BIndex != 0 {
		t.Errorf("result = %+v, want pair 0/0", res)
	}
	if res.Shifted {
		t.Error("same-index pair reported as shifted")
	}
	if len(res.Regions) != 0 {
		t.Errorf("identical pair produced %d regions", len(res.Regions))
	}
}

func TestPlanner_InsertedWordHighlighted(t *testing.T) {
	added := word("World", 120)
	words := pageWords{
		model.SideA: {0: {word("Hello", 72)}},
		model.SideB: {0: {word("Hello", 72), added}},
	}

	offsetB := model.Transform{ScaleX: 1, ScaleY: 1, OffsetX: 642, OffsetY: 60}
	planner := NewPlanner(words.source, func(side model.Side, pageIndex int) model.Transform {
		if side == model.SideB {
			return offsetB
		}
		return model.Transform{ScaleX: 1, ScaleY: 1, OffsetX: 20, OffsetY: 60}
	})

	plan := align.Plan{{Tag: match.Equal, A1: 0, A2: 1, B1: 0, B2: 1}}
	results := planner.Plan(plan)

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	regions := results[0].Regions
	if len(regions) != 1 {
		t.Fatalf("got %d regions, want 1", len(regions))
	}

	region := regions[0]
	if region.Side != model.SideB {
		t.Errorf("region side = %v, want B", region.Side)
	}
	if region.Kind != model.Added {
		t.Errorf("region kind = %v, want added", region.Kind)
	}
	if want := offsetB.Apply(added.Box); region.Box != want {
		t.Errorf("region box = %+v, want projected %+v", region.Box, want)
	}
}

func TestPlanner_ReplacedWordsBothSides(t *testing.T) {
	words := pageWords{
		model.SideA: {0: {word("total", 72), word("100", 120)}},
		model.SideB: {0: {word("total", 72), word("250", 120)}},
	}
	planner := NewPlanner(words.source, nil)

	plan := align.Plan{{Tag: match.Replace, A1: 0, A2: 1, B1: 0, B2: 1}}
	results := planner.Plan(plan)

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	regions := results[0].Regions
	if len(regions) != 2 {
		t.Fatalf("got %d regions, want 2 (one removed, one added)", len(regions))
	}

	// A-side removals precede B-side additions within an op.
	if regions[0].Side != model.SideA || regions[0].Kind != model.Removed {
		t.Errorf("region 0 = %+v, want removed on side A", regions[0])
	}
	if regions[1].Side != model.SideB || regions[1].Kind != model.Added {
		t.Errorf("region 1 = %+v, want added on side B", regions[1])
	}
}

func TestPlanner_ShiftedPair(t *testing.T) {
	planner := NewPlanner(nil, nil)
	plan := align.Plan{
		{Tag: match.Insert, A1: 0, A2: 0, B1: 0, B2: 1},
		{Tag: match.Equal, A1: 0, A2: 1, B1: 1, B2: 2},
	}
	results := planner.Plan(plan)

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	singleton := results[0]
	if singleton.HasA() || singleton.BIndex != 0 {
		t.Errorf("result 0 = %+v, want B-only singleton for page 0", singleton)
	}

	pair := results[1]
	if pair.AIndex != 0 || pair.BIndex != 1 {
		t.Errorf("result 1 = %+v, want pair 0/1", pair)
	}
	if !pair.Shifted {
		t.Error("pair with differing indices not reported as shifted")
	}
}

func TestPlanner_DeleteEmitsOneSingletonPerPage(t *testing.T) {
	planner := NewPlanner(nil, nil)
	plan := align.Plan{
		{Tag: match.Delete, A1: 0, A2: 3, B1: 0, B2: 0},
	}
	results := planner.Plan(plan)

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for i, res := range results {
		if res.AIndex != i || res.HasB() {
			t.Errorf("result %d = %+v, want A-only singleton for page %d", i, res, i)
		}
		if len(res.Regions) != 0 {
			t.Errorf("singleton result %d has regions", i)
		}
	}
}

func TestPlanner_UnevenReplaceResolvesSingletons(t *testing.T) {
	// A two-page replace against one page: the second output slot has a
	// page on side A only.
	planner := NewPlanner(nil, nil)
	plan := align.Plan{
		{Tag: match.Replace, A1: 0, A2: 2, B1: 0, B2: 1},
	}
	results := planner.Plan(plan)

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if !results[0].IsPair() {
		t.Errorf("result 0 = %+v, want pair", results[0])
	}
	second := results[1]
	if second.AIndex != 1 || second.HasB() {
		t.Errorf("result 1 = %+v, want A-only singleton for page 1", second)
	}
	if second.Shifted {
		t.Error("singleton should not be marked shifted")
	}
}

func TestPlanner_ResultOrderFollowsPlan(t *testing.T) {
	planner := NewPlanner(nil, nil)
	plan := align.Plan{
		{Tag: match.Equal, A1: 0, A2: 1, B1: 0, B2: 1},
		{Tag: match.Delete, A1: 1, A2: 2, B1: 1, B2: 1},
		{Tag: match.Equal, A1: 2, A2: 3, B1: 1, B2: 2},
		{Tag: match.Insert, A1: 3, A2: 3, B1: 2, B2: 4},
	}
	results := planner.Plan(plan)

	type ref struct{ a, b int }
	want := []ref{{0, 0}, {1, model.NoPage}, {2, 1}, {model.NoPage, 2}, {model.NoPage, 3}}
	if len(results) != len(want) {
		t.Fatalf("got %d results, want %d", len(results), len(want))
	}
	for i, res := range results {
		if res.AIndex != want[i].a || res.BIndex != want[i].b {
			t.Errorf("result %d = A:%d B:%d, want A:%d B:%d", i, res.AIndex, res.BIndex, want[i].a, want[i].b)
		}
	}
}

func TestPlanner_PanicsOnInvalidPlan(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for plan violating the coverage invariant")
		}
	}()

	planner := NewPlanner(nil, nil)
	// Gap between the two ops: page 1 of A is never covered.
	planner.Plan(align.Plan{
		{Tag: match.Equal, A1: 0, A2: 1, B1: 0, B2: 1},
		{Tag: match.Equal, A1: 2, A2: 3, B1: 1, B2: 2},
	})
}

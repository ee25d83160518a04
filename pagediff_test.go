package pagediff

import (
	"strings"
	"testing"

	"github.com/tsawler/pagediff/match"
	"github.com/tsawler/pagediff/model"
	"github.com/tsawler/pagediff/report"
)

const (
	alphaText = "alpha content shared by both documents on the first page"
	betaText  = "beta content shared by both documents on the final page"
	newText   = "entirely different inserted material unlike anything else"
)

func textPage(text string) *model.Page {
	return &model.Page{Text: text, Width: 200, Height: 300}
}

func docFromTexts(texts ...string) *model.Document {
	doc := model.NewDocument()
	for _, t := range texts {
		doc.AddPage(textPage(t))
	}
	return doc
}

func TestCompare_IdenticalDocuments(t *testing.T) {
	doc := docFromTexts(alphaText, betaText)

	plan, err := Compare(doc, doc).Alignment()
	if err != nil {
		t.Fatalf("Alignment: %v", err)
	}
	if len(plan) != 1 || plan[0].Tag != match.Equal {
		t.Fatalf("plan = %v, want a single equal op", plan)
	}

	summary, warnings, err := Compare(doc, doc).Summary()
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if summary.Changed() {
		t.Errorf("Changed() = true for identical documents: %+v", summary)
	}
	if summary.PagesCompared != 2 {
		t.Errorf("PagesCompared = %d, want 2", summary.PagesCompared)
	}
}

func TestCompare_InsertedPage(t *testing.T) {
	docA := docFromTexts(alphaText, betaText)
	docB := docFromTexts(alphaText, newText, betaText)

	results, _, err := Compare(docA, docB).Results()
	if err != nil {
		t.Fatalf("Results: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3: %+v", len(results), results)
	}

	first := results[0]
	if !first.IsPair() || first.AIndex != 0 || first.BIndex != 0 || first.Shifted {
		t.Errorf("first result = %+v, want unshifted pair 0/0", first)
	}

	inserted := results[1]
	if inserted.HasA() || inserted.BIndex != 1 {
		t.Errorf("second result = %+v, want B-only singleton for page 1", inserted)
	}

	last := results[2]
	if !last.IsPair() || last.AIndex != 1 || last.BIndex != 2 {
		t.Errorf("last result = %+v, want pair 1/2", last)
	}
	if !last.Shifted {
		t.Error("pair following an insertion not marked shifted")
	}
}

func TestCompare_DeletedPage(t *testing.T) {
	docA := docFromTexts(alphaText, newText, betaText)
	docB := docFromTexts(alphaText, betaText)

	results, _, err := Compare(docA, docB).Results()
	if err != nil {
		t.Fatalf("Results: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3: %+v", len(results), results)
	}

	deleted := results[1]
	if deleted.HasB() || deleted.AIndex != 1 {
		t.Errorf("second result = %+v, want A-only singleton for page 1", deleted)
	}
	last := results[2]
	if !last.IsPair() || last.AIndex != 2 || last.BIndex != 1 || !last.Shifted {
		t.Errorf("last result = %+v, want shifted pair 2/1", last)
	}
}

func TestCompare_AddedWordHighlighted(t *testing.T) {
	pageA := &model.Page{
		Text:   "Hello",
		Words:  []model.Word{{Text: "Hello", Box: model.NewRect(10, 20, 50, 30)}},
		Width:  200,
		Height: 300,
	}
	pageB := &model.Page{
		Text: "Hello World",
		Words: []model.Word{
			{Text: "Hello", Box: model.NewRect(10, 20, 50, 30)},
			{Text: "World", Box: model.NewRect(55, 20, 95, 30)},
		},
		Width:  200,
		Height: 300,
	}
	docA := model.NewDocument()
	docA.AddPage(pageA)
	docB := model.NewDocument()
	docB.AddPage(pageB)

	results, warnings, err := Compare(docA, docB).Results()
	if err != nil {
		t.Fatalf("Results: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}

	res := results[0]
	if !res.IsPair() || res.Shifted {
		t.Fatalf("result = %+v, want an unshifted pair", res)
	}
	if len(res.Regions) != 1 {
		t.Fatalf("got %d regions, want 1: %+v", len(res.Regions), res.Regions)
	}

	region := res.Regions[0]
	if region.Side != model.SideB || region.Kind != model.Added {
		t.Errorf("region = %+v, want an added-word region on side B", region)
	}

	// The word box must land inside document B's slot of the report page.
	cfg := report.DefaultLayoutConfig()
	pl := cfg.PairLayout(pageA.Size(), pageB.Size())
	want := pl.BTransform.Apply(model.NewRect(55, 20, 95, 30))
	if region.Box != want {
		t.Errorf("region box = %+v, want %+v", region.Box, want)
	}
}

func TestCompare_SummaryCounts(t *testing.T) {
	docA := docFromTexts(alphaText, newText, betaText)
	docB := docFromTexts(alphaText, betaText)

	summary, _, err := Compare(docA, docB).Summary()
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if summary.PagesCompared != 2 {
		t.Errorf("PagesCompared = %d, want 2", summary.PagesCompared)
	}
	if summary.PagesDeleted != 1 {
		t.Errorf("PagesDeleted = %d, want 1", summary.PagesDeleted)
	}
	if summary.PagesShifted != 1 {
		t.Errorf("PagesShifted = %d, want 1", summary.PagesShifted)
	}
	if !summary.Changed() {
		t.Error("Changed() = false although a page was deleted")
	}
}

func TestCompare_ImageOnlyPairWarning(t *testing.T) {
	docA := docFromTexts("")
	docB := docFromTexts("")

	_, warnings, err := Compare(docA, docB).Results()
	if err != nil {
		t.Fatalf("Results: %v", err)
	}
	if len(warnings) != 1 || warnings[0].Code != WarnImageOnlyPair {
		t.Fatalf("warnings = %v, want one image-only-pair warning", warnings)
	}
	if !strings.Contains(warnings[0].Message, "A:1/B:1") {
		t.Errorf("warning message %q does not name the page pair", warnings[0].Message)
	}
}

func TestCompare_NoWordDataWarning(t *testing.T) {
	docA := docFromTexts("hello there friend")
	docB := docFromTexts("hello there friends")

	results, warnings, err := Compare(docA, docB).Results()
	if err != nil {
		t.Fatalf("Results: %v", err)
	}
	if len(results) != 1 || !results[0].IsPair() {
		t.Fatalf("results = %+v, want a single pair", results)
	}
	if len(warnings) != 1 || warnings[0].Code != WarnNoWordData {
		t.Fatalf("warnings = %v, want one no-word-data warning", warnings)
	}
}

func TestCompare_InvalidOptions(t *testing.T) {
	doc := docFromTexts(alphaText)

	if _, err := Compare(doc, doc).SimilarityThreshold(1.5).Alignment(); err == nil {
		t.Error("expected error for threshold above 1")
	}
	if _, err := Compare(doc, doc).SimilarityThreshold(0).Alignment(); err == nil {
		t.Error("expected error for threshold of 0")
	}
	if _, err := Compare(doc, doc).LookaheadWindow(0).Alignment(); err == nil {
		t.Error("expected error for window below 1")
	}
}

func TestCompare_MissingDocuments(t *testing.T) {
	if _, _, err := Compare(nil, nil).Results(); err == nil {
		t.Error("expected error when both documents are nil")
	}
	if _, err := Compare(docFromTexts(alphaText), nil).TextDiff(); err == nil {
		t.Error("expected error when one document is nil")
	}
}

func TestCompare_ChainIsImmutable(t *testing.T) {
	docA := docFromTexts(alphaText, betaText)
	docB := docFromTexts(alphaText, newText, betaText)

	base := Compare(docA, docB)
	strict := base.SimilarityThreshold(0.99)

	// The strict branch must not leak its threshold into the base chain.
	results, _, err := base.Results()
	if err != nil {
		t.Fatalf("base Results: %v", err)
	}
	if len(results) != 3 {
		t.Errorf("base chain produced %d results, want 3", len(results))
	}

	if _, err := strict.Alignment(); err != nil {
		t.Fatalf("strict Alignment: %v", err)
	}
}

func TestCompare_TextDiff(t *testing.T) {
	docA := docFromTexts(alphaText, betaText)
	docB := docFromTexts(alphaText, betaText+" with an amendment")

	diff, err := Compare(docA, docB).TextDiff()
	if err != nil {
		t.Fatalf("TextDiff: %v", err)
	}
	if diff.Identical() {
		t.Error("Identical() = true although document B was amended")
	}
	if diff.Similarity <= 0.5 {
		t.Errorf("Similarity = %v, want well above 0.5 for a small edit", diff.Similarity)
	}

	same, err := Compare(docA, docA).TextDiff()
	if err != nil {
		t.Fatalf("TextDiff: %v", err)
	}
	if !same.Identical() {
		t.Error("Identical() = false for a document compared with itself")
	}
}

func TestCompare_EmptyDocuments(t *testing.T) {
	plan, err := Compare(model.NewDocument(), model.NewDocument()).Alignment()
	if err != nil {
		t.Fatalf("Alignment: %v", err)
	}
	if len(plan) != 0 {
		t.Errorf("plan = %v, want empty for two empty documents", plan)
	}

	results, warnings, err := Compare(model.NewDocument(), model.NewDocument()).Results()
	if err != nil {
		t.Fatalf("Results: %v", err)
	}
	if len(results) != 0 || len(warnings) != 0 {
		t.Errorf("results = %v, warnings = %v, want both empty", results, warnings)
	}
}

func TestAlignmentPlanValidates(t *testing.T) {
	docA := docFromTexts(alphaText, newText, betaText)
	docB := docFromTexts(alphaText, betaText)

	plan := Must(Compare(docA, docB).Alignment())
	if err := plan.Validate(docA.PageCount(), docB.PageCount()); err != nil {
		t.Errorf("Validate: %v", err)
	}
	if plan.LenA() != 3 || plan.LenB() != 2 {
		t.Errorf("plan lengths %d/%d, want 3/2", plan.LenA(), plan.LenB())
	}
}

func TestMustPanicsOnError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Must did not panic on error")
		}
	}()
	Must(Compare(nil, nil).Alignment())
}

func TestMustResults(t *testing.T) {
	doc := docFromTexts(alphaText)
	results := MustResults(Compare(doc, doc).Results())
	if len(results) != 1 {
		t.Errorf("got %d results, want 1", len(results))
	}
}

package pagediff

import "github.com/tsawler/pagediff/model"

// Summary aggregates a comparison into page and word counts.
type Summary struct {
	PagesCompared int // matched page pairs
	PagesChanged  int // pairs with at least one highlight region
	PagesShifted  int // pairs whose indices differ between documents
	PagesInserted int // pages present only in document B
	PagesDeleted  int // pages present only in document A
	WordsAdded    int
	WordsRemoved  int
}

// Changed reports whether the comparison found any difference at all.
func (s Summary) Changed() bool {
	return s.PagesChanged > 0 || s.PagesShifted > 0 || s.PagesInserted > 0 || s.PagesDeleted > 0
}

// Summarize computes aggregate counts from a result list.
func Summarize(results []model.PageComparisonResult) Summary {
	var s Summary
	for _, res := range results {
		switch {
		case res.IsPair():
			s.PagesCompared++
			if len(res.Regions) > 0 {
				s.PagesChanged++
			}
			if res.Shifted {
				s.PagesShifted++
			}
			for _, region := range res.Regions {
				if region.Kind == model.Added {
					s.WordsAdded++
				} else {
					s.WordsRemoved++
				}
			}
		case res.HasB():
			s.PagesInserted++
		default:
			s.PagesDeleted++
		}
	}
	return s
}

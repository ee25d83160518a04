// Package textdiff produces a whole-document text diff, complementing the
// page- and word-level comparison with a flat view of what changed across
// the full text of both documents. It is a thin layer over the
// diff-match-patch algorithm.
package textdiff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/tsawler/pagediff/model"
)

// Result holds the outcome of a full-text comparison.
type Result struct {
	// UnifiedDiff is the patch-format diff of the two texts, empty when
	// the texts are identical.
	UnifiedDiff string

	// Similarity is 1 minus the Levenshtein distance normalized by the
	// longer text's length, in [0, 1].
	Similarity float64

	// LinesA and LinesB are the line counts of the two texts.
	LinesA, LinesB int
}

// Identical reports whether the two texts were equal.
func (r *Result) Identical() bool {
	return r.UnifiedDiff == ""
}

// Compare diffs two plain texts and returns the unified diff plus a
// normalized similarity score.
func Compare(textA, textB string) *Result {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(textA, textB, true)
	diffs = dmp.DiffCleanupSemantic(diffs)

	similarity := 1.0
	maxLen := len(textA)
	if len(textB) > maxLen {
		maxLen = len(textB)
	}
	if maxLen > 0 {
		dist := dmp.DiffLevenshtein(diffs)
		similarity = 1.0 - float64(dist)/float64(maxLen)
	}

	unified := ""
	if textA != textB {
		patches := dmp.PatchMake(textA, diffs)
		unified = dmp.PatchToText(patches)
	}

	return &Result{
		UnifiedDiff: unified,
		Similarity:  similarity,
		LinesA:      len(strings.Split(textA, "\n")),
		LinesB:      len(strings.Split(textB, "\n")),
	}
}

// CompareDocuments joins each document's per-page text with newlines and
// diffs the concatenation, mirroring how a reader sees the documents as
// continuous text rather than discrete pages.
func CompareDocuments(textA, textB []model.PageText) *Result {
	return Compare(joinPages(textA), joinPages(textB))
}

func joinPages(pages []model.PageText) string {
	parts := make([]string, len(pages))
	for i, p := range pages {
		parts[i] = p.Content
	}
	return strings.Join(parts, "\n")
}

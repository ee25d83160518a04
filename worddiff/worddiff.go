// Package worddiff computes the word-level edit script between two
// matched pages. Words are compared by their text only; bounding boxes
// ride along untouched so that downstream layout code can locate each
// changed word on its page.
package worddiff

import (
	"fmt"

	"github.com/tsawler/pagediff/match"
	"github.com/tsawler/pagediff/model"
)

// Op is one word-level edit operation: words A[A1:A2] correspond to words
// B[B1:B2] under the given tag. The ops of a full diff satisfy the same
// contiguity and coverage invariant as an alignment plan, over the two
// word lists instead of the two page sequences.
type Op struct {
	Tag            match.Tag
	A1, A2, B1, B2 int
}

// String returns a compact representation like "insert a[3:3] b[3:5]".
func (op Op) String() string {
	return fmt.Sprintf("%s a[%d:%d] b[%d:%d]", op.Tag, op.A1, op.A2, op.B1, op.B2)
}

// Diff computes the edit script between two word lists. Every maximal run
// of mismatched words is reported as a single Replace (both sides
// contribute), Insert (only B contributes), or Delete (only A
// contributes) op. Diffing a list against itself yields a single Equal op
// covering the whole range; two empty lists yield no ops.
func Diff(wordsA, wordsB []model.Word) []Op {
	tokensA := tokens(wordsA)
	tokensB := tokens(wordsB)

	opcodes := match.NewMatcher(tokensA, tokensB).Opcodes()
	ops := make([]Op, 0, len(opcodes))
	for _, oc := range opcodes {
		ops = append(ops, Op{Tag: oc.Tag, A1: oc.A1, A2: oc.A2, B1: oc.B1, B2: oc.B2})
	}
	return ops
}

// Changed reports whether a diff contains any non-Equal op.
func Changed(ops []Op) bool {
	for _, op := range ops {
		if op.Tag != match.Equal {
			return true
		}
	}
	return false
}

// tokens extracts the NFC-normalized text of each word, the token form
// compared by the matcher.
func tokens(words []model.Word) []string {
	toks := make([]string, len(words))
	for i, w := range words {
		toks[i] = string(match.Runes(w.Text))
	}
	return toks
}

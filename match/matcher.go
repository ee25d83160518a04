// Package match implements Ratcliff-Obershelp sequence matching: find the
// longest contiguous block of tokens common to two sequences, then recurse
// on the pieces to the left and to the right of the block. The matcher
// produces matching blocks, a normalized similarity ratio, and an edit
// script (opcodes), over any comparable token type.
//
// The recursive longest-block strategy is deliberate. It tends to yield
// matches that "look right" to people comparing near-duplicate documents,
// and the thresholds used by the page aligner are calibrated against its
// characteristic ratios, so this is not interchangeable with an edit
// distance.
package match

import (
	"golang.org/x/text/unicode/norm"
)

// Tag classifies an aligned span of two sequences. The same four-way
// classification is used at every granularity: pages within a document,
// and words within a page pair.
type Tag int

const (
	// Equal spans hold matching content on both sides.
	Equal Tag = iota
	// Replace spans hold differing content on both sides.
	Replace
	// Insert spans hold content present only in the second sequence.
	Insert
	// Delete spans hold content present only in the first sequence.
	Delete
)

// String returns a string representation of the tag.
func (t Tag) String() string {
	switch t {
	case Equal:
		return "equal"
	case Replace:
		return "replace"
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	default:
		return "unknown"
	}
}

// Block is a maximal run of matching tokens: a[A:A+Size] == b[B:B+Size].
type Block struct {
	A, B, Size int
}

// Opcode describes how to turn a[A1:A2] into b[B1:B2]. Concatenating the
// A-ranges of a full opcode list reconstructs [0, len(a)) exactly once,
// and likewise for the B-ranges.
type Opcode struct {
	Tag            Tag
	A1, A2, B1, B2 int
}

// Matcher compares two token sequences. Construct one with NewMatcher;
// the zero value is not usable. A Matcher is cheap and single-use by
// convention: results are computed lazily and cached.
type Matcher[T comparable] struct {
	a, b   []T
	b2j    map[T][]int
	blocks []Block
}

// NewMatcher creates a matcher over the two given sequences.
func NewMatcher[T comparable](a, b []T) *Matcher[T] {
	m := &Matcher[T]{a: a, b: b}
	m.b2j = make(map[T][]int, len(b))
	for j, tok := range b {
		m.b2j[tok] = append(m.b2j[tok], j)
	}
	return m
}

// longestMatch finds the longest block of matching tokens within
// a[alo:ahi] and b[blo:bhi]. Ties are broken toward the block starting
// earliest in a, then earliest in b, so results are deterministic.
func (m *Matcher[T]) longestMatch(alo, ahi, blo, bhi int) Block {
	besti, bestj, bestsize := alo, blo, 0

	// j2len[j] at iteration i holds the length of the longest match
	// ending at a[i-1], b[j-1].
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		newj2len := make(map[int]int)
		for _, j := range m.b2j[m.a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}

	return Block{A: besti, B: bestj, Size: bestsize}
}

// MatchingBlocks returns the matching blocks in order of position, with a
// terminating sentinel block of size zero at (len(a), len(b)). Adjacent
// blocks are coalesced.
func (m *Matcher[T]) MatchingBlocks() []Block {
	if m.blocks != nil {
		return m.blocks
	}

	type span struct {
		alo, ahi, blo, bhi int
	}

	// Iterative version of the recursion: find the longest match in the
	// span, then queue the remainders on either side of it.
	queue := []span{{0, len(m.a), 0, len(m.b)}}
	var raw []Block
	for len(queue) > 0 {
		s := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		blk := m.longestMatch(s.alo, s.ahi, s.blo, s.bhi)
		if blk.Size == 0 {
			continue
		}
		raw = append(raw, blk)
		if s.alo < blk.A && s.blo < blk.B {
			queue = append(queue, span{s.alo, blk.A, s.blo, blk.B})
		}
		if blk.A+blk.Size < s.ahi && blk.B+blk.Size < s.bhi {
			queue = append(queue, span{blk.A + blk.Size, s.ahi, blk.B + blk.Size, s.bhi})
		}
	}

	sortBlocks(raw)

	// Coalesce adjacent blocks.
	merged := make([]Block, 0, len(raw)+1)
	for _, blk := range raw {
		n := len(merged)
		if n > 0 && merged[n-1].A+merged[n-1].Size == blk.A && merged[n-1].B+merged[n-1].Size == blk.B {
			merged[n-1].Size += blk.Size
			continue
		}
		merged = append(merged, blk)
	}

	merged = append(merged, Block{A: len(m.a), B: len(m.b), Size: 0})
	m.blocks = merged
	return merged
}

// Ratio returns a similarity measure in [0, 1]: twice the number of
// matched tokens divided by the total number of tokens in both sequences.
// Identical sequences score 1.0, including two empty sequences; sequences
// with no common alignment score 0.0.
func (m *Matcher[T]) Ratio() float64 {
	matched := 0
	for _, blk := range m.MatchingBlocks() {
		matched += blk.Size
	}
	total := len(m.a) + len(m.b)
	if total == 0 {
		return 1.0
	}
	return 2.0 * float64(matched) / float64(total)
}

// Opcodes returns the edit script between the two sequences. Every
// maximal run of mismatched tokens becomes a single Replace, Insert, or
// Delete opcode; identical sequences yield a single Equal opcode.
func (m *Matcher[T]) Opcodes() []Opcode {
	var ops []Opcode
	i, j := 0, 0
	for _, blk := range m.MatchingBlocks() {
		tag := Tag(-1)
		switch {
		case i < blk.A && j < blk.B:
			tag = Replace
		case i < blk.A:
			tag = Delete
		case j < blk.B:
			tag = Insert
		}
		if tag >= 0 {
			ops = append(ops, Opcode{Tag: tag, A1: i, A2: blk.A, B1: j, B2: blk.B})
		}
		i, j = blk.A+blk.Size, blk.B+blk.Size
		if blk.Size > 0 {
			ops = append(ops, Opcode{Tag: Equal, A1: blk.A, A2: i, B1: blk.B, B2: j})
		}
	}
	return ops
}

// sortBlocks orders blocks by A position, then B. Insertion sort; block
// lists are short and mostly ordered already.
func sortBlocks(blocks []Block) {
	for i := 1; i < len(blocks); i++ {
		for j := i; j > 0; j-- {
			prev, cur := blocks[j-1], blocks[j]
			if prev.A < cur.A || (prev.A == cur.A && prev.B <= cur.B) {
				break
			}
			blocks[j-1], blocks[j] = cur, prev
		}
	}
}

// Ratio is a convenience that compares two token slices directly.
func Ratio[T comparable](a, b []T) float64 {
	return NewMatcher(a, b).Ratio()
}

// StringRatio compares two strings rune by rune after Unicode NFC
// normalization, so that composed and decomposed spellings of the same
// text compare equal. This is the form of comparison used for whole-page
// text.
func StringRatio(a, b string) float64 {
	return Ratio(Runes(a), Runes(b))
}

// Runes normalizes a string to NFC and returns its runes, the token form
// used for character-level comparison.
func Runes(s string) []rune {
	return []rune(norm.NFC.String(s))
}

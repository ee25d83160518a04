package model

// Side identifies which of the two compared documents a value belongs to.
// Document A is the original (left side of a report), document B the
// modified version (right side).
type Side int

const (
	SideA Side = iota
	SideB
)

// String returns a string representation of the side ("A" or "B").
func (s Side) String() string {
	switch s {
	case SideA:
		return "A"
	case SideB:
		return "B"
	default:
		return "Unknown"
	}
}

// ChangeKind classifies a highlighted region: words present only in
// document B are Added, words present only in document A are Removed.
type ChangeKind int

const (
	Added ChangeKind = iota
	Removed
)

// String returns a string representation of the change kind.
func (k ChangeKind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	default:
		return "unknown"
	}
}

// HighlightRegion locates one changed word in the output layout space.
// Box has already been projected from the word's native page coordinates
// through the side's layout transform.
type HighlightRegion struct {
	Side Side
	Box  Rect
	Kind ChangeKind
}

// NoPage marks an absent page index in a PageComparisonResult.
const NoPage = -1

// PageComparisonResult describes one output page of a comparison report:
// either a matched pair of pages with its word-level highlights, or a
// singleton page that exists on only one side. At most one of AIndex and
// BIndex is NoPage.
type PageComparisonResult struct {
	AIndex  int  // page index in document A, or NoPage
	BIndex  int  // page index in document B, or NoPage
	Shifted bool // matched pair whose indices differ between documents
	Regions []HighlightRegion
}

// HasA reports whether the result references a page of document A.
func (r PageComparisonResult) HasA() bool {
	return r.AIndex != NoPage
}

// HasB reports whether the result references a page of document B.
func (r PageComparisonResult) HasB() bool {
	return r.BIndex != NoPage
}

// IsPair reports whether the result is a matched page pair.
func (r PageComparisonResult) IsPair() bool {
	return r.HasA() && r.HasB()
}

package align

import (
	"fmt"

	"github.com/tsawler/pagediff/match"
)

// Op is one alignment operation: pages A[A1:A2] correspond to pages
// B[B1:B2] under the given tag. Insert ops have an empty A-range, Delete
// ops an empty B-range; Equal and Replace ops have both ranges non-empty.
type Op struct {
	Tag            match.Tag
	A1, A2, B1, B2 int
}

// String returns a compact representation like "equal a[2:3] b[3:4]".
func (op Op) String() string {
	return fmt.Sprintf("%s a[%d:%d] b[%d:%d]", op.Tag, op.A1, op.A2, op.B1, op.B2)
}

// Plan is an ordered sequence of alignment operations covering two page
// sequences. Its central invariant: the A-ranges are contiguous, strictly
// increasing, and cover [0, lenA) exactly once, and likewise the B-ranges
// cover [0, lenB). A plan that violates this indicates a bug in the
// aligner, not bad input.
type Plan []Op

// LenA returns the number of pages of document A covered by the plan.
func (p Plan) LenA() int {
	if len(p) == 0 {
		return 0
	}
	return p[len(p)-1].A2
}

// LenB returns the number of pages of document B covered by the plan.
func (p Plan) LenB() int {
	if len(p) == 0 {
		return 0
	}
	return p[len(p)-1].B2
}

// Validate checks the coverage invariant against the given document
// lengths. It returns nil for a well-formed plan; a non-nil error means
// the plan was produced by broken code and must not be consumed.
func (p Plan) Validate(lenA, lenB int) error {
	i, j := 0, 0
	for n, op := range p {
		if op.A1 != i || op.B1 != j {
			return fmt.Errorf("plan op %d (%s): ranges not contiguous, expected a=%d b=%d", n, op, i, j)
		}
		if op.A2 < op.A1 || op.B2 < op.B1 {
			return fmt.Errorf("plan op %d (%s): negative range", n, op)
		}
		switch op.Tag {
		case match.Equal, match.Replace:
			if op.A2 == op.A1 || op.B2 == op.B1 {
				return fmt.Errorf("plan op %d (%s): %s op with empty range", n, op, op.Tag)
			}
		case match.Insert:
			if op.A2 != op.A1 || op.B2 == op.B1 {
				return fmt.Errorf("plan op %d (%s): malformed insert", n, op)
			}
		case match.Delete:
			if op.B2 != op.B1 || op.A2 == op.A1 {
				return fmt.Errorf("plan op %d (%s): malformed delete", n, op)
			}
		default:
			return fmt.Errorf("plan op %d (%s): unknown tag", n, op)
		}
		i, j = op.A2, op.B2
	}
	if i != lenA || j != lenB {
		return fmt.Errorf("plan covers a[0:%d] b[0:%d], want a[0:%d] b[0:%d]", i, j, lenA, lenB)
	}
	return nil
}

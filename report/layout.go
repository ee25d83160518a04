// Package report turns an alignment plan into an ordered list of page
// comparison results, resolving matched pairs and one-sided pages,
// running the word-level diff per pair, and projecting changed words into
// the output layout. It also computes the side-by-side report geometry
// that renderers draw into.
package report

import (
	"math"

	"github.com/tsawler/pagediff/model"
)

// LayoutConfig holds the spacing parameters of a side-by-side report
// page: an outer margin, a gap between the two page placements, and a
// band above them reserved for labels.
type LayoutConfig struct {
	Margin      float64
	Gap         float64
	LabelHeight float64
}

// DefaultLayoutConfig returns the standard report spacing.
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		Margin:      20,
		Gap:         10,
		LabelHeight: 40,
	}
}

// labelBoxHeight is the height of the drawn label box within the label band.
const labelBoxHeight = 30

// PageLayout is the computed geometry of one output report page: its
// overall size, the placement rectangle and label box for each side, and
// the transform that projects each side's native page coordinates into
// the output space. Pages are placed at native scale; renderers that
// rasterize at a different resolution compose their own scale on top.
type PageLayout struct {
	Width, Height float64

	ARect  model.Rect
	BRect  model.Rect
	ALabel model.Rect
	BLabel model.Rect

	ATransform model.Transform
	BTransform model.Transform
}

// PairLayout computes the geometry for a matched page pair: document A's
// page on the left, document B's on the right, labels above each.
func (c LayoutConfig) PairLayout(dimsA, dimsB model.Dimensions) PageLayout {
	top := c.Margin + c.LabelHeight
	bx := c.Margin + dimsA.Width + c.Gap

	return PageLayout{
		Width:  dimsA.Width + dimsB.Width + c.Gap + 2*c.Margin,
		Height: math.Max(dimsA.Height, dimsB.Height) + 2*c.Margin + c.LabelHeight,

		ARect:  model.NewRect(c.Margin, top, c.Margin+dimsA.Width, top+dimsA.Height),
		BRect:  model.NewRect(bx, top, bx+dimsB.Width, top+dimsB.Height),
		ALabel: model.NewRect(c.Margin, c.Margin, c.Margin+dimsA.Width, c.Margin+labelBoxHeight),
		BLabel: model.NewRect(bx, c.Margin, bx+dimsB.Width, c.Margin+labelBoxHeight),

		ATransform: model.Transform{ScaleX: 1, ScaleY: 1, OffsetX: c.Margin, OffsetY: top},
		BTransform: model.Transform{ScaleX: 1, ScaleY: 1, OffsetX: bx, OffsetY: top},
	}
}

// SingleLayout computes the geometry for a page that exists on only one
// side. The present page keeps its usual position (A left, B right) and
// the other placement is left blank at the same size, so singleton pages
// line up with pairs when reports are read in sequence.
func (c LayoutConfig) SingleLayout(dims model.Dimensions, side model.Side) PageLayout {
	top := c.Margin + c.LabelHeight
	rx := c.Margin + dims.Width + c.Gap

	left := model.NewRect(c.Margin, top, c.Margin+dims.Width, top+dims.Height)
	right := model.NewRect(rx, top, rx+dims.Width, top+dims.Height)
	leftLabel := model.NewRect(c.Margin, c.Margin, c.Margin+dims.Width, c.Margin+labelBoxHeight)
	rightLabel := model.NewRect(rx, c.Margin, rx+dims.Width, c.Margin+labelBoxHeight)

	layout := PageLayout{
		Width:  2*dims.Width + c.Gap + 2*c.Margin,
		Height: dims.Height + 2*c.Margin + c.LabelHeight,
		ARect:  left,
		BRect:  right,
		ALabel: leftLabel,
		BLabel: rightLabel,
	}

	if side == model.SideA {
		layout.ATransform = model.Transform{ScaleX: 1, ScaleY: 1, OffsetX: c.Margin, OffsetY: top}
		layout.BTransform = model.IdentityTransform()
	} else {
		layout.ATransform = model.IdentityTransform()
		layout.BTransform = model.Transform{ScaleX: 1, ScaleY: 1, OffsetX: rx, OffsetY: top}
	}
	return layout
}

// BlankRect returns the placement rectangle of the absent side of a
// singleton layout: the right slot when the present page is on side A,
// the left slot otherwise.
func (l PageLayout) BlankRect(present model.Side) model.Rect {
	if present == model.SideA {
		return l.BRect
	}
	return l.ARect
}

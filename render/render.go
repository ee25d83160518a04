// Package render draws comparison results as raster report pages: the two
// source pages side by side, changed words highlighted, one-sided pages
// shown against a blank slot, shifted pairs flagged with a border.
//
// Rendering is a collaborator of the comparison core, not part of it: the
// core emits layout-agnostic results, and this package is one consumer of
// them. Coordinates throughout are top-left origin with y growing down,
// matching both the extracted word boxes and the raster output.
package render

import (
	"fmt"
	"image"
	"math"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
	xdraw "golang.org/x/image/draw"

	"github.com/tsawler/pagediff/model"
	"github.com/tsawler/pagediff/report"
)

// SizeSource supplies the native dimensions of one page of one document.
type SizeSource func(side model.Side, pageIndex int) model.Dimensions

// ImageSource supplies a rasterized page image, or nil when no raster is
// available. Pages without an image still render: their highlights and
// labels are drawn over an empty placement.
type ImageSource func(side model.Side, pageIndex int) image.Image

// highlightAlpha is the opacity of highlight fills, chosen so the page
// content stays legible underneath.
const highlightAlpha = 0.3

// Renderer draws report pages for comparison results.
type Renderer struct {
	layout  report.LayoutConfig
	palette Palette
	scale   float64 // device pixels per layout unit

	sizes  SizeSource
	images ImageSource
}

// NewRenderer creates a renderer with default layout spacing and palette
// at one device pixel per layout unit.
func NewRenderer(sizes SizeSource, images ImageSource) *Renderer {
	return NewRendererWithConfig(sizes, images, report.DefaultLayoutConfig(), DefaultPalette(), 1)
}

// NewRendererWithConfig creates a renderer with custom layout spacing,
// palette, and raster scale. A scale of 2 renders at twice the layout
// resolution.
func NewRendererWithConfig(sizes SizeSource, images ImageSource, layout report.LayoutConfig, palette Palette, scale float64) *Renderer {
	if scale <= 0 {
		scale = 1
	}
	return &Renderer{layout: layout, palette: palette, scale: scale, sizes: sizes, images: images}
}

// RenderAll renders one image per comparison result, in result order.
func (r *Renderer) RenderAll(results []model.PageComparisonResult) ([]image.Image, error) {
	images := make([]image.Image, 0, len(results))
	for i, res := range results {
		img, err := r.RenderPage(res)
		if err != nil {
			return nil, fmt.Errorf("report page %d: %w", i+1, err)
		}
		images = append(images, img)
	}
	return images, nil
}

// RenderPage renders a single comparison result into a report page image.
func (r *Renderer) RenderPage(res model.PageComparisonResult) (image.Image, error) {
	switch {
	case res.IsPair():
		return r.renderPair(res), nil
	case res.HasA():
		return r.renderSingle(res.AIndex, model.SideA), nil
	case res.HasB():
		return r.renderSingle(res.BIndex, model.SideB), nil
	default:
		return nil, fmt.Errorf("result references no page on either side")
	}
}

func (r *Renderer) renderPair(res model.PageComparisonResult) image.Image {
	pl := r.layout.PairLayout(r.sizes(model.SideA, res.AIndex), r.sizes(model.SideB, res.BIndex))
	ctx := r.newPage(pl)

	r.drawPageImage(ctx, model.SideA, res.AIndex, pl.ARect)
	r.drawPageImage(ctx, model.SideB, res.BIndex, pl.BRect)

	white := colorful.Color{R: 1, G: 1, B: 1}
	r.drawLabel(ctx, pl.ALabel, fmt.Sprintf("Original - Page %d", res.AIndex+1), white)
	r.drawLabel(ctx, pl.BLabel, fmt.Sprintf("Modified - Page %d", res.BIndex+1), white)

	for _, region := range res.Regions {
		stroke := r.palette.RemovedStroke
		if region.Kind == model.Added {
			stroke = r.palette.AddedStroke
		}
		fill := fillTint(stroke)

		box := r.deviceRect(region.Box)
		ctx.SetRGBA(fill.R, fill.G, fill.B, highlightAlpha)
		ctx.DrawRectangle(box.X0, box.Y0, box.Width(), box.Height())
		ctx.Fill()
		ctx.SetRGB(stroke.R, stroke.G, stroke.B)
		ctx.SetLineWidth(r.scale)
		ctx.DrawRectangle(box.X0, box.Y0, box.Width(), box.Height())
		ctx.Stroke()
	}

	if res.Shifted {
		r.drawShiftedMarker(ctx, pl)
	}

	return ctx.Image()
}

func (r *Renderer) renderSingle(pageIndex int, side model.Side) image.Image {
	pl := r.layout.SingleLayout(r.sizes(side, pageIndex), side)
	ctx := r.newPage(pl)

	var pageRect, pageLabel model.Rect
	var labelText string
	var labelFill = r.palette.MissingLabel
	if side == model.SideA {
		pageRect, pageLabel = pl.ARect, pl.ALabel
		labelText = fmt.Sprintf("Missing - Page %d", pageIndex+1)
	} else {
		pageRect, pageLabel = pl.BRect, pl.BLabel
		labelText = fmt.Sprintf("Added - Page %d", pageIndex+1)
		labelFill = r.palette.AddedLabel
	}
	blankRect := pl.BlankRect(side)
	blankLabel := pl.ALabel
	if side == model.SideA {
		blankLabel = pl.BLabel
	}

	r.drawPageImage(ctx, side, pageIndex, pageRect)

	white := colorful.Color{R: 1, G: 1, B: 1}
	r.drawLabel(ctx, blankLabel, "No Corresponding Page", white)
	r.drawLabel(ctx, pageLabel, labelText, labelFill)

	// Blank slot background where the missing counterpart would sit.
	blank := r.deviceRect(blankRect)
	ctx.SetRGB(r.palette.BlankFill.R, r.palette.BlankFill.G, r.palette.BlankFill.B)
	ctx.DrawRectangle(blank.X0, blank.Y0, blank.Width(), blank.Height())
	ctx.Fill()
	ctx.SetRGB(r.palette.BlankStroke.R, r.palette.BlankStroke.G, r.palette.BlankStroke.B)
	ctx.SetLineWidth(r.scale)
	ctx.DrawRectangle(blank.X0, blank.Y0, blank.Width(), blank.Height())
	ctx.Stroke()

	return ctx.Image()
}

// newPage creates the drawing context for one report page and fills it
// with a white background.
func (r *Renderer) newPage(pl report.PageLayout) *gg.Context {
	w := int(math.Ceil(pl.Width * r.scale))
	h := int(math.Ceil(pl.Height * r.scale))
	ctx := gg.NewContext(w, h)
	ctx.SetRGB(1, 1, 1)
	ctx.Clear()
	return ctx
}

// drawPageImage scales a source page raster into its placement rectangle.
func (r *Renderer) drawPageImage(ctx *gg.Context, side model.Side, pageIndex int, placement model.Rect) {
	if r.images == nil {
		return
	}
	src := r.images(side, pageIndex)
	if src == nil {
		return
	}

	dst := r.deviceRect(placement)
	bounds := image.Rect(int(dst.X0), int(dst.Y0), int(math.Ceil(dst.X1)), int(math.Ceil(dst.Y1)))
	target, ok := ctx.Image().(xdraw.Image)
	if !ok {
		return
	}
	xdraw.ApproxBiLinear.Scale(target, bounds, src, src.Bounds(), xdraw.Over, nil)
}

// drawLabel draws a bordered label box with its text.
func (r *Renderer) drawLabel(ctx *gg.Context, box model.Rect, text string, fill colorful.Color) {
	dev := r.deviceRect(box)
	ctx.SetRGB(fill.R, fill.G, fill.B)
	ctx.DrawRectangle(dev.X0, dev.Y0, dev.Width(), dev.Height())
	ctx.Fill()
	ctx.SetRGB(0, 0, 0)
	ctx.SetLineWidth(r.scale)
	ctx.DrawRectangle(dev.X0, dev.Y0, dev.Width(), dev.Height())
	ctx.Stroke()
	ctx.DrawString(text, dev.X0+5*r.scale, dev.Y1-10*r.scale)
}

// drawShiftedMarker outlines the page and captions it to flag a pair
// whose page numbers differ between the two documents.
func (r *Renderer) drawShiftedMarker(ctx *gg.Context, pl report.PageLayout) {
	border := r.palette.ShiftedBorder
	inset := 5 * r.scale
	w := pl.Width * r.scale
	h := pl.Height * r.scale

	ctx.SetRGB(border.R, border.G, border.B)
	ctx.SetLineWidth(3 * r.scale)
	ctx.DrawRectangle(inset, inset, w-2*inset, h-2*inset)
	ctx.Stroke()

	ctx.SetRGB(0.8, 0.6, 0)
	ctx.DrawStringAnchored("(Page Shifted)", w/2, h-15*r.scale, 0.5, 0)
}

// deviceRect converts a layout-space rectangle to device pixels.
func (r *Renderer) deviceRect(box model.Rect) model.Rect {
	scale := model.Transform{ScaleX: r.scale, ScaleY: r.scale}
	return scale.Apply(box)
}

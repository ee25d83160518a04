package render

import "github.com/lucasb-eyer/go-colorful"

// Palette holds the colors used on a report page. Stroke colors outline
// changed words; fill tints are derived from them by blending toward
// white so that highlighted text stays readable underneath.
type Palette struct {
	RemovedStroke colorful.Color
	AddedStroke   colorful.Color
	ShiftedBorder colorful.Color
	MissingLabel  colorful.Color
	AddedLabel    colorful.Color
	BlankFill     colorful.Color
	BlankStroke   colorful.Color
}

// DefaultPalette returns the standard report colors: red for removals,
// green for additions, yellow for shifted-page borders.
func DefaultPalette() Palette {
	white := colorful.Color{R: 1, G: 1, B: 1}
	return Palette{
		RemovedStroke: colorful.Color{R: 1, G: 0, B: 0},
		AddedStroke:   colorful.Color{R: 0, G: 1, B: 0},
		ShiftedBorder: colorful.Color{R: 1, G: 1, B: 0},
		MissingLabel:  colorful.Color{R: 1, G: 0.8, B: 0.8},
		AddedLabel:    colorful.Color{R: 0.8, G: 1, B: 0.8},
		BlankFill:     white.BlendRgb(colorful.Color{R: 0.9, G: 0.9, B: 0.9}, 0.1),
		BlankStroke:   colorful.Color{R: 0.9, G: 0.9, B: 0.9},
	}
}

// fillTint derives a highlight fill from its stroke color, 70% of the way
// to white. Matches the established report look: stroke (1,0,0) gives
// fill (1, 0.7, 0.7).
func fillTint(stroke colorful.Color) colorful.Color {
	white := colorful.Color{R: 1, G: 1, B: 1}
	return stroke.BlendRgb(white, 0.7)
}

package forest

import "image/color"

var forestPalette = []color.RGBA{
	{R: 0, G: 0, B: 0, A: 255},      // empty
	{R: 34, G: 139, B: 34, A: 255},  // tree
	{R: 220, G: 40, B: 30, A: 255},  // burning
	{R: 240, G: 220, B: 60, A: 255}, // ash
}

// Palette exposes the color palette used for rendering the forest world.
// Cell values index it directly.
func (w *World) Palette() []color.RGBA {
	return forestPalette
}

// String returns a short name for the cell state, used in overlays and logs.
func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellTree:
		return "tree"
	case CellBurning:
		return "burning"
	case CellAsh:
		return "ash"
	default:
		return "invalid"
	}
}

package levelstate

import "image/color"

// Font selects one of the fixed text faces a Surface provides.
type Font int

const (
	FontSmall Font = iota
	FontHeading
	FontTitle
)

// Size returns the point size of f.
func (f Font) Size() float64 {
	switch f {
	case FontTitle:
		return 32
	case FontHeading:
		return 24
	default:
		return 14
	}
}

// Surface is the 2D target states draw their overlays onto. Colors are
// alpha blended over what is already there. Text is positioned by its
// baseline.
type Surface interface {
	FillRect(x, y, w, h float64, clr color.Color)
	FillCircle(cx, cy, r float64, clr color.Color)
	DrawText(str string, x, y float64, font Font, clr color.Color)
	MeasureText(str string, font Font) float64
}

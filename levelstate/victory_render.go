package levelstate

import (
	"image/color"
	"math/rand"

	"golang.org/x/image/colornames"
)

const (
	starSeed  = 42
	starCount = 30
	starSize  = 6
	// a star is lit for the first half of each blink period
	starBlinkPeriod = 20
	starBlinkStride = 5
)

var (
	overlayColor = color.NRGBA{A: 150}
	starColor    = color.NRGBA{R: 255, G: 215, B: 0, A: 200}
)

// Star is one disc of the celebration field.
type Star struct {
	X, Y    int
	Visible bool
}

// StarField returns the celebration field for a given tick. The generator is
// reseeded on every call and only advanced for lit stars, so the result is a
// pure function of ticks and the window size.
func StarField(ticks, width, height int) []Star {
	rng := rand.New(rand.NewSource(starSeed))
	stars := make([]Star, starCount)
	for i := range stars {
		if (ticks+i*starBlinkStride)%starBlinkPeriod >= starBlinkPeriod/2 {
			continue
		}
		stars[i] = Star{
			X:       rng.Intn(max(width, 1)),
			Y:       rng.Intn(max(height, 1)),
			Visible: true,
		}
	}
	return stars
}

// Message returns the banner text and color for the current phase.
func (v *Victory) Message() (string, color.Color) {
	if v.kind == FinalDefeat {
		switch v.phase {
		case PhaseHeart:
			return "You reached the princess!", colornames.Hotpink
		case PhaseAction:
			return "Kong has been defeated!", colornames.Gold
		case PhaseMovement:
			return "The princess is free!", colornames.Springgreen
		case PhaseFinal:
			return "TOTAL VICTORY!", colornames.Gold
		}
		return "", colornames.Yellow
	}

	switch v.phase {
	case PhaseHeart:
		return "You reached the princess!", colornames.Yellow
	case PhaseAction:
		return "Kong grabs her!", colornames.Red
	case PhaseMovement:
		return "He is carrying her off!", colornames.Orange
	case PhaseFinal:
		return "She escapes again!", colornames.Yellow
	}
	return "", colornames.Yellow
}

func (v *Victory) Render(s Surface) {
	w, h := v.ctx.windowSize()
	s.FillRect(0, 0, w, h, overlayColor)

	msg, clr := v.Message()
	if v.kind == FinalDefeat && v.phase == PhaseFinal {
		v.renderStars(s, int(w), int(h))
	}

	cx, cy := w/2, h/2
	tw := s.MeasureText(msg, FontTitle)
	s.DrawText(msg, cx-tw/2, cy, FontTitle, clr)
	// shadow
	s.DrawText(msg, cx-tw/2+2, cy+2, FontTitle, color.Black)
}

func (v *Victory) renderStars(s Surface, w, h int) {
	for _, st := range StarField(v.ticks, w, h) {
		if !st.Visible {
			continue
		}
		s.FillCircle(float64(st.X)+starSize/2, float64(st.Y)+starSize/2, starSize/2, starColor)
	}
}

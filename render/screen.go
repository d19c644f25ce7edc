// Package render draws level overlays onto ebiten images.
package render

import (
	"bytes"
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/kongclimb/levelstate"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	sourceOnce sync.Once
	source     *text.GoTextFaceSource

	facesMu sync.Mutex
	faces   = map[levelstate.Font]*text.GoTextFace{}
)

func fontSource() *text.GoTextFaceSource {
	sourceOnce.Do(func() {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			log.Fatalf("[render] load go regular: %v", err)
		}
		log.Printf("[render] font: Go Regular (embedded)")
		source = src
	})
	return source
}

// Face returns the shared text face for font.
func Face(font levelstate.Font) *text.GoTextFace {
	facesMu.Lock()
	defer facesMu.Unlock()

	if f, ok := faces[font]; ok {
		return f
	}
	f := &text.GoTextFace{Source: fontSource(), Size: font.Size()}
	faces[font] = f
	return f
}

// Screen adapts an ebiten image to levelstate.Surface.
type Screen struct {
	Image *ebiten.Image
	// AntiAlias applies to circles only; rectangles are pixel aligned.
	AntiAlias bool
}

func NewScreen(img *ebiten.Image) *Screen {
	return &Screen{Image: img, AntiAlias: true}
}

func (s *Screen) FillRect(x, y, w, h float64, clr color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	vector.FillRect(s.Image, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (s *Screen) FillCircle(cx, cy, r float64, clr color.Color) {
	if r <= 0 {
		return
	}
	vector.FillCircle(s.Image, float32(cx), float32(cy), float32(r), clr, s.AntiAlias)
}

// DrawText draws str with its baseline at y.
func (s *Screen) DrawText(str string, x, y float64, font levelstate.Font, clr color.Color) {
	if str == "" {
		return
	}
	face := Face(font)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(s.Image, str, face, op)
}

func (s *Screen) MeasureText(str string, font levelstate.Font) float64 {
	w, _ := text.Measure(str, Face(font), 0)
	return w
}

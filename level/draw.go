package level

import (
	"fmt"
	"image/color"

	"github.com/milk9111/kongclimb/common"
	"github.com/milk9111/kongclimb/levelstate"
	"golang.org/x/image/colornames"
)

var (
	backgroundColor = color.NRGBA{R: 8, G: 8, B: 24, A: 255}
	girderColor     = colornames.Crimson
	rivetColor      = colornames.Black
	hudColor        = colornames.White
	timeBarBack     = color.NRGBA{R: 40, G: 40, B: 40, A: 255}
)

const (
	rivetSpacing = 24
	timeBarWidth = 160
)

// Draw renders the level, its objects, the active state's overlay and the HUD.
func (m *Manager) Draw(s levelstate.Surface) {
	if m.level == nil {
		return
	}
	s.FillRect(0, 0, float64(m.level.Width), float64(m.level.Height), backgroundColor)

	for _, p := range m.level.Platforms {
		s.FillRect(p.X, p.Y, p.W, p.H, girderColor)
		for x := p.X + rivetSpacing/2; x < p.X+p.W; x += rivetSpacing {
			s.FillRect(x, p.Y+p.H/2-1, 2, 2, rivetColor)
		}
	}

	m.handler.Draw(s)

	if m.state != nil {
		m.state.Render(s)
	}
	m.drawHUD(s)
}

func (m *Manager) drawHUD(s levelstate.Surface) {
	st := m.status
	s.DrawText(fmt.Sprintf("SCORE %06d", st.Score()), 10, 20, levelstate.FontSmall, hudColor)
	s.DrawText(fmt.Sprintf("BEST %06d", st.Best()), 160, 20, levelstate.FontSmall, hudColor)
	s.DrawText(fmt.Sprintf("LIVES %d", st.Lives()), 300, 20, levelstate.FontSmall, hudColor)
	s.DrawText(fmt.Sprintf("L=%02d", m.index), 400, 20, levelstate.FontSmall, hudColor)

	w := float64(m.level.Width)
	x := w - timeBarWidth - 10
	s.DrawText(fmt.Sprintf("TIME %d", st.SecondsLeft()), x-80, 20, levelstate.FontSmall, hudColor)

	total := common.Seconds(m.level.TimeLimit)
	frac := float32(1)
	if total > 0 {
		frac = float32(st.TimeLeft()) / float32(total)
	}
	s.FillRect(x, 10, timeBarWidth, 12, timeBarBack)
	s.FillRect(x, 10, float64(common.Lerp(0, timeBarWidth, frac)), 12, timeBarColor(frac))
}

// timeBarColor fades from green to red as the clock runs down.
func timeBarColor(frac float32) color.Color {
	return color.NRGBA{
		R: uint8(common.Lerp(255, 0, frac)),
		G: uint8(common.Lerp(0, 200, frac)),
		B: 40,
		A: 255,
	}
}

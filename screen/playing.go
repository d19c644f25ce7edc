package screen

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/kongclimb/levelstate"
	"github.com/milk9111/kongclimb/render"
)

// Level is the running level as seen by the playing screen.
type Level interface {
	Update()
	Draw(s levelstate.Surface)
}

// Playing runs the level every frame. Escape toggles a pause menu drawn over
// the frozen level.
type Playing struct {
	level  Level
	pause  *Menu
	paused bool
}

// NewPlaying returns the play screen. onQuit backs the pause menu's quit
// button.
func NewPlaying(level Level, onQuit func()) *Playing {
	p := &Playing{level: level}
	p.pause = &Menu{
		Title: "Paused",
		Buttons: []Button{
			{Label: "Resume", OnClick: p.Resume},
			{Label: "Quit", OnClick: func() {
				p.paused = false
				if onQuit != nil {
					onQuit()
				}
			}},
		},
		Backdrop: p.drawLevel,
	}
	return p
}

func (p *Playing) Enter() { p.paused = false }

func (p *Playing) Paused() bool { return p.paused }

func (p *Playing) Pause() {
	if p.paused {
		return
	}
	p.paused = true
	p.pause.Enter()
}

func (p *Playing) Resume() { p.paused = false }

func (p *Playing) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if p.paused {
			p.Resume()
		} else {
			p.Pause()
		}
		return nil
	}
	if p.paused {
		return p.pause.Update()
	}
	p.level.Update()
	return nil
}

func (p *Playing) Draw(dst *ebiten.Image) {
	if p.paused {
		p.pause.Draw(dst)
		return
	}
	p.drawLevel(dst)
}

func (p *Playing) drawLevel(dst *ebiten.Image) {
	p.level.Draw(render.NewScreen(dst))
}

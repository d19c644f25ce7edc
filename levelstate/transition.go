package levelstate

import (
	"image/color"
	"math"
)

// Transition fades the screen to black before the next level is loaded.
type Transition struct {
	ctx     Context
	elapsed int
	alpha   float64
}

func NewTransition(ctx Context) *Transition {
	return &Transition{ctx: ctx}
}

func (t *Transition) Kind() Kind { return KindTransition }

func (t *Transition) Enter() {
	t.ctx.log().Infof("-> TRANSITION")
}

func (t *Transition) Tick() {
	t.elapsed++
	t.alpha = math.Min(1, float64(t.elapsed)/fadeTicks)

	if t.elapsed >= fadeTicks {
		t.ctx.Levels.ChangeState(NewLevelLoading(t.ctx))
	}
}

// Alpha is the current fade opacity in [0, 1].
func (t *Transition) Alpha() float64 { return t.alpha }

func (t *Transition) Elapsed() int { return t.elapsed }

func (t *Transition) Render(s Surface) {
	w, h := t.ctx.windowSize()
	s.FillRect(0, 0, w, h, color.NRGBA{A: uint8(t.alpha * 255)})
}

func (t *Transition) Exit() {
	t.ctx.log().Infof("TRANSITION -> leaving")
}

func (t *Transition) AllowsPlayerMovement() bool { return false }
func (t *Transition) AllowsEnemySpawn() bool     { return false }

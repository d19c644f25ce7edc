package levelstate

import (
	"image/color"
)

const loadingText = "LOADING LEVEL..."

// LevelLoading loads the next level and immediately asks for Playing, both
// from Enter. It is not expected to see a Tick.
type LevelLoading struct {
	ctx Context
}

func NewLevelLoading(ctx Context) *LevelLoading {
	return &LevelLoading{ctx: ctx}
}

func (l *LevelLoading) Kind() Kind { return KindLevelLoading }

func (l *LevelLoading) Enter() {
	l.ctx.log().Infof("-> LEVEL_LOADING")
	l.ctx.Levels.LoadNextLevel()
	l.ctx.Levels.ChangeState(NewPlaying(l.ctx))
}

func (l *LevelLoading) Tick() {}

func (l *LevelLoading) Render(s Surface) {
	w, h := l.ctx.windowSize()
	s.FillRect(0, 0, w, h, color.Black)
	s.DrawText(loadingText, w/2-100, h/2, FontHeading, color.White)
}

func (l *LevelLoading) Exit() {
	l.ctx.log().Infof("LEVEL_LOADING -> leaving")
}

func (l *LevelLoading) AllowsPlayerMovement() bool { return false }
func (l *LevelLoading) AllowsEnemySpawn() bool     { return false }

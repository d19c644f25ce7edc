package levelstate

import (
	"fmt"
	"image/color"

	"github.com/milk9111/kongclimb/common"
)

type fakeLevels struct {
	index    int
	victory  bool
	calls    []string
	changes  []State
	stopped  int
	loaded   int
	animated int
}

func (f *fakeLevels) VerifyVictory() bool { return f.victory }

func (f *fakeLevels) ChangeState(next State) {
	f.calls = append(f.calls, "change:"+next.Kind().String())
	f.changes = append(f.changes, next)
}

func (f *fakeLevels) StopSpawners() {
	f.calls = append(f.calls, "stop")
	f.stopped++
}

func (f *fakeLevels) CurrentLevelIndex() int { return f.index }

func (f *fakeLevels) LoadNextLevel() {
	f.calls = append(f.calls, "load")
	f.loaded++
}

func (f *fakeLevels) StartVictoryAnimation() {
	f.calls = append(f.calls, "animate")
	f.animated++
}

func (f *fakeLevels) last() State {
	if len(f.changes) == 0 {
		return nil
	}
	return f.changes[len(f.changes)-1]
}

type fakePlayer struct {
	x, y    float64
	stopped int
}

func (p *fakePlayer) X() float64          { return p.x }
func (p *fakePlayer) Y() float64          { return p.y }
func (p *fakePlayer) StopMovement()       { p.stopped++ }
func (p *fakePlayer) ID() common.ObjectID { return common.ObjectPlayer }

type fakeAntagonist struct {
	x, y  float64
	ticks int
	grabs int
	angry int
}

func (a *fakeAntagonist) ID() common.ObjectID { return common.ObjectAntagonist }
func (a *fakeAntagonist) X() float64          { return a.x }
func (a *fakeAntagonist) Y() float64          { return a.y }
func (a *fakeAntagonist) SetY(y float64)      { a.y = y }
func (a *fakeAntagonist) Tick()               { a.ticks++ }
func (a *fakeAntagonist) PlayGrab()           { a.grabs++ }
func (a *fakeAntagonist) EnterAngryMode()     { a.angry++ }

type fakePrincess struct {
	x, y      float64
	ticks     int
	moving    bool
	targets   [][2]float64
	stopCalls int
}

func (p *fakePrincess) ID() common.ObjectID { return common.ObjectPrincess }
func (p *fakePrincess) X() float64          { return p.x }
func (p *fakePrincess) Y() float64          { return p.y }
func (p *fakePrincess) SetX(x float64)      { p.x = x }
func (p *fakePrincess) SetY(y float64)      { p.y = y }
func (p *fakePrincess) Tick()               { p.ticks++ }
func (p *fakePrincess) IsMoving() bool      { return p.moving }

func (p *fakePrincess) MoveToward(x, y float64) {
	p.moving = true
	p.targets = append(p.targets, [2]float64{x, y})
}

func (p *fakePrincess) StopMovement() {
	p.moving = false
	p.stopCalls++
}

type fakeScreens struct {
	changes []common.ScreenID
}

func (s *fakeScreens) ChangeScreen(id common.ScreenID) {
	s.changes = append(s.changes, id)
}

type fakeStatus struct {
	bonuses int
}

func (s *fakeStatus) ApplyTimeBonus() { s.bonuses++ }

type fakeGame struct {
	player  *fakePlayer
	objects []GameObject
	status  *fakeStatus
	screens *fakeScreens
}

func (g *fakeGame) Player() (Player, bool) {
	if g.player == nil {
		return nil, false
	}
	return g.player, true
}

func (g *fakeGame) Objects() []GameObject { return g.objects }

func (g *fakeGame) Status() (StatusService, bool) {
	if g.status == nil {
		return nil, false
	}
	return g.status, true
}

func (g *fakeGame) Screens() (ScreenManager, bool) {
	if g.screens == nil {
		return nil, false
	}
	return g.screens, true
}

func (g *fakeGame) WindowWidth() int  { return 800 }
func (g *fakeGame) WindowHeight() int { return 600 }

type logLine struct {
	level string
	msg   string
}

type recordingLogger struct {
	lines []logLine
}

func (l *recordingLogger) Debugf(format string, args ...any) {
	l.lines = append(l.lines, logLine{"debug", fmt.Sprintf(format, args...)})
}

func (l *recordingLogger) Infof(format string, args ...any) {
	l.lines = append(l.lines, logLine{"info", fmt.Sprintf(format, args...)})
}

func (l *recordingLogger) Errorf(format string, args ...any) {
	l.lines = append(l.lines, logLine{"error", fmt.Sprintf(format, args...)})
}

func (l *recordingLogger) count(level string) int {
	n := 0
	for _, line := range l.lines {
		if line.level == level {
			n++
		}
	}
	return n
}

type drawOp struct {
	kind       string
	x, y, w, h float64
	text       string
	font       Font
	clr        color.Color
}

type recordingSurface struct {
	ops []drawOp
}

func (s *recordingSurface) FillRect(x, y, w, h float64, clr color.Color) {
	s.ops = append(s.ops, drawOp{kind: "rect", x: x, y: y, w: w, h: h, clr: clr})
}

func (s *recordingSurface) FillCircle(cx, cy, r float64, clr color.Color) {
	s.ops = append(s.ops, drawOp{kind: "circle", x: cx, y: cy, w: r, clr: clr})
}

func (s *recordingSurface) DrawText(str string, x, y float64, font Font, clr color.Color) {
	s.ops = append(s.ops, drawOp{kind: "text", x: x, y: y, text: str, font: font, clr: clr})
}

func (s *recordingSurface) MeasureText(str string, font Font) float64 {
	return float64(len(str) * 10)
}

func (s *recordingSurface) ofKind(kind string) []drawOp {
	var out []drawOp
	for _, op := range s.ops {
		if op.kind == kind {
			out = append(out, op)
		}
	}
	return out
}

type fixture struct {
	levels     *fakeLevels
	game       *fakeGame
	log        *recordingLogger
	antagonist *fakeAntagonist
	princess   *fakePrincess
}

func newFixture(level int) *fixture {
	ant := &fakeAntagonist{x: 100, y: 50}
	pr := &fakePrincess{x: 140, y: 60}
	g := &fakeGame{
		player:  &fakePlayer{x: 300, y: 400},
		objects: []GameObject{ant, pr},
		status:  &fakeStatus{},
		screens: &fakeScreens{},
	}
	return &fixture{
		levels:     &fakeLevels{index: level},
		game:       g,
		log:        &recordingLogger{},
		antagonist: ant,
		princess:   pr,
	}
}

func (f *fixture) ctx() Context {
	return Context{Game: f.game, Levels: f.levels, Log: f.log}
}

func rgba(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

package levelstate

import (
	"reflect"
	"testing"

	"github.com/milk9111/kongclimb/common"
	"golang.org/x/image/colornames"
)

func TestVictoryKindFromLevel(t *testing.T) {
	cases := []struct {
		level    int
		kind     VictoryKind
		duration int
	}{
		{1, EscapePrincess, 240},
		{2, EscapePrincess, 240},
		{3, FinalDefeat, 180},
		{4, FinalDefeat, 180},
	}
	for _, c := range cases {
		f := newFixture(c.level)
		v := NewVictory(f.ctx())
		if v.VictoryKind() != c.kind {
			t.Fatalf("level %d: expected %s, got %s", c.level, c.kind, v.VictoryKind())
		}
		if v.Duration() != c.duration {
			t.Fatalf("level %d: expected duration %d, got %d", c.level, c.duration, v.Duration())
		}
		if v.Phase() != PhaseHeart || v.Ticks() != 0 {
			t.Fatalf("level %d: expected fresh victory, got phase=%s ticks=%d", c.level, v.Phase(), v.Ticks())
		}
	}
}

func TestVictoryEnter(t *testing.T) {
	f := newFixture(1)
	v := NewVictory(f.ctx())
	v.Enter()

	if want := []string{"stop", "animate"}; !reflect.DeepEqual(f.levels.calls, want) {
		t.Fatalf("expected calls %v, got %v", want, f.levels.calls)
	}
	if f.game.player.stopped != 1 {
		t.Fatalf("expected the player to be stopped once, got %d", f.game.player.stopped)
	}
	if v.antagonist == nil || v.princess == nil {
		t.Fatalf("expected both NPCs to be resolved")
	}
}

func phaseAt(t *testing.T, v *Victory, ticks int) []Phase {
	t.Helper()
	phases := make([]Phase, 0, ticks)
	for i := 0; i < ticks; i++ {
		v.Tick()
		phases = append(phases, v.Phase())
	}
	return phases
}

func TestVictoryEscapeChoreography(t *testing.T) {
	f := newFixture(2)
	v := NewVictory(f.ctx())
	v.Enter()

	phases := phaseAt(t, v, 240)

	expect := func(tick int, p Phase) {
		t.Helper()
		if phases[tick-1] != p {
			t.Fatalf("tick %d: expected phase %s, got %s", tick, p, phases[tick-1])
		}
	}
	expect(1, PhaseHeart)
	expect(29, PhaseHeart)
	expect(30, PhaseHeart)
	expect(89, PhaseHeart)
	expect(90, PhaseAction)
	expect(119, PhaseAction)
	expect(120, PhaseMovement)
	expect(179, PhaseMovement)
	expect(180, PhaseFinal)
	expect(240, PhaseFinal)

	for i := 1; i < len(phases); i++ {
		if phases[i] < phases[i-1] {
			t.Fatalf("phase went backwards at tick %d", i+1)
		}
	}

	if f.antagonist.grabs != 1 {
		t.Fatalf("expected one grab, got %d", f.antagonist.grabs)
	}
	if len(f.princess.targets) != 1 || f.princess.targets[0] != [2]float64{110, 55} {
		t.Fatalf("expected princess to head for (110,55), got %v", f.princess.targets)
	}
	// lifted one unit per tick on ticks 120..179
	if f.antagonist.y != -10 {
		t.Fatalf("expected antagonist y -10, got %v", f.antagonist.y)
	}
	if f.princess.stopCalls != 1 {
		t.Fatalf("expected the princess to be stopped once, got %d", f.princess.stopCalls)
	}
	if f.princess.x != 110 || f.princess.y != 54 {
		t.Fatalf("expected princess snapped to (110,54), got (%v,%v)", f.princess.x, f.princess.y)
	}
	if f.antagonist.ticks != 240 {
		t.Fatalf("expected antagonist ticked every frame, got %d", f.antagonist.ticks)
	}
	if f.princess.ticks != 120 {
		t.Fatalf("expected princess ticked from the movement phase on, got %d", f.princess.ticks)
	}
}

func TestVictoryEscapeFinalizesToTransition(t *testing.T) {
	f := newFixture(2)
	v := NewVictory(f.ctx())
	v.Enter()

	for i := 0; i < 239; i++ {
		v.Tick()
	}
	if len(f.levels.changes) != 0 {
		t.Fatalf("expected no transition before tick 240, got %v", f.levels.calls)
	}

	v.Tick()
	if len(f.levels.changes) != 1 {
		t.Fatalf("expected one transition at tick 240, got %d", len(f.levels.changes))
	}
	tr, ok := f.levels.last().(*Transition)
	if !ok {
		t.Fatalf("expected *Transition, got %T", f.levels.last())
	}
	if tr.Elapsed() != 0 || tr.Alpha() != 0 {
		t.Fatalf("expected a fresh transition")
	}

	for i := 0; i < 30; i++ {
		v.Tick()
	}
	if len(f.levels.changes) != 1 {
		t.Fatalf("expected finalization at most once, got %d changes", len(f.levels.changes))
	}
	if len(f.game.screens.changes) != 0 {
		t.Fatalf("escape must not touch the screen manager")
	}
}

func TestVictoryFinalDefeat(t *testing.T) {
	f := newFixture(3)
	v := NewVictory(f.ctx())
	v.Enter()

	phases := phaseAt(t, v, 180)
	checks := map[int]Phase{
		19:  PhaseHeart,
		20:  PhaseHeart,
		59:  PhaseHeart,
		60:  PhaseAction,
		99:  PhaseAction,
		100: PhaseMovement,
		139: PhaseMovement,
		140: PhaseFinal,
		180: PhaseFinal,
	}
	for tick, want := range checks {
		if phases[tick-1] != want {
			t.Fatalf("tick %d: expected %s, got %s", tick, want, phases[tick-1])
		}
	}

	if f.antagonist.angry != 1 || f.antagonist.grabs != 0 {
		t.Fatalf("expected angry once and no grab, got angry=%d grabs=%d", f.antagonist.angry, f.antagonist.grabs)
	}
	if len(f.princess.targets) != 1 || f.princess.targets[0] != [2]float64{320, 400} {
		t.Fatalf("expected princess to walk to (320,400), got %v", f.princess.targets)
	}
	if f.antagonist.y != 50 {
		t.Fatalf("final defeat must not lift the antagonist, y=%v", f.antagonist.y)
	}
	if f.princess.ticks != 80 {
		t.Fatalf("expected 80 princess ticks, got %d", f.princess.ticks)
	}

	if want := []common.ScreenID{common.ScreenVictory}; !reflect.DeepEqual(f.game.screens.changes, want) {
		t.Fatalf("expected screen changes %v, got %v", want, f.game.screens.changes)
	}
	if len(f.levels.changes) != 0 {
		t.Fatalf("final defeat must not create a level state, got %v", f.levels.calls)
	}

	for i := 0; i < 10; i++ {
		v.Tick()
	}
	if len(f.game.screens.changes) != 1 {
		t.Fatalf("expected a single screen change, got %d", len(f.game.screens.changes))
	}
}

func TestVictoryFinalDefeatWithoutScreens(t *testing.T) {
	f := newFixture(3)
	f.game.screens = nil
	v := NewVictory(f.ctx())
	v.Enter()
	for i := 0; i < 200; i++ {
		v.Tick()
	}
	if f.log.count("error") != 1 {
		t.Fatalf("expected one error report, got %d", f.log.count("error"))
	}
	if len(f.levels.changes) != 0 {
		t.Fatalf("expected no level state change, got %v", f.levels.calls)
	}
}

func TestVictoryWithoutEntities(t *testing.T) {
	for _, level := range []int{1, 3} {
		f := newFixture(level)
		f.game.objects = nil
		f.game.player = nil
		v := NewVictory(f.ctx())
		v.Enter()
		for i := 0; i < 240; i++ {
			v.Tick()
		}
		if v.Phase() != PhaseFinal {
			t.Fatalf("level %d: expected the cut-scene to run to the end, got %s", level, v.Phase())
		}
	}
}

func TestVictoryEscapeWithoutPrincess(t *testing.T) {
	f := newFixture(1)
	f.game.objects = []GameObject{f.antagonist}
	v := NewVictory(f.ctx())
	v.Enter()
	for i := 0; i < 130; i++ {
		v.Tick()
	}
	if f.antagonist.grabs != 0 {
		t.Fatalf("grab needs both NPCs, got %d grabs", f.antagonist.grabs)
	}
	// still lifted during movement: ticks 120..130
	if f.antagonist.y != 39 {
		t.Fatalf("expected antagonist y 39, got %v", f.antagonist.y)
	}
}

func TestVictoryMessages(t *testing.T) {
	cases := []struct {
		level int
		phase Phase
		text  string
	}{
		{1, PhaseHeart, "You reached the princess!"},
		{1, PhaseAction, "Kong grabs her!"},
		{1, PhaseMovement, "He is carrying her off!"},
		{1, PhaseFinal, "She escapes again!"},
		{3, PhaseHeart, "You reached the princess!"},
		{3, PhaseAction, "Kong has been defeated!"},
		{3, PhaseMovement, "The princess is free!"},
		{3, PhaseFinal, "TOTAL VICTORY!"},
	}
	colors := map[string]any{
		"1/heart":    colornames.Yellow,
		"1/action":   colornames.Red,
		"1/movement": colornames.Orange,
		"1/final":    colornames.Yellow,
		"3/heart":    colornames.Hotpink,
		"3/action":   colornames.Gold,
		"3/movement": colornames.Springgreen,
		"3/final":    colornames.Gold,
	}

	for _, c := range cases {
		f := newFixture(c.level)
		v := NewVictory(f.ctx())
		v.phase = c.phase
		text, clr := v.Message()
		if text != c.text {
			t.Fatalf("level %d %s: expected %q, got %q", c.level, c.phase, c.text, text)
		}
		key := map[int]string{1: "1/", 3: "3/"}[c.level] + c.phase.String()
		if clr != colors[key] {
			t.Fatalf("%s: unexpected color %v", key, clr)
		}
	}
}

func TestVictoryRender(t *testing.T) {
	f := newFixture(1)
	v := NewVictory(f.ctx())
	s := &recordingSurface{}
	v.Render(s)

	rects := s.ofKind("rect")
	if len(rects) != 1 || rects[0].w != 800 || rects[0].h != 600 {
		t.Fatalf("expected one full-screen overlay, got %+v", rects)
	}
	if rgba(rects[0].clr).A != 150 {
		t.Fatalf("expected overlay alpha 150, got %d", rgba(rects[0].clr).A)
	}

	texts := s.ofKind("text")
	if len(texts) != 2 {
		t.Fatalf("expected message and shadow, got %d texts", len(texts))
	}
	msg, shadow := texts[0], texts[1]
	wantX := 400 - float64(len(msg.text)*10)/2
	if msg.x != wantX || msg.y != 300 {
		t.Fatalf("expected message centered at (%v,300), got (%v,%v)", wantX, msg.x, msg.y)
	}
	if shadow.x != msg.x+2 || shadow.y != msg.y+2 || shadow.text != msg.text {
		t.Fatalf("expected shadow offset by 2, got %+v", shadow)
	}
	if rgba(shadow.clr) != rgba(colornames.Black) {
		t.Fatalf("expected black shadow, got %v", shadow.clr)
	}
	if len(s.ofKind("circle")) != 0 {
		t.Fatalf("stars are only drawn in the final defeat finale")
	}
}

func TestVictoryRenderStarsAndPurity(t *testing.T) {
	f := newFixture(3)
	v := NewVictory(f.ctx())
	v.Enter()
	for i := 0; i < 150; i++ {
		v.Tick()
	}
	ticks, phase := v.Ticks(), v.Phase()

	a := &recordingSurface{}
	b := &recordingSurface{}
	v.Render(a)
	v.Render(b)

	if v.Ticks() != ticks || v.Phase() != phase {
		t.Fatalf("render must not mutate the cut-scene")
	}
	if !reflect.DeepEqual(a.ops, b.ops) {
		t.Fatalf("rendering the same tick twice must be identical")
	}

	visible := 0
	for _, st := range StarField(ticks, 800, 600) {
		if st.Visible {
			visible++
		}
	}
	if got := len(a.ofKind("circle")); got != visible || visible == 0 {
		t.Fatalf("expected %d stars, got %d", visible, got)
	}
}

func TestStarField(t *testing.T) {
	first := StarField(7, 800, 600)
	second := StarField(7, 800, 600)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("star field must be reproducible for the same tick")
	}
	if len(first) != 30 {
		t.Fatalf("expected 30 stars, got %d", len(first))
	}

	for _, ticks := range []int{0, 5, 10, 19, 100} {
		stars := StarField(ticks, 800, 600)
		for i, st := range stars {
			want := (ticks+i*5)%20 < 10
			if st.Visible != want {
				t.Fatalf("ticks %d star %d: visible=%v want %v", ticks, i, st.Visible, want)
			}
			if st.Visible && (st.X < 0 || st.X >= 800 || st.Y < 0 || st.Y >= 600) {
				t.Fatalf("ticks %d star %d out of bounds: %+v", ticks, i, st)
			}
		}
	}

	// half of every 20 tick period is lit for each star
	if n := countVisible(StarField(0, 800, 600)); n != 15 {
		t.Fatalf("expected 15 lit stars at tick 0, got %d", n)
	}
}

func countVisible(stars []Star) int {
	n := 0
	for _, st := range stars {
		if st.Visible {
			n++
		}
	}
	return n
}

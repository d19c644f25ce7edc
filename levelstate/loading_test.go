package levelstate

import (
	"reflect"
	"testing"
)

func TestLevelLoadingEnter(t *testing.T) {
	f := newFixture(1)
	l := NewLevelLoading(f.ctx())
	l.Enter()

	if want := []string{"load", "change:PLAYING"}; !reflect.DeepEqual(f.levels.calls, want) {
		t.Fatalf("expected calls %v, got %v", want, f.levels.calls)
	}
	if _, ok := f.levels.last().(*Playing); !ok {
		t.Fatalf("expected *Playing, got %T", f.levels.last())
	}

	l.Tick()
	if len(f.levels.calls) != 2 {
		t.Fatalf("tick must be a no-op, got %v", f.levels.calls)
	}
}

func TestLevelLoadingRender(t *testing.T) {
	f := newFixture(1)
	l := NewLevelLoading(f.ctx())
	s := &recordingSurface{}
	l.Render(s)

	if len(s.ops) != 2 {
		t.Fatalf("expected background and text, got %+v", s.ops)
	}
	bg, txt := s.ops[0], s.ops[1]
	if bg.kind != "rect" || bg.w != 800 || bg.h != 600 || rgba(bg.clr).A != 255 {
		t.Fatalf("unexpected background %+v", bg)
	}
	if txt.kind != "text" || txt.text != "LOADING LEVEL..." || txt.font != FontHeading {
		t.Fatalf("unexpected text %+v", txt)
	}
	if txt.x != 300 || txt.y != 300 {
		t.Fatalf("expected text at (300,300), got (%v,%v)", txt.x, txt.y)
	}
}

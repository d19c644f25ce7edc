package entity

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/kongclimb/common"
	"github.com/milk9111/kongclimb/levelstate"
	"github.com/milk9111/kongclimb/prefabs"
	"golang.org/x/image/colornames"
)

// Antagonist events understood by the behaviour script.
const (
	EventGrab  = "grab"
	EventAngry = "angry"
	// EventThrow is emitted by the script when a barrel should be thrown.
	EventThrow = "throw"
)

type Antagonist struct {
	pos  cp.Vector
	w, h float64
	spec prefabs.AntagonistSpec

	brain    *Brain
	anim     string
	inbox    []string
	outbox   []string
	throwing bool
	shake    int
	ticks    int
}

// NewAntagonist builds the antagonist at pos. A script that fails to load is
// logged and the antagonist falls back to reacting to events directly.
func NewAntagonist(pos cp.Vector, spec prefabs.AntagonistSpec) *Antagonist {
	a := &Antagonist{
		pos:      pos,
		w:        spec.Collider.Width,
		h:        spec.Collider.Height,
		spec:     spec,
		anim:     "idle",
		throwing: true,
	}
	if spec.Script != "" {
		brain, err := NewBrain(spec.Script)
		if err != nil {
			log.Printf("[antagonist] %v", err)
		} else {
			a.brain = brain
		}
	}
	return a
}

func (a *Antagonist) ID() common.ObjectID { return common.ObjectAntagonist }
func (a *Antagonist) X() float64          { return a.pos.X }
func (a *Antagonist) Y() float64          { return a.pos.Y }
func (a *Antagonist) SetY(y float64)      { a.pos.Y = y }
func (a *Antagonist) Anim() string        { return a.anim }

func (a *Antagonist) Bounds() cp.BB {
	return cp.BB{L: a.pos.X, B: a.pos.Y, R: a.pos.X + a.w, T: a.pos.Y + a.h}
}

// State is the behaviour script state, or the animation without a script.
func (a *Antagonist) State() string {
	if a.brain == nil {
		return a.anim
	}
	return a.brain.State()
}

func (a *Antagonist) Tick() {
	a.ticks++
	if a.shake > 0 {
		a.shake--
	}

	events := a.inbox
	a.inbox = nil

	if a.brain == nil {
		for _, ev := range events {
			if ev == EventGrab || ev == EventAngry {
				a.anim = ev
			}
		}
		return
	}
	if err := a.brain.Update(a, events); err != nil {
		log.Printf("[antagonist] %v", err)
	}
}

func (a *Antagonist) PlayGrab() {
	a.throwing = false
	a.inbox = append(a.inbox, EventGrab)
}

func (a *Antagonist) EnterAngryMode() {
	a.throwing = false
	a.inbox = append(a.inbox, EventAngry)
}

// DrainEmitted returns and clears the events the script emitted.
func (a *Antagonist) DrainEmitted() []string {
	out := a.outbox
	a.outbox = nil
	return out
}

// ThrowOrigin is where thrown barrels appear.
func (a *Antagonist) ThrowOrigin() cp.Vector {
	return cp.Vector{X: a.pos.X + a.w, Y: a.pos.Y + a.h/2}
}

func (a *Antagonist) SetAnim(name string) { a.anim = name }
func (a *Antagonist) Emit(event string)   { a.outbox = append(a.outbox, event) }
func (a *Antagonist) CanThrow() bool      { return a.throwing }
func (a *Antagonist) Shake(frames int)    { a.shake = max(a.shake, frames) }

func (a *Antagonist) ThrowInterval() int {
	if a.spec.ThrowInterval <= 0 {
		return 2 * common.TicksPerSecond
	}
	return a.spec.ThrowInterval
}

func (a *Antagonist) Draw(s levelstate.Surface) {
	x := a.pos.X
	if a.shake > 0 {
		x += float64(a.shake%2*4 - 2)
	}

	clr := prefabs.ColorOr(a.spec.Color, colornames.Saddlebrown)
	if a.anim == EventAngry {
		clr = prefabs.ColorOr(a.spec.AngryColor, colornames.Orangered)
	}
	s.FillRect(x, a.pos.Y, a.w, a.h, clr)

	// face
	s.FillRect(x+a.w*0.25, a.pos.Y+a.h*0.2, a.w*0.5, a.h*0.35, colornames.Burlywood)
	s.FillRect(x+a.w*0.33, a.pos.Y+a.h*0.28, 4, 4, colornames.Black)
	s.FillRect(x+a.w*0.6, a.pos.Y+a.h*0.28, 4, 4, colornames.Black)

	switch a.anim {
	case "throw":
		s.FillRect(x+a.w-6, a.pos.Y-8, 10, 14, clr)
	case EventGrab:
		s.FillRect(x+a.w, a.pos.Y+a.h*0.3, 12, 8, clr)
	}
}

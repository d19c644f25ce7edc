// Package entity holds the live objects of a level: the player, the
// antagonist, the princess and the barrels, plus the one-way platform
// geometry they move on.
package entity

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/kongclimb/common"
	"github.com/milk9111/kongclimb/levelstate"
)

// Object is anything the Handler ticks and draws.
type Object interface {
	ID() common.ObjectID
	Tick()
	Bounds() cp.BB
	Draw(s levelstate.Surface)
}

// World is the static geometry of a level. Platforms are one-way: bodies pass
// through from below and land on the top edge. BB.B is the top edge.
type World struct {
	Width     float64
	Height    float64
	Platforms []cp.BB
}

// FloorY is the top edge of the lowest platform, or the world height when
// there are none.
func (w *World) FloorY() float64 {
	floor := -math.MaxFloat64
	for _, p := range w.Platforms {
		floor = math.Max(floor, p.B)
	}
	if floor == -math.MaxFloat64 {
		return w.Height
	}
	return floor
}

// land finds the highest platform crossed by a body falling from prev to next.
func (w *World) land(prev, next cp.BB) (float64, bool) {
	best, found := math.MaxFloat64, false
	for _, p := range w.Platforms {
		if next.R <= p.L || next.L >= p.R {
			continue
		}
		if prev.T <= p.B && next.T >= p.B && p.B < best {
			best, found = p.B, true
		}
	}
	return best, found
}

// body is a kinematic axis aligned box. pos is the top-left corner.
type body struct {
	pos      cp.Vector
	vel      cp.Vector
	w, h     float64
	grounded bool
}

func (b *body) bounds() cp.BB {
	return cp.BB{L: b.pos.X, B: b.pos.Y, R: b.pos.X + b.w, T: b.pos.Y + b.h}
}

func (b *body) center() cp.Vector {
	return cp.Vector{X: b.pos.X + b.w/2, Y: b.pos.Y + b.h/2}
}

// step integrates one tick and reports whether a side wall was hit.
func (b *body) step(w *World, gravity, maxFall float64) bool {
	b.vel.Y = math.Min(b.vel.Y+gravity, maxFall)
	prev := b.bounds()
	b.pos = b.pos.Add(b.vel)

	hitWall := false
	if w == nil {
		b.grounded = false
		return false
	}
	if b.pos.X < 0 {
		b.pos.X, hitWall = 0, true
	} else if b.pos.X+b.w > w.Width {
		b.pos.X, hitWall = w.Width-b.w, true
	}

	b.grounded = false
	if b.vel.Y >= 0 {
		if top, ok := w.land(prev, b.bounds()); ok {
			b.pos.Y = top - b.h
			b.vel.Y = 0
			b.grounded = true
		}
	}
	return hitWall
}

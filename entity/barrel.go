package entity

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/kongclimb/common"
	"github.com/milk9111/kongclimb/levelstate"
	"github.com/milk9111/kongclimb/prefabs"
	"golang.org/x/image/colornames"
)

// Barrel rolls along platforms, turns around each time it drops onto a lower
// one and leaves play when it reaches a wall on the lowest platform.
type Barrel struct {
	body
	spec   prefabs.BarrelSpec
	world  *World
	dir    float64
	landed bool
	dead   bool
	ticks  int
}

func NewBarrel(pos cp.Vector, dir float64, spec prefabs.BarrelSpec, world *World) *Barrel {
	if dir >= 0 {
		dir = 1
	} else {
		dir = -1
	}
	size := spec.Radius * 2
	return &Barrel{
		body:  body{pos: pos, w: size, h: size},
		spec:  spec,
		world: world,
		dir:   dir,
	}
}

func (b *Barrel) ID() common.ObjectID { return common.ObjectBarrel }
func (b *Barrel) X() float64          { return b.pos.X }
func (b *Barrel) Y() float64          { return b.pos.Y }
func (b *Barrel) Bounds() cp.BB       { return b.bounds() }
func (b *Barrel) Dir() float64        { return b.dir }
func (b *Barrel) Dead() bool          { return b.dead }
func (b *Barrel) Kill()               { b.dead = true }

func (b *Barrel) Tick() {
	if b.dead {
		return
	}
	b.ticks++

	wasGrounded := b.grounded
	b.vel.X = b.dir * b.spec.Speed
	hitWall := b.step(b.world, b.spec.Gravity, b.spec.MaxFall)

	if b.grounded && !wasGrounded {
		if b.landed {
			b.dir = -b.dir
		}
		b.landed = true
	}

	if b.world == nil {
		return
	}
	if b.pos.Y > b.world.Height {
		b.dead = true
		return
	}
	if hitWall {
		if b.grounded && b.pos.Y+b.h >= b.world.FloorY() {
			b.dead = true
			return
		}
		b.dir = -b.dir
	}
}

func (b *Barrel) Draw(s levelstate.Surface) {
	c := b.center()
	s.FillCircle(c.X, c.Y, b.spec.Radius, prefabs.ColorOr(b.spec.Color, colornames.Sienna))

	// a rolling hoop mark
	offset := float64((b.ticks/6)%3-1) * b.spec.Radius * 0.4
	s.FillRect(c.X+offset*b.dir-1, c.Y-b.spec.Radius, 2, b.spec.Radius*2, colornames.Saddlebrown)
}

package entity

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/kongclimb/common"
	"github.com/milk9111/kongclimb/levelstate"
	"github.com/milk9111/kongclimb/prefabs"
	"golang.org/x/image/colornames"
)

type Princess struct {
	pos    cp.Vector
	w, h   float64
	spec   prefabs.PrincessSpec
	target cp.Vector
	moving bool
	ticks  int
}

func NewPrincess(pos cp.Vector, spec prefabs.PrincessSpec) *Princess {
	return &Princess{pos: pos, w: spec.Collider.Width, h: spec.Collider.Height, spec: spec}
}

func (p *Princess) ID() common.ObjectID { return common.ObjectPrincess }
func (p *Princess) X() float64          { return p.pos.X }
func (p *Princess) Y() float64          { return p.pos.Y }
func (p *Princess) SetX(x float64)      { p.pos.X = x }
func (p *Princess) SetY(y float64)      { p.pos.Y = y }
func (p *Princess) IsMoving() bool      { return p.moving }
func (p *Princess) Target() cp.Vector   { return p.target }

func (p *Princess) Bounds() cp.BB {
	return cp.BB{L: p.pos.X, B: p.pos.Y, R: p.pos.X + p.w, T: p.pos.Y + p.h}
}

func (p *Princess) MoveToward(x, y float64) {
	p.target = cp.Vector{X: x, Y: y}
	p.moving = true
}

func (p *Princess) StopMovement() {
	p.moving = false
}

// Tick walks toward the target at the prefab speed and stops on arrival.
func (p *Princess) Tick() {
	p.ticks++
	if !p.moving {
		return
	}

	speed := p.spec.Speed
	if speed <= 0 {
		speed = 1
	}
	d := p.target.Sub(p.pos)
	dist := d.Length()
	if dist <= speed {
		p.pos = p.target
		p.moving = false
		return
	}
	p.pos = p.pos.Add(d.Mult(speed / dist))
}

func (p *Princess) Draw(s levelstate.Surface) {
	clr := prefabs.ColorOr(p.spec.Color, colornames.Hotpink)

	// dress, head, hair
	s.FillRect(p.pos.X, p.pos.Y+p.h*0.35, p.w, p.h*0.65, clr)
	s.FillCircle(p.pos.X+p.w/2, p.pos.Y+p.h*0.2, p.w*0.35, colornames.Peachpuff)
	s.FillRect(p.pos.X+p.w*0.15, p.pos.Y, p.w*0.7, p.h*0.1, colornames.Gold)

	// waving while waiting to be rescued
	if !p.moving && (p.ticks/20)%2 == 0 {
		s.FillRect(p.pos.X+p.w, p.pos.Y+p.h*0.3, 6, 3, colornames.Peachpuff)
	}
}

package entity

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/kongclimb/common"
	"github.com/milk9111/kongclimb/levelstate"
	"github.com/milk9111/kongclimb/prefabs"
	"golang.org/x/image/colornames"
)

type Player struct {
	body
	spec       prefabs.PlayerSpec
	input      *Input
	world      *World
	facingLeft bool
}

func NewPlayer(pos cp.Vector, spec prefabs.PlayerSpec, input *Input, world *World) *Player {
	return &Player{
		body:  body{pos: pos, w: spec.Collider.Width, h: spec.Collider.Height},
		spec:  spec,
		input: input,
		world: world,
	}
}

func (p *Player) ID() common.ObjectID { return common.ObjectPlayer }
func (p *Player) X() float64          { return p.pos.X }
func (p *Player) Y() float64          { return p.pos.Y }
func (p *Player) Position() cp.Vector { return p.pos }
func (p *Player) Velocity() cp.Vector { return p.vel }
func (p *Player) Grounded() bool      { return p.grounded }
func (p *Player) Bounds() cp.BB       { return p.bounds() }

func (p *Player) Tick() {
	moveX, jump := 0.0, false
	if p.input != nil && !p.input.Frozen {
		moveX, jump = p.input.MoveX, p.input.JumpPressed
	}

	p.vel.X = moveX * p.spec.MoveSpeed
	if moveX < 0 {
		p.facingLeft = true
	} else if moveX > 0 {
		p.facingLeft = false
	}
	if jump && p.grounded {
		p.vel.Y = -p.spec.JumpSpeed
	}

	p.step(p.world, p.spec.Gravity, p.spec.MaxFall)
}

func (p *Player) StopMovement() {
	p.vel = cp.Vector{}
}

// Respawn puts the player back at pos at rest.
func (p *Player) Respawn(pos cp.Vector) {
	p.pos = pos
	p.vel = cp.Vector{}
	p.grounded = false
}

func (p *Player) Draw(s levelstate.Surface) {
	clr := prefabs.ColorOr(p.spec.Color, colornames.Red)
	s.FillRect(p.pos.X, p.pos.Y, p.w, p.h, clr)

	// cap and eye
	s.FillRect(p.pos.X, p.pos.Y, p.w, p.h/4, colornames.Darkred)
	eyeX := p.pos.X + p.w*0.65
	if p.facingLeft {
		eyeX = p.pos.X + p.w*0.2
	}
	s.FillRect(eyeX, p.pos.Y+p.h/3, 3, 3, colornames.White)
}

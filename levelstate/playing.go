package levelstate

// Playing is normal gameplay. It hands off to Victory the first frame the
// level manager reports the victory condition.
type Playing struct {
	ctx Context
}

func NewPlaying(ctx Context) *Playing {
	return &Playing{ctx: ctx}
}

func (p *Playing) Kind() Kind { return KindPlaying }

func (p *Playing) Enter() {
	p.ctx.log().Infof("-> PLAYING")
}

func (p *Playing) Tick() {
	if p.ctx.Levels.VerifyVictory() {
		p.ctx.Levels.ChangeState(NewVictory(p.ctx))
	}
}

func (p *Playing) Render(Surface) {}

func (p *Playing) Exit() {
	p.ctx.log().Infof("PLAYING -> leaving")
}

func (p *Playing) AllowsPlayerMovement() bool { return true }
func (p *Playing) AllowsEnemySpawn() bool     { return true }

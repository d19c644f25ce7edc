package levelstate

import (
	"github.com/milk9111/kongclimb/common"
)

// Phase is an ordered step of the victory cut-scene.
type Phase int

const (
	PhaseHeart Phase = iota
	PhaseAction
	PhaseMovement
	PhaseFinal
)

func (p Phase) String() string {
	switch p {
	case PhaseHeart:
		return "heart"
	case PhaseAction:
		return "action"
	case PhaseMovement:
		return "movement"
	case PhaseFinal:
		return "final"
	default:
		return "unknown"
	}
}

// VictoryKind selects which cut-scene a Victory plays.
type VictoryKind int

const (
	// EscapePrincess: the antagonist grabs the princess and climbs away.
	EscapePrincess VictoryKind = iota
	// FinalDefeat: the antagonist is beaten and the princess walks free.
	FinalDefeat
)

func (k VictoryKind) String() string {
	if k == FinalDefeat {
		return "FINAL_DEFEAT"
	}
	return "ESCAPE_PRINCESS"
}

const (
	escapeDuration      = 4 * common.TicksPerSecond
	finalDefeatDuration = 3 * common.TicksPerSecond

	// carry offset of the princess relative to the antagonist
	carryOffsetX = 10.0
	carryOffsetY = 5.0

	// where the freed princess walks to, relative to the player
	freedOffsetX = 20.0
)

// phaseKey is a tick on which the cut-scene enters a phase.
type phaseKey struct {
	tick  int
	phase Phase
}

var (
	escapeKeys = []phaseKey{
		{30, PhaseHeart},
		{90, PhaseAction},
		{120, PhaseMovement},
		{180, PhaseFinal},
	}
	finalDefeatKeys = []phaseKey{
		{20, PhaseHeart},
		{60, PhaseAction},
		{100, PhaseMovement},
		{140, PhaseFinal},
	}
)

// Victory freezes the level and plays a fixed length cut-scene with the
// antagonist and the princess, then either fades to the next level or hands
// the game over to the global victory screen.
type Victory struct {
	ctx Context

	ticks     int
	phase     Phase
	kind      VictoryKind
	finalized bool

	antagonist Antagonist
	princess   Princess
}

func NewVictory(ctx Context) *Victory {
	level := ctx.Levels.CurrentLevelIndex()
	kind := EscapePrincess
	if level >= finalLevelIndex {
		kind = FinalDefeat
	}
	ctx.log().Infof("victory kind %s (level %d)", kind, level)

	return &Victory{
		ctx:   ctx,
		phase: PhaseHeart,
		kind:  kind,
	}
}

func (v *Victory) Kind() Kind { return KindVictory }

func (v *Victory) VictoryKind() VictoryKind { return v.kind }
func (v *Victory) Phase() Phase             { return v.phase }
func (v *Victory) Ticks() int               { return v.ticks }

// Duration is the number of ticks before the cut-scene finalizes.
func (v *Victory) Duration() int {
	if v.kind == FinalDefeat {
		return finalDefeatDuration
	}
	return escapeDuration
}

func (v *Victory) Enter() {
	v.ctx.log().Infof("-> VICTORY (%s)", v.kind)

	v.ctx.Levels.StopSpawners()

	if p, ok := v.ctx.player(); ok {
		p.StopMovement()
	}

	v.resolveEntities()
	v.ctx.Levels.StartVictoryAnimation()
}

// resolveEntities looks the two NPCs up by tag. Either may be missing.
func (v *Victory) resolveEntities() {
	if v.ctx.Game == nil {
		return
	}
	for _, obj := range v.ctx.Game.Objects() {
		if obj == nil {
			continue
		}
		switch obj.ID() {
		case common.ObjectAntagonist:
			if a, ok := obj.(Antagonist); ok {
				v.antagonist = a
			}
		case common.ObjectPrincess:
			if p, ok := obj.(Princess); ok {
				v.princess = p
			}
		}
	}
	if v.antagonist == nil {
		v.ctx.log().Debugf("victory: no antagonist in level")
	}
	if v.princess == nil {
		v.ctx.log().Debugf("victory: no princess in level")
	}
}

func (v *Victory) Tick() {
	v.ticks++

	if v.antagonist != nil {
		v.antagonist.Tick()
	}
	if v.princess != nil && v.phase >= PhaseMovement {
		v.princess.Tick()
	}

	if v.kind == FinalDefeat {
		v.runFinalDefeat()
	} else {
		v.runEscape()
	}

	if v.ticks >= v.Duration() {
		v.finalize()
	}
}

func (v *Victory) keyedPhase(keys []phaseKey) (Phase, bool) {
	for _, k := range keys {
		if k.tick == v.ticks {
			return k.phase, true
		}
	}
	return v.phase, false
}

func (v *Victory) runEscape() {
	if next, ok := v.keyedPhase(escapeKeys); ok {
		v.phase = next
		if next == PhaseAction && v.antagonist != nil && v.princess != nil {
			v.antagonist.PlayGrab()
			v.princess.MoveToward(v.antagonist.X()+carryOffsetX, v.antagonist.Y()+carryOffsetY)
		}
	}

	if v.phase != PhaseMovement || v.antagonist == nil {
		return
	}
	v.antagonist.SetY(v.antagonist.Y() - 1)
	if v.princess != nil && v.princess.IsMoving() {
		v.princess.StopMovement()
		v.princess.SetX(v.antagonist.X() + carryOffsetX)
		v.princess.SetY(v.antagonist.Y() + carryOffsetY)
	}
}

func (v *Victory) runFinalDefeat() {
	next, ok := v.keyedPhase(finalDefeatKeys)
	if !ok {
		return
	}
	v.phase = next

	switch next {
	case PhaseAction:
		if v.antagonist != nil {
			v.antagonist.EnterAngryMode()
		}
	case PhaseMovement:
		if v.princess == nil {
			return
		}
		if p, ok := v.ctx.player(); ok {
			v.princess.MoveToward(p.X()+freedOffsetX, p.Y())
		}
	}
}

func (v *Victory) finalize() {
	if v.finalized {
		return
	}
	v.finalized = true

	level := v.ctx.Levels.CurrentLevelIndex()
	v.ctx.log().Infof("victory finished (level %d)", level)

	if level >= finalLevelIndex {
		v.ctx.log().Infof("victory -> victory screen (game complete)")
		if sm, ok := v.ctx.screens(); ok {
			sm.ChangeScreen(common.ScreenVictory)
		} else {
			v.ctx.log().Errorf("victory: no screen manager to show the victory screen")
		}
		return
	}

	v.ctx.log().Infof("victory -> next level")
	v.ctx.Levels.ChangeState(NewTransition(v.ctx))
}

func (v *Victory) Exit() {
	v.ctx.log().Infof("VICTORY -> leaving")
}

func (v *Victory) AllowsPlayerMovement() bool { return false }
func (v *Victory) AllowsEnemySpawn() bool     { return false }

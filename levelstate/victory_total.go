package levelstate

import (
	"fmt"
	"image/color"

	"github.com/milk9111/kongclimb/common"
)

const (
	completeWaitTicks = 2 * common.TicksPerSecond
	completeText      = "GAME COMPLETE!"
)

// VictoryTotal holds the finished game on screen for a moment before routing
// to the global victory screen.
type VictoryTotal struct {
	ctx       Context
	wait      int
	completed bool
	reported  bool
}

func NewVictoryTotal(ctx Context) *VictoryTotal {
	return &VictoryTotal{ctx: ctx}
}

func (v *VictoryTotal) Kind() Kind { return KindVictoryTotal }

// Waited is the number of ticks spent in this state.
func (v *VictoryTotal) Waited() int { return v.wait }

// Completed reports whether the victory screen has been requested.
func (v *VictoryTotal) Completed() bool { return v.completed }

func (v *VictoryTotal) Enter() {
	v.ctx.log().Infof("-> VICTORY_TOTAL")

	v.ctx.Levels.StopSpawners()

	if st, ok := v.ctx.status(); ok {
		st.ApplyTimeBonus()
	}

	v.ctx.log().Infof("victory total: waiting %d seconds", completeWaitTicks/common.TicksPerSecond)
}

func (v *VictoryTotal) Tick() {
	v.wait++

	if v.wait%common.TicksPerSecond == 0 {
		v.ctx.log().Debugf("victory total: tick %d / %d", v.wait, completeWaitTicks)
	}

	if v.wait < completeWaitTicks || v.completed || v.reported {
		return
	}

	sm, ok := v.ctx.screens()
	if !ok {
		// parked: stays here until something else replaces the state
		v.reported = true
		v.ctx.log().Errorf("victory total: screen manager is missing, cannot show the victory screen")
		return
	}

	v.completed = true
	v.ctx.log().Infof("victory total -> victory screen")
	sm.ChangeScreen(common.ScreenVictory)
}

func (v *VictoryTotal) Render(s Surface) {
	w, h := v.ctx.windowSize()
	s.FillRect(0, 0, w, h, overlayColor)

	tw := s.MeasureText(completeText, FontTitle)
	s.DrawText(completeText, (w-tw)/2, h/2, FontTitle, color.NRGBA{R: 255, G: 255, A: 255})

	debug := fmt.Sprintf("Waiting: %ds / %ds", v.wait/common.TicksPerSecond, completeWaitTicks/common.TicksPerSecond)
	s.DrawText(debug, 10, 20, FontSmall, color.White)
}

func (v *VictoryTotal) Exit() {
	v.ctx.log().Infof("VICTORY_TOTAL -> leaving")
}

func (v *VictoryTotal) AllowsPlayerMovement() bool { return false }
func (v *VictoryTotal) AllowsEnemySpawn() bool     { return false }

// Package levelstate drives the macro lifecycle of a single level: active
// play, the scripted victory cut-scene, the fade out, loading the next level
// and the final game completed wait.
//
// The owning level manager holds exactly one State, forwards Tick and Render
// to it each frame and performs the swap whenever a state asks for one through
// LevelManager.ChangeState.
package levelstate

import (
	"github.com/milk9111/kongclimb/common"
)

// Kind identifies one of the closed set of level states.
type Kind int

const (
	KindPlaying Kind = iota
	KindVictory
	KindTransition
	KindLevelLoading
	KindVictoryTotal
)

func (k Kind) String() string {
	switch k {
	case KindPlaying:
		return "PLAYING"
	case KindVictory:
		return "VICTORY"
	case KindTransition:
		return "TRANSITION"
	case KindLevelLoading:
		return "LEVEL_LOADING"
	case KindVictoryTotal:
		return "VICTORY_TOTAL"
	default:
		return "UNKNOWN"
	}
}

// State is one phase of a level's lifecycle. All methods are invoked by the
// level manager only; states never call each other.
type State interface {
	Kind() Kind

	Enter()
	Tick()
	Render(s Surface)
	Exit()

	AllowsPlayerMovement() bool
	AllowsEnemySpawn() bool
}

// LevelManager is the owner of the active state.
type LevelManager interface {
	VerifyVictory() bool
	// ChangeState queues next to replace the active state. It may be called
	// from Enter or Tick.
	ChangeState(next State)
	StopSpawners()
	CurrentLevelIndex() int
	LoadNextLevel()
	StartVictoryAnimation()
}

// Game exposes the running game's shared services. Optional collaborators
// report their absence through the boolean result.
type Game interface {
	Player() (Player, bool)
	Objects() []GameObject
	Status() (StatusService, bool)
	Screens() (ScreenManager, bool)
	WindowWidth() int
	WindowHeight() int
}

type Player interface {
	X() float64
	Y() float64
	StopMovement()
}

type GameObject interface {
	ID() common.ObjectID
}

// Antagonist is the NPC that carries the princess away between levels.
type Antagonist interface {
	GameObject
	X() float64
	Y() float64
	SetY(y float64)
	Tick()
	PlayGrab()
	EnterAngryMode()
}

type Princess interface {
	GameObject
	X() float64
	Y() float64
	SetX(x float64)
	SetY(y float64)
	Tick()
	MoveToward(x, y float64)
	IsMoving() bool
	StopMovement()
}

type StatusService interface {
	ApplyTimeBonus()
}

type ScreenManager interface {
	ChangeScreen(id common.ScreenID)
}

// Context is handed to every state at construction.
type Context struct {
	Game   Game
	Levels LevelManager
	Log    Logger
}

func (c Context) log() Logger {
	if c.Log == nil {
		return NopLogger
	}
	return c.Log
}

func (c Context) windowSize() (float64, float64) {
	if c.Game == nil {
		return common.BaseWidth, common.BaseHeight
	}
	return float64(c.Game.WindowWidth()), float64(c.Game.WindowHeight())
}

func (c Context) player() (Player, bool) {
	if c.Game == nil {
		return nil, false
	}
	p, ok := c.Game.Player()
	if !ok || p == nil {
		return nil, false
	}
	return p, true
}

func (c Context) screens() (ScreenManager, bool) {
	if c.Game == nil {
		return nil, false
	}
	sm, ok := c.Game.Screens()
	if !ok || sm == nil {
		return nil, false
	}
	return sm, true
}

func (c Context) status() (StatusService, bool) {
	if c.Game == nil {
		return nil, false
	}
	st, ok := c.Game.Status()
	if !ok || st == nil {
		return nil, false
	}
	return st, true
}

// finalLevelIndex is the first level index whose victory ends the game.
const finalLevelIndex = 3

// fadeTicks is the length of the fade to black between levels.
const fadeTicks = common.TicksPerSecond

// Package level owns the running level: its geometry, its objects, the barrel
// spawners and the active level state.
package level

import (
	"errors"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/kongclimb/common"
	"github.com/milk9111/kongclimb/entity"
	"github.com/milk9111/kongclimb/levels"
	"github.com/milk9111/kongclimb/levelstate"
	"github.com/milk9111/kongclimb/prefabs"
	"github.com/milk9111/kongclimb/status"
)

type Options struct {
	Game   levelstate.Game
	Status *status.Status
	Specs  *prefabs.Library
	// Input polls the player's controls. Nil leaves the input untouched.
	Input entity.InputSource
	Log   levelstate.Logger
}

// Manager implements levelstate.LevelManager. It holds exactly one active
// state and one pending slot; the pending state is swapped in at the end of
// Update, or at the start of the next one when it was requested from Enter.
type Manager struct {
	ctx     levelstate.Context
	state   levelstate.State
	pending levelstate.State

	index int
	level *levels.Level
	world *entity.World

	handler  *entity.Handler
	input    *entity.Input
	source   entity.InputSource
	spawners []*Spawner

	status *status.Status
	specs  *prefabs.Library
	loader func(index int) (*levels.Level, error)

	gameOver bool
}

func New(opts Options) *Manager {
	m := &Manager{
		handler: entity.NewHandler(),
		input:   &entity.Input{},
		source:  opts.Input,
		status:  opts.Status,
		specs:   opts.Specs,
		loader:  levels.Load,
	}
	if m.specs == nil {
		m.specs = &prefabs.Library{}
	}
	if m.status == nil {
		m.status = status.New(m.specs.Game, nil)
	}
	m.ctx = levelstate.Context{Game: opts.Game, Levels: m, Log: opts.Log}
	if m.ctx.Log == nil {
		m.ctx.Log = levelstate.NopLogger
	}
	return m
}

// Start builds the level at index and enters Playing.
func (m *Manager) Start(index int) error {
	lvl, err := m.loader(index)
	if err != nil {
		return err
	}
	m.build(index, lvl)
	m.gameOver = false
	m.pending = nil
	m.state = levelstate.NewPlaying(m.ctx)
	m.state.Enter()
	return nil
}

func (m *Manager) State() levelstate.State     { return m.state }
func (m *Manager) Handler() *entity.Handler    { return m.handler }
func (m *Manager) Level() *levels.Level        { return m.level }
func (m *Manager) Spawners() []*Spawner        { return m.spawners }
func (m *Manager) Status() *status.Status      { return m.status }
func (m *Manager) Context() levelstate.Context { return m.ctx }

// GameOver reports whether the last life was lost in this level.
func (m *Manager) GameOver() bool { return m.gameOver }

func (m *Manager) build(index int, lvl *levels.Level) {
	m.index = index
	m.level = lvl

	platforms := make([]cp.BB, 0, len(lvl.Platforms))
	for _, r := range lvl.Platforms {
		platforms = append(platforms, r.BB())
	}
	m.world = &entity.World{
		Width:     float64(lvl.Width),
		Height:    float64(lvl.Height),
		Platforms: platforms,
	}

	m.input.Reset()
	m.handler.Clear()
	m.handler.Add(entity.NewAntagonist(lvl.Antagonist.Vector(), m.specs.Antagonist))
	m.handler.Add(entity.NewPrincess(lvl.Princess.Vector(), m.specs.Princess))
	m.handler.Add(entity.NewPlayer(lvl.Spawn.Vector(), m.specs.Player, m.input, m.world))

	m.spawners = m.spawners[:0]
	for _, sp := range lvl.Spawners {
		interval := sp.Interval
		if interval <= 0 {
			interval = m.specs.Barrel.Interval
		}
		m.spawners = append(m.spawners, NewSpawner(cp.Vector{X: sp.X, Y: sp.Y}, sp.Dir, interval))
	}

	m.status.StartLevel(lvl.TimeLimit)
	m.ctx.Log.Infof("level %d %q loaded: %d platforms, %d spawners, %ds", index, lvl.Name, len(lvl.Platforms), len(m.spawners), lvl.TimeLimit)
}

// Update runs one frame.
func (m *Manager) Update() {
	if m.state == nil {
		return
	}
	m.applyPending()

	allow := m.state.AllowsPlayerMovement()
	m.input.Frozen = !allow
	if m.source != nil {
		m.source.Poll(m.input)
	}

	if allow {
		m.handler.Tick()
		m.handler.Sweep()
		if m.status.Tick() {
			m.loseLife("time up")
		}
		m.checkHazards()
	}

	m.tickSpawners(m.state.AllowsEnemySpawn())

	m.state.Tick()
	m.applyPending()
}

func (m *Manager) applyPending() {
	next := m.pending
	if next == nil {
		return
	}
	m.pending = nil

	m.ctx.Log.Debugf("state %s -> %s", m.state.Kind(), next.Kind())
	m.state.Exit()
	m.state = next
	next.Enter()
}

func (m *Manager) tickSpawners(allowed bool) {
	var throws int
	if ant, ok := m.handler.Antagonist(); ok {
		for _, ev := range ant.DrainEmitted() {
			if ev == entity.EventThrow {
				throws++
			}
		}
		if allowed {
			for ; throws > 0; throws-- {
				m.spawnBarrel(ant.ThrowOrigin(), 1)
			}
		}
	}
	if !allowed {
		return
	}

	for _, sp := range m.spawners {
		if sp.Tick() {
			m.spawnBarrel(sp.Pos, sp.Dir)
		}
	}
}

func (m *Manager) spawnBarrel(pos cp.Vector, dir float64) {
	m.handler.Add(entity.NewBarrel(pos, dir, m.specs.Barrel, m.world))
}

func (m *Manager) checkHazards() {
	p, ok := m.handler.Player()
	if !ok {
		return
	}
	pb := p.Bounds()
	for _, b := range m.handler.Barrels() {
		if b.Dead() || !b.Bounds().Intersects(pb) {
			continue
		}
		b.Kill()
		m.loseLife("hit by a barrel")
		return
	}
}

func (m *Manager) loseLife(reason string) {
	left := m.status.LoseLife()
	m.ctx.Log.Infof("life lost (%s), %d left", reason, left)

	if left > 0 {
		m.resetLevel()
		return
	}

	m.gameOver = true
	m.StopSpawners()
	m.status.Commit()
	if sm, ok := m.screens(); ok {
		sm.ChangeScreen(common.ScreenGameOver)
	} else {
		m.ctx.Log.Errorf("game over but no screen manager is available")
	}
}

func (m *Manager) screens() (levelstate.ScreenManager, bool) {
	if m.ctx.Game == nil {
		return nil, false
	}
	sm, ok := m.ctx.Game.Screens()
	return sm, ok && sm != nil
}

// resetLevel puts the player back at the spawn and clears the barrels.
func (m *Manager) resetLevel() {
	for _, b := range m.handler.Barrels() {
		m.handler.Remove(b)
	}
	if p, ok := m.handler.Player(); ok {
		p.Respawn(m.level.Spawn.Vector())
	}
	for _, sp := range m.spawners {
		sp.timer = 0
	}
	m.status.StartLevel(m.level.TimeLimit)
}

// VerifyVictory reports whether the player touches the princess.
func (m *Manager) VerifyVictory() bool {
	p, ok := m.handler.Player()
	if !ok {
		return false
	}
	pr, ok := m.handler.Princess()
	if !ok {
		return false
	}
	return p.Bounds().Intersects(pr.Bounds())
}

// ChangeState queues next. The first request of a frame wins; later ones are
// dropped.
func (m *Manager) ChangeState(next levelstate.State) {
	if next == nil {
		return
	}
	if m.pending != nil {
		m.ctx.Log.Debugf("dropped %s, %s already pending", next.Kind(), m.pending.Kind())
		return
	}
	m.pending = next
}

func (m *Manager) StopSpawners() {
	for _, sp := range m.spawners {
		sp.Stop()
	}
}

func (m *Manager) CurrentLevelIndex() int { return m.index }

// LoadNextLevel builds the following level. Running out of levels hands the
// game over to VictoryTotal.
func (m *Manager) LoadNextLevel() {
	next := m.index + 1
	lvl, err := m.loader(next)
	switch {
	case errors.Is(err, levels.ErrNoMoreLevels):
		m.ctx.Log.Infof("no level after %d, game complete", m.index)
		m.ChangeState(levelstate.NewVictoryTotal(m.ctx))
		return
	case err != nil:
		m.ctx.Log.Errorf("load level %d: %v (replaying level %d)", next, err, m.index)
		m.build(m.index, m.level)
		return
	}
	m.build(next, lvl)
}

func (m *Manager) StartVictoryAnimation() {
	m.status.LevelCleared()
	m.ctx.Log.Infof("victory animation started on level %d", m.index)
}

// CompleteGame jumps straight to VictoryTotal.
func (m *Manager) CompleteGame() {
	m.ChangeState(levelstate.NewVictoryTotal(m.ctx))
}

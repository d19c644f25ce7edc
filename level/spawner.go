package level

import (
	"github.com/jakecoffman/cp"
)

// Spawner releases a barrel every Interval ticks until stopped.
type Spawner struct {
	Pos      cp.Vector
	Dir      float64
	Interval int

	timer   int
	stopped bool
}

func NewSpawner(pos cp.Vector, dir float64, interval int) *Spawner {
	return &Spawner{Pos: pos, Dir: dir, Interval: max(interval, 1)}
}

// Tick reports whether a barrel should be released this tick.
func (s *Spawner) Tick() bool {
	if s.stopped {
		return false
	}
	s.timer++
	if s.timer < s.Interval {
		return false
	}
	s.timer = 0
	return true
}

func (s *Spawner) Stop()         { s.stopped = true }
func (s *Spawner) Stopped() bool { return s.stopped }

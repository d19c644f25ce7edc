// Package status tracks the score, the lives and the level clock of a run.
package status

import (
	"log"

	"github.com/milk9111/kongclimb/common"
	"github.com/milk9111/kongclimb/prefabs"
)

type Status struct {
	spec  prefabs.GameSpec
	store *Store

	score    int
	lives    int
	timeLeft int
	frozen   bool
	cleared  int
}

// New starts a run with the lives of spec. store may be nil.
func New(spec prefabs.GameSpec, store *Store) *Status {
	s := &Status{spec: spec, store: store}
	s.Reset()
	return s
}

// Reset starts a fresh run.
func (s *Status) Reset() {
	s.score = 0
	s.lives = max(s.spec.Lives, 1)
	s.timeLeft = 0
	s.frozen = false
	s.cleared = 0
}

func (s *Status) Score() int         { return s.score }
func (s *Status) Lives() int         { return s.lives }
func (s *Status) TimeLeft() int      { return s.timeLeft }
func (s *Status) SecondsLeft() int   { return s.timeLeft / common.TicksPerSecond }
func (s *Status) Frozen() bool       { return s.frozen }
func (s *Status) LevelsCleared() int { return s.cleared }

// Best is the highest score seen, including the current run.
func (s *Status) Best() int {
	return max(s.store.Best(), s.score)
}

// StartLevel arms the clock with limit seconds and unfreezes it.
func (s *Status) StartLevel(limit int) {
	s.timeLeft = common.Seconds(limit)
	s.frozen = false
}

// Tick runs the clock down and reports whether time just ran out.
func (s *Status) Tick() bool {
	if s.frozen || s.timeLeft <= 0 {
		return false
	}
	s.timeLeft--
	return s.timeLeft == 0
}

func (s *Status) Freeze() {
	s.frozen = true
}

func (s *Status) AddScore(points int) {
	if points <= 0 {
		return
	}
	s.score += points
}

// LevelCleared freezes the clock and awards the level bonus.
func (s *Status) LevelCleared() {
	s.Freeze()
	s.cleared++
	s.AddScore(s.spec.LevelBonus)
	log.Printf("[status] level cleared (%d total), score %d", s.cleared, s.score)
}

// LoseLife takes one life and returns how many remain.
func (s *Status) LoseLife() int {
	if s.lives > 0 {
		s.lives--
	}
	return s.lives
}

// ApplyTimeBonus converts the remaining whole seconds into points and
// empties the clock.
func (s *Status) ApplyTimeBonus() {
	secs := s.SecondsLeft()
	bonus := secs * s.spec.BonusPerSecond
	s.timeLeft = 0
	s.AddScore(bonus)
	log.Printf("[status] time bonus: %ds x %d = %d, score %d", secs, s.spec.BonusPerSecond, bonus, s.score)
	s.Commit()
}

// Commit persists the score when it beats the stored best.
func (s *Status) Commit() {
	if s.score <= s.store.Best() {
		return
	}
	if err := s.store.SaveBest(s.score, s.cleared); err != nil {
		log.Printf("[status] Warning: failed to save best score: %v", err)
	}
}

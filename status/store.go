package status

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	recordObject   = "records"
	recordProperty = "best"
)

// Record is the persisted best run.
type Record struct {
	BestScore     int `yaml:"bestScore"`
	LevelsCleared int `yaml:"levelsCleared"`
}

// Store keeps the best record in the platform data directory. A Store without
// a gdata manager only keeps the record in memory. A nil *Store is valid and
// never remembers anything.
type Store struct {
	manager *gdata.Manager
	record  Record
}

// OpenStore opens the data directory for appName, degrading to memory only
// when it is unavailable.
func OpenStore(appName string) *Store {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[status] Warning: persistent storage unavailable: %v (memory only)", err)
		m = nil
	}
	s, err := NewStore(m)
	if err != nil {
		log.Printf("[status] Warning: failed to load records: %v (starting fresh)", err)
	}
	return s
}

// NewStore loads the record through manager, which may be nil. The returned
// store is usable even when an error is reported.
func NewStore(manager *gdata.Manager) (*Store, error) {
	s := &Store{manager: manager}
	return s, s.Load()
}

func (s *Store) Load() error {
	if s == nil || s.manager == nil {
		return nil
	}
	if !s.manager.ObjectPropExists(recordObject, recordProperty) {
		return nil
	}

	data, err := s.manager.LoadObjectProp(recordObject, recordProperty)
	if err != nil {
		return fmt.Errorf("status: load record: %w", err)
	}
	var rec Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("status: unmarshal record: %w", err)
	}
	s.record = rec
	return nil
}

func (s *Store) Best() int {
	if s == nil {
		return 0
	}
	return s.record.BestScore
}

func (s *Store) Record() Record {
	if s == nil {
		return Record{}
	}
	return s.record
}

// SaveBest records score if it beats the current best.
func (s *Store) SaveBest(score, cleared int) error {
	if s == nil || score <= s.record.BestScore {
		return nil
	}
	s.record = Record{BestScore: score, LevelsCleared: cleared}
	if s.manager == nil {
		return nil
	}

	data, err := yaml.Marshal(s.record)
	if err != nil {
		return fmt.Errorf("status: marshal record: %w", err)
	}
	if err := s.manager.SaveObjectProp(recordObject, recordProperty, data); err != nil {
		return fmt.Errorf("status: save record: %w", err)
	}
	log.Printf("[status] new best score %d saved", score)
	return nil
}

package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/jakecoffman/cp"
)

//go:embed *.json
var LevelsFS embed.FS

// ErrNoMoreLevels is returned by Load for an index past the last level.
var ErrNoMoreLevels = errors.New("levels: no more levels")

type Level struct {
	Name       string    `json:"name"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	TimeLimit  int       `json:"time_limit"`
	Spawn      Point     `json:"spawn"`
	Princess   Point     `json:"princess"`
	Antagonist Point     `json:"antagonist"`
	Platforms  []Rect    `json:"platforms"`
	Spawners   []Spawner `json:"spawners,omitempty"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) Vector() cp.Vector {
	return cp.Vector{X: p.X, Y: p.Y}
}

type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// BB returns r in screen space: B is the top edge and T the bottom edge.
func (r Rect) BB() cp.BB {
	return cp.BB{L: r.X, B: r.Y, R: r.X + r.W, T: r.Y + r.H}
}

// Spawner is a fixed barrel source. Dir is -1 or 1, Interval in ticks; zero
// uses the barrel prefab default.
type Spawner struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Dir      float64 `json:"dir"`
	Interval int     `json:"interval,omitempty"`
}

func fileName(index int) string {
	return fmt.Sprintf("level_%d.json", index)
}

// Load returns the level at the 1-based index.
func Load(index int) (*Level, error) {
	if index < 1 {
		return nil, fmt.Errorf("levels: invalid index %d", index)
	}
	return LoadLevelFromFS(fileName(index))
}

func LoadLevelFromFS(name string) (*Level, error) {
	data, err := fs.ReadFile(LevelsFS, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNoMoreLevels, name)
	}
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", name, err)
	}
	if lvl.Width <= 0 || lvl.Height <= 0 {
		return nil, fmt.Errorf("levels: %s: invalid size %dx%d", name, lvl.Width, lvl.Height)
	}
	return &lvl, nil
}

// Count is the number of consecutive levels starting at 1.
func Count() int {
	n := 0
	for {
		if _, err := fs.Stat(LevelsFS, fileName(n+1)); err != nil {
			return n
		}
		n++
	}
}

package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownSpec is returned by Library.Reload for files that no spec is
// built from.
var ErrUnknownSpec = errors.New("prefabs: unknown spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// GameSpec holds the global rules of a run.
type GameSpec struct {
	Title          string `yaml:"title"`
	WindowWidth    int    `yaml:"window_width"`
	WindowHeight   int    `yaml:"window_height"`
	Lives          int    `yaml:"lives"`
	BonusPerSecond int    `yaml:"bonus_per_second"`
	LevelBonus     int    `yaml:"level_bonus"`
}

type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type PlayerSpec struct {
	Name      string       `yaml:"name"`
	MoveSpeed float64      `yaml:"move_speed"`
	JumpSpeed float64      `yaml:"jump_speed"`
	Gravity   float64      `yaml:"gravity"`
	MaxFall   float64      `yaml:"max_fall"`
	Collider  ColliderSpec `yaml:"collider"`
	Color     *YAMLColor   `yaml:"color"`
}

type AntagonistSpec struct {
	Name          string       `yaml:"name"`
	Script        string       `yaml:"script"`
	ThrowInterval int          `yaml:"throw_interval"`
	Collider      ColliderSpec `yaml:"collider"`
	Color         *YAMLColor   `yaml:"color"`
	AngryColor    *YAMLColor   `yaml:"angry_color"`
}

type PrincessSpec struct {
	Name     string       `yaml:"name"`
	Speed    float64      `yaml:"speed"`
	Collider ColliderSpec `yaml:"collider"`
	Color    *YAMLColor   `yaml:"color"`
}

type BarrelSpec struct {
	Name     string     `yaml:"name"`
	Speed    float64    `yaml:"speed"`
	Gravity  float64    `yaml:"gravity"`
	MaxFall  float64    `yaml:"max_fall"`
	Radius   float64    `yaml:"radius"`
	Interval int        `yaml:"interval"`
	Color    *YAMLColor `yaml:"color"`
}

// Library is the full set of specs a level is built from.
type Library struct {
	Game       GameSpec
	Player     PlayerSpec
	Antagonist AntagonistSpec
	Princess   PrincessSpec
	Barrel     BarrelSpec
}

const (
	gameFile       = "game.yaml"
	playerFile     = "player.yaml"
	antagonistFile = "antagonist.yaml"
	princessFile   = "princess.yaml"
	barrelFile     = "barrel.yaml"
)

func LoadLibrary() (*Library, error) {
	lib := &Library{}
	for _, name := range []string{gameFile, playerFile, antagonistFile, princessFile, barrelFile} {
		if err := lib.Reload(name); err != nil {
			return nil, err
		}
	}
	return lib, nil
}

// Reload re-reads the spec backed by path. Scripts are compiled per level by
// their owners, so script paths are accepted and ignored.
func (l *Library) Reload(path string) error {
	base := filepath.Base(filepath.ToSlash(path))
	if isScriptFile(base) {
		return nil
	}

	switch base {
	case gameFile:
		return reload(&l.Game, base)
	case playerFile:
		return reload(&l.Player, base)
	case antagonistFile:
		return reload(&l.Antagonist, base)
	case princessFile:
		return reload(&l.Princess, base)
	case barrelFile:
		return reload(&l.Barrel, base)
	}
	return fmt.Errorf("%w: %s", ErrUnknownSpec, base)
}

// reload keeps the previous value of dst when the file fails to parse.
func reload[T any](dst *T, name string) error {
	spec, err := LoadSpec[T](name)
	if err != nil {
		return err
	}
	*dst = spec
	return nil
}

// ColorOr returns c's color, or fallback when c is unset.
func ColorOr(c *YAMLColor, fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	var ch [4]uint8
	ch[3] = 255
	for i := 0; i*2 < len(s); i++ {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return fmt.Errorf("invalid color %s: %w", value.Value, err)
		}
		ch[i] = uint8(v)
	}

	c.Color = color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}
	return nil
}

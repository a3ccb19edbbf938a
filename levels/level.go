package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var LevelsFS embed.FS

var ErrInvalidLayout = errors.New("levels: invalid layout")

// Level is a tile layout plus the objects placed on it. Each rune of a
// row is one TileSize brick looked up in the Palette.
type Level struct {
	Name     string   `yaml:"name"`
	Rows     []string `yaml:"tiles"`
	Entities []Entity `yaml:"entities,omitempty"`
}

// Entity positions are in pixels.
type Entity struct {
	Type  string         `yaml:"type"`
	X     int            `yaml:"x"`
	Y     int            `yaml:"y"`
	Props map[string]any `yaml:"props,omitempty"`
}

const (
	EntitySpawn    = "spawn"
	EntityLoop     = "loop"
	EntityPlatform = "platform"
)

func LoadLevelFromFS(name string) (*Level, error) {
	if path.Ext(name) == "" {
		name += ".yaml"
	}
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	lvl, err := ParseLevel(data)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", name, err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(name, path.Ext(name))
	}
	return lvl, nil
}

// ParseLevel decodes and validates a YAML layout.
func ParseLevel(data []byte) (*Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// Names lists the embedded levels.
func Names() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".yaml" {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// Validate checks the grid is rectangular and that exactly one spawn
// exists.
func (l *Level) Validate() error {
	if len(l.Rows) == 0 {
		return fmt.Errorf("%w: no tiles", ErrInvalidLayout)
	}
	width := len([]rune(l.Rows[0]))
	if width == 0 {
		return fmt.Errorf("%w: empty first row", ErrInvalidLayout)
	}
	for i, row := range l.Rows {
		if n := len([]rune(row)); n != width {
			return fmt.Errorf("%w: row %d has %d tiles, want %d", ErrInvalidLayout, i, n, width)
		}
	}

	spawns := 0
	for i, e := range l.Entities {
		switch e.Type {
		case EntitySpawn:
			spawns++
		case EntityLoop, EntityPlatform:
		default:
			return fmt.Errorf("%w: entity %d has unknown type %q", ErrInvalidLayout, i, e.Type)
		}
	}
	if spawns != 1 {
		return fmt.Errorf("%w: %d spawn points, want 1", ErrInvalidLayout, spawns)
	}
	return nil
}

// Columns and RowCount are the grid size in tiles.
func (l *Level) Columns() int  { return len([]rune(l.Rows[0])) }
func (l *Level) RowCount() int { return len(l.Rows) }

func (e Entity) Float(key string, def float64) (float64, error) {
	v, ok := e.Props[key]
	if !ok {
		return def, nil
	}
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case float64:
		return n, nil
	}
	return 0, fmt.Errorf("%w: %s prop %q is %T, want a number", ErrInvalidLayout, e.Type, key, v)
}

func (e Entity) Bool(key string, def bool) (bool, error) {
	v, ok := e.Props[key]
	if !ok {
		return def, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %s prop %q is %T, want a bool", ErrInvalidLayout, e.Type, key, v)
	}
	return b, nil
}

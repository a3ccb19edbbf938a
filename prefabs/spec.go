package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"strconv"
	"strings"

	"github.com/milk9111/slopescroller/physics"
	"gopkg.in/yaml.v3"
)

var ErrUnknownCharacter = errors.New("prefabs: unknown character")

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

// CharacterSpec is the per-character data applied over the default
// physics constants.
type CharacterSpec struct {
	Name        string      `yaml:"name"`
	Color       *YAMLColor  `yaml:"color"`
	Multipliers Multipliers `yaml:"multiplier"`
}

// Multipliers scale the matching physics constants. Omitted keys are 1.
type Multipliers struct {
	Acc              float64 `yaml:"acc"`
	Dec              float64 `yaml:"dec"`
	TopSpeed         float64 `yaml:"topspeed"`
	Jmp              float64 `yaml:"jmp"`
	JmpRel           float64 `yaml:"jmprel"`
	Grv              float64 `yaml:"grv"`
	RollThreshold    float64 `yaml:"rollthreshold"`
	BrakingThreshold float64 `yaml:"brakingthreshold"`
	Slp              float64 `yaml:"slp"`
	RollUphillSlp    float64 `yaml:"rolluphillslp"`
	RollDownhillSlp  float64 `yaml:"rolldownhillslp"`
}

func neutralMultipliers() Multipliers {
	return Multipliers{
		Acc:              1,
		Dec:              1,
		TopSpeed:         1,
		Jmp:              1,
		JmpRel:           1,
		Grv:              1,
		RollThreshold:    1,
		BrakingThreshold: 1,
		Slp:              1,
		RollUphillSlp:    1,
		RollDownhillSlp:  1,
	}
}

// LoadCharacterSpec reads <name>.yaml.
func LoadCharacterSpec(name string) (*CharacterSpec, error) {
	data, err := Load(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownCharacter, name)
		}
		return nil, fmt.Errorf("prefabs: load %s: %w", name, err)
	}
	return parseCharacterSpec(name, data)
}

func parseCharacterSpec(name string, data []byte) (*CharacterSpec, error) {
	spec := CharacterSpec{Multipliers: neutralMultipliers()}
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal %s: %w", name, err)
	}
	if spec.Name == "" {
		spec.Name = strings.TrimSuffix(cleanPrefabPath(name), ".yaml")
	}
	return &spec, nil
}

// Tuning scales base by the character's multipliers.
func (s *CharacterSpec) Tuning(base physics.Tuning) physics.Tuning {
	m := s.Multipliers
	base.Acc *= m.Acc
	base.Dec *= m.Dec
	base.TopSpeed *= m.TopSpeed
	base.Jmp *= m.Jmp
	base.JmpRel *= m.JmpRel
	base.Grv *= m.Grv
	base.RollThreshold *= m.RollThreshold
	base.BrakingThreshold *= m.BrakingThreshold
	base.Slp *= m.Slp
	base.RollUphillSlp *= m.RollUphillSlp
	base.RollDownhillSlp *= m.RollDownhillSlp
	return base
}

// BodyColor is the debug colour of the character, white when unset.
func (s *CharacterSpec) BodyColor() color.Color {
	if s.Color == nil || s.Color.Color == nil {
		return color.White
	}
	return s.Color.Color
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

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

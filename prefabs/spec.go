package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

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

// EncounterSpec lays out one fight: which prefabs to build and where.
type EncounterSpec struct {
	Name   string        `yaml:"name"`
	Player PlacementSpec `yaml:"player"`
	Dragon PlacementSpec `yaml:"dragon"`
	Ground PlacementSpec `yaml:"ground"`
	Camera PlacementSpec `yaml:"camera"`
	Snow   SnowSpec      `yaml:"snow"`
	HUD    string        `yaml:"hud"`
}

type PlacementSpec struct {
	Prefab   string    `yaml:"prefab"`
	Position *Vec3Spec `yaml:"position"`
}

type SnowSpec struct {
	Prefab string `yaml:"prefab"`
	Count  int    `yaml:"count"`
}

func LoadEncounterSpec(filename string) (*EncounterSpec, error) {
	if filename == "" {
		filename = "encounter.yaml"
	}
	spec, err := LoadSpec[EncounterSpec](filename)
	if err != nil {
		return nil, err
	}
	if spec.Player.Prefab == "" || spec.Dragon.Prefab == "" {
		return nil, fmt.Errorf("prefabs: %s: player and dragon prefabs are required", filename)
	}
	return &spec, nil
}

type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v Vec3Spec) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// YAMLColor accepts "#rrggbb", "#rrggbbaa" or an SVG colour name.
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	raw := strings.TrimSpace(value.Value)
	if !strings.HasPrefix(raw, "#") {
		named, ok := colornames.Map[strings.ToLower(raw)]
		if !ok {
			return fmt.Errorf("unknown color name: %s", raw)
		}
		c.Color = color.NRGBA{R: named.R, G: named.G, B: named.B, A: named.A}
		return nil
	}

	s := strings.TrimPrefix(raw, "#")
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

// MarshalYAML writes the colour back as hex so decoded specs survive a
// round trip through DecodeComponentSpec.
func (c YAMLColor) MarshalYAML() (any, error) {
	if c.Color == nil {
		return nil, nil
	}
	n := color.NRGBAModel.Convert(c.Color).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A), nil
}

// NRGBA returns the colour, or fallback when unset.
func (c YAMLColor) NRGBA(fallback color.NRGBA) color.NRGBA {
	if c.Color == nil {
		return fallback
	}
	return color.NRGBAModel.Convert(c.Color).(color.NRGBA)
}

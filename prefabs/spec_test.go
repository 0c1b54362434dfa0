package prefabs

import (
	"image/color"
	"io/fs"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEncounterSpecLoads(t *testing.T) {
	spec, err := LoadEncounterSpec("")
	if err != nil {
		t.Fatalf("load encounter: %v", err)
	}
	if spec.Player.Prefab != "player.yaml" || spec.Dragon.Prefab != "dragon.yaml" {
		t.Fatalf("unexpected placements %+v", spec)
	}
	if spec.Dragon.Position == nil || spec.Dragon.Position.Vec3().Z() != 30 {
		t.Fatalf("dragon should be placed 30 units out, got %+v", spec.Dragon.Position)
	}
	if spec.Snow.Count <= 0 || spec.HUD == "" {
		t.Fatalf("expected snow and hud, got %+v", spec)
	}
}

func TestAllPrefabsDecode(t *testing.T) {
	names, err := fs.Glob(PrefabsFS, "*.yaml")
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(names) == 0 {
		t.Fatalf("no embedded prefabs")
	}
	for _, name := range names {
		if name == "encounter.yaml" {
			continue
		}
		t.Run(name, func(t *testing.T) {
			spec, err := LoadEntityBuildSpec(name)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if spec.Name == "" || len(spec.Components) == 0 {
				t.Fatalf("prefab must have a name and components, got %+v", spec)
			}
		})
	}
}

func TestDecodeComponentSpec(t *testing.T) {
	spec, err := LoadEntityBuildSpec("dragon.yaml")
	if err != nil {
		t.Fatalf("load dragon: %v", err)
	}
	boss, err := DecodeComponentSpec[BossComponentSpec](spec.Components["boss"])
	if err != nil {
		t.Fatalf("decode boss: %v", err)
	}
	if boss.TriggerRadius != 50 || boss.FireballPrefab != "fireball.yaml" || boss.Animations.Attack != "skill01" {
		t.Fatalf("unexpected boss spec %+v", boss)
	}
	if boss.MuzzleOffset.Vec3().Z() != -3 {
		t.Fatalf("muzzle offset = %+v", boss.MuzzleOffset)
	}

	model, err := DecodeComponentSpec[ModelComponentSpec](spec.Components["model"])
	if err != nil {
		t.Fatalf("decode model: %v", err)
	}
	if got := model.Fallback.Color.NRGBA(color.NRGBA{}); got != (color.NRGBA{R: 255, A: 255}) {
		t.Fatalf("fallback colour survives the round trip, got %v", got)
	}

	empty, err := DecodeComponentSpec[HealthComponentSpec](nil)
	if err != nil || empty.Max != 0 {
		t.Fatalf("nil component should decode to zero, got %+v %v", empty, err)
	}
}

func TestYAMLColor(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{name: "hex", in: "'#ff8000'", want: color.NRGBA{R: 255, G: 128, A: 255}},
		{name: "hex with alpha", in: "'#00ff0080'", want: color.NRGBA{G: 255, A: 128}},
		{name: "named", in: "Orange", want: color.NRGBA{R: 255, G: 165, A: 255}},
		{name: "unknown name", in: "dragonfire", wantErr: true},
		{name: "short hex", in: "'#fff'", wantErr: true},
		{name: "bad digits", in: "'#gg0000'", wantErr: true},
		{name: "not a scalar", in: "[1, 2]", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out struct {
				Color YAMLColor `yaml:"color"`
			}
			err := yaml.Unmarshal([]byte("color: "+tt.in), &out)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected an error, got %v", out.Color)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := out.Color.NRGBA(color.NRGBA{}); got != tt.want {
				t.Fatalf("color = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestYAMLColorFallback(t *testing.T) {
	var c YAMLColor
	want := color.NRGBA{B: 255, A: 255}
	if got := c.NRGBA(want); got != want {
		t.Fatalf("unset colour should return the fallback, got %v", got)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Fatalf("expected an error for an empty name")
	}
	if _, err := LoadEntityBuildSpec("nope.yaml"); err == nil || !strings.Contains(err.Error(), "nope.yaml") {
		t.Fatalf("expected a missing prefab error naming the file, got %v", err)
	}
	if _, err := LoadScript("nope.tengo"); err == nil {
		t.Fatalf("expected a missing script error")
	}
}

func TestLoadScript(t *testing.T) {
	for _, name := range []string{"dragon.tengo", "scripts/dragon.tengo", "prefabs/scripts/dragon.tengo"} {
		src, err := LoadScript(name)
		if err != nil {
			t.Fatalf("LoadScript(%q): %v", name, err)
		}
		if !strings.Contains(string(src), "onEnter") {
			t.Fatalf("LoadScript(%q) returned an unexpected script", name)
		}
	}
}

func TestFileKinds(t *testing.T) {
	if !IsSpecFile("dragon.yaml") || !IsSpecFile("x/Player.YML") || IsSpecFile("dragon.tengo") {
		t.Fatalf("IsSpecFile misclassified")
	}
	if !IsScriptFile("scripts/dragon.tengo") || IsScriptFile("dragon.yaml") {
		t.Fatalf("IsScriptFile misclassified")
	}
}

package assets

import (
	"embed"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed models/*.yaml
var assetsFS embed.FS

// ErrMissingModel is returned when no manifest exists for a model name.
var ErrMissingModel = errors.New("assets: model not found")

// ModelManifest describes a loadable model: its source file and the
// animation clips it provides.
type ModelManifest struct {
	Name       string   `yaml:"name"`
	Source     string   `yaml:"source"`
	Scale      float64  `yaml:"scale"`
	Animations []string `yaml:"animations"`
}

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	return assetsFS.ReadFile(clean)
}

// LoadModel reads models/<name>.yaml.
func LoadModel(name string) (*ModelManifest, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("assets: load model: %w", ErrMissingModel)
	}
	path := "models/" + strings.TrimSuffix(filepath.Base(name), filepath.Ext(name)) + ".yaml"
	b, err := LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: load model %q: %w", name, ErrMissingModel)
	}
	var m ModelManifest
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("assets: decode model %q: %w", name, err)
	}
	if m.Name == "" {
		m.Name = name
	}
	return &m, nil
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "assets/") {
		return strings.TrimPrefix(s, "assets/")
	}
	return s
}

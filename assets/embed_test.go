package assets

import (
	"errors"
	"testing"
)

func TestLoadModel(t *testing.T) {
	tests := []struct {
		name    string
		model   string
		wantErr error
		anims   int
	}{
		{name: "dragon", model: "dragon", anims: 4},
		{name: "with_extension", model: "dragon.glb", anims: 4},
		{name: "missing", model: "girl", wantErr: ErrMissingModel},
		{name: "empty", model: "", wantErr: ErrMissingModel},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := LoadModel(tc.model)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(m.Animations) != tc.anims {
				t.Fatalf("expected %d animations, got %v", tc.anims, m.Animations)
			}
		})
	}
}

package scene

import (
	"errors"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

func TestRenderConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*RenderConfig)
		expectErr bool
	}{
		{"defaults", func(*RenderConfig) {}, false},
		{"sequential", func(c *RenderConfig) { c.Workers = 0 }, false},
		{"single pixel", func(c *RenderConfig) { c.Width, c.Height = 1, 1 }, false},
		{"zero width", func(c *RenderConfig) { c.Width = 0 }, true},
		{"zero depth", func(c *RenderConfig) { c.MaxDepth = 0 }, true},
		{"negative workers", func(c *RenderConfig) { c.Workers = -1 }, true},
		{"negative epsilon", func(c *RenderConfig) { c.MinDistance = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultRenderConfig()
			tt.mutate(&config)
			err := config.Validate()
			if tt.expectErr && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
			if !tt.expectErr && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestScene_ValidateRequiresCamera(t *testing.T) {
	s := &Scene{Config: DefaultRenderConfig()}
	if err := s.Validate(); !errors.Is(err, ErrNoCamera) {
		t.Errorf("Expected ErrNoCamera, got %v", err)
	}
}

func TestScene_ValidateRequiresLightForPrimitives(t *testing.T) {
	s, err := NewSingleSphereScene(DefaultOptions())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	s.Light = nil

	if err := s.Validate(); !errors.Is(err, ErrNoLight) {
		t.Errorf("Expected ErrNoLight, got %v", err)
	}

	// An empty scene renders background only and needs no light
	s.Primitives = nil
	if err := s.Validate(); err != nil {
		t.Errorf("Unexpected error for empty scene: %v", err)
	}
}

func TestScene_ValidateResolutionMismatch(t *testing.T) {
	s, err := NewSingleSphereScene(DefaultOptions())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	s.Config.Width = 17

	if err := s.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestNewThreeSpheresScene(t *testing.T) {
	s, err := NewThreeSpheresScene(DefaultOptions())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("Scene should validate: %v", err)
	}

	if s.GetPrimitiveCount() != 5 {
		t.Errorf("Expected 5 primitives, got %d", s.GetPrimitiveCount())
	}

	var spheres, planes, triangles int
	for _, p := range s.Primitives {
		switch prim := p.(type) {
		case *geometry.Sphere:
			spheres++
		case *geometry.Plane:
			planes++
			if _, ok := prim.Material().(*material.CheckerBoard); !ok {
				t.Errorf("Default floor should be a checkerboard, got %T", prim.Material())
			}
		case *geometry.Triangle:
			triangles++
		}
	}
	if spheres != 3 || planes != 1 || triangles != 1 {
		t.Errorf("Expected 3 spheres, 1 plane, 1 triangle; got %d, %d, %d", spheres, planes, triangles)
	}
}

func TestNewThreeSpheresScene_SolidFloorAndColors(t *testing.T) {
	opts := DefaultOptions()
	floor, err := material.ParseFloor("grey")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	opts.Floor = floor
	opts.SphereColors = [3]string{"yellow", "white", "black"}

	s, err := NewThreeSpheresScene(opts)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if got := s.Primitives[0].Material(); got != material.YellowMaterial {
		t.Errorf("Expected left sphere to be yellow, got %v", got)
	}
	if got := s.Primitives[3].Material(); got != material.GreyMaterial {
		t.Errorf("Expected grey floor, got %v", got)
	}
}

func TestNewThreeSpheresScene_UnknownSphereColor(t *testing.T) {
	opts := DefaultOptions()
	opts.SphereColors[1] = "mauve"

	_, err := NewThreeSpheresScene(opts)
	if !errors.Is(err, material.ErrUnknownMaterial) {
		t.Errorf("Expected ErrUnknownMaterial, got %v", err)
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name      string
		sceneName string
		expectErr bool
	}{
		{"empty selects default", "", false},
		{"default keyword", "default", false},
		{"three spheres", "three-spheres", false},
		{"single sphere", "Single-Sphere", false},
		{"unknown", "cornell", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Lookup(tt.sceneName, DefaultOptions())
			if tt.expectErr {
				if !errors.Is(err, ErrUnknownScene) {
					t.Errorf("Expected ErrUnknownScene, got %v", err)
				}
				if s != nil {
					t.Errorf("Expected nil scene, got %v", s)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if s.Camera == nil {
				t.Error("Scene should have a camera")
			}
		})
	}
}

func TestListScenes(t *testing.T) {
	scenes := ListScenes()
	if len(scenes) != 2 {
		t.Fatalf("Expected 2 scenes, got %d", len(scenes))
	}
	for i := 1; i < len(scenes); i++ {
		if scenes[i-1].DisplayName > scenes[i].DisplayName {
			t.Errorf("Scenes not sorted: %q before %q", scenes[i-1].DisplayName, scenes[i].DisplayName)
		}
	}
	for _, info := range scenes {
		if _, err := Lookup(info.ID, DefaultOptions()); err != nil {
			t.Errorf("Listed scene %q does not build: %v", info.ID, err)
		}
	}
}

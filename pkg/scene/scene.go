package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

var (
	// ErrNoCamera is returned when a render is started without a camera
	ErrNoCamera = errors.New("no camera configured")

	// ErrNoLight is returned when primitives need shading but there is no light
	ErrNoLight = errors.New("no light configured")

	// ErrInvalidConfig wraps every render configuration validation failure
	ErrInvalidConfig = errors.New("invalid render configuration")
)

// DefaultMinDistance keeps secondary rays from hitting the surface they start on
const DefaultMinDistance = 1e-4

// Scene contains all the elements needed for rendering.
// It is built once and never modified while a render is running.
type Scene struct {
	Camera     *geometry.Camera
	Light      lights.Light
	Primitives []geometry.Primitive
	Config     RenderConfig
}

// RenderConfig contains rendering configuration
type RenderConfig struct {
	Width       int     // Image width in pixels
	Height      int     // Image height in pixels
	MaxDepth    int     // Recursion level at which tracing stops
	Reflection  float64 // Weight of the reflected colour
	Workers     int     // Column partitions; below 2 renders sequentially
	MinDistance float64 // Hits closer than this are ignored
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:       400,
		Height:      400,
		MaxDepth:    3,
		Reflection:  0.3,
		Workers:     4,
		MinDistance: DefaultMinDistance,
	}
}

// Validate checks the configuration before any pixel work starts
func (c RenderConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: resolution %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.MaxDepth < 1 {
		return fmt.Errorf("%w: max depth %d, need at least 1", ErrInvalidConfig, c.MaxDepth)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: negative worker count %d", ErrInvalidConfig, c.Workers)
	}
	if c.MinDistance < 0 {
		return fmt.Errorf("%w: negative minimum distance %g", ErrInvalidConfig, c.MinDistance)
	}
	return nil
}

// Validate reports configuration errors that must stop a render before it starts
func (s *Scene) Validate() error {
	if s.Camera == nil {
		return ErrNoCamera
	}
	if s.Light == nil && len(s.Primitives) > 0 {
		return ErrNoLight
	}
	if err := s.Config.Validate(); err != nil {
		return err
	}

	width, height := s.Camera.Resolution()
	if width != s.Config.Width || height != s.Config.Height {
		return fmt.Errorf("%w: camera built for %dx%d, render is %dx%d",
			ErrInvalidConfig, width, height, s.Config.Width, s.Config.Height)
	}
	return nil
}

// Add appends primitives to the scene
func (s *Scene) Add(primitives ...geometry.Primitive) {
	s.Primitives = append(s.Primitives, primitives...)
}

// GetPrimitiveCount returns the number of primitives in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Primitives)
}

// Background is the colour of rays that hit nothing
func (s *Scene) Background() core.Color {
	return core.Black
}

package lights

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// PointLight is an infinitely small light with no distance falloff
type PointLight struct {
	Position core.Vec3
	Color    core.Color
	Strength float64
}

// NewPointLight creates a new point light
func NewPointLight(position core.Vec3, color core.Color, intensity float64) *PointLight {
	return &PointLight{
		Position: position,
		Color:    color,
		Strength: intensity,
	}
}

// Type returns the light type
func (pl *PointLight) Type() LightType {
	return LightTypePoint
}

// Origin returns the light position
func (pl *PointLight) Origin() core.Vec3 {
	return pl.Position
}

// Intensity returns the light strength
func (pl *PointLight) Intensity() float64 {
	return pl.Strength
}

func (pl *PointLight) String() string {
	return fmt.Sprintf("Light(%v, %v, intensity=%g)", pl.Position, pl.Color, pl.Strength)
}

package material

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Solid is a uniform Phong material
type Solid struct {
	Color     core.Color
	Ambient   float64 // Ambient level
	Diffuse   float64 // Diffuse level
	Specular  float64 // Specular level
	Shininess int     // Specular exponent
}

// NewSolid creates a new solid material
func NewSolid(color core.Color, ambient, diffuse, specular float64, shininess int) Solid {
	return Solid{
		Color:     color,
		Ambient:   ambient,
		Diffuse:   diffuse,
		Specular:  specular,
		Shininess: shininess,
	}
}

// Resolve returns the material itself regardless of position
func (s Solid) Resolve(point core.Vec3) Solid {
	return s
}

// CalcColor combines the ambient, Lambertian (phi) and Phong (theta^shininess)
// terms for a light of the given intensity. The colour saturates after every
// multiplication, so a light brighter than 1 cannot push a term past what the
// saturated colour allows.
func (s Solid) CalcColor(phi, theta, intensity float64) core.Color {
	lit := s.Color.Scale(intensity)
	ambient := lit.Scale(s.Ambient)
	diffuse := lit.Scale(s.Diffuse).Scale(phi)
	specular := lit.Scale(s.Specular).Scale(math.Pow(theta, float64(s.Shininess)))

	return ambient.Add(diffuse).Add(specular)
}

// ShadedColor is the colour of a point hidden from the light: color*diffuse
func (s Solid) ShadedColor() core.Color {
	return s.Color.Scale(s.Diffuse)
}

func (s Solid) String() string {
	return fmt.Sprintf("Material(%v, amb=%g, diff=%g, spec=%g, n=%d)",
		s.Color, s.Ambient, s.Diffuse, s.Specular, s.Shininess)
}

package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Material resolves the surface properties that apply at a world point.
// Solid materials ignore the point; textures use it to pick a sub-material.
type Material interface {
	Resolve(point core.Vec3) Solid
	String() string
}

// CalcColor resolves m at point and applies the Phong formula to it
func CalcColor(m Material, point core.Vec3, phi, theta, intensity float64) core.Color {
	return m.Resolve(point).CalcColor(phi, theta, intensity)
}

// ShadedColor resolves m at point and returns its in-shadow colour
func ShadedColor(m Material, point core.Vec3) core.Color {
	return m.Resolve(point).ShadedColor()
}

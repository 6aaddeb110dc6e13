package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Primitive is a renderable shape. The set is closed: Sphere, Plane and Triangle.
type Primitive interface {
	// IntersectionParameter returns the distance t along the ray to the surface.
	// Callers decide which t values count as hits.
	IntersectionParameter(ray core.Ray) (float64, bool)

	// NormalAt returns the unit surface normal at a point on the surface
	NormalAt(point core.Vec3) core.Vec3

	// Material returns the surface material or texture
	Material() material.Material

	String() string

	primitive()
}

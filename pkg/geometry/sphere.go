package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) (*Sphere, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("sphere radius must be positive, got %g", radius)
	}
	return &Sphere{
		Center:   center,
		Radius:   radius,
		material: mat,
	}, nil
}

// IntersectionParameter returns the near root of the ray/sphere equation.
// The far root is never reported, so a ray starting inside the sphere gets a
// negative t for its exit point.
func (s *Sphere) IntersectionParameter(ray core.Ray) (float64, bool) {
	co := s.Center.Subtract(ray.Origin)
	v := co.Dot(ray.Direction)
	discriminant := v*v - co.Dot(co) + s.Radius*s.Radius

	if discriminant < 0 {
		return 0, false
	}
	return v - math.Sqrt(discriminant), true
}

// NormalAt returns the outward normal at p
func (s *Sphere) NormalAt(p core.Vec3) core.Vec3 {
	return p.Subtract(s.Center).Normalize()
}

// Material returns the sphere's material
func (s *Sphere) Material() material.Material {
	return s.material
}

func (s *Sphere) String() string {
	return fmt.Sprintf("Sphere(%v, %g)", s.Center, s.Radius)
}

func (s *Sphere) primitive() {}

package geometry

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Vec3 // A point on the plane
	Normal   core.Vec3 // Unit normal
	material material.Material
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, mat material.Material) (*Plane, error) {
	n, err := normal.NormalizeChecked()
	if err != nil {
		return nil, fmt.Errorf("plane normal: %w", err)
	}
	return &Plane{
		Point:    point,
		Normal:   n,
		material: mat,
	}, nil
}

// IntersectionParameter solves (origin + t*direction - point)·normal = 0.
// A ray parallel to the plane has no intersection.
func (p *Plane) IntersectionParameter(ray core.Ray) (float64, bool) {
	a := ray.Origin.Subtract(p.Point).Dot(p.Normal)
	b := ray.Direction.Dot(p.Normal)
	if b == 0 {
		return 0, false
	}
	return -a / b, true
}

// NormalAt returns the plane normal, which is the same everywhere
func (p *Plane) NormalAt(core.Vec3) core.Vec3 {
	return p.Normal
}

// Material returns the plane's material
func (p *Plane) Material() material.Material {
	return p.material
}

func (p *Plane) String() string {
	return fmt.Sprintf("Plane(%v, %v)", p.Point, p.Normal)
}

func (p *Plane) primitive() {}

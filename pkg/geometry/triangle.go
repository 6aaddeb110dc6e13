package geometry

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Triangle represents a single flat-shaded triangle
type Triangle struct {
	A, B, C  core.Vec3 // The three vertices
	U, V     core.Vec3 // Edge vectors B-A and C-A
	normal   core.Vec3 // Cached normal vector
	material material.Material
}

// NewTriangle creates a new triangle from three vertices.
// Collinear vertices are rejected since they have no normal.
func NewTriangle(a, b, c core.Vec3, mat material.Material) (*Triangle, error) {
	u := b.Subtract(a)
	v := c.Subtract(a)

	normal, err := u.Cross(v).NormalizeChecked()
	if err != nil {
		return nil, fmt.Errorf("degenerate triangle %v %v %v: %w", a, b, c, err)
	}

	return &Triangle{
		A:        a,
		B:        b,
		C:        c,
		U:        u,
		V:        v,
		normal:   normal,
		material: mat,
	}, nil
}

// IntersectionParameter tests the ray against the triangle using the
// Möller-Trumbore parametrisation over the edges U and V
func (t *Triangle) IntersectionParameter(ray core.Ray) (float64, bool) {
	dv := ray.Direction.Cross(t.V)
	dvu := dv.Dot(t.U)

	// Ray lies in the plane of the triangle
	if dvu == 0 {
		return 0, false
	}

	w := ray.Origin.Subtract(t.A)
	wu := w.Cross(t.U)

	r := dv.Dot(w) / dvu
	s := wu.Dot(ray.Direction) / dvu

	if r < 0 || r > 1 || s < 0 || s > 1 || r+s > 1 {
		return 0, false
	}

	return wu.Dot(t.V) / dvu, true
}

// NormalAt returns the face normal U×V; triangles are flat shaded
func (t *Triangle) NormalAt(core.Vec3) core.Vec3 {
	return t.normal
}

// Material returns the triangle's material
func (t *Triangle) Material() material.Material {
	return t.material
}

func (t *Triangle) String() string {
	return fmt.Sprintf("Triangle(%v, %v, %v)", t.A, t.B, t.C)
}

func (t *Triangle) primitive() {}

package renderer

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// HitPointData records where a ray struck a primitive. The derived
// vectors are computed on first use and cached; a HitPointData is owned by
// the goroutine that created it.
type HitPointData struct {
	Ray       core.Ray
	Primitive geometry.Primitive
	Distance  float64

	intersection    core.Vec3
	normal          core.Vec3
	reflected       core.Vec3
	hasIntersection bool
	hasNormal       bool
	hasReflected    bool
}

// NewHitPointData creates hit data for a ray that hit primitive at distance
func NewHitPointData(ray core.Ray, primitive geometry.Primitive, distance float64) *HitPointData {
	return &HitPointData{
		Ray:       ray,
		Primitive: primitive,
		Distance:  distance,
	}
}

// Intersection returns the world point of the hit
func (h *HitPointData) Intersection() core.Vec3 {
	if !h.hasIntersection {
		h.intersection = h.Ray.At(h.Distance)
		h.hasIntersection = true
	}
	return h.intersection
}

// Normal returns the primitive's unit normal at the hit point
func (h *HitPointData) Normal() core.Vec3 {
	if !h.hasNormal {
		h.normal = h.Primitive.NormalAt(h.Intersection())
		h.hasNormal = true
	}
	return h.normal
}

// Reflected returns the mirror direction of the incoming ray about the normal
func (h *HitPointData) Reflected() core.Vec3 {
	if !h.hasReflected {
		h.reflected = h.Ray.Direction.Reflect(h.Normal()).Normalize()
		h.hasReflected = true
	}
	return h.reflected
}

package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// RayTracer shades pixels with recursive Whitted tracing: direct Phong
// lighting from one point light, hard shadows and mirror reflection.
// It never mutates the scene and is safe for concurrent use.
type RayTracer struct {
	camera      *geometry.Camera
	light       lights.Light
	primitives  []geometry.Primitive
	background  core.Color
	maxDepth    int
	reflection  float64
	minDistance float64
}

// NewRayTracer creates a ray tracer for a validated scene
func NewRayTracer(s *scene.Scene) *RayTracer {
	return &RayTracer{
		camera:      s.Camera,
		light:       s.Light,
		primitives:  s.Primitives,
		background:  s.Background(),
		maxDepth:    s.Config.MaxDepth,
		reflection:  s.Config.Reflection,
		minDistance: s.Config.MinDistance,
	}
}

// Intersect finds the closest primitive the ray hits beyond the minimum
// distance. Nothing is hit once level reaches the maximum depth.
func (rt *RayTracer) Intersect(level int, ray core.Ray) (*HitPointData, bool) {
	if level >= rt.maxDepth {
		return nil, false
	}

	var closest geometry.Primitive
	closestSoFar := math.Inf(1)

	for _, p := range rt.primitives {
		t, ok := p.IntersectionParameter(ray)
		if !ok {
			continue
		}
		if t > rt.minDistance && t < closestSoFar {
			closestSoFar = t
			closest = p
		}
	}

	if closest == nil {
		return nil, false
	}
	return NewHitPointData(ray, closest, closestSoFar), true
}

// TraceRay returns the colour seen along ray at the given recursion level
func (rt *RayTracer) TraceRay(level int, ray core.Ray) core.Color {
	hpd, ok := rt.Intersect(level, ray)
	if !ok {
		return rt.background
	}
	return rt.Shade(level, hpd)
}

// Shade returns the colour at a hit point. Shadowed points get the
// material's shaded colour with no specular or reflected light.
func (rt *RayTracer) Shade(level int, hpd *HitPointData) core.Color {
	if rt.ObjectBetween(hpd) {
		return rt.ShadedColor(hpd)
	}

	direct := rt.ComputeDirectLight(hpd)

	// The next level would hit nothing and contribute black
	if level+1 >= rt.maxDepth {
		return direct
	}

	reflectedRay := core.NewRay(hpd.Intersection(), hpd.Reflected())
	reflectColor := rt.TraceRay(level+1, reflectedRay)
	return direct.Add(reflectColor.Scale(rt.reflection))
}

// ObjectBetween reports whether any other primitive lies on the ray from
// the hit point towards the light. Hits beyond the light still count.
func (rt *RayTracer) ObjectBetween(hpd *HitPointData) bool {
	if rt.light == nil {
		return false
	}

	origin := hpd.Intersection()
	shadowRay := core.NewRay(origin, origin.VectorTo(rt.light.Origin()))

	for _, p := range rt.primitives {
		if p == hpd.Primitive {
			continue
		}
		if t, ok := p.IntersectionParameter(shadowRay); ok && t > rt.minDistance {
			return true
		}
	}
	return false
}

// ComputeDirectLight applies the Phong model for the light at the hit point
func (rt *RayTracer) ComputeDirectLight(hpd *HitPointData) core.Color {
	if rt.light == nil {
		return rt.background
	}

	point := hpd.Intersection()
	normal := hpd.Normal()

	toLight := point.VectorTo(rt.light.Origin()).Normalize()
	toLightReflected := toLight.Reflect(normal).Normalize()

	phi := toLight.Dot(normal)
	theta := toLightReflected.Dot(hpd.Ray.Direction.Negate())

	return material.CalcColor(hpd.Primitive.Material(), point, phi, theta, rt.light.Intensity())
}

// ShadedColor returns the in-shadow colour of the material at the hit point
func (rt *RayTracer) ShadedColor(hpd *HitPointData) core.Color {
	return material.ShadedColor(hpd.Primitive.Material(), hpd.Intersection())
}

// Compute returns the final colour of pixel (x, y)
func (rt *RayTracer) Compute(x, y int) Pixel {
	c, _ := rt.compute(x, y)
	return Pixel{X: x, Y: y, Color: c}
}

// compute also reports whether the primary ray hit anything. Misses skip
// shading and return the background directly.
func (rt *RayTracer) compute(x, y int) (core.Color, bool) {
	ray := rt.camera.RayFor(x, y)
	hpd, ok := rt.Intersect(1, ray)
	if !ok {
		return rt.background, false
	}
	return rt.Shade(1, hpd), true
}

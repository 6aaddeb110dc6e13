package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

func mustSphere(t *testing.T, center core.Vec3, radius float64) *Sphere {
	t.Helper()
	s, err := NewSphere(center, radius, material.RedMaterial)
	if err != nil {
		t.Fatalf("NewSphere: %v", err)
	}
	return s
}

func TestSphere_IntersectionParameter(t *testing.T) {
	sphere := mustSphere(t, core.NewVec3(0, 0, 100), 30)

	tests := []struct {
		name      string
		ray       core.Ray
		shouldHit bool
		expectedT float64
	}{
		{
			name:      "head on from origin",
			ray:       core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)),
			shouldHit: true,
			expectedT: 70,
		},
		{
			name:      "unnormalized direction is normalized by the ray",
			ray:       core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 42)),
			shouldHit: true,
			expectedT: 70,
		},
		{
			name:      "tangent",
			ray:       core.NewRay(core.NewVec3(30, 0, 0), core.NewVec3(0, 0, 1)),
			shouldHit: true,
			expectedT: 100,
		},
		{
			name:      "miss",
			ray:       core.NewRay(core.NewVec3(31, 0, 0), core.NewVec3(0, 0, 1)),
			shouldHit: false,
		},
		{
			name:      "sphere behind the ray gives a negative near root",
			ray:       core.NewRay(core.NewVec3(0, 0, 200), core.NewVec3(0, 0, 1)),
			shouldHit: true,
			expectedT: -130,
		},
		{
			name:      "from inside reports the near root behind the origin",
			ray:       core.NewRay(core.NewVec3(0, 0, 100), core.NewVec3(0, 0, 1)),
			shouldHit: true,
			expectedT: -30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := sphere.IntersectionParameter(tt.ray)
			if ok != tt.shouldHit {
				t.Fatalf("Expected hit=%t, got hit=%t (t=%f)", tt.shouldHit, ok, got)
			}
			if ok && math.Abs(got-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, got)
			}
		})
	}
}

func TestSphere_HitPointLiesOnSurface(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	sphere := mustSphere(t, core.NewVec3(3, -2, 50), 12)

	hits := 0
	for i := 0; i < 1000; i++ {
		origin := core.NewVec3(random.Float64()*20-10, random.Float64()*20-10, random.Float64()*10-5)
		target := sphere.Center.Add(core.NewVec3(random.Float64()*30-15, random.Float64()*30-15, random.Float64()*30-15))
		ray := core.NewRay(origin, origin.VectorTo(target))

		tHit, ok := sphere.IntersectionParameter(ray)
		if !ok {
			continue
		}
		hits++

		distance := ray.At(tHit).Subtract(sphere.Center).Length()
		if math.Abs(distance-sphere.Radius) > 1e-6 {
			t.Fatalf("Hit point %v is %f from centre, expected radius %f", ray.At(tHit), distance, sphere.Radius)
		}
	}

	if hits == 0 {
		t.Fatal("Expected at least some rays to hit the sphere")
	}
}

func TestSphere_NormalAt(t *testing.T) {
	sphere := mustSphere(t, core.NewVec3(1, 1, 1), 2)

	normal := sphere.NormalAt(core.NewVec3(1, 3, 1))
	expected := core.NewVec3(0, 1, 0)
	if normal.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected normal %v, got %v", expected, normal)
	}
}

func TestNewSphere_InvalidRadius(t *testing.T) {
	for _, r := range []float64{0, -1} {
		if _, err := NewSphere(core.NewVec3(0, 0, 0), r, material.RedMaterial); err == nil {
			t.Errorf("Expected error for radius %f", r)
		}
	}
}

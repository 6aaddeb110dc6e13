package scene

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Options are the knobs a caller can turn on a built-in scene
type Options struct {
	Config         RenderConfig
	LightPosition  core.Vec3
	LightColor     core.Color
	LightIntensity float64
	SphereColors   [3]string // left, top, right
	Floor          material.Floor
}

// DefaultOptions returns the options the built-in scenes are tuned for
func DefaultOptions() Options {
	return Options{
		Config:         DefaultRenderConfig(),
		LightPosition:  core.NewVec3(75, 100, 20),
		LightColor:     material.White,
		LightIntensity: 1.0,
		SphereColors:   [3]string{"red", "green", "blue"},
		Floor:          material.Floor{Kind: material.FloorDefault},
	}
}

// NewThreeSpheresScene creates three spheres in a triangle above a floor plane,
// with a triangle spanning the sphere centres behind them
func NewThreeSpheresScene(opts Options) (*Scene, error) {
	const (
		radius = 30.0
		side   = radius + 20
		z      = 100.0
		top    = 70.0
		floorY = -40.0
	)

	camera, err := geometry.NewCamera(geometry.CameraConfig{
		Origin: core.NewVec3(0, 45, -75),
		Up:     core.NewVec3(0, 1, 0),
		Focus:  core.NewVec3(0, 35, z),
		FOV:    20,
		Width:  opts.Config.Width,
		Height: opts.Config.Height,
	})
	if err != nil {
		return nil, err
	}

	var sphereMaterials [3]material.Solid
	for i, name := range opts.SphereColors {
		m, err := material.SolidByName(name)
		if err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
		sphereMaterials[i] = m
	}

	left, err := geometry.NewSphere(core.NewVec3(-side, 0, z), radius, sphereMaterials[0])
	if err != nil {
		return nil, err
	}
	topSphere, err := geometry.NewSphere(core.NewVec3(0, top, z), radius, sphereMaterials[1])
	if err != nil {
		return nil, err
	}
	right, err := geometry.NewSphere(core.NewVec3(side, 0, z), radius, sphereMaterials[2])
	if err != nil {
		return nil, err
	}

	floor, err := geometry.NewPlane(core.NewVec3(0, floorY, 0), core.NewVec3(0, 1, 0), opts.Floor.Material())
	if err != nil {
		return nil, err
	}

	// Push the triangle behind the spheres so it does not cut through them
	behind := core.NewVec3(0, 0, radius+10)
	triangle, err := geometry.NewTriangle(
		left.Center.Add(behind),
		topSphere.Center.Add(behind),
		right.Center.Add(behind),
		material.YellowMaterial,
	)
	if err != nil {
		return nil, err
	}

	s := &Scene{
		Camera: camera,
		Light:  lights.NewPointLight(opts.LightPosition, opts.LightColor, opts.LightIntensity),
		Config: opts.Config,
	}
	s.Add(left, topSphere, right, floor, triangle)

	return s, nil
}

// NewSingleSphereScene creates one sphere straight ahead of a camera at the
// origin, lit from directly above
func NewSingleSphereScene(opts Options) (*Scene, error) {
	center := core.NewVec3(0, 0, 100)

	camera, err := geometry.NewCamera(geometry.CameraConfig{
		Origin: core.NewVec3(0, 0, 0),
		Up:     core.NewVec3(0, 1, 0),
		Focus:  center,
		FOV:    45,
		Width:  opts.Config.Width,
		Height: opts.Config.Height,
	})
	if err != nil {
		return nil, err
	}

	m, err := material.SolidByName(opts.SphereColors[0])
	if err != nil {
		return nil, fmt.Errorf("sphere: %w", err)
	}
	sphere, err := geometry.NewSphere(center, 30, m)
	if err != nil {
		return nil, err
	}

	s := &Scene{
		Camera: camera,
		Light:  lights.NewPointLight(core.NewVec3(0, 200, 100), opts.LightColor, opts.LightIntensity),
		Config: opts.Config,
	}
	s.Add(sphere)

	return s, nil
}

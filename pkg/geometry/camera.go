package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ErrInvalidCamera is returned for camera configurations that cannot form a basis
var ErrInvalidCamera = errors.New("invalid camera")

// CameraConfig contains all parameters needed to create a camera
type CameraConfig struct {
	Origin core.Vec3 // Eye position
	Up     core.Vec3 // World up direction
	Focus  core.Vec3 // Point the camera looks at
	FOV    float64   // Field of view in degrees
	Width  int       // Image width in pixels
	Height int       // Image height in pixels
}

// Camera is a pinhole camera producing one ray per pixel
type Camera struct {
	Origin      core.Vec3
	Up          core.Vec3 // Up as stored: the configured up, negated
	Focus       core.Vec3
	FOV         float64
	AspectRatio float64

	F core.Vec3 // Forward: origin towards focus
	S core.Vec3 // Side: F × Up
	U core.Vec3 // Camera up: S × F

	Alpha  float64 // Half the field of view, radians
	Width  float64 // Viewport width in world units at distance 1
	Height float64 // Viewport height in world units at distance 1

	resX, resY  int
	pixelWidth  float64
	pixelHeight float64
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) (*Camera, error) {
	if config.Width <= 0 || config.Height <= 0 {
		return nil, fmt.Errorf("%w: resolution %dx%d", ErrInvalidCamera, config.Width, config.Height)
	}
	if config.FOV <= 0 || config.FOV >= 180 {
		return nil, fmt.Errorf("%w: field of view %g outside (0, 180)", ErrInvalidCamera, config.FOV)
	}

	up := config.Up.Negate()

	f, err := config.Origin.VectorTo(config.Focus).NormalizeChecked()
	if err != nil {
		return nil, fmt.Errorf("%w: focus equals origin: %w", ErrInvalidCamera, err)
	}
	s, err := f.Cross(up).NormalizeChecked()
	if err != nil {
		return nil, fmt.Errorf("%w: up is parallel to view direction: %w", ErrInvalidCamera, err)
	}
	u := s.Cross(f)

	aspectRatio := float64(config.Width) / float64(config.Height)
	alpha := config.FOV * math.Pi / 180 / 2
	height := 2 * math.Tan(alpha)
	width := aspectRatio * height

	return &Camera{
		Origin:      config.Origin,
		Up:          up,
		Focus:       config.Focus,
		FOV:         config.FOV,
		AspectRatio: aspectRatio,
		F:           f,
		S:           s,
		U:           u,
		Alpha:       alpha,
		Width:       width,
		Height:      height,
		resX:        config.Width,
		resY:        config.Height,
		pixelWidth:  pixelExtent(width, config.Width),
		pixelHeight: pixelExtent(height, config.Height),
	}, nil
}

// pixelExtent spreads the viewport over res-1 steps so the first and last
// pixels sit on the viewport edges. A single pixel sits in the centre.
func pixelExtent(extent float64, res int) float64 {
	if res < 2 {
		return 0
	}
	return extent / float64(res-1)
}

// Resolution returns the image size the camera was built for
func (c *Camera) Resolution() (width, height int) {
	return c.resX, c.resY
}

// RayFor returns the primary ray through pixel (x, y); (0, 0) is the top-left pixel
func (c *Camera) RayFor(x, y int) core.Ray {
	xOffset := c.S.Multiply(c.offset(x, c.pixelWidth, c.Width))
	yOffset := c.U.Multiply(c.offset(y, c.pixelHeight, c.Height))
	return core.NewRay(c.Origin, c.F.Add(xOffset).Add(yOffset))
}

func (c *Camera) offset(i int, pixelExtent, extent float64) float64 {
	if pixelExtent == 0 {
		return 0
	}
	return float64(i)*pixelExtent - extent/2
}

func (c *Camera) String() string {
	return fmt.Sprintf("Camera(origin=%v, up=%v, focus=%v, fov=%g, aratio=%g)",
		c.Origin, c.Up, c.Focus, c.FOV, c.AspectRatio)
}

package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

type LightType string

const (
	LightTypePoint LightType = "point"
)

// Light is a light source the tracer can shade against
type Light interface {
	Type() LightType

	// Origin is the position shadow and lighting rays aim at
	Origin() core.Vec3

	// Intensity scales every lighting term
	Intensity() float64

	String() string
}

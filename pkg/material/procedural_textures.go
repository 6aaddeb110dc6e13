package material

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// CheckerBoard alternates two materials on a 3D grid of cubes with edge Size
type CheckerBoard struct {
	Size   float64
	First  Solid
	Second Solid
}

// NewCheckerBoard creates a procedural checkerboard texture
func NewCheckerBoard(size float64, first, second Solid) *CheckerBoard {
	return &CheckerBoard{
		Size:   size,
		First:  first,
		Second: second,
	}
}

// Resolve picks First on even cells and Second on odd cells
func (cb *CheckerBoard) Resolve(point core.Vec3) Solid {
	if cb.Size <= 0 {
		return cb.First
	}

	p := point.Multiply(1.0 / cb.Size)
	cell := cellIndex(p.X) + cellIndex(p.Y) + cellIndex(p.Z)
	if cell%2 == 0 {
		return cb.First
	}
	return cb.Second
}

// cellIndex is |floor(v)|, which changes by exactly one between neighbouring cells
func cellIndex(v float64) int64 {
	return int64(math.Abs(math.Floor(v)))
}

func (cb *CheckerBoard) String() string {
	return fmt.Sprintf("CheckerBoard(size=%g, %v, %v)", cb.Size, cb.First, cb.Second)
}

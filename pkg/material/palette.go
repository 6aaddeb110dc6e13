package material

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ErrUnknownMaterial is returned for names missing from the palette
var ErrUnknownMaterial = errors.New("unknown material")

// Named colours
var (
	Black    = core.NewColor(0, 0, 0)
	Red      = core.NewColor(255, 0, 0)
	Green    = core.NewColor(0, 255, 0)
	Blue     = core.NewColor(0, 0, 255)
	White    = Red.Add(Green).Add(Blue)
	Yellow   = Red.Add(Green)
	Grey     = core.NewColor(100, 100, 100)
	DarkGrey = core.NewColor(79, 79, 79)
)

// Lighting levels shared by the palette materials
const (
	paletteAmbient  = 0.4
	paletteDiffuse  = 0.9
	paletteSpecular = 0.0
)

// Palette materials
var (
	RedMaterial      = NewSolid(Red, paletteAmbient, paletteDiffuse, paletteSpecular, 5)
	GreenMaterial    = NewSolid(Green, paletteAmbient, paletteDiffuse, paletteSpecular, 5)
	BlueMaterial     = NewSolid(Blue, paletteAmbient, paletteDiffuse, paletteSpecular, 5)
	YellowMaterial   = NewSolid(Yellow, paletteAmbient, paletteDiffuse, paletteSpecular, 30)
	BlackMaterial    = NewSolid(Black, paletteAmbient, paletteDiffuse, paletteSpecular, 30)
	WhiteMaterial    = NewSolid(White, paletteAmbient, paletteDiffuse, paletteSpecular, 30)
	GreyMaterial     = NewSolid(Grey, paletteAmbient, paletteDiffuse, paletteSpecular, 30)
	DarkGreyMaterial = NewSolid(DarkGrey, paletteAmbient, paletteDiffuse, paletteSpecular, 30)
)

// DefaultCheckerSize is the cell size of the default floor texture
const DefaultCheckerSize = 8

// NewDefaultCheckerBoard returns the black and white floor texture
func NewDefaultCheckerBoard() *CheckerBoard {
	return NewCheckerBoard(DefaultCheckerSize, BlackMaterial, WhiteMaterial)
}

var solids = map[string]Solid{
	"black":    BlackMaterial,
	"red":      RedMaterial,
	"green":    GreenMaterial,
	"blue":     BlueMaterial,
	"yellow":   YellowMaterial,
	"white":    WhiteMaterial,
	"grey":     GreyMaterial,
	"darkgrey": DarkGreyMaterial,
}

// SolidByName looks up a palette material, case-insensitively
func SolidByName(name string) (Solid, error) {
	s, ok := solids[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Solid{}, fmt.Errorf("%w: %q", ErrUnknownMaterial, name)
	}
	return s, nil
}

// SolidNames lists the palette in sorted order
func SolidNames() []string {
	names := make([]string, 0, len(solids))
	for name := range solids {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FloorKind selects the material of the ground plane
type FloorKind int

const (
	FloorDefault FloorKind = iota // default checkerboard
	FloorSolid                    // one palette material
)

// Floor is a parsed floor material choice
type Floor struct {
	Kind  FloorKind
	Solid Solid
}

// ParseFloor maps a floor name to a Floor. An empty name or "default" select
// the checkerboard; any palette name selects that solid material.
func ParseFloor(name string) (Floor, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default", "checkerboard":
		return Floor{Kind: FloorDefault}, nil
	}

	s, err := SolidByName(name)
	if err != nil {
		return Floor{}, fmt.Errorf("floor: %w", err)
	}
	return Floor{Kind: FloorSolid, Solid: s}, nil
}

// Material returns the material the floor choice stands for
func (f Floor) Material() Material {
	if f.Kind == FloorSolid {
		return f.Solid
	}
	return NewDefaultCheckerBoard()
}

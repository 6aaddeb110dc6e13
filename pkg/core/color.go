package core

import (
	"fmt"
	"image/color"
	"math"
)

// MaxChannel is the largest value a colour channel can hold
const MaxChannel = 255

// Color is an 8-bit-per-channel RGB triple. Channels stay in [0, MaxChannel]
// through construction and every arithmetic operation.
type Color struct {
	R, G, B int
}

// Black is the background colour
var Black = Color{}

// NewColor creates a colour, clamping each channel
func NewColor(r, g, b int) Color {
	return Color{R: clampChannel(r), G: clampChannel(g), B: clampChannel(b)}
}

func clampChannel(c int) int {
	return max(0, min(MaxChannel, c))
}

func roundChannel(c float64) int {
	if math.IsNaN(c) {
		return 0
	}
	if c >= MaxChannel {
		return MaxChannel
	}
	if c <= 0 {
		return 0
	}
	return int(math.Round(c))
}

// Clamp returns the colour with every channel inside [0, MaxChannel]
func (c Color) Clamp() Color {
	return NewColor(c.R, c.G, c.B)
}

// Add returns the channel-wise sum
func (c Color) Add(other Color) Color {
	return NewColor(c.R+other.R, c.G+other.G, c.B+other.B)
}

// Subtract returns the channel-wise difference
func (c Color) Subtract(other Color) Color {
	return NewColor(c.R-other.R, c.G-other.G, c.B-other.B)
}

// Scale multiplies every channel by s, rounding to the nearest integer
func (c Color) Scale(s float64) Color {
	return Color{
		R: roundChannel(float64(c.R) * s),
		G: roundChannel(float64(c.G) * s),
		B: roundChannel(float64(c.B) * s),
	}
}

// Multiply modulates two colours channel by channel (a*b/255)
func (c Color) Multiply(other Color) Color {
	return Color{
		R: roundChannel(float64(c.R*other.R) / MaxChannel),
		G: roundChannel(float64(c.G*other.G) / MaxChannel),
		B: roundChannel(float64(c.B*other.B) / MaxChannel),
	}
}

// RGBA converts to an opaque image/color value
func (c Color) RGBA() color.RGBA {
	c = c.Clamp()
	return color.RGBA{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: 255}
}

func (c Color) String() string {
	return fmt.Sprintf("Color(%d,%d,%d)", c.R, c.G, c.B)
}

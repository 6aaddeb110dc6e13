package renderer

import (
	"image"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Pixel is one computed pixel as produced by a worker
type Pixel struct {
	X, Y  int
	Color core.Color
}

// PixelBuffer holds the finished colour of every pixel, row major
type PixelBuffer struct {
	Width  int
	Height int
	pixels []core.Color
}

// NewPixelBuffer creates a black buffer of the given size
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		Width:  width,
		Height: height,
		pixels: make([]core.Color, width*height),
	}
}

// Set stores the colour of pixel (x, y); coordinates outside the buffer are ignored
func (b *PixelBuffer) Set(x, y int, c core.Color) {
	if !b.inBounds(x, y) {
		return
	}
	b.pixels[y*b.Width+x] = c
}

// At returns the colour of pixel (x, y), black outside the buffer
func (b *PixelBuffer) At(x, y int) core.Color {
	if !b.inBounds(x, y) {
		return core.Black
	}
	return b.pixels[y*b.Width+x]
}

// Merge writes a worker's pixels into the buffer in any order
func (b *PixelBuffer) Merge(pixels []Pixel) {
	for _, p := range pixels {
		b.Set(p.X, p.Y, p.Color)
	}
}

// Image converts the buffer to an opaque RGBA image
func (b *PixelBuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			img.SetRGBA(x, y, b.At(x, y).RGBA())
		}
	}
	return img
}

func (b *PixelBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

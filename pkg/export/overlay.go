package export

import (
	"fmt"
	"image"
	"time"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
	"golang.org/x/image/font/basicfont"
)

const labelPadding = 4

// Caption summarises the render settings in one line
func Caption(rec Record) string {
	return fmt.Sprintf("%dx%d fov %g depth %d refl %g %v",
		rec.Width, rec.Height, rec.FOV, rec.MaxDepth, rec.Reflection, rec.Duration.Round(time.Millisecond))
}

// Label returns a copy of img with text drawn on a dark strip along the bottom edge
func Label(img image.Image, text string) image.Image {
	dc := gg.NewContextForImage(img)
	dc.SetFontFace(basicfont.Face7x13)

	width := float64(dc.Width())
	height := float64(dc.Height())
	_, textHeight := dc.MeasureString(text)
	strip := textHeight + 2*labelPadding

	dc.SetRGBA(0, 0, 0, 0.6)
	dc.DrawRectangle(0, height-strip, width, strip)
	dc.Fill()

	dc.SetRGB(1, 1, 1)
	dc.DrawStringAnchored(text, labelPadding, height-strip/2, 0, 0.5)

	return dc.Image()
}

// Thumbnail scales img to width pixels wide, keeping the aspect ratio
func Thumbnail(img image.Image, width int) image.Image {
	return resize.Resize(uint(width), 0, img, resize.Lanczos3)
}

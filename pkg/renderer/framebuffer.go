package renderer

import (
	"image"
	"image/color"

	"github.com/sarahkittyy/saraytracer/pkg/core"
)

// Framebuffer is a width×height, row-major buffer of RGB triples in [0,1].
// Row 0 is the TOP image row; stored values are already gamma-corrected.
// During a render each row is written by exactly one task.
type Framebuffer struct {
	Width  int
	Height int
	pixels []core.Vec3
}

// NewFramebuffer creates a zeroed framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// At returns the pixel at column x, row y (top-left origin)
func (fb *Framebuffer) At(x, y int) core.Vec3 {
	return fb.pixels[y*fb.Width+x]
}

// Set writes the pixel at column x, row y (top-left origin)
func (fb *Framebuffer) Set(x, y int, c core.Vec3) {
	fb.pixels[y*fb.Width+x] = c
}

// Pixels returns the underlying row-major pixel slice
func (fb *Framebuffer) Pixels() []core.Vec3 {
	return fb.pixels
}

// Equals returns true if both framebuffers have identical dimensions and pixels
func (fb *Framebuffer) Equals(other *Framebuffer) bool {
	if fb.Width != other.Width || fb.Height != other.Height {
		return false
	}
	for i := range fb.pixels {
		if !fb.pixels[i].Equals(other.pixels[i]) {
			return false
		}
	}
	return true
}

// ToImage quantizes the buffer into an 8-bit RGBA image for encoding
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c := fb.At(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(255 * c.X),
				G: uint8(255 * c.Y),
				B: uint8(255 * c.Z),
				A: 255,
			})
		}
	}
	return img
}

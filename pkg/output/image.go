package output

import (
	"image"
	"image/color"
)

// Pixel is a display-ready RGB triple with 8-bit channels
type Pixel struct {
	R, G, B uint8
}

// Image is a width×height grid of pixels, row-major with row 0 at the top
type Image struct {
	Width, Height int
	Pix           []Pixel
}

// NewImage creates a black image of the given dimensions
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]Pixel, width*height),
	}
}

// Set stores a pixel at (x, y), with y=0 the top row
func (img *Image) Set(x, y int, p Pixel) {
	img.Pix[y*img.Width+x] = p
}

// At returns the pixel at (x, y)
func (img *Image) At(x, y int) Pixel {
	return img.Pix[y*img.Width+x]
}

// SetRow stores a full row of pixels at once
func (img *Image) SetRow(y int, row []Pixel) {
	copy(img.Pix[y*img.Width:(y+1)*img.Width], row)
}

// ToNRGBA converts the buffer to a standard library image for the PNG, WebP
// and TGA encoders and for the downscale postprocess.
func (img *Image) ToNRGBA() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			p := img.At(x, y)
			out.SetNRGBA(x, y, color.NRGBA{R: p.R, G: p.G, B: p.B, A: 255})
		}
	}
	return out
}

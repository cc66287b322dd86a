package output

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/draw"
)

// Format identifies an output image encoding
type Format string

const (
	FormatPPM  Format = "ppm"
	FormatPNG  Format = "png"
	FormatWebP Format = "webp"
	FormatTGA  Format = "tga"
)

// ParseFormat maps a format name to a Format
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(name)) {
	case FormatPPM:
		return FormatPPM, nil
	case FormatPNG:
		return FormatPNG, nil
	case FormatWebP:
		return FormatWebP, nil
	case FormatTGA:
		return FormatTGA, nil
	default:
		return "", errors.New("unknown image format").WithTag("format", name)
	}
}

// Extension returns the file extension for the format, without the dot
func (f Format) Extension() string {
	return string(f)
}

// WritePPM encodes the image as a binary P6 portable pixmap: ASCII header,
// then raw RGB bytes row-major with the top row first.
func (img *Image) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return err
	}
	for _, p := range img.Pix {
		if _, err := bw.Write([]byte{p.R, p.G, p.B}); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Encode writes the image in the given format
func (img *Image) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatPPM:
		return img.WritePPM(w)
	case FormatPNG:
		return png.Encode(w, img.ToNRGBA())
	case FormatWebP:
		return nativewebp.Encode(w, img.ToNRGBA(), nil)
	case FormatTGA:
		return tga.Encode(w, img.ToNRGBA())
	default:
		return errors.New("unknown image format").WithTag("format", string(format))
	}
}

// WriteFile creates path (and any missing parent directories) and encodes
// the image into it.
func (img *Image) WriteFile(path string, format Format) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.New("creating output directory").WithTag("dir", dir).Wrap(err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.New("creating output file").WithTag("path", path).Wrap(err)
	}
	defer f.Close()

	if err := img.Encode(f, format); err != nil {
		return errors.New("encoding image").
			WithTag("path", path).
			WithTag("format", string(format)).
			Wrap(err)
	}
	return nil
}

// Downscale resizes by 1/factor with Catmull-Rom filtering. Rendering at
// factor× resolution and downscaling is an alternative antialiasing route to
// per-pixel multisampling.
func (img *Image) Downscale(factor int) *Image {
	if factor <= 1 {
		return img
	}

	src := img.ToNRGBA()
	dstW, dstH := img.Width/factor, img.Height/factor
	dst := image.NewNRGBA(image.Rect(0, 0, dstW, dstH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	out := NewImage(dstW, dstH)
	for y := 0; y < dstH; y++ {
		for x := 0; x < dstW; x++ {
			c := dst.NRGBAAt(x, y)
			out.Set(x, y, Pixel{R: c.R, G: c.G, B: c.B})
		}
	}
	return out
}

// Package sample converts bitmaps to and from the packed pixel format the
// models consume: one uint32 per pixel, R|G<<8|B<<16|A<<24.
package sample

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	_ "image/gif"
	_ "image/jpeg"
)

// Bitmap is a decoded image as packed pixels in row-major order.
type Bitmap struct {
	Pixels []uint32
	W, H   int
}

// Pack encodes 8-bit channels into the packed pixel layout.
func Pack(r, g, b, a uint8) uint32 {
	return uint32(r) | uint32(g)<<8 | uint32(b)<<16 | uint32(a)<<24
}

// Unpack splits a packed pixel into 8-bit channels.
func Unpack(p uint32) (r, g, b, a uint8) {
	return uint8(p), uint8(p >> 8), uint8(p >> 16), uint8(p >> 24)
}

// FromImage converts any decoded image into a Bitmap.
func FromImage(img image.Image) Bitmap {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]uint32, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.RGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.RGBA)
			pixels[x+y*w] = Pack(c.R, c.G, c.B, c.A)
		}
	}
	return Bitmap{Pixels: pixels, W: w, H: h}
}

// Load decodes an image file into a Bitmap.
func Load(path string) (Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return Bitmap{}, fmt.Errorf("opening sample: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return Bitmap{}, fmt.Errorf("decoding %s: %w", path, err)
	}
	return FromImage(img), nil
}

// Save writes a packed pixel buffer as a PNG file.
func Save(path string, pixels []uint32, w, h int) error {
	if len(pixels) != w*h {
		return fmt.Errorf("pixel buffer length %d does not match %dx%d", len(pixels), w, h)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i, p := range pixels {
		r, g, b, a := Unpack(p)
		base := i * 4
		img.Pix[base+0] = r
		img.Pix[base+1] = g
		img.Pix[base+2] = b
		img.Pix[base+3] = a
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}

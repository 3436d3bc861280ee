package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"

	"github.com/achilleasa/go-raytrace/types"
)

// A Frame is an 8-bit per channel RGB pixel buffer. Rows are stored top to
// bottom. Concurrent writes are safe as long as they target disjoint rows.
type Frame struct {
	width  uint32
	height uint32
	pixels []uint8
}

// Allocate a black frame with the given dimensions.
func NewFrame(width, height uint32) *Frame {
	f := &Frame{}
	f.Resize(width, height)
	return f
}

// Get frame width.
func (f *Frame) Width() uint32 {
	return f.width
}

// Get frame height.
func (f *Frame) Height() uint32 {
	return f.height
}

// Reallocate the pixel buffer for new frame dimensions. Existing pixel data
// is discarded.
func (f *Frame) Resize(width, height uint32) {
	f.width = width
	f.height = height
	f.pixels = make([]uint8, 3*int(width)*int(height))
}

// Clamp each channel of c to [0, 1], quantize it to 8 bits and store it at
// pixel (x, y).
func (f *Frame) SetPixel(x, y uint32, c types.Vec3) {
	offset := f.offset(x, y)
	c = c.Clamp(0, 1)
	f.pixels[offset] = quantize(c[0])
	f.pixels[offset+1] = quantize(c[1])
	f.pixels[offset+2] = quantize(c[2])
}

// Get the RGB values for pixel (x, y).
func (f *Frame) Pixel(x, y uint32) (r, g, b uint8) {
	offset := f.offset(x, y)
	return f.pixels[offset], f.pixels[offset+1], f.pixels[offset+2]
}

// Write frame as a binary PPM (P6) image.
func (f *Frame) WritePPM(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "P6 %d %d 255\n", f.width, f.height); err != nil {
		return err
	}
	_, err := w.Write(f.pixels)
	return err
}

// Convert frame to an image.
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(f.width), int(f.height)))
	for y := uint32(0); y < f.height; y++ {
		for x := uint32(0); x < f.width; x++ {
			r, g, b := f.Pixel(x, y)
			img.SetRGBA(int(x), int(y), color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// Save frame to a file. The image format is selected using the file
// extension; ".ppm" files are written as binary PPM and everything else as PNG.
func (f *Frame) Save(filename string) error {
	if strings.ToLower(filepath.Ext(filename)) != ".ppm" {
		return gg.NewContextForRGBA(f.Image()).SavePNG(filename)
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	if err = f.WritePPM(w); err != nil {
		return err
	}
	return w.Flush()
}

func (f *Frame) offset(x, y uint32) int {
	return 3 * (int(y)*int(f.width) + int(x))
}

func quantize(v float32) uint8 {
	return uint8(v*255 + 0.5)
}

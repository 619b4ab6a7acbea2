package render

import (
	"image"
	stdcolor "image/color"

	"github.com/cmounce/plasma/internal/color"
)

// Image is a packed RGB24 frame.  It avoids the stdlib's alpha channel and
// interface overhead in the per-pixel hot path; ToNRGBA converts when a
// stdlib image is needed.
type Image struct {
	Width  int
	Height int
	Pix    []uint8 // 3 bytes per pixel, row-major
}

// NewImage allocates a black image.
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}
}

// Plot sets the pixel at (x, y).
func (img *Image) Plot(x, y int, c color.Color) {
	offset := (x + y*img.Width) * 3
	img.Pix[offset] = c.R
	img.Pix[offset+1] = c.G
	img.Pix[offset+2] = c.B
}

// At returns the pixel at (x, y).
func (img *Image) At(x, y int) color.Color {
	offset := (x + y*img.Width) * 3
	return color.Color{R: img.Pix[offset], G: img.Pix[offset+1], B: img.Pix[offset+2]}
}

// ToNRGBA copies the frame into a stdlib image for encoders and resizers.
func (img *Image) ToNRGBA() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	for i := 0; i < img.Width*img.Height; i++ {
		src := i * 3
		dst := i * 4
		out.Pix[dst] = img.Pix[src]
		out.Pix[dst+1] = img.Pix[src+1]
		out.Pix[dst+2] = img.Pix[src+2]
		out.Pix[dst+3] = 0xff
	}
	return out
}

// FromNRGBA converts a stdlib image back into a packed frame, dropping
// alpha.  Used after upscaling.
func FromNRGBA(src *image.NRGBA) *Image {
	bounds := src.Bounds()
	img := NewImage(bounds.Dx(), bounds.Dy())
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			i := src.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)
			img.Plot(x, y, color.Color{R: src.Pix[i], G: src.Pix[i+1], B: src.Pix[i+2]})
		}
	}
	return img
}

// ToPaletted maps the frame onto a palette for indexed-color encoding.
// Every pixel an engine render produces is already a palette color, so
// lookup is exact; anything else (say, an upscaled edge artifact) falls
// back to nearest-by-gamma-distance.
func (img *Image) ToPaletted(palette []color.Color) *image.Paletted {
	stdPalette := make(stdcolor.Palette, len(palette))
	index := make(map[color.Color]uint8, len(palette))
	for i, c := range palette {
		stdPalette[i] = stdcolor.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
		if _, ok := index[c]; !ok {
			index[c] = uint8(i)
		}
	}

	out := image.NewPaletted(image.Rect(0, 0, img.Width, img.Height), stdPalette)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := img.At(x, y)
			i, ok := index[c]
			if !ok {
				i = uint8(stdPalette.Index(stdcolor.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}))
				index[c] = i
			}
			out.SetColorIndex(x, y, i)
		}
	}
	return out
}

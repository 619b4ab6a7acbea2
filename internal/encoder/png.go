package encoder

import (
	"fmt"

	"github.com/disintegration/imaging"

	"github.com/cmounce/plasma/internal/render"
)

// Upscale enlarges a frame by an integer factor using nearest-neighbor
// sampling, so rendering can happen at a small size and the chunky pixels
// stay crisp.  A factor of 1 returns the frame unchanged.
func Upscale(img *render.Image, factor int) *render.Image {
	if factor < 1 {
		panic("encoder: upscale factor must be >= 1")
	}
	if factor == 1 {
		return img
	}
	resized := imaging.Resize(img.ToNRGBA(), img.Width*factor, img.Height*factor,
		imaging.NearestNeighbor)
	return render.FromNRGBA(resized)
}

// SavePNG writes a single frame as a PNG file.
func SavePNG(img *render.Image, path string) error {
	if err := imaging.Save(img.ToNRGBA(), path); err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	return nil
}

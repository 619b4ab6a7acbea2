// Package render turns genomes into frames: it owns the per-pixel loop
// that samples the plasma field and resolves colors through the color
// engine.  Rendering is deterministic; the row parallelism only changes
// how fast pixels land, never their values.
package render

import (
	"runtime"
	"sync"

	"github.com/cmounce/plasma/internal/color"
	"github.com/cmounce/plasma/internal/colormap"
	"github.com/cmounce/plasma/internal/fastmath"
	"github.com/cmounce/plasma/internal/formula"
	"github.com/cmounce/plasma/internal/genetics"
	"github.com/cmounce/plasma/internal/settings"
)

// Renderer renders one genome under fixed settings.  Safe for concurrent
// Render calls: all state is read-only after construction.
type Renderer struct {
	formulas  formula.Formulas
	mapper    *colormap.ColorMapper
	dithering bool
	workers   int
}

// NewRenderer decodes the genome and precomputes the color lookup tables.
// This is the expensive step (k-means, dither patterns); Render itself
// only does table lookups.
func NewRenderer(genome genetics.Genome, s settings.Rendering) *Renderer {
	return &Renderer{
		formulas:  formula.FromChromosome(genome.Pattern),
		mapper:    colormap.New(genome.Color, s),
		dithering: s.Dithering,
		workers:   runtime.NumCPU(),
	}
}

// Palette returns the gamma-encoded palette backing this renderer's
// output, for indexed-color encoders.
func (r *Renderer) Palette() []color.Color {
	return r.mapper.GetPalette()
}

// Render draws the plasma field at the given cyclic time into img.
// Screen coordinates are scaled so the smaller dimension spans [-1, 1],
// centered.
func (r *Renderer) Render(img *Image, time float32) {
	minDim := img.Width
	if img.Height < minDim {
		minDim = img.Height
	}
	scaleMul := 2 / float32(minDim)
	scaleXOffset := -float32(img.Width) / 2 * scaleMul
	scaleYOffset := -float32(img.Height) / 2 * scaleMul
	adjTime := fastmath.Wrap(time)

	// Rows are independent, so deal them out to a bounded worker pool.
	var wg sync.WaitGroup
	sem := make(chan struct{}, r.workers)
	for y := 0; y < img.Height; y++ {
		wg.Add(1)
		go func(y int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			fy := scaleMul*float32(y) + scaleYOffset
			for x := 0; x < img.Width; x++ {
				fx := scaleMul*float32(x) + scaleXOffset
				value := r.formulas.GetValue(fx, fy, adjTime)
				if r.dithering {
					img.Plot(x, y, r.mapper.GetDitheredColor(value, x, y))
				} else {
					img.Plot(x, y, r.mapper.GetNearestColor(value))
				}
			}
		}(y)
	}
	wg.Wait()
}

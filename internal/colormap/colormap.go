// Package colormap turns a color chromosome into fast per-pixel color
// lookup.  Construction decodes genes into gradient control points, builds
// a palette from dense gradient samples, and precomputes one of two lookup
// tables; after that a ColorMapper is immutable and safe to read from any
// number of goroutines.
package colormap

import (
	"github.com/chewxy/math32"

	"github.com/cmounce/plasma/internal/color"
	"github.com/cmounce/plasma/internal/fastmath"
	"github.com/cmounce/plasma/internal/genetics"
	"github.com/cmounce/plasma/internal/settings"
)

// LookupTableSize is the gradient sampling resolution: positions quantize
// to this many buckets, and it is the default palette size.
const LookupTableSize = 512

// activationThreshold gates control-point genes: a gene contributes a
// point only if its first byte exceeds this, so mutations can switch
// points on and off without scrambling the rest of the gene.
const activationThreshold = 140

// ControlPointFromGene decodes a 5-byte color gene
// [activation, colorX, colorY, lightness, position] into a control point,
// or reports ok=false for an inactive gene.
//
// colorX, colorY and lightness map over [0, 1] inclusive (÷255); position
// maps over [0, 1) (÷256) so that bytes 0 and 255 stay distinct instead of
// aliasing across the wrap boundary.
func ControlPointFromGene(gene genetics.Gene) (color.ControlPoint, bool) {
	if len(gene.Data) != genetics.ColorGeneSize {
		panic("colormap: control point gene must be 5 bytes")
	}
	if gene.Data[0] <= activationThreshold {
		return color.ControlPoint{}, false
	}
	colorX := float32(gene.Data[1]) / 255
	colorY := float32(gene.Data[2]) / 255
	lightness := float32(gene.Data[3]) / 255
	position := float32(gene.Data[4]) / 256
	return color.ControlPoint{
		Color:    color.FromSquareHSL(colorX, colorY, lightness),
		Position: position,
	}, true
}

// ColorMapper resolves a gradient position (and, when dithering, a pixel
// coordinate) to a gamma-encoded color in O(1).  Exactly one of the two
// lookup tables is populated; calling the accessor for the other mode is a
// programmer error and panics.
type ColorMapper struct {
	gammaPalette   []color.Color
	lookupNearest  []uint16
	lookupDithered []color.DitherPattern
}

// New builds a ColorMapper for a color chromosome under the given
// rendering settings.
func New(chromosome genetics.Chromosome, s settings.Rendering) *ColorMapper {
	// Decode active genes and sample the resulting gradient densely.
	var controlPoints []color.ControlPoint
	for _, gene := range chromosome.Genes {
		if cp, ok := ControlPointFromGene(gene); ok {
			controlPoints = append(controlPoints, cp)
		}
	}
	gradient := color.NewGradient(controlPoints)
	samples := make([]color.LinearColor, LookupTableSize)
	for i := range samples {
		samples[i] = gradient.GetColor(float32(i) / LookupTableSize)
	}

	// Reduce the samples to a palette.  Without dithering a flat lookup
	// cannot reconstruct extreme colors by mixing, so range maximization
	// compensates by pinning the palette to the gradient's extremes.
	paletteSize := s.PaletteSize
	if paletteSize == 0 {
		paletteSize = LookupTableSize
	}
	palette := color.NewPalette(paletteSize, samples, !s.Dithering)

	cm := &ColorMapper{
		gammaPalette: make([]color.Color, len(palette.Colors)),
	}
	for i, c := range palette.Colors {
		cm.gammaPalette[i] = c.ToGamma()
	}

	if s.Dithering {
		cm.lookupDithered = make([]color.DitherPattern, len(samples))
		for i, sample := range samples {
			cm.lookupDithered[i] = palette.GetDitherPattern(sample)
		}
	} else {
		cm.lookupNearest = make([]uint16, len(samples))
		for i, sample := range samples {
			cm.lookupNearest[i] = uint16(palette.GetNearestIndex(sample))
		}
	}
	return cm
}

// tableIndex quantizes a cyclic gradient position to a lookup bucket.
func tableIndex(position float32) int {
	floatIndex := math32.Floor(fastmath.Wrap(position) * LookupTableSize)
	return int(floatIndex) % LookupTableSize
}

// GetNearestColor returns the palette color nearest to the gradient at
// position.  Panics if the mapper was built with dithering on.
func (cm *ColorMapper) GetNearestColor(position float32) color.Color {
	if cm.lookupNearest == nil {
		panic("colormap: ColorMapper was built with dithering on")
	}
	return cm.gammaPalette[cm.lookupNearest[tableIndex(position)]]
}

// GetDitheredColor returns the dithered color for the gradient at
// position, as seen at pixel (x, y).  Panics if the mapper was built with
// dithering off.
func (cm *ColorMapper) GetDitheredColor(position float32, x, y int) color.Color {
	if cm.lookupDithered == nil {
		panic("colormap: ColorMapper was built with dithering off")
	}
	pattern := cm.lookupDithered[tableIndex(position)]
	return cm.gammaPalette[pattern.GetPaletteIndex(x, y)]
}

// Dithered reports which mode the mapper was built in.
func (cm *ColorMapper) Dithered() bool {
	return cm.lookupDithered != nil
}

// GetPalette returns a copy of the final gamma-encoded palette, in index
// order.  GIF encoders use it as the global color table.
func (cm *ColorMapper) GetPalette() []color.Color {
	palette := make([]color.Color, len(cm.gammaPalette))
	copy(palette, cm.gammaPalette)
	return palette
}

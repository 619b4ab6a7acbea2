package color

import "sort"

// bayerMatrix is the 8×8 ordered-dither threshold matrix.  Each value
// 0..63 appears exactly once, so a pattern whose proportions sum to 64
// covers an 8×8 tile with exact per-color counts.
var bayerMatrix = [8][8]uint8{
	{0, 48, 12, 60, 3, 51, 15, 63},
	{32, 16, 44, 28, 35, 19, 47, 31},
	{8, 56, 4, 52, 11, 59, 7, 55},
	{40, 24, 36, 20, 43, 27, 39, 23},
	{2, 50, 14, 62, 1, 49, 13, 61},
	{34, 18, 46, 30, 33, 17, 45, 29},
	{10, 58, 6, 54, 9, 57, 5, 53},
	{42, 26, 38, 22, 41, 25, 37, 21},
}

// DitherPattern approximates one target color as a mixture of up to four
// palette colors with integer proportions summing to 64, plus a spatial
// selector that deals the mixture out over an 8×8 tile.
type DitherPattern struct {
	paletteIndexes     [4]uint16 // when dithering, mix these colors
	paletteProportions [4]uint8  // in these proportions (total of 64)
}

// NewDitherPattern works out which palette colors to mix to approximate
// color.  Based off of Yliluoma's work:
// http://bisqwit.iki.fi/story/howto/dither/jy/
//
// It runs 64 synthetic trials: each trial picks the palette color nearest
// to the target adjusted by the accumulated error, then adds the chosen
// color's error (against the true target) to the accumulator.  The first
// 16 trials — or fewer, once 4 distinct colors are in play — may introduce
// new colors; later trials only redistribute counts among those already
// chosen.
func NewDitherPattern(color LinearColor, palette Palette) DitherPattern {
	const (
		maxColors        = 4
		maxNewColorIters = 16
		numTrials        = 64
	)
	subpalette := Palette{Colors: make([]LinearColor, 0, maxColors)}
	paletteIndexes := make([]int, 0, maxColors)
	counts := make([]int, 0, maxColors)
	var errs [3]int32

	for i := 0; i < numTrials; i++ {
		// Target for this trial = original color − accumulated error,
		// clamped into channel range.
		subError := func(component uint16, err int32) uint16 {
			v := int32(component) - err
			if v < 0 {
				v = 0
			} else if v > 65535 {
				v = 65535
			}
			return uint16(v)
		}
		target := LinearColor{
			R: subError(color.R, errs[0]),
			G: subError(color.G, errs[1]),
			B: subError(color.B, errs[2]),
		}

		allowNewColors := i < maxNewColorIters && len(subpalette.Colors) < maxColors
		var paletteIndex, subpaletteIndex int
		known := false
		if allowNewColors {
			// Search the whole palette.
			paletteIndex = palette.GetNearestIndex(target)
			for j, pi := range paletteIndexes {
				if pi == paletteIndex {
					subpaletteIndex, known = j, true
					break
				}
			}
		} else {
			// Search just the colors already chosen.
			subpaletteIndex = subpalette.GetNearestIndex(target)
			paletteIndex = paletteIndexes[subpaletteIndex]
			known = true
		}

		if known {
			counts[subpaletteIndex]++
		} else {
			subpalette.Colors = append(subpalette.Colors, palette.Colors[paletteIndex])
			paletteIndexes = append(paletteIndexes, paletteIndex)
			counts = append(counts, 1)
		}

		// The correction term uses the true target, not the adjusted one.
		chosen := palette.Colors[paletteIndex]
		errs[0] += int32(chosen.R) - int32(color.R)
		errs[1] += int32(chosen.G) - int32(color.G)
		errs[2] += int32(chosen.B) - int32(color.B)
	}

	// Sort slots by (palette index, count).  Sorting keeps dithered output
	// consistent: with a black/white palette and a black->white gradient,
	// unsorted slots would swap black and white at the halfway point and
	// leave a visible seam.
	type slot struct{ index, count int }
	slots := make([]slot, len(paletteIndexes))
	for i := range slots {
		slots[i] = slot{paletteIndexes[i], counts[i]}
	}
	sort.Slice(slots, func(a, b int) bool {
		if slots[a].index != slots[b].index {
			return slots[a].index < slots[b].index
		}
		return slots[a].count < slots[b].count
	})

	var pattern DitherPattern
	for i, s := range slots {
		pattern.paletteIndexes[i] = uint16(s.index)
		pattern.paletteProportions[i] = uint8(s.count)
	}
	return pattern
}

// GetPaletteIndex maps a pixel coordinate to one of the mixture's palette
// indexes.  Across any 8×8 tile each color appears in exactly its
// proportion of the 64 cells.
func (d DitherPattern) GetPaletteIndex(x, y int) int {
	bayerValue := bayerMatrix[y%8][x%8]
	cumulative := d.paletteProportions[0]
	ditherIndex := 0
	for cumulative <= bayerValue {
		ditherIndex++
		cumulative += d.paletteProportions[ditherIndex]
	}
	return int(d.paletteIndexes[ditherIndex])
}

package color

// MaxPaletteSize is the largest palette the engine will build; indexes fit
// in a uint16.
const MaxPaletteSize = 65535

// Palette is an ordered set of representative colors reduced from dense
// gradient samples.  Entries move only during construction; afterward a
// Palette is read-only and safe to share.
type Palette struct {
	Colors []LinearColor
}

// NewPalette generates an optimized palette of exactly paletteSize colors
// from the provided samples, using k-means clustering with a fixed,
// deterministic initialization.
//
// With maximizeRange set, palette entries sitting on the outside of the
// sampled color cloud are first pinned to the most extreme samples in
// their direction, so the reduced palette keeps the gradient's full range
// instead of averaging it away.
func NewPalette(paletteSize int, samples []LinearColor, maximizeRange bool) Palette {
	if paletteSize < 2 || paletteSize > MaxPaletteSize {
		panic("color: palette size out of range")
	}

	// Shortcut: not reducing the number of colors, so the samples are the
	// palette, padded out with black.
	if len(samples) <= paletteSize {
		colors := make([]LinearColor, 0, paletteSize)
		colors = append(colors, samples...)
		for len(colors) < paletteSize {
			colors = append(colors, LinearColor{})
		}
		return Palette{Colors: colors}
	}

	// Initial palette: subsample at evenly spaced indexes.
	colors := make([]LinearColor, 0, paletteSize)
	subsampleDistance := float32(len(samples)) / float32(paletteSize)
	for i := 0; i < paletteSize; i++ {
		colors = append(colors, samples[int(float32(i)*subsampleDistance)])
	}
	palette := Palette{Colors: colors}

	pinned := map[int]bool{}
	if maximizeRange {
		pinned = palette.pinOutsideEntries(samples)
	}

	// k-means: assign each sample to its nearest palette entry, recenter
	// each unpinned entry at its group's mean, repeat until stable.  Each
	// step cannot increase total distortion, and the state space is
	// discrete, so this terminates.
	updated := true
	for updated {
		groups := make([][]LinearColor, paletteSize)
		for _, sample := range samples {
			i := palette.GetNearestIndex(sample)
			groups[i] = append(groups[i], sample)
		}

		updated = false
		for i, group := range groups {
			if len(group) == 0 || pinned[i] {
				continue
			}
			avg := average(group)
			if palette.Colors[i] != avg {
				palette.Colors[i] = avg
				updated = true
			}
		}
	}
	return palette
}

// pinOutsideEntries replaces the palette entries on the outside of the
// color cloud with the most extreme samples in their direction, and
// returns the set of their indexes so k-means leaves them alone.
func (p Palette) pinOutsideEntries(samples []LinearColor) map[int]bool {
	// Every entry repels every other with force 1/distance³.
	vectors := make([]vec3, len(p.Colors))
	for i, c := range p.Colors {
		vectors[i] = c.vec3()
	}
	forces := make([]vec3, len(vectors))
	for i, v := range vectors {
		var sum vec3
		for _, other := range vectors {
			raw := v.sub(other)
			mag2 := raw.magnitudeSq()
			scale := mag2 * mag2
			if scale > 0 {
				raw = raw.scale(1 / scale)
			}
			sum = sum.add(raw)
		}
		forces[i] = sum
	}

	// An entry is outside if no other entry lies further along its own
	// force direction.
	pinned := map[int]bool{}
	for i, force := range forces {
		outside := true
		for _, other := range vectors {
			if force.dot(other.sub(vectors[i])) > 0 {
				outside = false
				break
			}
		}
		if !outside {
			continue
		}
		// Pin to the sample that reaches furthest in the force direction.
		best := 0
		bestDot := samples[0].vec3().dot(force)
		for j := 1; j < len(samples); j++ {
			if d := samples[j].vec3().dot(force); d > bestDot {
				best, bestDot = j, d
			}
		}
		p.Colors[i] = samples[best]
		pinned[i] = true
	}
	return pinned
}

// GetNearestIndex returns the index of the palette color nearest to color.
// Ties go to the lowest index.
func (p Palette) GetNearestIndex(color LinearColor) int {
	if len(p.Colors) == 0 {
		panic("color: palette has no colors")
	}
	best := 0
	bestDist := color.distanceSq(p.Colors[0])
	for i := 1; i < len(p.Colors); i++ {
		if d := color.distanceSq(p.Colors[i]); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// GetDitherPattern returns a DitherPattern approximating color with a
// mixture of palette entries.
func (p Palette) GetDitherPattern(color LinearColor) DitherPattern {
	return NewDitherPattern(color, p)
}

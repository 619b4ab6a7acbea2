package color

import "testing"

func TestNewDitherPattern(t *testing.T) {
	palette := NewPalette(2, []LinearColor{black, white}, false)
	d := NewDitherPattern(NewLinearColorF32(0.5, 0.5, 0.5), palette)
	if d.paletteIndexes != [4]uint16{0, 1, 0, 0} {
		t.Errorf("indexes = %v, want [0 1 0 0]", d.paletteIndexes)
	}
	if d.paletteProportions != [4]uint8{32, 32, 0, 0} {
		t.Errorf("proportions = %v, want [32 32 0 0]", d.paletteProportions)
	}
}

func TestDitherProportionsSumTo64(t *testing.T) {
	// Whatever the target, the four proportions always total exactly 64.
	samples := make([]LinearColor, 512)
	for i := range samples {
		samples[i] = FromHSL(float32(i)/512, 1, 0.5)
	}
	palette := NewPalette(8, samples, false)
	targets := []LinearColor{
		black, white,
		NewLinearColorF32(0.5, 0.5, 0.5),
		NewLinearColor(1, 2, 3),
		FromHSL(0.123, 0.8, 0.4),
		samples[100],
	}
	for _, target := range targets {
		d := NewDitherPattern(target, palette)
		sum := 0
		for _, p := range d.paletteProportions {
			sum += int(p)
		}
		if sum != 64 {
			t.Errorf("target %v: proportions %v sum to %d, want 64",
				target, d.paletteProportions, sum)
		}
	}
}

func TestDitherPatternExactTarget(t *testing.T) {
	// A target that is itself a palette color dithers to a solid fill.
	palette := NewPalette(2, []LinearColor{black, white}, false)
	d := NewDitherPattern(black, palette)
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			if got := d.GetPaletteIndex(x, y); got != 0 {
				t.Fatalf("(%d,%d): got index %d, want 0", x, y, got)
			}
		}
	}
}

func TestDitherPatternGetPaletteIndex(t *testing.T) {
	testProportions := func(proportions [4]uint8) {
		t.Helper()
		d := DitherPattern{
			paletteIndexes:     [4]uint16{0, 1, 2, 3},
			paletteProportions: proportions,
		}
		var counts [4]uint8
		for x := 0; x < 8; x++ {
			for y := 0; y < 8; y++ {
				counts[d.GetPaletteIndex(x, y)]++
			}
		}
		if counts != proportions {
			t.Errorf("proportions %v: dithering produced counts %v", proportions, counts)
		}
	}

	// Basic cases.
	testProportions([4]uint8{16, 16, 16, 16})
	testProportions([4]uint8{0, 32, 32, 0})

	// Solid colors.
	testProportions([4]uint8{64, 0, 0, 0})
	testProportions([4]uint8{0, 64, 0, 0})
	testProportions([4]uint8{0, 0, 0, 64})

	// 1:63 splits.
	testProportions([4]uint8{1, 63, 0, 0})
	testProportions([4]uint8{1, 0, 63, 0})
	testProportions([4]uint8{63, 1, 0, 0})
	testProportions([4]uint8{63, 0, 1, 0})
}

func TestBayerMatrixIsAPermutation(t *testing.T) {
	var seen [64]bool
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			v := bayerMatrix[y][x]
			if v > 63 {
				t.Fatalf("value %d out of range", v)
			}
			if seen[v] {
				t.Fatalf("value %d appears twice", v)
			}
			seen[v] = true
		}
	}
}

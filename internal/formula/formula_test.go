package formula

import (
	"math/rand"
	"testing"

	"github.com/cmounce/plasma/internal/genetics"
)

func TestByteToIFloatIsIntegral(t *testing.T) {
	for b := 0; b < 256; b++ {
		v := byteToIFloat(byte(b))
		if v != float32(int(v)) {
			t.Fatalf("byteToIFloat(%d) = %v, not integral", b, v)
		}
		if v < -8 || v > 8 {
			t.Fatalf("byteToIFloat(%d) = %v, out of [-8, 8]", b, v)
		}
	}
}

func TestByteToFloatRange(t *testing.T) {
	if byteToFloat(0) != 0 {
		t.Error("byteToFloat(0) != 0")
	}
	if got := byteToFloat(255); got <= 3.9 || got >= 4 {
		t.Errorf("byteToFloat(255) = %v, want just under 4", got)
	}
}

func TestFormulasLoopSeamlessly(t *testing.T) {
	// Integer time coefficients mean t=0 and t=1 give identical fields.
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 10; trial++ {
		f := FromChromosome(genetics.RandChromosome(rng,
			genetics.NumPatternGenes, genetics.PatternGeneSize))
		for _, pt := range [][2]float32{{0, 0}, {0.5, -0.25}, {-1, 1}} {
			v0 := f.GetValue(pt[0], pt[1], 0)
			v1 := f.GetValue(pt[0], pt[1], 1)
			d := v0 - v1
			if d < 0 {
				d = -d
			}
			if d > 1e-4 {
				t.Errorf("trial %d at %v: value %v at t=0 but %v at t=1", trial, pt, v0, v1)
			}
		}
	}
}

func TestFormulasDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	c := genetics.RandChromosome(rng, genetics.NumPatternGenes, genetics.PatternGeneSize)
	f1 := FromChromosome(c)
	f2 := FromChromosome(c)
	for _, pt := range [][3]float32{{0, 0, 0}, {0.3, 0.7, 0.1}, {-0.5, 0.25, 0.99}} {
		if f1.GetValue(pt[0], pt[1], pt[2]) != f2.GetValue(pt[0], pt[1], pt[2]) {
			t.Fatalf("same chromosome, different values at %v", pt)
		}
	}
}

func TestFromChromosomeRejectsWrongShape(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for wrong gene count")
		}
	}()
	rng := rand.New(rand.NewSource(9))
	FromChromosome(genetics.RandChromosome(rng, 2, genetics.PatternGeneSize))
}

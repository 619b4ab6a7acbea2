// Package formula decodes pattern genes into the periodic wave formulas
// whose sum is the scalar field sampled per pixel.  Time lives on a cyclic
// [0, 1) axis, and every time coefficient is an integer, so the field at
// t=0 equals the field at t=1 and the animation loops seamlessly.
package formula

import (
	"github.com/chewxy/math32"

	"github.com/cmounce/plasma/internal/fastmath"
	"github.com/cmounce/plasma/internal/genetics"
)

// byteToFloat maps a gene byte to [0, ~4).
func byteToFloat(b byte) float32 {
	return float32(b) / 64
}

// byteToIFloat maps a gene byte to an integer in [-8, 8].  Integer time
// coefficients are what keep the loop seamless.
func byteToIFloat(b byte) float32 {
	return math32.Round(float32(b)/255*16 - 8)
}

// waveFormula is a plane wave: stripes that slide over time.
type waveFormula struct {
	xStretch  float32
	yStretch  float32
	scale     float32
	waveSpeed float32
}

func newWaveFormula(gene genetics.Gene) waveFormula {
	if len(gene.Data) != genetics.PatternGeneSize {
		panic("formula: bad gene size")
	}
	return waveFormula{
		xStretch:  byteToFloat(gene.Data[0]),
		yStretch:  byteToFloat(gene.Data[1]),
		scale:     byteToFloat(gene.Data[2]),
		waveSpeed: byteToIFloat(gene.Data[3]),
	}
}

func (f waveFormula) value(x, y, time float32) float32 {
	return f.scale * fastmath.Wave(x*f.xStretch+y*f.yStretch+f.waveSpeed*time)
}

// rotatingWaveFormula is a plane wave whose direction precesses over time.
type rotatingWaveFormula struct {
	xTime     float32
	yTime     float32
	scale     float32
	waveSpeed float32
}

func newRotatingWaveFormula(gene genetics.Gene) rotatingWaveFormula {
	if len(gene.Data) != genetics.PatternGeneSize {
		panic("formula: bad gene size")
	}
	return rotatingWaveFormula{
		xTime:     byteToIFloat(gene.Data[0]),
		yTime:     byteToIFloat(gene.Data[1]),
		scale:     byteToFloat(gene.Data[2]),
		waveSpeed: byteToIFloat(gene.Data[3]),
	}
}

func (f rotatingWaveFormula) value(x, y, time float32) float32 {
	xCoeff := fastmath.Cowave(f.xTime * time)
	yCoeff := fastmath.Wave(f.yTime * time)
	return f.scale * fastmath.Wave(x*xCoeff+y*yCoeff+f.waveSpeed*time)
}

// circularWaveFormula is rings radiating from a center that orbits over time.
type circularWaveFormula struct {
	xTime     float32
	yTime     float32
	scale     float32
	waveSpeed float32
}

func newCircularWaveFormula(gene genetics.Gene) circularWaveFormula {
	if len(gene.Data) != genetics.PatternGeneSize {
		panic("formula: bad gene size")
	}
	return circularWaveFormula{
		xTime:     byteToIFloat(gene.Data[0]),
		yTime:     byteToIFloat(gene.Data[1]),
		scale:     byteToFloat(gene.Data[2]),
		waveSpeed: byteToIFloat(gene.Data[3]),
	}
}

func (f circularWaveFormula) value(x, y, time float32) float32 {
	dx := x - fastmath.Cowave(f.xTime*time)
	dy := y - fastmath.Wave(f.yTime*time)
	return f.scale * fastmath.Wave(math32.Sqrt(dx*dx+dy*dy)+f.waveSpeed*time)
}

// Formulas is the full decoded pattern: one formula of each kind, summed.
type Formulas struct {
	wave         waveFormula
	rotatingWave rotatingWaveFormula
	circularWave circularWaveFormula
}

// FromChromosome decodes a pattern chromosome into formulas.
func FromChromosome(c genetics.Chromosome) Formulas {
	if len(c.Genes) != genetics.NumPatternGenes {
		panic("formula: wrong number of pattern genes")
	}
	return Formulas{
		wave:         newWaveFormula(c.Genes[0]),
		rotatingWave: newRotatingWaveFormula(c.Genes[1]),
		circularWave: newCircularWaveFormula(c.Genes[2]),
	}
}

// GetValue returns the field value at (x, y).  Time is cyclic with period
// 1; the output drives a gradient position, so its own range is free to
// exceed [0, 1) and wrap there.
func (f Formulas) GetValue(x, y, time float32) float32 {
	return f.wave.value(x, y, time) +
		f.rotatingWave.value(x, y, time) +
		f.circularWave.value(x, y, time)
}

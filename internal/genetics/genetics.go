// Package genetics implements the byte-level genetic representation:
// genes, chromosomes, genomes, and their base64 serialization.  This
// package only handles gene-level mixing and byte-level mutation; decoding
// genes into colors or formulas is the consumers' business.
package genetics

import (
	"encoding/base64"
	"fmt"
	"math/rand"
)

// Genome layout: a pattern chromosome and a color chromosome with fixed
// gene counts and sizes, 52 bytes total.  Changing any of these breaks
// every serialized genome in the wild.
const (
	NumPatternGenes = 3
	PatternGeneSize = 4
	NumColorGenes   = 8
	ColorGeneSize   = 5

	genomeBytes = NumPatternGenes*PatternGeneSize + NumColorGenes*ColorGeneSize
)

// mutationRate is the per-gene chance that breeding perturbs one byte.
const mutationRate = 0.05

// Gene is an opaque run of bytes; consumers decide what the bytes mean.
type Gene struct {
	Data []byte
}

// Chromosome is an ordered sequence of same-sized genes.
type Chromosome struct {
	Genes []Gene
}

// Genome pairs a pattern chromosome (wave formulas) with a color
// chromosome (gradient control points).
type Genome struct {
	Pattern Chromosome
	Color   Chromosome
}

// RandGene returns a gene of numBytes random bytes.
func RandGene(rng *rand.Rand, numBytes int) Gene {
	data := make([]byte, numBytes)
	for i := range data {
		data[i] = byte(rng.Intn(256))
	}
	return Gene{Data: data}
}

func (g Gene) clone() Gene {
	data := make([]byte, len(g.Data))
	copy(data, g.Data)
	return Gene{Data: data}
}

// RandChromosome returns a chromosome of random genes.
func RandChromosome(rng *rand.Rand, numGenes, geneSize int) Chromosome {
	c := Chromosome{Genes: make([]Gene, 0, numGenes)}
	for i := 0; i < numGenes; i++ {
		c.Genes = append(c.Genes, RandGene(rng, geneSize))
	}
	return c
}

// Breed produces a child chromosome: each gene is picked from either
// parent, then possibly mutated by adding a random value to one byte.
func (c Chromosome) Breed(rng *rand.Rand, other Chromosome) Chromosome {
	if len(c.Genes) != len(other.Genes) {
		panic("genetics: breeding chromosomes of different lengths")
	}
	child := Chromosome{Genes: make([]Gene, 0, len(c.Genes))}
	for i := range c.Genes {
		var gene Gene
		if rng.Intn(2) == 0 {
			gene = c.Genes[i].clone()
		} else {
			gene = other.Genes[i].clone()
		}
		if rng.Float64() < mutationRate && len(gene.Data) > 0 {
			i := rng.Intn(len(gene.Data))
			gene.Data[i] += byte(1 + rng.Intn(255))
		}
		child.Genes = append(child.Genes, gene)
	}
	return child
}

// RandGenome returns a genome with random pattern and color chromosomes.
func RandGenome(rng *rand.Rand) Genome {
	return Genome{
		Pattern: RandChromosome(rng, NumPatternGenes, PatternGeneSize),
		Color:   RandChromosome(rng, NumColorGenes, ColorGeneSize),
	}
}

// Breed produces a child genome from two parents.
func (g Genome) Breed(rng *rand.Rand, other Genome) Genome {
	return Genome{
		Pattern: g.Pattern.Breed(rng, other.Pattern),
		Color:   g.Color.Breed(rng, other.Color),
	}
}

// Bytes flattens the genome into its fixed 52-byte wire form.
func (g Genome) Bytes() []byte {
	data := make([]byte, 0, genomeBytes)
	for _, gene := range g.Pattern.Genes {
		data = append(data, gene.Data...)
	}
	for _, gene := range g.Color.Genes {
		data = append(data, gene.Data...)
	}
	return data
}

// ToBase64 serializes the genome as a standard-encoding base64 string,
// the form users pass around on the command line.
func (g Genome) ToBase64() string {
	return base64.StdEncoding.EncodeToString(g.Bytes())
}

// FromBase64 parses a genome serialized by ToBase64.
func FromBase64(s string) (Genome, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return Genome{}, fmt.Errorf("decode genome: %w", err)
	}
	if len(data) != genomeBytes {
		return Genome{}, fmt.Errorf("decode genome: got %d bytes, want %d", len(data), genomeBytes)
	}

	chromosome := func(numGenes, geneSize int) Chromosome {
		c := Chromosome{Genes: make([]Gene, 0, numGenes)}
		for i := 0; i < numGenes; i++ {
			gene := Gene{Data: make([]byte, geneSize)}
			copy(gene.Data, data[:geneSize])
			data = data[geneSize:]
			c.Genes = append(c.Genes, gene)
		}
		return c
	}
	return Genome{
		Pattern: chromosome(NumPatternGenes, PatternGeneSize),
		Color:   chromosome(NumColorGenes, ColorGeneSize),
	}, nil
}

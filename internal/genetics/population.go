package genetics

import "math/rand"

// Population is a bounded pool of genomes used by the interactive breeder.
// When full, adding a genome evicts a random member, keeping the pool
// drifting toward whatever the user has been approving.
type Population struct {
	maxSize int
	members []Genome
}

// NewPopulation returns an empty population holding at most maxSize genomes.
func NewPopulation(maxSize int) *Population {
	if maxSize < 2 {
		panic("genetics: population needs room for at least 2 genomes")
	}
	return &Population{maxSize: maxSize}
}

// Size returns the current number of members.
func (p *Population) Size() int {
	return len(p.members)
}

// Add inserts a genome, evicting a random member if the pool is full.
func (p *Population) Add(rng *rand.Rand, g Genome) {
	if len(p.members) < p.maxSize {
		p.members = append(p.members, g)
		return
	}
	p.members[rng.Intn(len(p.members))] = g
}

// Breed picks two random members and returns their child.  With a single
// member, it breeds the member with itself (mutation still applies).
func (p *Population) Breed(rng *rand.Rand) Genome {
	if len(p.members) == 0 {
		panic("genetics: breeding an empty population")
	}
	a := p.members[rng.Intn(len(p.members))]
	b := p.members[rng.Intn(len(p.members))]
	return a.Breed(rng, b)
}

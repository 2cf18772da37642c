package plan

import (
	"math/rand"

	"github.com/cespare/xxhash/v2"
)

// RNG subsystems used by the evolutionary solver.
const (
	// SubsystemPopulation seeds the initial population shuffles.
	// Uses the master seed directly.
	SubsystemPopulation = "population"

	// SubsystemMutation drives the mutation swaps.
	SubsystemMutation = "mutation"
)

// PartitionedRNG hands out deterministic, isolated generators per subsystem,
// all derived from one master seed.
//
// Derivation:
//   - SubsystemPopulation: the master seed itself
//   - any other subsystem: seed XOR xxhash64(name)
//
// Not thread-safe.
type PartitionedRNG struct {
	seed       int64
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from seed.
func NewPartitionedRNG(seed int64) *PartitionedRNG {
	return &PartitionedRNG{
		seed:       seed,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns the generator for name, creating it on first use.
// The same name always yields the same *rand.Rand. Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}
	derived := p.seed
	if name != SubsystemPopulation {
		derived = p.seed ^ int64(xxhash.Sum64String(name))
	}
	rng := rand.New(rand.NewSource(derived))
	p.subsystems[name] = rng
	return rng
}

// Seed returns the master seed.
func (p *PartitionedRNG) Seed() int64 {
	return p.seed
}

package plan

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionedRNG_DeterministicDerivation(t *testing.T) {
	// Same seed and subsystem produce the same sequence.
	rng1 := NewPartitionedRNG(42)
	rng2 := NewPartitionedRNG(42)

	for i := 0; i < 5; i++ {
		assert.Equal(t,
			rng1.ForSubsystem(SubsystemMutation).Int63(),
			rng2.ForSubsystem(SubsystemMutation).Int63(),
			"value %d", i)
	}
}

func TestPartitionedRNG_SubsystemIsolation(t *testing.T) {
	// Drawing from one subsystem does not shift another.
	rngA := NewPartitionedRNG(7)
	for i := 0; i < 10; i++ {
		rngA.ForSubsystem(SubsystemPopulation).Float64()
	}
	got := rngA.ForSubsystem(SubsystemMutation).Float64()

	want := NewPartitionedRNG(7).ForSubsystem(SubsystemMutation).Float64()
	assert.Equal(t, want, got)
}

func TestPartitionedRNG_PopulationUsesMasterSeed(t *testing.T) {
	rng := NewPartitionedRNG(99).ForSubsystem(SubsystemPopulation)
	direct := rand.New(rand.NewSource(99))
	for i := 0; i < 10; i++ {
		assert.Equal(t, direct.Float64(), rng.Float64())
	}
}

func TestPartitionedRNG_CachesInstance(t *testing.T) {
	p := NewPartitionedRNG(1)
	assert.Same(t, p.ForSubsystem(SubsystemMutation), p.ForSubsystem(SubsystemMutation))
	assert.NotSame(t, p.ForSubsystem(SubsystemMutation), p.ForSubsystem(SubsystemPopulation))
	assert.Equal(t, int64(1), p.Seed())
}

func TestAlgorithmNames(t *testing.T) {
	assert.Equal(t, "brute, evo, naive", AlgorithmNames())
	assert.True(t, ValidAlgorithms[AlgorithmGreedy])
	assert.False(t, ValidAlgorithms["random"])
}

// Package evo searches task orderings with an evolutionary algorithm. Each
// ordering is scored by a deterministic simulator that evicts with lookahead,
// approximating the optimal offline replacement policy for that order.
package evo

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/diskplan/plan"
)

// Solver is the evolutionary planner.
type Solver struct {
	Params Params

	population *rand.Rand
	mutation   *rand.Rand
}

var _ plan.Solver = (*Solver)(nil)

// New validates params and returns a solver drawing its randomness from rng.
func New(params Params, rng *plan.PartitionedRNG) (*Solver, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.New("random number generator is nil")
	}
	logrus.Debugf("evo: seed %d, %d generations of %d", rng.Seed(), params.Generations, params.Population)
	return &Solver{
		Params:     params,
		population: rng.ForSubsystem(plan.SubsystemPopulation),
		mutation:   rng.ForSubsystem(plan.SubsystemMutation),
	}, nil
}

// Solve evolves the population and returns the best plan of the last
// generation. With Generations <= 1 no generation runs and there is no plan.
// An instance with a task whose files never fit together yields
// plan.ErrCapacityExceeded.
func (s *Solver) Solve(inst *plan.Instance) (*plan.WorkResult, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	if s.Params.Generations <= 1 {
		logrus.Debugf("evo: %d generations, nothing to evolve", s.Params.Generations)
		return nil, nil
	}

	size := int(s.Params.Population)
	n := len(inst.Tasks())

	population := make([]Individual, 0, size)
	for i := 0; i < size; i++ {
		order := identity(n)
		shuffle(order, s.population)
		population = append(population, Simulate(inst, order))
	}
	sortByFitness(population)
	if population[0].Unfit {
		return nil, fmt.Errorf("evo: no ordering fits the disk: %w", plan.ErrCapacityExceeded)
	}

	return s.evolve(inst, population, s.nextGeneration), nil
}

// evolve runs Generations-1 generations starting from population and
// returns the best plan of the last one. Each generation's best replaces the
// previous result even when it is worse.
func (s *Solver) evolve(inst *plan.Instance, population []Individual,
	breed func(*plan.Instance, []Individual) []Individual) *plan.WorkResult {
	size := int(s.Params.Population)
	var result *plan.WorkResult
	for gen := 1; gen < int(s.Params.Generations); gen++ {
		children := breed(inst, population)
		population = children[:min(size, len(children))]

		best := population[0].Result
		result = &best
		logrus.Debugf("evo: generation %d best=%d worst=%d",
			gen, population[0].Fitness(), population[len(population)-1].Fitness())
	}
	return result
}

// nextGeneration crosses the first max(min(2, n), n/2) individuals of the
// sorted population with every individual, mutates each child and returns
// all children sorted by fitness.
func (s *Solver) nextGeneration(inst *plan.Instance, population []Individual) []Individual {
	mothers := max(min(2, len(population)), len(population)/2)
	children := make([]Individual, 0, mothers*len(population))
	for m := 0; m < mothers; m++ {
		for f := range population {
			child := crossover(population[m].Order, population[f].Order)
			mutate(child, s.mutation)
			children = append(children, Simulate(inst, child))
		}
	}
	sortByFitness(children)
	return children
}

func sortByFitness(population []Individual) {
	sort.SliceStable(population, func(i, j int) bool {
		return population[i].Fitness() < population[j].Fitness()
	})
}

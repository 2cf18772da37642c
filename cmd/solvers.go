package cmd

import (
	"fmt"
	"io"

	"github.com/inference-sim/diskplan/plan"
	"github.com/inference-sim/diskplan/plan/evo"
	"github.com/inference-sim/diskplan/plan/exhaustive"
	"github.com/inference-sim/diskplan/plan/greedy"
)

// solverFactory builds a solver for one seeded run.
type solverFactory func(seed int64) (plan.Solver, error)

// newSolverFactory resolves an algorithm name. Evolution parameters are read
// once, here, and echoed to w; a missing or broken file falls back to the
// defaults.
func newSolverFactory(w io.Writer, name, paramsPath string) (solverFactory, error) {
	switch name {
	case plan.AlgorithmExhaustive:
		return func(int64) (plan.Solver, error) { return exhaustive.New(), nil }, nil
	case plan.AlgorithmGreedy:
		return func(int64) (plan.Solver, error) { return greedy.New(), nil }, nil
	case plan.AlgorithmEvolutionary:
		params := evo.LoadParamsOrDefault(paramsPath)
		fmt.Fprintf(w, "generations: %d; population: %d\n", params.Generations, params.Population)
		return func(seed int64) (plan.Solver, error) {
			return evo.New(params, plan.NewPartitionedRNG(seed))
		}, nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q (valid: %s)", name, plan.AlgorithmNames())
	}
}

package plan

import (
	"sort"
	"strings"
)

// Algorithm names accepted on the command line.
const (
	AlgorithmExhaustive   = "brute"
	AlgorithmEvolutionary = "evo"
	AlgorithmGreedy       = "naive"
)

// ValidAlgorithms is the set of recognized solver names.
var ValidAlgorithms = map[string]bool{
	AlgorithmExhaustive:   true,
	AlgorithmEvolutionary: true,
	AlgorithmGreedy:       true,
}

// AlgorithmNames returns the valid solver names, sorted and comma separated.
func AlgorithmNames() string {
	names := make([]string, 0, len(ValidAlgorithms))
	for name := range ValidAlgorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// Solver computes a plan for an instance. A nil result with a nil error means
// the solver found no plan.
type Solver interface {
	Solve(inst *Instance) (*WorkResult, error)
}

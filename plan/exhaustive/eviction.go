package exhaustive

import (
	"slices"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/inference-sim/diskplan/plan"
)

// evictionSets enumerates the growth-minimal subsets of pool that free at
// least shortfall bytes. A subset starts as a single file and grows one pool
// file at a time; it is accepted as soon as it is large enough and never
// grown further. The same set can be reached through different addition
// orders and is then returned once per order.
func evictionSets(inst *plan.Instance, pool []int, shortfall uint64) [][]int {
	var accepted [][]int
	incubator := arraystack.New()
	for _, f := range pool {
		incubator.Push([]int{f})
	}

	for !incubator.Empty() {
		v, _ := incubator.Pop()
		set := v.([]int)

		if inst.TotalSize(set) >= shortfall {
			accepted = append(accepted, set)
			continue
		}
		for _, f := range pool {
			if slices.Contains(set, f) {
				continue
			}
			grown := make([]int, len(set), len(set)+1)
			copy(grown, set)
			incubator.Push(append(grown, f))
		}
	}
	return accepted
}

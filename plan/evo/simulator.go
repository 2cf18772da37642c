package evo

import (
	"math"
	"slices"
	"sort"

	"github.com/inference-sim/diskplan/plan"
)

// Individual is one candidate task ordering and the plan it simulates to.
type Individual struct {
	Order  []int // indices into the instance's task set
	Result plan.WorkResult
	Unfit  bool // the ordering hit a task whose files never fit together
}

// Fitness is the simulated download size; lower is better. Unfit
// individuals score math.MaxUint64.
func (ind *Individual) Fitness() uint64 {
	if ind.Unfit {
		return math.MaxUint64
	}
	return ind.Result.DownloadSize
}

// Simulate runs the tasks in order against an empty disk, evicting with
// lookahead whenever room runs out, and returns the resulting individual.
func Simulate(inst *plan.Instance, order []int) Individual {
	tasks := inst.Tasks()
	cache := plan.NewCache(inst)
	ind := Individual{Order: order}
	ops := make([]plan.Operation, 0, 3*len(order))

	for idx, ti := range order {
		t := tasks[ti]
		missing := cache.Missing(t)
		required := inst.TotalSize(missing)

		if required > cache.Headroom() {
			for _, f := range lookaheadEvict(inst, cache, order, idx, required) {
				ops = append(ops, plan.EvictOp(inst.Files[f]))
			}
			if required > cache.Headroom() {
				return Individual{Order: order, Unfit: true}
			}
		}

		for _, f := range missing {
			if err := cache.Load(f); err != nil {
				return Individual{Order: order, Unfit: true}
			}
			ops = append(ops, plan.DownloadOp(inst.Files[f]))
			ind.Result.DownloadSize += inst.Files[f].Size
		}
		ops = append(ops, inst.RunOp(t))
	}

	ind.Result.Operations = ops
	return ind
}

// nextUse returns, per file, the first position at or after from where the
// ordering needs it, or -1 when it is never needed again.
func nextUse(inst *plan.Instance, order []int, from int) []int {
	tasks := inst.Tasks()
	next := make([]int, len(inst.Files))
	for i := range next {
		next[i] = -1
	}
	for i := from; i < len(order); i++ {
		t := tasks[order[i]]
		if next[t.First] < 0 {
			next[t.First] = i
		}
		if next[t.Second] < 0 {
			next[t.Second] = i
		}
	}
	return next
}

// lookaheadEvict frees room for the task at position idx and returns the
// evicted files in eviction order. Files no later task needs go first. Then
// the window of files whose next use is at or beyond a boundary is widened
// from the end of the ordering towards idx, evicting the largest file of each
// window first, until required bytes are free. The current task's own files
// are never evicted. The caller checks whether enough room was found.
func lookaheadEvict(inst *plan.Instance, cache *plan.Cache, order []int, idx int, required uint64) []int {
	current := inst.Tasks()[order[idx]]
	next := nextUse(inst, order, idx)
	var evicted []int

	for _, f := range slices.Clone(cache.Files()) {
		if next[f] < 0 {
			cache.Evict(f)
			evicted = append(evicted, f)
		}
	}

	for boundary := len(order) - 1; required > cache.Headroom() && boundary >= 0; boundary-- {
		var window []int
		for _, f := range cache.Files() {
			if next[f] >= boundary && !current.Involves(f) {
				window = append(window, f)
			}
		}
		sort.SliceStable(window, func(i, j int) bool {
			return inst.Files[window[i]].Size > inst.Files[window[j]].Size
		})
		for _, f := range window {
			if required <= cache.Headroom() {
				break
			}
			cache.Evict(f)
			evicted = append(evicted, f)
		}
	}
	return evicted
}

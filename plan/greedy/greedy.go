// Package greedy plans in a single deterministic pass: each step services
// the largest still-needed file together with its largest partner.
package greedy

import (
	"fmt"

	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/sirupsen/logrus"

	"github.com/inference-sim/diskplan/plan"
)

// Solver is the greedy planner. The zero value is ready to use.
type Solver struct{}

var _ plan.Solver = (*Solver)(nil)

// New returns a greedy solver.
func New() *Solver {
	return &Solver{}
}

// Solve plans every task without backtracking. It returns
// plan.ErrCapacityExceeded when a task's two files cannot share the disk.
func (s *Solver) Solve(inst *plan.Instance) (*plan.WorkResult, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}

	cache := plan.NewCache(inst)
	tasks := append([]plan.Task(nil), inst.Tasks()...)
	result := &plan.WorkResult{}

	for step := 0; len(tasks) > 0; step++ {
		referenced := referencedFiles(inst, tasks)
		anchor := largest(inst, referenced)

		partner := largest(inst, partnersOf(inst, tasks, anchor))

		// Files no remaining task needs go first.
		inUse := make([]bool, len(inst.Files))
		for _, f := range referenced {
			inUse[f] = true
		}
		for _, f := range append([]int(nil), cache.Files()...) {
			if !inUse[f] {
				cache.Evict(f)
				result.Operations = append(result.Operations, plan.EvictOp(inst.Files[f]))
			}
		}

		missing := cache.Missing(plan.Task{First: anchor, Second: partner})
		needed := inst.TotalSize(missing)
		if needed > cache.Headroom() {
			for _, f := range makeRoom(inst, cache, needed, anchor, partner) {
				result.Operations = append(result.Operations, plan.EvictOp(inst.Files[f]))
			}
			if needed > cache.Headroom() {
				return nil, fmt.Errorf("greedy: task (%s, %s) needs %d bytes, disk holds %d: %w",
					inst.Files[anchor].Name, inst.Files[partner].Name,
					inst.Files[anchor].Size+inst.Files[partner].Size, inst.Capacity, plan.ErrCapacityExceeded)
			}
		}

		for _, f := range missing {
			if err := cache.Load(f); err != nil {
				return nil, fmt.Errorf("greedy: %w", err)
			}
			result.Operations = append(result.Operations, plan.DownloadOp(inst.Files[f]))
			result.DownloadSize += inst.Files[f].Size
		}

		remaining := tasks[:0]
		for _, t := range tasks {
			if plan.IsSatisfied(cache, t) {
				result.Operations = append(result.Operations, inst.RunOp(t))
			} else {
				remaining = append(remaining, t)
			}
		}
		logrus.Debugf("greedy: step %d anchor=%s partner=%s ran %d tasks, %d left",
			step, inst.Files[anchor].Name, inst.Files[partner].Name, len(tasks)-len(remaining), len(remaining))
		tasks = remaining
	}

	return result, nil
}

// partnersOf returns, in instance order, the files sharing a remaining task
// with anchor.
func partnersOf(inst *plan.Instance, tasks []plan.Task, anchor int) []int {
	shared := make([]bool, len(inst.Files))
	for _, t := range tasks {
		if t.Involves(anchor) {
			shared[t.Other(anchor)] = true
		}
	}
	var partners []int
	for f, ok := range shared {
		if ok {
			partners = append(partners, f)
		}
	}
	return partners
}

// referencedFiles returns, in instance order, the files some task needs.
func referencedFiles(inst *plan.Instance, tasks []plan.Task) []int {
	needed := make([]bool, len(inst.Files))
	for _, t := range tasks {
		needed[t.First] = true
		needed[t.Second] = true
	}
	var files []int
	for f, ok := range needed {
		if ok {
			files = append(files, f)
		}
	}
	return files
}

// largest returns the biggest file of candidates; the earliest wins a tie.
func largest(inst *plan.Instance, candidates []int) int {
	best := candidates[0]
	for _, f := range candidates[1:] {
		if inst.Files[f].Size > inst.Files[best].Size {
			best = f
		}
	}
	return best
}

// makeRoom evicts the smallest resident files other than keep until needed
// bytes are free or nothing evictable is left, and returns what it evicted.
// Ties go to the file resident the longest.
func makeRoom(inst *plan.Instance, cache *plan.Cache, needed uint64, keep ...int) []int {
	type candidate struct {
		file  int
		order int
	}
	heap := binaryheap.NewWith(func(a, b interface{}) int {
		x, y := a.(candidate), b.(candidate)
		sx, sy := inst.Files[x.file].Size, inst.Files[y.file].Size
		switch {
		case sx < sy:
			return -1
		case sx > sy:
			return 1
		default:
			return x.order - y.order
		}
	})

	for order, f := range cache.Files() {
		kept := false
		for _, k := range keep {
			if f == k {
				kept = true
				break
			}
		}
		if !kept {
			heap.Push(candidate{file: f, order: order})
		}
	}

	var evicted []int
	for needed > cache.Headroom() {
		v, ok := heap.Pop()
		if !ok {
			break
		}
		f := v.(candidate).file
		cache.Evict(f)
		evicted = append(evicted, f)
	}
	return evicted
}

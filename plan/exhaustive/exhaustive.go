// Package exhaustive finds a globally optimal plan by searching every
// sequence of load, evict and run decisions.
//
// The search keeps an explicit work-list of partial plans. Its size grows
// exponentially with the number of tasks and is not capped, so the solver is
// only practical for small instances.
package exhaustive

import (
	"fmt"
	"slices"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/sirupsen/logrus"

	"github.com/inference-sim/diskplan/plan"
)

// state is one node of the search: the tasks still to run, the disk, and the
// plan that led here.
type state struct {
	remaining  []plan.Task
	cache      *plan.Cache
	ops        []plan.Operation
	downloaded uint64
}

// Solver is the exhaustive planner. The zero value is ready to use.
type Solver struct{}

var _ plan.Solver = (*Solver)(nil)

// New returns an exhaustive solver.
func New() *Solver {
	return &Solver{}
}

// Solve returns the plan with the smallest download size, or nil when no
// sequence of decisions runs every task (a task whose two files do not fit on
// the disk together).
func (s *Solver) Solve(inst *plan.Instance) (*plan.WorkResult, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}

	var best *plan.WorkResult
	stack := arraystack.New()
	stack.Push(&state{
		remaining: slices.Clone(inst.Tasks()),
		cache:     plan.NewCache(inst),
	})

	expanded, peak := 0, 1
	for !stack.Empty() {
		v, _ := stack.Pop()
		st := v.(*state)
		expanded++

		if len(st.remaining) == 0 {
			best = plan.PickBetter(best, plan.WorkResult{
				Operations:   st.ops,
				DownloadSize: st.downloaded,
			})
			continue
		}

		for _, task := range st.remaining {
			missing := st.cache.Missing(task)
			needed := inst.TotalSize(missing)
			headroom := st.cache.Headroom()

			if headroom >= needed {
				next, err := advance(inst, st, nil, missing)
				if err != nil {
					return nil, err
				}
				stack.Push(next)
				continue
			}

			pool := make([]int, 0, st.cache.Len())
			for _, f := range st.cache.Files() {
				if !task.Involves(f) {
					pool = append(pool, f)
				}
			}
			for _, evict := range evictionSets(inst, pool, needed-headroom) {
				next, err := advance(inst, st, evict, missing)
				if err != nil {
					return nil, err
				}
				stack.Push(next)
			}
		}
		peak = max(peak, stack.Size())
	}

	logrus.Debugf("exhaustive: expanded %d states, peak frontier %d", expanded, peak)
	return best, nil
}

// advance builds the successor of st that evicts evict, downloads load and
// then runs every remaining task the new disk satisfies.
func advance(inst *plan.Instance, st *state, evict, load []int) (*state, error) {
	cache := st.cache.Clone()
	ops := slices.Clone(st.ops)
	downloaded := st.downloaded

	for _, f := range evict {
		cache.Evict(f)
		ops = append(ops, plan.EvictOp(inst.Files[f]))
	}
	for _, f := range load {
		if err := cache.Load(f); err != nil {
			return nil, fmt.Errorf("exhaustive: %w", err)
		}
		ops = append(ops, plan.DownloadOp(inst.Files[f]))
		downloaded += inst.Files[f].Size
	}

	remaining := make([]plan.Task, 0, len(st.remaining))
	for _, t := range st.remaining {
		if plan.IsSatisfied(cache, t) {
			ops = append(ops, inst.RunOp(t))
		} else {
			remaining = append(remaining, t)
		}
	}

	return &state{
		remaining:  remaining,
		cache:      cache,
		ops:        ops,
		downloaded: downloaded,
	}, nil
}

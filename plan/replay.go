package plan

import "fmt"

// Replay executes result against an empty disk and returns the first rule the
// plan breaks, wrapped in ErrInvalidPlan. A valid plan never exceeds the
// capacity, runs a task only while both its files are resident, never
// downloads a resident file, never evicts a file that is not resident, runs
// every task exactly once and reports the bytes it actually downloads.
func Replay(inst *Instance, result *WorkResult) error {
	if result == nil {
		return fmt.Errorf("nil plan: %w", ErrInvalidPlan)
	}
	cache := NewCache(inst)
	runs := make(map[Task]int, len(inst.Tasks()))
	var downloaded uint64

	resolve := func(step int, f File) (int, error) {
		i, err := inst.FileIndex(f.Name)
		if err != nil {
			return -1, fmt.Errorf("step %d: %v: %w", step, err, ErrInvalidPlan)
		}
		return i, nil
	}

	for step, op := range result.Operations {
		switch op.Kind {
		case OpDownload:
			f, err := resolve(step, op.File)
			if err != nil {
				return err
			}
			if cache.Contains(f) {
				return fmt.Errorf("step %d: %q downloaded while resident: %w", step, op.File.Name, ErrInvalidPlan)
			}
			if err := cache.Load(f); err != nil {
				return fmt.Errorf("step %d: %v: %w", step, err, ErrInvalidPlan)
			}
			downloaded += inst.Files[f].Size
		case OpEvict:
			f, err := resolve(step, op.File)
			if err != nil {
				return err
			}
			if !cache.Contains(f) {
				return fmt.Errorf("step %d: %q evicted while not resident: %w", step, op.File.Name, ErrInvalidPlan)
			}
			cache.Evict(f)
		case OpRun:
			first, err := resolve(step, op.First)
			if err != nil {
				return err
			}
			second, err := resolve(step, op.Second)
			if err != nil {
				return err
			}
			t := Task{First: min(first, second), Second: max(first, second)}
			if !IsSatisfied(cache, t) {
				return fmt.Errorf("step %d: task (%s, %s) run without both files resident: %w",
					step, op.First.Name, op.Second.Name, ErrInvalidPlan)
			}
			runs[t]++
		default:
			return fmt.Errorf("step %d: unknown operation kind %d: %w", step, int(op.Kind), ErrInvalidPlan)
		}
	}

	for _, t := range inst.Tasks() {
		if n := runs[t]; n != 1 {
			return fmt.Errorf("task (%s, %s) ran %d times: %w",
				inst.Files[t.First].Name, inst.Files[t.Second].Name, n, ErrInvalidPlan)
		}
	}
	if len(runs) != len(inst.Tasks()) {
		return fmt.Errorf("plan runs tasks outside the task set: %w", ErrInvalidPlan)
	}
	if downloaded != result.DownloadSize {
		return fmt.Errorf("plan reports %d downloaded bytes, operations download %d: %w",
			result.DownloadSize, downloaded, ErrInvalidPlan)
	}
	return nil
}

package plan

import (
	"errors"
	"fmt"
)

// Instance is the immutable problem: the files and the disk capacity in bytes.
// Construct it with NewInstance; its task set is generated once.
type Instance struct {
	Files    []File
	Capacity uint64

	index map[string]int
	tasks []Task
}

// NewInstance validates files and builds the instance and its task set.
func NewInstance(files []File, capacity uint64) (*Instance, error) {
	inst := &Instance{Files: files, Capacity: capacity}
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	inst.index = make(map[string]int, len(files))
	for i, f := range files {
		inst.index[f.Name] = i
	}
	inst.tasks = GenerateTaskSet(files)
	return inst, nil
}

// Validate checks that every file has a unique, non-empty name. Instances
// returned by NewInstance were checked on construction and pass at once, so
// only hand-assembled instances pay for the scan.
func (inst *Instance) Validate() error {
	if inst == nil {
		return errors.New("instance is nil")
	}
	if inst.index != nil {
		return nil
	}
	seen := make(map[string]int, len(inst.Files))
	for i, f := range inst.Files {
		if f.Name == "" {
			return fmt.Errorf("file %d: empty name", i)
		}
		if prev, ok := seen[f.Name]; ok {
			return fmt.Errorf("files %d and %d named %q: %w", prev, i, f.Name, ErrDuplicateFile)
		}
		seen[f.Name] = i
	}
	return nil
}

// Tasks returns the task set. Callers must not modify the returned slice.
func (inst *Instance) Tasks() []Task {
	if inst.tasks == nil {
		return GenerateTaskSet(inst.Files)
	}
	return inst.tasks
}

// FileIndex resolves a file name to its index.
func (inst *Instance) FileIndex(name string) (int, error) {
	if inst.index == nil {
		for i, f := range inst.Files {
			if f.Name == name {
				return i, nil
			}
		}
		return -1, fmt.Errorf("%q: %w", name, ErrUnknownFile)
	}
	i, ok := inst.index[name]
	if !ok {
		return -1, fmt.Errorf("%q: %w", name, ErrUnknownFile)
	}
	return i, nil
}

// TotalSize sums the sizes of the files at the given indices.
func (inst *Instance) TotalSize(indices []int) uint64 {
	var total uint64
	for _, i := range indices {
		total += inst.Files[i].Size
	}
	return total
}

// RunOp logs running task t.
func (inst *Instance) RunOp(t Task) Operation {
	return RunOp(inst.Files[t.First], inst.Files[t.Second])
}

// GenerateTaskSet returns one task per unordered pair of distinct files,
// ordered by (i, j) with i < j. n files yield n*(n-1)/2 tasks.
func GenerateTaskSet(files []File) []Task {
	n := len(files)
	tasks := make([]Task, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			tasks = append(tasks, Task{First: i, Second: j})
		}
	}
	return tasks
}

// SumSizes adds up the sizes of files.
func SumSizes(files []File) uint64 {
	var total uint64
	for _, f := range files {
		total += f.Size
	}
	return total
}

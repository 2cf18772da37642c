// Package testutil provides shared test infrastructure for the planners:
// small named instances with known optimal download sizes and assertions
// that check a plan obeys the disk rules.
package testutil

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inference-sim/diskplan/plan"
)

// Scenario is a small instance with its known exhaustive optimum.
type Scenario struct {
	Name    string
	Files   []plan.File
	Disk    uint64
	Optimum uint64
}

// Instance builds the scenario's instance, failing the test on error.
func (s Scenario) Instance(t testing.TB) *plan.Instance {
	t.Helper()
	inst, err := plan.NewInstance(s.Files, s.Disk)
	require.NoError(t, err)
	return inst
}

// PairFits is two files that exactly fill the disk: one task, no evictions.
func PairFits() Scenario {
	return Scenario{
		Name:    "pair-fits",
		Files:   []plan.File{{Name: "A", Size: 5}, {Name: "B", Size: 5}},
		Disk:    10,
		Optimum: 10,
	}
}

// Triangle is three equal files on a disk that holds two: one re-download
// is unavoidable.
func Triangle() Scenario {
	return Scenario{
		Name:    "triangle",
		Files:   []plan.File{{Name: "A", Size: 10}, {Name: "B", Size: 10}, {Name: "C", Size: 10}},
		Disk:    20,
		Optimum: 40,
	}
}

// Oversized is a single task whose files cannot share the disk.
func Oversized() Scenario {
	return Scenario{
		Name:  "oversized",
		Files: []plan.File{{Name: "A", Size: 8}, {Name: "B", Size: 7}},
		Disk:  10,
	}
}

// Roomy fits every file at once, so each file is downloaded exactly once.
func Roomy() Scenario {
	return Scenario{
		Name:    "roomy",
		Files:   []plan.File{{Name: "A", Size: 3}, {Name: "B", Size: 4}, {Name: "C", Size: 5}, {Name: "D", Size: 6}},
		Disk:    18,
		Optimum: 18,
	}
}

// Feasible lists the scenarios every solver must plan.
func Feasible() []Scenario {
	return []Scenario{PairFits(), Triangle(), Roomy()}
}

// RandomInstance builds n files with sizes in [1, maxSize] and a disk that
// always holds the two largest files. The disk is tight enough to force
// evictions for n >= 3.
func RandomInstance(t testing.TB, rng *rand.Rand, n int, maxSize uint64) *plan.Instance {
	t.Helper()
	files := make([]plan.File, n)
	var first, second uint64
	for i := range files {
		size := uint64(rng.Int63n(int64(maxSize))) + 1
		files[i] = plan.File{Name: fmt.Sprintf("f%02d", i), Size: size}
		switch {
		case size > first:
			first, second = size, first
		case size > second:
			second = size
		}
	}
	inst, err := plan.NewInstance(files, first+second)
	require.NoError(t, err)
	return inst
}

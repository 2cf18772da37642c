package evo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/diskplan/plan"
	"github.com/inference-sim/diskplan/plan/internal/testutil"
)

func TestSimulate_TriangleInTaskOrder(t *testing.T) {
	// GIVEN three 10 byte files on a 20 byte disk, tasks AB, AC, BC in order
	inst := testutil.Triangle().Instance(t)

	// WHEN simulated
	ind := Simulate(inst, []int{0, 1, 2})

	// THEN B (next needed last) makes room for C, and A (never needed again)
	// makes room for B
	require.False(t, ind.Unfit)
	assert.Equal(t, uint64(40), ind.Fitness())
	assert.Equal(t, []string{
		"+ Download file A",
		"+ Download file B",
		"> Run task (A, B)",
		"- Remove file B from disk",
		"+ Download file C",
		"> Run task (A, C)",
		"- Remove file A from disk",
		"+ Download file B",
		"> Run task (B, C)",
	}, ind.Result.Lines())
	testutil.RequireValidPlan(t, inst, &ind.Result)
}

func TestSimulate_Oversized_Unfit(t *testing.T) {
	inst := testutil.Oversized().Instance(t)

	ind := Simulate(inst, []int{0})

	assert.True(t, ind.Unfit)
	assert.Equal(t, uint64(math.MaxUint64), ind.Fitness())
}

func TestSimulate_EveryOrderingReplaysClean(t *testing.T) {
	inst := testutil.Triangle().Instance(t)
	orders := [][]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
	for _, order := range orders {
		ind := Simulate(inst, order)
		require.False(t, ind.Unfit)
		testutil.RequireValidPlan(t, inst, &ind.Result)
		assert.Equal(t, uint64(40), ind.Fitness(), "order %v", order)
	}
}

func TestLookaheadEvict_LargestFirstWithinWindow(t *testing.T) {
	// GIVEN S(1) L(3) P(2) R(2) on a 6 byte disk holding S, L and R
	inst, err := plan.NewInstance([]plan.File{
		{Name: "S", Size: 1},
		{Name: "L", Size: 3},
		{Name: "P", Size: 2},
		{Name: "R", Size: 2},
	}, 6)
	require.NoError(t, err)
	cache := plan.NewCache(inst)
	for _, f := range []int{0, 1, 3} {
		require.NoError(t, cache.Load(f))
	}
	// Task set: SL=0 SP=1 SR=2 LP=3 LR=4 PR=5. PR runs now, SL next.
	order := []int{5, 0}

	// WHEN room for P (2 bytes) is needed
	evicted := lookaheadEvict(inst, cache, order, 0, 2)

	// THEN S and L share the window and the larger L goes; R is protected
	assert.Equal(t, []int{1}, evicted)
	assert.True(t, cache.Contains(0))
	assert.True(t, cache.Contains(3))
}

func TestLookaheadEvict_UnneededFilesGoFirst(t *testing.T) {
	inst, err := plan.NewInstance([]plan.File{
		{Name: "A", Size: 1},
		{Name: "B", Size: 1},
		{Name: "C", Size: 1},
	}, 2)
	require.NoError(t, err)
	cache := plan.NewCache(inst)
	require.NoError(t, cache.Load(0))
	require.NoError(t, cache.Load(1))
	// Task set: AB=0 AC=1 BC=2. Only BC remains; A is never needed again.
	evicted := lookaheadEvict(inst, cache, []int{2}, 0, 1)

	assert.Equal(t, []int{0}, evicted)
}

func TestLookaheadEvict_FarthestWindowFirst(t *testing.T) {
	// GIVEN A(1) B(1) C(1) D(1) on a 3 byte disk holding A, B, C
	inst, err := plan.NewInstance([]plan.File{
		{Name: "A", Size: 1},
		{Name: "B", Size: 1},
		{Name: "C", Size: 1},
		{Name: "D", Size: 1},
	}, 3)
	require.NoError(t, err)
	cache := plan.NewCache(inst)
	for _, f := range []int{0, 1, 2} {
		require.NoError(t, cache.Load(f))
	}
	// Task set: AB=0 AC=1 AD=2 BC=3 BD=4 CD=5.
	// AD now, then BD (B next at 1), then CD (C next at 2).
	order := []int{2, 4, 5}

	evicted := lookaheadEvict(inst, cache, order, 0, 1)

	// THEN C, needed farthest in the future, is evicted
	assert.Equal(t, []int{2}, evicted)
}

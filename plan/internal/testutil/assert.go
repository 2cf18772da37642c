package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inference-sim/diskplan/plan"
)

// RequireValidPlan fails the test unless result is a plan that replays
// cleanly against inst.
func RequireValidPlan(t testing.TB, inst *plan.Instance, result *plan.WorkResult) {
	t.Helper()
	require.NotNil(t, result, "expected a plan")
	require.NoError(t, plan.Replay(inst, result))
}

// CountKind returns how many operations of kind the plan contains.
func CountKind(result *plan.WorkResult, kind plan.OpKind) int {
	n := 0
	for _, op := range result.Operations {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

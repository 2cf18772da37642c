package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperation_String_TextFormat(t *testing.T) {
	a := File{Name: "a.bin", Size: 5}
	b := File{Name: "b.bin", Size: 7}

	tests := []struct {
		name string
		op   Operation
		want string
	}{
		{"download", DownloadOp(a), "+ Download file a.bin"},
		{"evict", EvictOp(b), "- Remove file b.bin from disk"},
		{"run", RunOp(a, b), "> Run task (a.bin, b.bin)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.op.String())
		})
	}
}

func TestWorkResult_Lines_PreservesOrder(t *testing.T) {
	a := File{Name: "A", Size: 1}
	b := File{Name: "B", Size: 1}
	r := &WorkResult{Operations: []Operation{DownloadOp(a), DownloadOp(b), RunOp(a, b), EvictOp(a)}}

	assert.Equal(t, []string{
		"+ Download file A",
		"+ Download file B",
		"> Run task (A, B)",
		"- Remove file A from disk",
	}, r.Lines())
}

func TestPickBetter(t *testing.T) {
	first := WorkResult{DownloadSize: 10, Operations: []Operation{DownloadOp(File{Name: "first"})}}
	tie := WorkResult{DownloadSize: 10, Operations: []Operation{DownloadOp(File{Name: "tie"})}}
	smaller := WorkResult{DownloadSize: 9}
	larger := WorkResult{DownloadSize: 11}

	t.Run("nil incumbent is replaced", func(t *testing.T) {
		got := PickBetter(nil, first)
		assert.Equal(t, uint64(10), got.DownloadSize)
	})
	t.Run("tie keeps incumbent", func(t *testing.T) {
		inc := PickBetter(nil, first)
		got := PickBetter(inc, tie)
		assert.Same(t, inc, got)
		assert.Equal(t, "first", got.Operations[0].File.Name)
	})
	t.Run("strictly smaller replaces", func(t *testing.T) {
		inc := PickBetter(nil, first)
		got := PickBetter(inc, smaller)
		assert.Equal(t, uint64(9), got.DownloadSize)
	})
	t.Run("larger is ignored", func(t *testing.T) {
		inc := PickBetter(nil, first)
		assert.Same(t, inc, PickBetter(inc, larger))
	})
}

func TestTask_InvolvesAndOther(t *testing.T) {
	task := Task{First: 2, Second: 5}
	assert.True(t, task.Involves(2))
	assert.True(t, task.Involves(5))
	assert.False(t, task.Involves(3))
	assert.Equal(t, 5, task.Other(2))
	assert.Equal(t, 2, task.Other(5))
}

package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReplay(t *testing.T) {
	inst := newTestInstance(t, 10, 5, 5, 5)
	a, b, c := inst.Files[0], inst.Files[1], inst.Files[2]

	valid := []Operation{
		DownloadOp(a), DownloadOp(b), RunOp(a, b),
		EvictOp(b), DownloadOp(c), RunOp(a, c),
		EvictOp(a), DownloadOp(b), RunOp(b, c),
	}

	tests := []struct {
		name     string
		ops      []Operation
		download uint64
		wantErr  bool
	}{
		{"valid plan", valid, 20, false},
		{"wrong download size", valid, 15, true},
		{"over capacity", []Operation{DownloadOp(a), DownloadOp(b), DownloadOp(c)}, 15, true},
		{"run without files", []Operation{DownloadOp(a), RunOp(a, b)}, 5, true},
		{"double download", []Operation{DownloadOp(a), DownloadOp(a)}, 10, true},
		{"evict absent", []Operation{EvictOp(a)}, 0, true},
		{"missing task", valid[:6], 15, true},
		{"task twice", append(append([]Operation{}, valid...), RunOp(b, c)), 20, true},
		{"unknown file", []Operation{DownloadOp(File{Name: "Z", Size: 1})}, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Replay(inst, &WorkResult{Operations: tt.ops, DownloadSize: tt.download})
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPlan)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReplay_RunAcceptsEitherMemberOrder(t *testing.T) {
	inst := newTestInstance(t, 10, 5, 5)
	a, b := inst.Files[0], inst.Files[1]
	err := Replay(inst, &WorkResult{
		Operations:   []Operation{DownloadOp(b), DownloadOp(a), RunOp(b, a)},
		DownloadSize: 10,
	})
	assert.NoError(t, err)
}

func TestReplay_NilPlan(t *testing.T) {
	inst := newTestInstance(t, 10, 5)
	assert.ErrorIs(t, Replay(inst, nil), ErrInvalidPlan)
}

package plan

import "fmt"

// File is a named blob of Size bytes. Files are immutable and referenced by
// their index in Instance.Files.
type File struct {
	Name string
	Size uint64
}

// Task needs the files at indices First and Second resident at the same time.
type Task struct {
	First  int
	Second int
}

// Involves reports whether file index f is one of the task's two files.
func (t Task) Involves(f int) bool {
	return t.First == f || t.Second == f
}

// Other returns the task's file that is not f. The result is meaningless
// when f is not part of the task.
func (t Task) Other(f int) int {
	if t.First == f {
		return t.Second
	}
	return t.First
}

// OpKind tags an Operation.
type OpKind int

const (
	OpDownload OpKind = iota
	OpEvict
	OpRun
)

func (k OpKind) String() string {
	switch k {
	case OpDownload:
		return "download"
	case OpEvict:
		return "evict"
	case OpRun:
		return "run"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Operation is one entry of a plan's log. Download and Evict use File;
// Run uses First and Second.
type Operation struct {
	Kind   OpKind
	File   File
	First  File
	Second File
}

// DownloadOp logs fetching f onto the disk.
func DownloadOp(f File) Operation {
	return Operation{Kind: OpDownload, File: f}
}

// EvictOp logs removing f from the disk.
func EvictOp(f File) Operation {
	return Operation{Kind: OpEvict, File: f}
}

// RunOp logs running the task over first and second.
func RunOp(first, second File) Operation {
	return Operation{Kind: OpRun, First: first, Second: second}
}

// String renders the operation in the plan's text format.
func (op Operation) String() string {
	switch op.Kind {
	case OpDownload:
		return fmt.Sprintf("+ Download file %s", op.File.Name)
	case OpEvict:
		return fmt.Sprintf("- Remove file %s from disk", op.File.Name)
	case OpRun:
		return fmt.Sprintf("> Run task (%s, %s)", op.First.Name, op.Second.Name)
	default:
		return fmt.Sprintf("? unknown operation %d", int(op.Kind))
	}
}

// WorkResult is a plan: the ordered operation log and the total number of
// bytes it downloads.
type WorkResult struct {
	Operations   []Operation
	DownloadSize uint64
}

// Lines renders every operation, in order.
func (r *WorkResult) Lines() []string {
	lines := make([]string, len(r.Operations))
	for i, op := range r.Operations {
		lines[i] = op.String()
	}
	return lines
}

// PickBetter returns the plan with the strictly smaller download size.
// A nil incumbent is always replaced; on a tie the incumbent is kept.
func PickBetter(incumbent *WorkResult, candidate WorkResult) *WorkResult {
	if incumbent == nil || candidate.DownloadSize < incumbent.DownloadSize {
		return &candidate
	}
	return incumbent
}

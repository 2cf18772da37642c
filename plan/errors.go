package plan

import "errors"

var (
	// ErrCapacityExceeded means the files a task needs cannot fit on the disk
	// together, no matter what is evicted.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrUnknownFile means a name does not resolve to any file of the instance.
	ErrUnknownFile = errors.New("unknown file")

	// ErrDuplicateFile means two files of an instance share a name.
	ErrDuplicateFile = errors.New("duplicate file name")

	// ErrInvalidPlan is returned by Replay when a plan breaks a disk rule.
	ErrInvalidPlan = errors.New("invalid plan")
)

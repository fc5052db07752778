package manager

import (
	"context"

	"github.com/viant/tasker/model"
)

// Service is a bounded process registry
type Service interface {
	// AddProcess offers a process to the registry, applying the variant admission policy when full
	AddProcess(ctx context.Context, process model.Process) error

	// ListProcesses returns tracked processes in the requested order
	ListProcesses(ctx context.Context, sortedBy model.SortedBy) []model.Process

	// Kill kills and removes the first process with the given pid, if any
	Kill(ctx context.Context, pid string)

	// KillGroup kills and removes every process with the given priority
	KillGroup(ctx context.Context, priority model.Priority)

	// KillAll kills and removes every tracked process
	KillAll(ctx context.Context)

	// Mode returns the admission policy
	Mode() model.Mode

	// Capacity returns the maximum number of tracked processes
	Capacity() int

	// Len returns the number of tracked processes
	Len() int
}

// KillFunc is the terminal action applied to a process right before it is removed.
type KillFunc func(ctx context.Context, process model.Process)

func nopKill(context.Context, model.Process) {}

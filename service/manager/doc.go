// Package manager implements bounded process registries.
//
// Every manager tracks at most Capacity processes and shares the same
// listing and kill behaviour; variants differ only in what AddProcess does
// once the registry is full:
//
//   - Bounded (DEFAULT)  – rejects the process with ErrCapacityReached
//   - FIFO               – kills the oldest tracked process, then admits
//   - Priority           – kills the oldest process of the lowest strictly
//     lower priority, or silently drops the new process when none exists
//
// Managers are not safe for concurrent use unless wrapped with Synchronized
// (or created with WithSynchronized).
//
//	svc, _ := manager.New(model.ModePriority, 10)
//	_ = svc.AddProcess(ctx, model.NewProcess("1", model.Low))
//	processes := svc.ListProcesses(ctx, model.SortedByPID)
package manager

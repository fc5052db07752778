// Package tasker provides a bounded, in-process registry of processes with
// pluggable admission policies.
//
// A registry tracks at most Capacity processes. When it is full the
// configured Mode decides what happens to a new process:
//
//   - DEFAULT  – the add fails with manager.ErrCapacityReached
//   - FIFO     – the oldest tracked process is killed to make room
//   - PRIORITY – the oldest process of the lowest strictly lower priority is
//     killed to make room, otherwise the new process is silently dropped
//
// End-users typically interact with the registry via the Service façade:
//
//	srv, _ := tasker.New(tasker.WithMode(model.ModePriority), tasker.WithCapacity(10))
//	tm := srv.Manager()
//	_ = tm.AddProcess(ctx, model.NewProcess("1", model.Low))
//	processes := tm.ListProcesses(ctx, model.SortedByPriority)
//
// Configuration can also be loaded from YAML with LoadConfig.
package tasker

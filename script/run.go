package script

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cheynewallace/tabby"
	"github.com/viant/tasker/model"
	"github.com/viant/tasker/service/manager"
)

// Run replays script steps in order, writing a line per step and a table per list step.
// A capacity rejection is reported and the run continues; any other error stops it.
func Run(ctx context.Context, svc manager.Service, script *Script, w io.Writer) error {
	for i, step := range script.Steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		switch step.Action {
		case ActionAdd:
			err := svc.AddProcess(ctx, step.Process)
			switch {
			case err == nil:
				fmt.Fprintf(w, "add %v: %d/%d tracked\n", step.Process, svc.Len(), svc.Capacity())
			case errors.Is(err, manager.ErrCapacityReached):
				fmt.Fprintf(w, "add %v: rejected, capacity %d reached\n", step.Process, svc.Capacity())
			default:
				return fmt.Errorf("step %d: %w", i, err)
			}
		case ActionKill:
			svc.Kill(ctx, step.PID)
			fmt.Fprintf(w, "kill %v: %d tracked\n", step.PID, svc.Len())
		case ActionKillGroup:
			svc.KillGroup(ctx, step.Priority)
			fmt.Fprintf(w, "killGroup %v: %d tracked\n", step.Priority, svc.Len())
		case ActionKillAll:
			svc.KillAll(ctx)
			fmt.Fprintf(w, "killAll: %d tracked\n", svc.Len())
		case ActionList:
			processes := svc.ListProcesses(ctx, step.SortedBy)
			fmt.Fprintf(w, "list %v: %d processes\n", step.SortedBy, len(processes))
			PrintProcesses(w, processes)
		default:
			return fmt.Errorf("step %d: %w: unsupported action %q", i, ErrInvalidStep, step.Action)
		}
	}
	return nil
}

// PrintProcesses writes processes as a table
func PrintProcesses(w io.Writer, processes []model.Process) {
	t := tabby.NewCustom(tabwriter.NewWriter(w, 0, 0, 2, ' ', 0))
	t.AddHeader("PID", "PRIORITY", "ORDER")
	for _, p := range processes {
		t.AddLine(p.PID, p.Priority.String(), p.Priority.Order())
	}
	t.Print()
}

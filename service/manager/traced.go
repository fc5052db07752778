package manager

import (
	"context"

	"github.com/viant/tasker/model"
	"github.com/viant/tasker/tracing"
)

// traced records every call to the wrapped manager as a span
type traced struct {
	service Service
}

// Traced returns a manager emitting OpenTelemetry spans
func Traced(service Service) Service {
	return &traced{service: service}
}

func (t *traced) start(ctx context.Context, name string) (context.Context, *tracing.Span) {
	ctx, span := tracing.Start(ctx, "tasker."+name)
	span.Set("mode", string(t.service.Mode())).SetInt("capacity", t.service.Capacity())
	return ctx, span
}

func (t *traced) AddProcess(ctx context.Context, process model.Process) (err error) {
	ctx, span := t.start(ctx, "AddProcess")
	span.Set("process.pid", process.PID).Set("process.priority", process.Priority.String())
	defer func() {
		span.SetInt("size", t.service.Len()).End(err)
	}()
	return t.service.AddProcess(ctx, process)
}

func (t *traced) ListProcesses(ctx context.Context, sortedBy model.SortedBy) []model.Process {
	ctx, span := t.start(ctx, "ListProcesses")
	span.Set("sorted_by", sortedBy.String())
	defer span.End(nil)
	return t.service.ListProcesses(ctx, sortedBy)
}

func (t *traced) Kill(ctx context.Context, pid string) {
	ctx, span := t.start(ctx, "Kill")
	span.Set("process.pid", pid)
	defer span.End(nil)
	t.service.Kill(ctx, pid)
}

func (t *traced) KillGroup(ctx context.Context, priority model.Priority) {
	ctx, span := t.start(ctx, "KillGroup")
	span.Set("process.priority", priority.String())
	defer span.End(nil)
	t.service.KillGroup(ctx, priority)
}

func (t *traced) KillAll(ctx context.Context) {
	ctx, span := t.start(ctx, "KillAll")
	defer span.End(nil)
	t.service.KillAll(ctx)
}

func (t *traced) Mode() model.Mode { return t.service.Mode() }

func (t *traced) Capacity() int { return t.service.Capacity() }

func (t *traced) Len() int { return t.service.Len() }

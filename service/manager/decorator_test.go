package manager

import (
	"context"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/tasker/model"
	"github.com/viant/tasker/service/event"
	"github.com/viant/tasker/service/messaging/memory"
	"github.com/viant/tasker/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestSynchronized_Concurrency(t *testing.T) {
	for _, mode := range model.Modes() {
		t.Run(string(mode), func(t *testing.T) {
			ctx := context.Background()
			svc := newManager(t, mode, 10, WithSynchronized())
			assert.Same(t, svc, Synchronized(svc))

			var wg sync.WaitGroup
			for worker := 0; worker < 8; worker++ {
				wg.Add(1)
				go func(worker int) {
					defer wg.Done()
					for i := 0; i < 100; i++ {
						pid := strconv.Itoa(worker*1000 + i)
						_ = svc.AddProcess(ctx, model.NewProcess(pid, model.Priorities()[i%3]))
						if i%7 == 0 {
							svc.Kill(ctx, pid)
						}
						if i%31 == 0 {
							svc.KillGroup(ctx, model.Low)
						}
						assert.LessOrEqual(t, len(svc.ListProcesses(ctx, model.SortedByPID)), 10)
					}
				}(worker)
			}
			wg.Wait()
			assert.LessOrEqual(t, svc.Len(), 10)
			svc.KillAll(ctx)
			assert.Equal(t, 0, svc.Len())
		})
	}
}

var spanExporter = tracetest.NewInMemoryExporter()

func TestTraced(t *testing.T) {
	require.NoError(t, tracing.InitWithExporter("tasker", "test", spanExporter))
	spanExporter.Reset()

	ctx := context.Background()
	svc := newManager(t, model.ModeDefault, 1, WithTracing())
	assert.Equal(t, model.ModeDefault, svc.Mode())
	assert.NoError(t, svc.AddProcess(ctx, model.NewProcess("1", model.Low)))
	assert.ErrorIs(t, svc.AddProcess(ctx, model.NewProcess("2", model.Low)), ErrCapacityReached)
	assert.Equal(t, []model.Process{model.NewProcess("1", model.Low)}, svc.ListProcesses(ctx, model.SortedByPriority))
	svc.KillGroup(ctx, model.High)
	svc.Kill(ctx, "1")
	svc.KillAll(ctx)
	assert.Equal(t, 0, svc.Len())

	spans := spanExporter.GetSpans()
	require.Len(t, spans, 6)
	var names []string
	for _, span := range spans {
		names = append(names, span.Name)
	}
	assert.Equal(t, []string{
		"tasker.AddProcess",
		"tasker.AddProcess",
		"tasker.ListProcesses",
		"tasker.KillGroup",
		"tasker.Kill",
		"tasker.KillAll",
	}, names)

	testCases := []struct {
		name   string
		span   int
		expect map[attribute.Key]string
		status codes.Code
	}{
		{
			name:   "admitted",
			span:   0,
			expect: map[attribute.Key]string{"process.pid": "1", "process.priority": "LOW", "mode": "DEFAULT"},
			status: codes.Ok,
		},
		{
			name:   "rejected",
			span:   1,
			expect: map[attribute.Key]string{"process.pid": "2", "mode": "DEFAULT"},
			status: codes.Error,
		},
		{
			name:   "list",
			span:   2,
			expect: map[attribute.Key]string{"sorted_by": "PRIORITY"},
			status: codes.Ok,
		},
		{
			name:   "kill",
			span:   4,
			expect: map[attribute.Key]string{"process.pid": "1"},
			status: codes.Ok,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			span := spans[tc.span]
			actual := map[attribute.Key]string{}
			for _, kv := range span.Attributes {
				actual[kv.Key] = kv.Value.Emit()
			}
			for key, value := range tc.expect {
				assert.Equal(t, value, actual[key], key)
			}
			assert.Equal(t, "1", actual["capacity"])
			assert.Equal(t, tc.status, span.Status.Code)
		})
	}
}

type eventSummary struct {
	Type   event.Type
	PID    string
	Victim string
	Reason string
}

func summarize(events []event.Event) []eventSummary {
	var out []eventSummary
	for _, e := range events {
		s := eventSummary{Type: e.Type, PID: e.Process.PID, Reason: e.Reason}
		if e.Victim != nil {
			s.Victim = e.Victim.PID
		}
		out = append(out, s)
	}
	return out
}

func TestService_Events(t *testing.T) {
	testCases := []struct {
		name   string
		mode   model.Mode
		run    func(ctx context.Context, svc Service)
		expect []eventSummary
	}{
		{
			name: "bounded rejection",
			mode: model.ModeDefault,
			run: func(ctx context.Context, svc Service) {
				_ = svc.AddProcess(ctx, model.NewProcess("1", model.Low))
				_ = svc.AddProcess(ctx, model.NewProcess("2", model.Low))
				_ = svc.AddProcess(ctx, model.NewProcess("3", model.Low))
			},
			expect: []eventSummary{
				{Type: event.TypeAdmitted, PID: "1"},
				{Type: event.TypeAdmitted, PID: "2"},
				{Type: event.TypeRejected, PID: "3", Reason: event.ReasonCapacityReached},
			},
		},
		{
			name: "fifo eviction",
			mode: model.ModeFIFO,
			run: func(ctx context.Context, svc Service) {
				_ = svc.AddProcess(ctx, model.NewProcess("1", model.Low))
				_ = svc.AddProcess(ctx, model.NewProcess("2", model.Low))
				_ = svc.AddProcess(ctx, model.NewProcess("3", model.Low))
				svc.Kill(ctx, "2")
			},
			expect: []eventSummary{
				{Type: event.TypeAdmitted, PID: "1"},
				{Type: event.TypeAdmitted, PID: "2"},
				{Type: event.TypeEvicted, PID: "3", Victim: "1"},
				{Type: event.TypeAdmitted, PID: "3"},
				{Type: event.TypeKilled, PID: "2"},
			},
		},
		{
			name: "priority silent drop",
			mode: model.ModePriority,
			run: func(ctx context.Context, svc Service) {
				_ = svc.AddProcess(ctx, model.NewProcess("1", model.Medium))
				_ = svc.AddProcess(ctx, model.NewProcess("2", model.Medium))
				_ = svc.AddProcess(ctx, model.NewProcess("3", model.Medium))
				svc.KillAll(ctx)
			},
			expect: []eventSummary{
				{Type: event.TypeAdmitted, PID: "1"},
				{Type: event.TypeAdmitted, PID: "2"},
				{Type: event.TypeRejected, PID: "3", Reason: event.ReasonNoLowerPriority},
				{Type: event.TypeKilled, PID: "1"},
				{Type: event.TypeKilled, PID: "2"},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			queue := memory.NewQueue[event.Event](memory.DefaultConfig())
			svc := newManager(t, tc.mode, 2, WithPublisher(event.NewPublisher(queue)))
			tc.run(context.Background(), svc)
			events := queue.Drain()
			assert.Equal(t, tc.expect, summarize(events))
			for _, e := range events {
				assert.Equal(t, tc.mode, e.Mode)
				assert.NotEmpty(t, e.ID)
			}
		})
	}
}

func TestService_EventQueueFull(t *testing.T) {
	ctx := context.Background()
	queue := memory.NewQueue[event.Event](memory.Config{Buffer: 1})
	svc := newManager(t, model.ModeFIFO, 2, WithPublisher(event.NewPublisher(queue)))
	addAll(t, svc, model.NewProcess("1", model.Low), model.NewProcess("2", model.Low), model.NewProcess("3", model.Low))
	assert.Equal(t, []model.Process{model.NewProcess("2", model.Low), model.NewProcess("3", model.Low)}, svc.ListProcesses(ctx, model.SortedByTime))
	assert.Equal(t, 1, queue.Size())
}

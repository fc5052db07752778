package manager

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/viant/tasker/model"
	"github.com/viant/tasker/service/dao/store"
	"github.com/viant/tasker/service/event"
)

// base holds behaviour shared by every variant; each variant supplies its own storage.
type base struct {
	mode       model.Mode
	capacity   int
	processes  store.Sequence[model.Process]
	kill       KillFunc
	publisher  *event.Publisher
	uniquePIDs bool
}

func newBase(mode model.Mode, capacity int, processes store.Sequence[model.Process], opts []Option) (base, error) {
	if capacity <= 0 {
		return base{}, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	o := newOptions(opts)
	return base{
		mode:       mode,
		capacity:   capacity,
		processes:  processes,
		kill:       o.kill,
		publisher:  o.publisher,
		uniquePIDs: o.uniquePIDs,
	}, nil
}

func (b *base) Mode() model.Mode { return b.mode }

func (b *base) Capacity() int { return b.capacity }

func (b *base) Len() int { return b.processes.Len() }

func (b *base) isFull() bool { return b.processes.Len() >= b.capacity }

func (b *base) ListProcesses(_ context.Context, sortedBy model.SortedBy) []model.Process {
	return list(b.processes, sortedBy)
}

func (b *base) Kill(ctx context.Context, pid string) {
	victim, ok := find(b.processes, func(p model.Process) bool { return p.PID == pid })
	if !ok {
		return
	}
	b.terminate(ctx, victim)
	b.processes.RemoveFirst(func(p model.Process) bool { return p == victim })
}

func (b *base) KillGroup(ctx context.Context, priority model.Priority) {
	inGroup := func(p model.Process) bool { return p.Priority == priority }
	for _, victim := range collect(b.processes, inGroup) {
		b.terminate(ctx, victim)
	}
	b.processes.RemoveAll(inGroup)
}

func (b *base) KillAll(ctx context.Context) {
	for _, victim := range b.processes.Values() {
		b.terminate(ctx, victim)
	}
	b.processes.RemoveAll(store.Any[model.Process])
}

// terminate kills a process removed on request
func (b *base) terminate(ctx context.Context, victim model.Process) {
	b.kill(ctx, victim)
	b.publish(ctx, event.TypeKilled, victim, nil, "")
}

// evict kills a process removed to make room for process
func (b *base) evict(ctx context.Context, victim, process model.Process) {
	b.kill(ctx, victim)
	b.publish(ctx, event.TypeEvicted, process, &victim, "")
}

func (b *base) admit(ctx context.Context, process model.Process) {
	if b.processes.Append(process) {
		b.publish(ctx, event.TypeAdmitted, process, nil, "")
	}
}

func (b *base) reject(ctx context.Context, process model.Process, reason string) {
	b.publish(ctx, event.TypeRejected, process, nil, reason)
}

// checkProcess rejects invalid processes and, when enabled, duplicate pids
func (b *base) checkProcess(ctx context.Context, process model.Process) error {
	if err := process.Validate(); err != nil {
		b.reject(ctx, process, event.ReasonInvalidProcess)
		return fmt.Errorf("failed to add process: %w: %v", ErrInvalidProcess, err)
	}
	if !b.uniquePIDs {
		return nil
	}
	if _, ok := find(b.processes, func(p model.Process) bool { return p.PID == process.PID }); ok {
		b.reject(ctx, process, event.ReasonDuplicatePID)
		return fmt.Errorf("failed to add process %v: %w", process.PID, ErrDuplicatePID)
	}
	return nil
}

func (b *base) publish(ctx context.Context, eventType event.Type, process model.Process, victim *model.Process, reason string) {
	if b.publisher == nil {
		return
	}
	e := event.New(eventType, b.mode, process)
	if victim != nil {
		e.WithVictim(*victim)
	}
	if reason != "" {
		e.WithReason(reason)
	}
	if err := b.publisher.Publish(ctx, e); err != nil {
		log.Printf("failed to publish %v event for process %v: %v", eventType, process.PID, err)
	}
}

// list returns a sorted copy of the sequence; priority ties keep insertion order.
func list(processes store.Sequence[model.Process], sortedBy model.SortedBy) []model.Process {
	out := processes.Values()
	switch sortedBy {
	case model.SortedByPriority:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Priority.Less(out[j].Priority) })
	case model.SortedByPID:
		sort.SliceStable(out, func(i, j int) bool { return out[i].PID < out[j].PID })
	}
	return out
}

func find(processes store.Sequence[model.Process], match func(model.Process) bool) (model.Process, bool) {
	var found model.Process
	var ok bool
	processes.Each(func(p model.Process) bool {
		if match(p) {
			found, ok = p, true
			return false
		}
		return true
	})
	return found, ok
}

func collect(processes store.Sequence[model.Process], match func(model.Process) bool) []model.Process {
	var out []model.Process
	processes.Each(func(p model.Process) bool {
		if match(p) {
			out = append(out, p)
		}
		return true
	})
	return out
}

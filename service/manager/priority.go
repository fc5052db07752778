package manager

import (
	"context"

	"github.com/viant/tasker/model"
	"github.com/viant/tasker/service/dao/store"
	"github.com/viant/tasker/service/event"
)

// Priority evicts a lower priority process to admit a new one. When no
// tracked process ranks strictly below the new one, the new process is
// dropped without an error.
type Priority struct {
	base
	set *store.OrderedSet[model.Process]
}

// AddProcess admits process according to the priority policy
func (m *Priority) AddProcess(ctx context.Context, process model.Process) error {
	if err := m.checkProcess(ctx, process); err != nil {
		return err
	}
	if m.set.Contains(process) {
		m.reject(ctx, process, event.ReasonAlreadyTracked)
		return nil
	}
	if m.isFull() {
		victim, ok := m.lowestBelow(process.Priority)
		if !ok {
			m.reject(ctx, process, event.ReasonNoLowerPriority)
			return nil
		}
		m.evict(ctx, victim, process)
		m.set.Remove(victim)
	}
	m.admit(ctx, process)
	return nil
}

// lowestBelow returns the oldest process of the lowest priority ranking strictly below priority
func (m *Priority) lowestBelow(priority model.Priority) (model.Process, bool) {
	var victim model.Process
	found := false
	m.set.Each(func(p model.Process) bool {
		if !p.Priority.Less(priority) {
			return true
		}
		if !found || p.Priority.Less(victim.Priority) {
			victim, found = p, true
		}
		return true
	})
	return victim, found
}

// NewPriority creates a priority manager
func NewPriority(capacity int, options ...Option) (*Priority, error) {
	set := store.NewOrderedSet[model.Process]()
	b, err := newBase(model.ModePriority, capacity, set, options)
	if err != nil {
		return nil, err
	}
	return &Priority{base: b, set: set}, nil
}

var _ Service = (*Priority)(nil)

package manager

import (
	"context"
	"fmt"

	"github.com/viant/tasker/model"
	"github.com/viant/tasker/service/dao/store"
	"github.com/viant/tasker/service/event"
)

// Bounded rejects new processes once capacity is reached.
type Bounded struct {
	base
}

// AddProcess appends process or fails with ErrCapacityReached leaving the registry unchanged
func (m *Bounded) AddProcess(ctx context.Context, process model.Process) error {
	if err := m.checkProcess(ctx, process); err != nil {
		return err
	}
	if m.isFull() {
		m.reject(ctx, process, event.ReasonCapacityReached)
		return fmt.Errorf("failed to add process %v: %w (%d)", process.PID, ErrCapacityReached, m.capacity)
	}
	m.admit(ctx, process)
	return nil
}

// NewBounded creates a bounded manager
func NewBounded(capacity int, options ...Option) (*Bounded, error) {
	b, err := newBase(model.ModeDefault, capacity, store.NewSlice[model.Process](capacity), options)
	if err != nil {
		return nil, err
	}
	return &Bounded{base: b}, nil
}

var _ Service = (*Bounded)(nil)

package manager

import (
	"context"

	"github.com/viant/tasker/model"
	"github.com/viant/tasker/service/dao/store"
)

// FIFO evicts the oldest tracked process, regardless of priority, to admit a new one.
type FIFO struct {
	base
	queue *store.Linked[model.Process]
}

// AddProcess admits process, killing the oldest tracked process first when full. It never rejects.
func (m *FIFO) AddProcess(ctx context.Context, process model.Process) error {
	if err := m.checkProcess(ctx, process); err != nil {
		return err
	}
	if m.isFull() {
		if oldest, ok := m.queue.Front(); ok {
			m.evict(ctx, oldest, process)
			m.queue.PopFront()
		}
	}
	m.admit(ctx, process)
	return nil
}

// NewFIFO creates a FIFO manager
func NewFIFO(capacity int, options ...Option) (*FIFO, error) {
	queue := store.NewLinked[model.Process]()
	b, err := newBase(model.ModeFIFO, capacity, queue, options)
	if err != nil {
		return nil, err
	}
	return &FIFO{base: b, queue: queue}, nil
}

var _ Service = (*FIFO)(nil)

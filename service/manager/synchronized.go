package manager

import (
	"context"
	"sync"

	"github.com/viant/tasker/model"
)

// synchronized serializes every call to the wrapped manager. Kill functions
// run with the lock held and must not call back into the manager.
type synchronized struct {
	mux     sync.Mutex
	service Service
}

// Synchronized returns a manager safe for concurrent use
func Synchronized(service Service) Service {
	if s, ok := service.(*synchronized); ok {
		return s
	}
	return &synchronized{service: service}
}

func (s *synchronized) AddProcess(ctx context.Context, process model.Process) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.service.AddProcess(ctx, process)
}

func (s *synchronized) ListProcesses(ctx context.Context, sortedBy model.SortedBy) []model.Process {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.service.ListProcesses(ctx, sortedBy)
}

func (s *synchronized) Kill(ctx context.Context, pid string) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.service.Kill(ctx, pid)
}

func (s *synchronized) KillGroup(ctx context.Context, priority model.Priority) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.service.KillGroup(ctx, priority)
}

func (s *synchronized) KillAll(ctx context.Context) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.service.KillAll(ctx)
}

func (s *synchronized) Mode() model.Mode { return s.service.Mode() }

func (s *synchronized) Capacity() int { return s.service.Capacity() }

func (s *synchronized) Len() int {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.service.Len()
}

package tasker

import (
	"fmt"

	"github.com/viant/tasker/service/event"
	"github.com/viant/tasker/service/manager"
	"github.com/viant/tasker/service/messaging"
	"github.com/viant/tasker/service/messaging/memory"
	"github.com/viant/tasker/tracing"
)

// Service wires a task manager with its optional event queue and tracing
type Service struct {
	config         *Config
	manager        manager.Service
	eventQueue     messaging.Queue[event.Event]
	publisher      *event.Publisher
	managerOptions []manager.Option
}

func (s *Service) init(options []Option) error {
	for _, option := range options {
		option(s)
	}
	if err := s.config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	var managerOptions []manager.Option
	if s.config.UniquePIDs {
		managerOptions = append(managerOptions, manager.WithUniquePIDs())
	}
	if s.config.Synchronized {
		managerOptions = append(managerOptions, manager.WithSynchronized())
	}
	if s.config.Events.Enabled {
		if s.eventQueue == nil {
			s.eventQueue = memory.NewQueue[event.Event](memory.Config{Buffer: s.config.Events.Buffer})
		}
		s.publisher = event.NewPublisher(s.eventQueue)
		managerOptions = append(managerOptions, manager.WithPublisher(s.publisher))
	}
	if tc := s.config.Tracing; tc.Enabled {
		if err := tracing.Init(tc.ServiceName, tc.ServiceVersion, tc.OutputFile); err != nil {
			return fmt.Errorf("failed to initialise tracing: %w", err)
		}
		managerOptions = append(managerOptions, manager.WithTracing())
	}
	managerOptions = append(managerOptions, s.managerOptions...)
	var err error
	s.manager, err = manager.New(s.config.Mode, s.config.Capacity, managerOptions...)
	return err
}

// Manager returns the task manager
func (s *Service) Manager() manager.Service {
	return s.manager
}

// Events returns the lifecycle event publisher, nil when events are disabled
func (s *Service) Events() *event.Publisher {
	return s.publisher
}

// Config returns the effective configuration
func (s *Service) Config() *Config {
	return s.config
}

// New creates a service from DefaultConfig adjusted by options
func New(options ...Option) (*Service, error) {
	ret := &Service{config: DefaultConfig()}
	if err := ret.init(options); err != nil {
		return nil, err
	}
	return ret, nil
}

// NewFromConfig creates a service from the supplied config
func NewFromConfig(config *Config, options ...Option) (*Service, error) {
	return New(append([]Option{WithConfig(config)}, options...)...)
}

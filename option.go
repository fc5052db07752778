package tasker

import (
	"github.com/viant/tasker/model"
	"github.com/viant/tasker/service/event"
	"github.com/viant/tasker/service/manager"
	"github.com/viant/tasker/service/messaging"
)

// Option represents service option
type Option func(s *Service)

// WithConfig replaces the whole configuration with a copy of config;
// later options never modify the caller's value.
func WithConfig(config *Config) Option {
	return func(s *Service) {
		if config != nil {
			cfg := *config
			s.config = &cfg
		}
	}
}

// WithMode sets the admission mode
func WithMode(mode model.Mode) Option {
	return func(s *Service) {
		s.config.Mode = mode
	}
}

// WithCapacity sets the maximum number of tracked processes
func WithCapacity(capacity int) Option {
	return func(s *Service) {
		s.config.Capacity = capacity
	}
}

// WithKillFunc sets the action applied to killed and evicted processes
func WithKillFunc(fn manager.KillFunc) Option {
	return func(s *Service) {
		s.managerOptions = append(s.managerOptions, manager.WithKillFunc(fn))
	}
}

// WithEventQueue publishes lifecycle events to the supplied queue
func WithEventQueue(queue messaging.Queue[event.Event]) Option {
	return func(s *Service) {
		s.eventQueue = queue
		s.config.Events.Enabled = true
	}
}

// WithTracing enables OpenTelemetry spans written to outputFile, or stdout when empty.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(s *Service) {
		s.config.Tracing = TracingConfig{
			Enabled:        true,
			ServiceName:    serviceName,
			ServiceVersion: serviceVersion,
			OutputFile:     outputFile,
		}
	}
}

// WithManagerOptions passes additional options to manager.New
func WithManagerOptions(options ...manager.Option) Option {
	return func(s *Service) {
		s.managerOptions = append(s.managerOptions, options...)
	}
}

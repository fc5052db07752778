package manager

import "github.com/viant/tasker/service/event"

type options struct {
	kill         KillFunc
	publisher    *event.Publisher
	uniquePIDs   bool
	traced       bool
	synchronized bool
}

func newOptions(opts []Option) *options {
	ret := &options{kill: nopKill}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Option represents manager option
type Option func(o *options)

// WithKillFunc sets the action applied to every killed or evicted process
func WithKillFunc(fn KillFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.kill = fn
		}
	}
}

// WithPublisher publishes lifecycle events
func WithPublisher(publisher *event.Publisher) Option {
	return func(o *options) {
		o.publisher = publisher
	}
}

// WithUniquePIDs rejects processes whose pid is already tracked with ErrDuplicatePID
func WithUniquePIDs() Option {
	return func(o *options) {
		o.uniquePIDs = true
	}
}

// WithTracing records every operation as an OpenTelemetry span (New only)
func WithTracing() Option {
	return func(o *options) {
		o.traced = true
	}
}

// WithSynchronized serializes every operation with a mutex (New only)
func WithSynchronized() Option {
	return func(o *options) {
		o.synchronized = true
	}
}

package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/viant/tasker/internal/clock"
	"github.com/viant/tasker/internal/idgen"
	"github.com/viant/tasker/service/messaging"
)

// ErrQueueFull is returned by Publish when the buffer has no room left.
var ErrQueueFull = errors.New("memory queue: full")

// Config for memory queue implementation
type Config struct {
	Buffer   int  `json:"buffer" yaml:"buffer"`
	// Blocking makes Publish wait for room instead of failing with ErrQueueFull
	Blocking bool `json:"blocking,omitempty" yaml:"blocking,omitempty"`
}

// DefaultConfig returns a standard configuration for memory queue
func DefaultConfig() Config {
	return Config{Buffer: 100}
}

// Message implements messaging.Message for in-memory queue
type Message[T any] struct {
	id        string
	payload   T
	createdAt time.Time
	mu        sync.Mutex
	acked     bool
}

func (m *Message[T]) ID() string { return m.id }

// T returns the message payload
func (m *Message[T]) T() *T { return &m.payload }

// CreatedAt returns publishing time
func (m *Message[T]) CreatedAt() time.Time { return m.createdAt }

// Ack acknowledges the message as processed successfully
func (m *Message[T]) Ack() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.acked {
		return fmt.Errorf("message %v already acknowledged", m.id)
	}
	m.acked = true
	return nil
}

// Queue implements a bounded in-memory messaging.Queue.
// Unless configured as blocking, Publish never waits.
type Queue[T any] struct {
	messages chan *Message[T]
	blocking bool
}

// NewQueue creates a new in-memory queue
func NewQueue[T any](config Config) *Queue[T] {
	if config.Buffer <= 0 {
		config.Buffer = DefaultConfig().Buffer
	}
	return &Queue[T]{messages: make(chan *Message[T], config.Buffer), blocking: config.Blocking}
}

// Publish adds a copy of t to the queue. When no room is left it fails with
// ErrQueueFull, or for a blocking queue waits until a consumer makes room or ctx is done.
func (q *Queue[T]) Publish(ctx context.Context, t *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if t == nil {
		return fmt.Errorf("memory queue: nil payload")
	}
	msg := &Message[T]{id: idgen.New(), payload: *t, createdAt: clock.Now()}
	if q.blocking {
		select {
		case q.messages <- msg:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	select {
	case q.messages <- msg:
		return nil
	default:
		return ErrQueueFull
	}
}

// Consume retrieves a single item from the queue, blocking until one is available or ctx is done
func (q *Queue[T]) Consume(ctx context.Context) (messaging.Message[T], error) {
	select {
	case msg := <-q.messages:
		return msg, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Drain returns all queued payloads without blocking
func (q *Queue[T]) Drain() []T {
	var out []T
	for {
		select {
		case msg := <-q.messages:
			out = append(out, msg.payload)
		default:
			return out
		}
	}
}

// Size returns the current number of messages in the queue
func (q *Queue[T]) Size() int {
	return len(q.messages)
}

var _ messaging.Queue[any] = (*Queue[any])(nil)

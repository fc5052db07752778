package event

import (
	"context"

	"github.com/viant/tasker/service/messaging"
)

// Publisher hands events to a queue
type Publisher struct {
	queue messaging.Queue[Event]
}

// NewPublisher creates a publisher backed by queue
func NewPublisher(queue messaging.Queue[Event]) *Publisher {
	return &Publisher{queue: queue}
}

// Publish enqueues the event; a nil publisher discards it.
func (p *Publisher) Publish(ctx context.Context, e *Event) error {
	if p == nil || e == nil {
		return nil
	}
	return p.queue.Publish(ctx, e)
}

// Consume returns the next acknowledged event
func (p *Publisher) Consume(ctx context.Context) (*Event, error) {
	msg, err := p.queue.Consume(ctx)
	if err != nil || msg == nil {
		return nil, err
	}
	if err = msg.Ack(); err != nil {
		return nil, err
	}
	return msg.T(), nil
}

package event

import (
	"context"
	"errors"
	"log"
	"sync"
)

// Listener dispatches published events to a handler on a background goroutine.
type Listener struct {
	publisher *Publisher
	handler   func(*Event)
	cancel    context.CancelFunc
	done      chan struct{}
	once      sync.Once
}

// NewListener creates a listener; call Start to begin dispatching
func NewListener(publisher *Publisher, handler func(*Event)) *Listener {
	return &Listener{publisher: publisher, handler: handler, done: make(chan struct{})}
}

// Start runs the dispatch loop until Stop is called or ctx is done
func (l *Listener) Start(ctx context.Context) {
	ctx, l.cancel = context.WithCancel(ctx)
	go func() {
		defer close(l.done)
		for {
			e, err := l.publisher.Consume(ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return
				}
				log.Printf("error consuming event: %v", err)
				continue
			}
			if e != nil {
				l.handler(e)
			}
		}
	}()
}

// Stop terminates the dispatch loop and waits for it to exit
func (l *Listener) Stop() {
	l.once.Do(func() {
		if l.cancel == nil {
			close(l.done)
			return
		}
		l.cancel()
		<-l.done
	})
}

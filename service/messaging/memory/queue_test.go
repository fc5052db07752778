package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	ID    string
	Count int
}

func TestQueue(t *testing.T) {
	queue := NewQueue[testPayload](DefaultConfig())
	ctx := context.Background()

	payload := testPayload{ID: "test-1", Count: 1}
	assert.NoError(t, queue.Publish(ctx, &payload))
	assert.Equal(t, 1, queue.Size())

	payload.Count = 2
	message, err := queue.Consume(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, queue.Size())
	assert.NotEmpty(t, message.ID())
	assert.Equal(t, testPayload{ID: "test-1", Count: 1}, *message.T(), "payload is copied on publish")

	assert.NoError(t, message.Ack())
	assert.Error(t, message.Ack())
}

func TestQueue_Full(t *testing.T) {
	queue := NewQueue[testPayload](Config{Buffer: 2})
	ctx := context.Background()

	assert.NoError(t, queue.Publish(ctx, &testPayload{ID: "1"}))
	assert.NoError(t, queue.Publish(ctx, &testPayload{ID: "2"}))
	assert.ErrorIs(t, queue.Publish(ctx, &testPayload{ID: "3"}), ErrQueueFull)

	assert.Equal(t, []testPayload{{ID: "1"}, {ID: "2"}}, queue.Drain())
	assert.Empty(t, queue.Drain())
	assert.NoError(t, queue.Publish(ctx, &testPayload{ID: "3"}))
}

func TestQueue_ContextCancellation(t *testing.T) {
	queue := NewQueue[testPayload](DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, queue.Publish(ctx, &testPayload{ID: "test"}))

	timeoutCtx, cancelTimeout := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancelTimeout()
	_, err := queue.Consume(timeoutCtx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestQueue_Concurrency(t *testing.T) {
	queue := NewQueue[testPayload](Config{Buffer: 1000})
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(producer int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				assert.NoError(t, queue.Publish(ctx, &testPayload{Count: producer*100 + j}))
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 500, queue.Size())
	assert.Len(t, queue.Drain(), 500)
}

func TestQueue_Blocking(t *testing.T) {
	queue := NewQueue[testPayload](Config{Buffer: 1, Blocking: true})
	ctx := context.Background()
	require.NoError(t, queue.Publish(ctx, &testPayload{ID: "1"}))

	published := make(chan error, 1)
	go func() {
		published <- queue.Publish(ctx, &testPayload{ID: "2"})
	}()
	select {
	case err := <-published:
		t.Fatalf("publish to a full blocking queue returned early: %v", err)
	case <-time.After(20 * time.Millisecond):
	}

	message, err := queue.Consume(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1", message.T().ID)
	assert.NoError(t, <-published)
	assert.Equal(t, []testPayload{{ID: "2"}}, queue.Drain())

	require.NoError(t, queue.Publish(ctx, &testPayload{ID: "3"}))
	timeoutCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, queue.Publish(timeoutCtx, &testPayload{ID: "4"}), context.DeadlineExceeded)
}

package async

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingProcessor struct {
	mu   sync.Mutex
	seen []uuid.UUID
	done chan struct{}
	want int
}

func (c *countingProcessor) ProcessFile(_ context.Context, fileID uuid.UUID) (uuid.UUID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seen = append(c.seen, fileID)
	if len(c.seen) == c.want {
		close(c.done)
	}
	return uuid.New(), nil
}

func TestProcessorQueue_ProcessesAllJobs(t *testing.T) {
	proc := &countingProcessor{done: make(chan struct{}), want: 5}
	q := NewProcessorQueue(proc, nil, WithWorkers(2), WithQueueSize(16))

	ids := make([]uuid.UUID, 5)
	for i := range ids {
		ids[i] = uuid.New()
		require.NoError(t, q.Enqueue(context.Background(), Job{FileID: ids[i], SubmittedAt: time.Now()}))
	}

	select {
	case <-proc.done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for jobs")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)

	proc.mu.Lock()
	defer proc.mu.Unlock()
	assert.ElementsMatch(t, ids, proc.seen)
}

func TestProcessorQueue_EnqueueAfterShutdownIsNoop(t *testing.T) {
	proc := &countingProcessor{done: make(chan struct{}), want: 1}
	q := NewProcessorQueue(proc, nil, WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)

	require.NoError(t, q.Enqueue(context.Background(), Job{FileID: uuid.New()}))

	proc.mu.Lock()
	defer proc.mu.Unlock()
	assert.Empty(t, proc.seen)
}

func TestProcessorQueue_ShutdownIsIdempotent(t *testing.T) {
	proc := &countingProcessor{done: make(chan struct{}), want: 1}
	q := NewProcessorQueue(proc, nil, WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)
	q.Shutdown(ctx) // must not panic on double close
}

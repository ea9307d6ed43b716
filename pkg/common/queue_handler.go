package common

import (
	"sync"
	"time"
)

// QueueProcessor handles one batch of queued items.
type QueueProcessor[V any] func(items []V)

// QueueHandler batches incoming items and hands them to the processor on a
// background goroutine, decoupling change-feed ingestion from request
// handling.
type QueueHandler[V any] struct {
	mu        sync.Mutex
	queue     []V
	processor QueueProcessor[V]
	chunkSize int
}

func NewQueueHandler[V any](processor QueueProcessor[V], chunkSize int) *QueueHandler[V] {
	q := &QueueHandler[V]{
		queue:     make([]V, 0),
		processor: processor,
		chunkSize: chunkSize,
	}
	go q.processQueue()
	return q
}

// Add appends items to the queue.
func (h *QueueHandler[V]) Add(items ...V) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.queue = append(h.queue, items...)
}

func (h *QueueHandler[V]) processQueue() {
	for {
		h.mu.Lock()
		if len(h.queue) == 0 {
			h.mu.Unlock()
			time.Sleep(time.Second)
			continue
		}
		items := h.queue[:min(h.chunkSize, len(h.queue))]
		h.queue = h.queue[len(items):]
		h.mu.Unlock()

		h.processor(items)
	}
}

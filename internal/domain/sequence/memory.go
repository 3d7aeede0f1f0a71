package sequence

import (
	"context"
	"sync"
)

// MemoryCounter is a process-local Counter. The mutex makes increments atomic
// within one process only, so it is suitable for tests and single-instance
// deployments; anything running more than one process must use a shared store.
type MemoryCounter struct {
	mu       sync.Mutex
	counters map[string]int64
}

func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{counters: make(map[string]int64)}
}

func (m *MemoryCounter) Next(ctx context.Context, name, dayKey string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := name + ":" + dayKey
	m.counters[key]++
	return m.counters[key], nil
}

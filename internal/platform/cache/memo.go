package cache

import (
	"context"
	"fmt"
	"sync"

	"github.com/cricsight-io/cricsight/internal/platform/resilience"
)

// DefaultCapacity is the number of distinct argument keys kept per memoized
// function.
const DefaultCapacity = 10

// Memo caches function results by exact argument key. Each function name owns
// an independent, capacity-bounded group; when a group is full the oldest
// inserted key is evicted. Only successful results are cached.
type Memo struct {
	mu       sync.Mutex
	capacity int
	groups   map[string]*memoGroup
	flight   resilience.SingleFlight
}

type memoGroup struct {
	entries map[string]any
	order   []string
}

func NewMemo(capacity int) *Memo {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Memo{
		capacity: capacity,
		groups:   make(map[string]*memoGroup),
	}
}

// Get returns the cached value for (function, key) if present.
func (m *Memo) Get(function, key string) (any, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	group, ok := m.groups[function]
	if !ok {
		return nil, false
	}
	value, ok := group.entries[key]
	return value, ok
}

// GetOrLoad returns the cached value for (function, key), invoking loader on a
// miss. Concurrent misses for the same pair share one loader execution.
func (m *Memo) GetOrLoad(ctx context.Context, function, key string, loader func(context.Context) (any, error)) (any, error) {
	if loader == nil {
		return nil, fmt.Errorf("loader is required")
	}

	if value, ok := m.Get(function, key); ok {
		return value, nil
	}

	value, err, _ := m.flight.Do(function+"\x00"+key, func() (any, error) {
		if cached, ok := m.Get(function, key); ok {
			return cached, nil
		}

		loaded, loadErr := loader(ctx)
		if loadErr != nil {
			return nil, loadErr
		}
		m.set(function, key, loaded)
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Clear drops every entry cached for function. Other functions' groups are
// untouched.
func (m *Memo) Clear(function string) {
	m.mu.Lock()
	delete(m.groups, function)
	m.mu.Unlock()
}

// Size reports how many keys are cached for function.
func (m *Memo) Size(function string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	group, ok := m.groups[function]
	if !ok {
		return 0
	}
	return len(group.entries)
}

func (m *Memo) set(function, key string, value any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	group, ok := m.groups[function]
	if !ok {
		group = &memoGroup{entries: make(map[string]any, m.capacity)}
		m.groups[function] = group
	}

	if _, exists := group.entries[key]; exists {
		group.entries[key] = value
		return
	}

	if len(group.entries) >= m.capacity {
		oldest := group.order[0]
		group.order = group.order[1:]
		delete(group.entries, oldest)
	}

	group.entries[key] = value
	group.order = append(group.order, key)
}

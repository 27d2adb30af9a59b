package sources

import (
	"sync"
	"time"
)

type memoEntry struct {
	value   int
	expires time.Time
}

// memoCache is a small TTL cache for source lookups. Heatmap generation
// asks for many nearby cells in one burst; without this every grid cell
// would hit the upstream API.
type memoCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoEntry
}

func newMemoCache(ttl time.Duration) *memoCache {
	return &memoCache{
		ttl:     ttl,
		entries: make(map[string]memoEntry),
	}
}

func (m *memoCache) get(key string) (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	if !ok || time.Now().After(e.expires) {
		return 0, false
	}
	return e.value, true
}

func (m *memoCache) put(key string, value int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = memoEntry{
		value:   value,
		expires: time.Now().Add(m.ttl),
	}
}

package storage

import (
	"context"
	"sync"
	"time"
)

// MemoryStorage keeps links and their click stats in two process-lifetime
// maps keyed by short code. One mutex guards both maps so that a link and
// its stats entry are always created and read together.
type MemoryStorage struct {
	mu    sync.Mutex
	links map[string]LinkRecord
	stats map[string]*ClickStats
}

func CreateMemoryStorage() (*MemoryStorage, error) {
	return &MemoryStorage{
		links: make(map[string]LinkRecord),
		stats: make(map[string]*ClickStats),
	}, nil
}

// Create inserts the link together with a zeroed stats entry. The existence
// check and the insert happen under one lock, so two concurrent creations
// with the same code cannot both succeed.
func (m *MemoryStorage) Create(ctx context.Context, record LinkRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.links[record.Code]; exists {
		return ErrExists
	}

	m.links[record.Code] = record
	m.stats[record.Code] = &ClickStats{ClickData: []ClickEvent{}}
	return nil
}

func (m *MemoryStorage) FindByCode(ctx context.Context, code string) (LinkRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, exists := m.links[code]
	if !exists {
		return LinkRecord{}, ErrNotFound
	}
	return record, nil
}

// StatsByCode returns a copy of the stats entry so callers never observe a
// partially appended click history.
func (m *MemoryStorage) StatsByCode(ctx context.Context, code string) (ClickStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats, exists := m.stats[code]
	if !exists {
		return ClickStats{}, ErrNotFound
	}

	out := ClickStats{
		Clicks:    stats.Clicks,
		ClickData: make([]ClickEvent, len(stats.ClickData)),
	}
	copy(out.ClickData, stats.ClickData)
	return out, nil
}

// AddClick increments the counter and appends the event under the same lock,
// so concurrent redirects for one code never lose an increment.
func (m *MemoryStorage) AddClick(ctx context.Context, code string, event ClickEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats, exists := m.stats[code]
	if !exists {
		return ErrNotFound
	}

	stats.Clicks++
	stats.ClickData = append(stats.ClickData, event)
	return nil
}

// DeleteExpired removes every link whose expiry is before now, together with
// its stats entry, and returns how many were evicted.
func (m *MemoryStorage) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	evicted := 0
	for code, record := range m.links {
		if record.Expired(now) {
			delete(m.links, code)
			delete(m.stats, code)
			evicted++
		}
	}
	return evicted, nil
}

func (m *MemoryStorage) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.links)
}

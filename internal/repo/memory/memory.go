package memory

import (
	"context"
	"sync"
	"time"

	"github.com/hamed0406/domaincheck/internal/domain"
	"github.com/hamed0406/domaincheck/internal/repo"
)

var _ repo.BatchStore = (*Store)(nil)

// Store keeps batches in process memory, newest first.
type Store struct {
	mu      sync.RWMutex
	batches map[domain.BatchID]*domain.Batch
	order   []domain.BatchID
}

func New() *Store {
	return &Store{batches: make(map[domain.BatchID]*domain.Batch)}
}

func (m *Store) Save(ctx context.Context, b *domain.Batch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if b.ID == "" {
		b.ID = domain.BatchID(time.Now().UTC().Format("20060102T150405.000000000"))
	}
	if _, exists := m.batches[b.ID]; !exists {
		m.order = append(m.order, b.ID)
	}
	m.batches[b.ID] = b
	return nil
}

func (m *Store) Get(ctx context.Context, id domain.BatchID) (*domain.Batch, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.batches[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return b, nil
}

func (m *Store) List(ctx context.Context) ([]repo.BatchRow, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]repo.BatchRow, 0, len(m.order))
	// newest first
	for i := len(m.order) - 1; i >= 0; i-- {
		b := m.batches[m.order[i]]
		out = append(out, repo.BatchRow{
			ID:         b.ID,
			Summary:    b.Summary,
			StartedAt:  b.StartedAt,
			FinishedAt: b.FinishedAt,
		})
	}
	return out, nil
}

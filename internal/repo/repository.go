package repo

import (
	"context"
	"errors"
	"time"

	"github.com/hamed0406/domaincheck/internal/domain"
)

var ErrNotFound = errors.New("batch not found")

// BatchRow is the listing shape: batch metadata without the per-domain
// results payload.
type BatchRow struct {
	ID         domain.BatchID `json:"id"`
	Summary    domain.Summary `json:"summary"`
	StartedAt  time.Time      `json:"started_at"`
	FinishedAt time.Time      `json:"finished_at"`
}

// BatchStore archives completed audit runs. Swap in any DB adapter.
type BatchStore interface {
	Save(ctx context.Context, b *domain.Batch) error
	Get(ctx context.Context, id domain.BatchID) (*domain.Batch, error)
	List(ctx context.Context) ([]BatchRow, error)
}

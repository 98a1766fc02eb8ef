package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/hamed0406/domaincheck/internal/domain"
	"github.com/hamed0406/domaincheck/internal/repo"
)

var _ repo.BatchStore = (*Store)(nil)

// Store archives batches in Postgres. Results are kept as a JSONB payload:
// the audit never queries individual rows, it only replays whole batches.
type Store struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func New(ctx context.Context, databaseURL string, logger *zap.Logger) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	s := &Store{pool: pool, logger: logger}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() { s.pool.Close() }

func (s *Store) migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS batches (
	id          TEXT PRIMARY KEY,
	started_at  TIMESTAMPTZ NOT NULL,
	finished_at TIMESTAMPTZ NOT NULL,
	summary     JSONB NOT NULL,
	results     JSONB NOT NULL
)`)
	if err != nil {
		return fmt.Errorf("migrate batches: %w", err)
	}
	return nil
}

func (s *Store) Save(ctx context.Context, b *domain.Batch) error {
	if b.ID == "" {
		b.ID = domain.BatchID(time.Now().UTC().Format("20060102T150405.000000000"))
	}
	summary, err := json.Marshal(b.Summary)
	if err != nil {
		return err
	}
	results, err := json.Marshal(b.Results)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, `
INSERT INTO batches (id, started_at, finished_at, summary, results)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO UPDATE
SET started_at = EXCLUDED.started_at,
    finished_at = EXCLUDED.finished_at,
    summary = EXCLUDED.summary,
    results = EXCLUDED.results`,
		string(b.ID), b.StartedAt, b.FinishedAt, summary, results)
	if err != nil {
		s.logger.Warn("batch_save_error", zap.String("id", string(b.ID)), zap.Error(err))
	}
	return err
}

func (s *Store) Get(ctx context.Context, id domain.BatchID) (*domain.Batch, error) {
	var (
		b       = domain.Batch{ID: id}
		summary []byte
		results []byte
	)
	err := s.pool.QueryRow(ctx, `
SELECT started_at, finished_at, summary, results FROM batches WHERE id = $1`,
		string(id)).Scan(&b.StartedAt, &b.FinishedAt, &summary, &results)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(summary, &b.Summary); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(results, &b.Results); err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *Store) List(ctx context.Context) ([]repo.BatchRow, error) {
	rows, err := s.pool.Query(ctx, `
SELECT id, started_at, finished_at, summary FROM batches ORDER BY started_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []repo.BatchRow
	for rows.Next() {
		var (
			r       repo.BatchRow
			id      string
			summary []byte
		)
		if err := rows.Scan(&id, &r.StartedAt, &r.FinishedAt, &summary); err != nil {
			return nil, err
		}
		r.ID = domain.BatchID(id)
		if err := json.Unmarshal(summary, &r.Summary); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

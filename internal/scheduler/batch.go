package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/hamed0406/domaincheck/internal/domain"
	"github.com/hamed0406/domaincheck/internal/probe"
)

// Batch fans a list of raw domain strings out over a bounded number of
// concurrently running checks and collects one result per input, in input
// order. Each result lands in its own slot so no lock guards the output.
type Batch struct {
	Logger      *zap.Logger
	Checker     probe.Checker
	Concurrency int
	Limiter     *rate.Limiter // nil = unthrottled
}

func NewBatch(logger *zap.Logger, checker probe.Checker, concurrency int, perSecond float64) *Batch {
	if concurrency < 1 {
		concurrency = 1
	}
	var lim *rate.Limiter
	if perSecond > 0 {
		lim = rate.NewLimiter(rate.Limit(perSecond), concurrency)
	}
	return &Batch{
		Logger:      logger,
		Checker:     checker,
		Concurrency: concurrency,
		Limiter:     lim,
	}
}

// Run blocks until every domain has produced a result. A single domain's
// failure is recorded in its slot and never affects the others.
func (b *Batch) Run(ctx context.Context, domains []string) []domain.ProbeResult {
	b.Logger.Info("batch_start",
		zap.Int("domains", len(domains)),
		zap.Int("concurrency", b.Concurrency),
	)
	start := time.Now()

	results := make([]domain.ProbeResult, len(domains))
	sem := make(chan struct{}, b.Concurrency)
	var wg sync.WaitGroup

	for i, d := range domains {
		sem <- struct{}{}
		wg.Add(1)
		go func(pos int, raw string) {
			defer func() { <-sem }()
			defer wg.Done()

			if b.Limiter != nil {
				_ = b.Limiter.Wait(ctx)
			}

			r := b.Checker.Check(ctx, raw)
			r.Position = pos
			results[pos] = r

			b.Logger.Debug("domain_checked",
				zap.Int("position", pos),
				zap.String("domain", r.Domain),
				zap.Bool("dns_resolves", r.DNSResolves),
				zap.String("http_status", r.HTTPStatus.String()),
				zap.String("category", string(r.Category)),
			)
		}(i, d)
	}

	wg.Wait()

	sum := domain.Summarize(results)
	b.Logger.Info("batch_done",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("total", sum.Total),
		zap.Int("active", sum.Active),
		zap.Int("client_error", sum.ClientError),
		zap.Int("server_error", sum.ServerError),
		zap.Int("inactive_dns", sum.InactiveDNS),
		zap.Int("inactive_conn", sum.InactiveConn),
	)
	return results
}

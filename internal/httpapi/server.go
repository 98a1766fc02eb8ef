package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/hamed0406/domaincheck/internal/domain"
	apimw "github.com/hamed0406/domaincheck/internal/httpapi/middleware"
	"github.com/hamed0406/domaincheck/internal/repo"
	"github.com/hamed0406/domaincheck/internal/scheduler"
)

// maxBatchSize caps one API-submitted run; bigger audits belong in the CLI.
const maxBatchSize = 5000

type Server struct {
	Logger  *zap.Logger
	Batches repo.BatchStore
	Runner  *scheduler.Batch
}

func NewServer(l *zap.Logger, store repo.BatchStore, runner *scheduler.Batch) *Server {
	return &Server{Logger: l, Batches: store, Runner: runner}
}

func (s *Server) Router(keys apimw.Keys, ratePerSec float64) http.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)
	r.Use(apimw.RateLimit(ratePerSec, 10))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(apimw.RequireAny(keys))
		r.Get("/api/batches", s.handleListBatches)
		r.Get("/api/batches/{id}", s.handleGetBatch)
	})

	r.Group(func(r chi.Router) {
		r.Use(apimw.RequireAdmin(keys))
		r.Post("/api/checks", s.handleRunChecks)
	})

	return r
}

type checkPayload struct {
	Domains []string `json:"domains"`
}

// handleRunChecks runs a batch synchronously and returns the full result
// set. The run is archived before the response goes out.
func (s *Server) handleRunChecks(w http.ResponseWriter, r *http.Request) {
	var p checkPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || len(p.Domains) == 0 {
		http.Error(w, "bad payload", http.StatusBadRequest)
		return
	}
	if len(p.Domains) > maxBatchSize {
		http.Error(w, "too many domains", http.StatusRequestEntityTooLarge)
		return
	}

	started := time.Now().UTC()
	results := s.Runner.Run(r.Context(), p.Domains)

	b := &domain.Batch{
		Results:    results,
		Summary:    domain.Summarize(results),
		StartedAt:  started,
		FinishedAt: time.Now().UTC(),
	}
	if err := s.Batches.Save(r.Context(), b); err != nil {
		// archive failure should not hide the results from the caller
		s.Logger.Warn("batch_archive_error", zap.Error(err))
	}

	s.Logger.Info("api_batch",
		zap.String("id", string(b.ID)),
		zap.Int("domains", len(p.Domains)),
		zap.Int("active", b.Summary.Active),
	)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(b)
}

func (s *Server) handleListBatches(w http.ResponseWriter, r *http.Request) {
	rows, err := s.Batches.List(r.Context())
	if err != nil {
		http.Error(w, "list error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rows)
}

func (s *Server) handleGetBatch(w http.ResponseWriter, r *http.Request) {
	id := domain.BatchID(chi.URLParam(r, "id"))
	b, err := s.Batches.Get(r.Context(), id)
	if errors.Is(err, repo.ErrNotFound) {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "get error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(b)
}

package main

import (
	"context"
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/hamed0406/domaincheck/internal/config"
	"github.com/hamed0406/domaincheck/internal/httpapi"
	apimw "github.com/hamed0406/domaincheck/internal/httpapi/middleware"
	"github.com/hamed0406/domaincheck/internal/logging"
	"github.com/hamed0406/domaincheck/internal/probe"
	"github.com/hamed0406/domaincheck/internal/repo"
	"github.com/hamed0406/domaincheck/internal/repo/memory"
	"github.com/hamed0406/domaincheck/internal/repo/postgres"
	"github.com/hamed0406/domaincheck/internal/scheduler"
)

func main() {
	cfg := config.FromEnv()
	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	var store repo.BatchStore = memory.New()
	if cfg.DatabaseURL != "" {
		pg, err := postgres.New(context.Background(), cfg.DatabaseURL, logger)
		if err != nil {
			log.Fatal(err)
		}
		defer pg.Close()
		store = pg
	}

	checker := probe.NewDomainChecker(cfg.ProberOptions())
	runner := scheduler.NewBatch(logger, checker, cfg.Concurrency, cfg.RatePerSecond)
	api := httpapi.NewServer(logger, store, runner)

	keys := apimw.Keys{Public: cfg.PublicAPIKeys, Admin: cfg.AdminAPIKeys}

	logger.Info("api_listen", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, api.Router(keys, 10)); err != nil {
		log.Fatal(err)
	}
}

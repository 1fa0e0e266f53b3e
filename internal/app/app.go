package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/cricsight-io/cricsight/external/cricbuzz"
	"github.com/cricsight-io/cricsight/internal/config"
	"github.com/cricsight-io/cricsight/internal/domain/catalogue"
	"github.com/cricsight-io/cricsight/internal/infrastructure/dataset"
	"github.com/cricsight-io/cricsight/internal/infrastructure/repository/sqlite"
	"github.com/cricsight-io/cricsight/internal/interfaces/httpapi"
	"github.com/cricsight-io/cricsight/internal/platform/cache"
	"github.com/cricsight-io/cricsight/internal/platform/logging"
	"github.com/cricsight-io/cricsight/internal/usecase"
)

// NewHTTPServer wires the full service: dataset load, in-memory store
// materialization, upstream client, services, and the HTTP surface. The
// returned cleanup closes the store and must run on shutdown. A missing or
// unreadable dataset file fails construction; the service must not start
// without its data.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *slog.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = slog.Default()
	}
	zlog := logging.Default()

	table, err := dataset.NewLoader(cfg.DatasetPath, zlog).Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load dataset: %w", err)
	}

	store, err := sqlite.Open(zlog)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	if err := store.Materialize(ctx, table); err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("materialize dataset: %w", err)
	}

	client := cricbuzz.NewClient(cricbuzz.ClientConfig{
		BaseURL: cfg.CricbuzzBaseURL,
		APIHost: cfg.CricbuzzAPIHost,
		APIKey:  cfg.CricbuzzAPIKey,
		Timeout: cfg.CricbuzzTimeout,
		Logger:  zlog,
	})

	memo := cache.NewMemo(cfg.MemoCapacity)

	matchSvc := usecase.NewMatchService(client, memo, cfg.ScorecardFanoutWorkers, zlog)
	playerSvc := usecase.NewPlayerService(client, memo)
	analyticsSvc := usecase.NewAnalyticsService(catalogue.New(), store)
	cacheSvc := usecase.NewCacheService(memo, zlog)

	handler := httpapi.NewHandler(matchSvc, playerSvc, analyticsSvc, cacheSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = store.Close()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, store.Close, nil
}

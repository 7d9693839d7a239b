package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/supchaser/genbatch/internal/app"
	"github.com/supchaser/genbatch/internal/app/delivery"
	"github.com/supchaser/genbatch/internal/app/history"
	"github.com/supchaser/genbatch/internal/app/repository"
	"github.com/supchaser/genbatch/internal/app/usecase"
	"github.com/supchaser/genbatch/internal/config"
	"github.com/supchaser/genbatch/internal/middleware"
	"github.com/supchaser/genbatch/internal/services/genai"
	"github.com/supchaser/genbatch/internal/services/imageprep"
	"github.com/supchaser/genbatch/internal/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.LoadConfig(".env")
	if err != nil {
		fmt.Printf("error initializing config: %v\n", err)
		os.Exit(1)
	}

	err = logger.Init(cfg.LogMode)
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("configuration loaded successfully")
	logger.Debug("debug mode enabled",
		zap.String("log_mode", cfg.LogMode),
		zap.Int("max_runs", cfg.MaxActiveRuns),
		zap.Int("max_items_per_run", cfg.MaxItemsPerRun),
		zap.Duration("item_delay", cfg.ItemDelay),
		zap.String("history_backend", cfg.HistoryBackend),
	)

	if err := run(cfg); err != nil {
		logger.Error("server exited with error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("server stopped")
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	historyStore, closeHistory, err := newHistoryStore(cfg)
	if err != nil {
		return err
	}
	defer closeHistory()

	generator := genai.NewClient(genai.Config{
		APIKey:         cfg.GenAI.APIKey,
		BaseURL:        cfg.GenAI.BaseURL,
		Model:          cfg.GenAI.Model,
		TimeoutSeconds: cfg.GenAI.TimeoutSeconds,
	})
	preparer := imageprep.NewPreparer(cfg.ReferenceMaxDimension)

	runRepo := repository.CreateRunRepository(cfg.MaxActiveRuns, cfg.RetainedRuns)
	batchUsecase := usecase.CreateBatchUsecase(ctx, runRepo, generator, historyStore, preparer, usecase.Options{
		MaxItemsPerRun: cfg.MaxItemsPerRun,
		ItemDelay:      cfg.ItemDelay,
	})
	batchDelivery := delivery.CreateBatchDelivery(batchUsecase)

	router := newRouter(batchDelivery)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.ServerPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting HTTP server",
			zap.String("address", server.Addr),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("server is shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}

		// Runs stop at the next item once the base context is cancelled.
		stop()
		batchUsecase.Wait()
		return nil
	})

	return g.Wait()
}

func newRouter(batchDelivery *delivery.BatchDelivery) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods("GET")

	apiRouter := router.PathPrefix("/api/v1").Subrouter()
	apiRouter.HandleFunc("/history", batchDelivery.ListHistory).Methods("GET")

	runRouter := apiRouter.PathPrefix("/runs").Subrouter()
	runRouter.HandleFunc("", batchDelivery.CreateRun).Methods("POST")
	runRouter.HandleFunc("", batchDelivery.GetAllRuns).Methods("GET")
	runRouter.HandleFunc("/{id}", batchDelivery.GetRun).Methods("GET")
	runRouter.HandleFunc("/{id}/cancel", batchDelivery.CancelRun).Methods("POST")
	runRouter.HandleFunc("/{id}/archive", batchDelivery.DownloadArchive).Methods("GET")
	runRouter.HandleFunc("/{id}/items/{index:[0-9]+}/retry", batchDelivery.RetryItem).Methods("POST")
	runRouter.HandleFunc("/{id}/items/{index:[0-9]+}/artifact", batchDelivery.GetArtifact).Methods("GET")

	router.Use(middleware.TraceIDMiddleware)
	router.Use(middleware.LoggingMiddleware)
	router.Use(middleware.PanicMiddleware)

	return router
}

func newHistoryStore(cfg *config.Config) (app.HistoryStore, func(), error) {
	switch cfg.HistoryBackend {
	case config.HistoryBackendRedis:
		client, err := history.ConnectRedis(cfg.RedisAddr)
		if err != nil {
			return nil, nil, fmt.Errorf("connect history backend: %w", err)
		}
		store := history.CreateRedisStore(client, cfg.HistoryLimit)
		logger.Info("using redis history store", zap.String("addr", cfg.RedisAddr))
		return store, func() {
			if err := store.Close(); err != nil {
				logger.Warn("failed to close redis", zap.Error(err))
			}
		}, nil
	default:
		logger.Info("using in-memory history store", zap.Int("limit", cfg.HistoryLimit))
		return history.CreateMemoryStore(cfg.HistoryLimit), func() {}, nil
	}
}

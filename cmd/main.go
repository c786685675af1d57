package main

import (
	"context"
	"errors"
	"fmt"
	"lending-admin/internal/api"
	"lending-admin/internal/batch"
	"lending-admin/internal/config"
	"lending-admin/internal/domain/borrower"
	"lending-admin/internal/event"
	"lending-admin/internal/infrastructure/database/postgres"
	"lending-admin/internal/infrastructure/logging"
	"lending-admin/internal/listing"
	"lending-admin/internal/snapshot"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/robfig/cron/v3"
)

const initialLoadTimeout = 30 * time.Second

// @title Lending Admin API
// @version 1.0
// @description Borrower list and maintenance API for the lending administration dashboard.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, logger := initializeApp()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dbPool := initializeDatabase(ctx, cfg, logger)
	defer closeDatabase(dbPool, logger)

	rabbitMQConn, publisher := setupEventPublisher(cfg, logger)

	store, services := initializeServices(dbPool, publisher, cfg, logger)
	loadInitialSnapshot(ctx, store, logger)

	refreshJob := batch.NewSnapshotRefreshJob(store, cfg.Batch.SnapshotRefreshTimeout, logger)
	cronScheduler := startBatchJobs(cfg, refreshJob, logger)

	router := api.SetupRouter(ctx, services, cfg, logger)

	srv, serverErrors, shutdownChan := startServer(cfg, router, logger)
	handleShutdown(srv, cronScheduler, rabbitMQConn, shutdownChan, serverErrors, logger)
}

func initializeApp() (*config.Config, *slog.Logger) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := logging.NewLogger(cfg.Logger)
	slog.SetDefault(logger)
	logger.Info("Application starting...", "config_source", cfg.Source)

	return cfg, logger
}

func initializeDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) *pgxpool.Pool {
	logger.Info("Initializing database connection pool...")
	dbPool, err := postgres.NewConnectionPool(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("Failed to initialize database connection pool", slog.Any("error", err))
		os.Exit(1)
	}
	return dbPool
}

func closeDatabase(dbPool *pgxpool.Pool, logger *slog.Logger) {
	logger.Info("Closing database connection pool...")
	dbPool.Close()
}

func initializeServices(dbPool *pgxpool.Pool, publisher event.Publisher, cfg *config.Config, logger *slog.Logger) (*snapshot.Store, api.Services) {
	logger.Info("Initializing application components...")
	borrowerRepo := postgres.NewBorrowerRepository(dbPool, logger)
	customerRepo := postgres.NewCustomerRepository(dbPool, logger)

	store := snapshot.NewStore(borrowerRepo, customerRepo, logger)
	listingService := listing.NewService(store, listing.NewViewCache(0), logger)
	borrowerService := borrower.NewBorrowerService(borrowerRepo, customerRepo, store, publisher, logger)

	return store, api.Services{
		Borrowers: borrowerService,
		Listing:   listingService,
		Refresher: store,
	}
}

// loadInitialSnapshot does not abort startup on failure; the list reports the
// blocking error until a refresh succeeds.
func loadInitialSnapshot(ctx context.Context, store *snapshot.Store, logger *slog.Logger) {
	loadCtx, cancel := context.WithTimeout(ctx, initialLoadTimeout)
	defer cancel()

	if err := store.Refresh(loadCtx); err != nil {
		logger.Error("Initial borrower snapshot load failed", slog.Any("error", err))
		return
	}
	snap := store.Current()
	logger.Info("Initial borrower snapshot loaded",
		slog.Uint64("version", snap.Version),
		slog.Int("borrowers", len(snap.Borrowers)),
		slog.Int("customers", len(snap.Customers)),
	)
}

func startServer(cfg *config.Config, router http.Handler, logger *slog.Logger) (*http.Server, <-chan error, <-chan os.Signal) {
	logger.Info("Setting up HTTP server...", "port", cfg.Server.Port)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info(fmt.Sprintf("Server listening on port %d", cfg.Server.Port))
		err := srv.ListenAndServe()
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server error", slog.Any("error", err))
			serverErrors <- err
		} else {
			logger.Info("Server closed gracefully.")
			serverErrors <- nil
		}
	}()
	return srv, serverErrors, shutdownChan
}

func handleShutdown(srv *http.Server, cronScheduler *cron.Cron, rabbitConn *amqp.Connection,
	shutdownChan <-chan os.Signal, serverErrors <-chan error, logger *slog.Logger) {
	logger.Info("Shutdown handler started. Waiting for signal or server error...")

	triggerReason := waitForShutdownTrigger(shutdownChan, serverErrors, logger)

	logger.Info("Starting graceful shutdown...", "trigger", triggerReason)

	stopCronScheduler(cronScheduler, logger)
	closeRabbitMQConnection(rabbitConn, logger)
	shutdownHTTPServer(srv, serverErrors, logger)

	logger.Info("Application shutdown process complete.")
}

func waitForShutdownTrigger(shutdownChan <-chan os.Signal, serverErrors <-chan error, logger *slog.Logger) string {
	select {
	case sig := <-shutdownChan:
		logger.Info("Shutdown signal received.", "signal", sig.String())
		return "signal: " + sig.String()
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server exited unexpectedly before signal", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Server goroutine finished before signal.")
		return "server exited"
	}
}

func stopCronScheduler(cronScheduler *cron.Cron, logger *slog.Logger) {
	logger.Info("Stopping cron scheduler...")
	cronCtx := cronScheduler.Stop()
	select {
	case <-cronCtx.Done():
		logger.Info("Cron scheduler stopped gracefully.")
	case <-time.After(15 * time.Second):
		logger.Warn("Cron scheduler shutdown timed out.")
	}
}

func closeRabbitMQConnection(rabbitConn *amqp.Connection, logger *slog.Logger) {
	if rabbitConn == nil {
		logger.Info("RabbitMQ connection was not established, skipping close.")
		return
	}
	if rabbitConn.IsClosed() {
		logger.Info("RabbitMQ connection already closed, skipping close.")
		return
	}
	logger.Info("Closing RabbitMQ connection...")
	if err := rabbitConn.Close(); err != nil {
		logger.Error("Failed to close RabbitMQ connection gracefully", slog.Any("error", err))
	} else {
		logger.Info("RabbitMQ connection closed.")
	}
}

func shutdownHTTPServer(srv *http.Server, serverErrors <-chan error, logger *slog.Logger) {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Info("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server graceful shutdown failed", slog.Any("error", err))
		if err := srv.Close(); err != nil {
			logger.Error("HTTP server forced close failed", slog.Any("error", err))
		}
	} else {
		logger.Info("HTTP server gracefully stopped.")
	}

	logger.Info("Waiting for server goroutine to confirm exit...")
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warn("Server goroutine exited with unexpected error after shutdown", slog.Any("error", err))
		} else {
			logger.Info("Server goroutine confirmed exit.")
		}
	case <-time.After(5 * time.Second):
		logger.Warn("Timed out waiting for server goroutine confirmation.")
	}
}

func startBatchJobs(cfg *config.Config, refreshJob *batch.SnapshotRefreshJob, logger *slog.Logger) *cron.Cron {
	logger.Info("Initializing batch job scheduler...")
	c := cron.New()

	if _, err := refreshJob.Schedule(c, cfg.Batch.SnapshotRefreshSchedule); err != nil {
		logger.Error("Snapshot refresh will only run after mutations and manual refreshes", slog.Any("error", err))
	}

	c.Start()
	logger.Info("Cron scheduler started.")
	return c
}

// setupEventPublisher falls back to a no-op publisher when RabbitMQ is
// disabled or unreachable; events are best effort.
func setupEventPublisher(cfg *config.Config, logger *slog.Logger) (*amqp.Connection, event.Publisher) {
	if !cfg.RabbitMQ.Enabled {
		logger.Info("RabbitMQ disabled, borrower events will not be published.")
		return nil, event.NoopPublisher{}
	}

	conn, err := connectRabbitMQ(cfg.RabbitMQ.URL(), 5, logger)
	if err != nil {
		logger.Error("Failed to connect to RabbitMQ, continuing without events", slog.Any("error", err))
		return nil, event.NoopPublisher{}
	}

	publisher, err := event.NewRabbitMQEventPublisher(conn, cfg.RabbitMQ.ExchangeName, logger)
	if err != nil {
		logger.Error("Failed to set up RabbitMQ publisher, continuing without events", slog.Any("error", err))
		_ = conn.Close()
		return nil, event.NoopPublisher{}
	}
	return conn, publisher
}

func connectRabbitMQ(uri string, retryCount int, logger *slog.Logger) (*amqp.Connection, error) {
	var conn *amqp.Connection
	var err error
	for i := 1; i <= retryCount; i++ {
		conn, err = amqp.Dial(uri)
		if err == nil {
			logger.Info("Successfully connected to RabbitMQ")

			go func() {
				blockChan := conn.NotifyBlocked(make(chan amqp.Blocking))
				closeChan := conn.NotifyClose(make(chan *amqp.Error))

				select {
				case b := <-blockChan:
					logger.Warn("RabbitMQ Connection Blocked", "reason", b.Reason)
				case e := <-closeChan:
					logger.Error("RabbitMQ Connection Closed", slog.Any("error", e))
				}
			}()

			return conn, nil
		}
		logger.Warn("Failed to connect to RabbitMQ, retrying...",
			slog.Int("attempt", i),
			slog.Int("max_attempts", retryCount),
			slog.Any("error", err),
		)
		if i < retryCount {
			time.Sleep(time.Duration(i*2) * time.Second)
		}
	}
	return nil, fmt.Errorf("failed to connect to RabbitMQ after %d attempts: %w", retryCount, err)
}

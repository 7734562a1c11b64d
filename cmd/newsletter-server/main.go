// Package main provides the newsletter server executable.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/prometheus/client_golang/prometheus/collectors"

	newsletter "github.com/SergoGansta777/email-newsletter"
	"github.com/SergoGansta777/email-newsletter/adapters/relica"
	"github.com/SergoGansta777/email-newsletter/cmd/newsletter-server/internal/api"
	"github.com/SergoGansta777/email-newsletter/cmd/newsletter-server/internal/config"
	"github.com/SergoGansta777/email-newsletter/cmd/newsletter-server/internal/logging"
	"github.com/SergoGansta777/email-newsletter/cmd/newsletter-server/internal/metrics"
	"github.com/SergoGansta777/email-newsletter/cmd/newsletter-server/internal/telemetry"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_FILE"), "path to YAML configuration file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		log.Fatalf("newsletter-server: %v", err)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logger, err := logging.New(cfg.Log.Mode, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync()

	logger.Infof("configuration loaded: server %s, database %s (%s:%d)",
		cfg.Server.Addr(), cfg.Database.Driver, cfg.Database.Host, cfg.Database.Port)

	ctx := context.Background()

	shutdownTracing, err := telemetry.Init(ctx, cfg.Telemetry, os.Stdout)
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warnf("failed to flush traces: %v", err)
		}
	}()

	db, err := openDatabase(cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.Errorf("failed to close database: %v", closeErr)
		}
	}()

	// The pool connects lazily; an unreachable database must not keep /health_check down.
	pingCtx, cancelPing := context.WithTimeout(ctx, 5*time.Second)
	if err := db.PingContext(pingCtx); err != nil {
		logger.Warnf("database not reachable yet: %v", err)
	} else {
		logger.Infof("database connection established")
	}
	cancelPing()

	if cfg.Database.AutoMigrate {
		if err := newsletter.Migrate(ctx, db, cfg.Database.Driver); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		logger.Infof("migrations applied")
	}

	repos := relica.NewRepositories(db, cfg.Database.Driver)

	intake, err := newsletter.NewIntake(
		newsletter.WithIntakeRepository(repos.Subscription),
		newsletter.WithIntakeLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("create intake: %w", err)
	}

	reg, m := metrics.NewDefault()
	reg.MustRegister(collectors.NewDBStatsCollector(db, cfg.Database.Name))

	handler := api.NewHandler(intake, logger, m, cfg.Database.QueryTimeout())
	router := api.NewRouter(api.RouterConfig{
		Handler:        handler,
		Metrics:        m,
		Logger:         logger,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Infof("HTTP server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case sig := <-quit:
		logger.Infof("received %s, shutting down", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("server forced to shutdown: %v", err)
	}

	logger.Infof("server stopped")
	return nil
}

func openDatabase(cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open(cfg.Driver, cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime())

	return db, nil
}

// @title                       Hospitality Hub API
// @version                     1.0
// @description                 Accounts, role routing and dashboards for vendors, companies and event organisers.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the access token.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/eventstaff/hospitality-hub/internal/api"
	"github.com/eventstaff/hospitality-hub/internal/core/service"
	mongostore "github.com/eventstaff/hospitality-hub/internal/infrastructure/db/mongo"
	redisstore "github.com/eventstaff/hospitality-hub/internal/infrastructure/db/redis"
	"github.com/eventstaff/hospitality-hub/internal/infrastructure/queue"
	"github.com/eventstaff/hospitality-hub/internal/pkg/config"
	"github.com/eventstaff/hospitality-hub/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg := config.Load()
	logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDevelopment(),
	})

	if err := run(cfg); err != nil {
		log := logger.Get()
		log.Fatal().Err(err).Msg("server exited")
	}
}

func run(cfg *config.Config) error {
	log := logger.Get()

	// Cancelled on SIGINT or SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if err := mongostore.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	rdb, err := redisstore.Connect(ctx, redisstore.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		return err
	}
	defer rdb.Close()

	auditService := service.NewAuditService(mongostore.NewAuditRepository(db))
	dispatcher := queue.NewDispatcher(cfg.AuditWorkers, auditService, logger.Component("audit_dispatcher"))
	dispatcher.Start(context.Background())

	e := api.NewRouter(api.Deps{
		DB:     db,
		Redis:  rdb,
		Audit:  dispatcher,
		Config: cfg,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting hospitality hub api")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}

	// Late events from requests that outlived the shutdown timeout are dropped.
	dispatcher.Stop()
	log.Info().Msg("server stopped")
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The docsync Authors

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/offlinekit/docsync/internal/config"
	"github.com/offlinekit/docsync/internal/connectivity"
	"github.com/offlinekit/docsync/internal/logger"
	"github.com/offlinekit/docsync/internal/persist"
	"github.com/offlinekit/docsync/internal/queue"
	"github.com/offlinekit/docsync/internal/realtime"
	"github.com/offlinekit/docsync/internal/remote"
	"github.com/offlinekit/docsync/internal/service"
	"github.com/offlinekit/docsync/internal/status"
	"github.com/offlinekit/docsync/internal/workers"
	"github.com/offlinekit/docsync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("syncd")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	adapter, err := newPersistence(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create persistence adapter")
	}

	store, err := remote.NewHTTPStore(cfg.Remote, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create remote store")
	}

	prober := connectivity.NewProber(cfg.Connectivity, log)
	reportLog := &status.ReportLog{}

	q := queue.New(cfg.Queue, queue.Deps{
		Store:        store,
		Persistence:  adapter,
		Connectivity: prober,
		Logger:       log,
		Report: func(report models.DrainReport) {
			reportLog.Record(report)
			log.Warn().
				Str("op_id", report.Operation.ID).
				Str("collection", report.Operation.Collection).
				Str("document_id", report.Operation.DocumentID).
				Str("reason", string(report.Reason)).
				Err(report.Err).
				Msg("queued operation dropped")
		},
	})
	if err = q.Restore(ctx); err != nil {
		log.Fatal().Err(err).Msg("restore operation queue")
	}

	coordinator := service.NewSyncCoordinator(store, q, prober, log)
	defer coordinator.Close()

	transport := realtime.NewWebSocket(cfg.Realtime, log)
	subscriptions := service.NewSubscriptionManager(transport, q, log)
	defer subscriptions.Close()

	drainJob := service.NewDrainJob(q)
	statusServer := status.NewServer(cfg.Status.Address, status.NewHandler(q, prober, reportLog, log), log)

	workers.NewWorkers(
		workers.WorkerFunc(func() { prober.Start(ctx) }),
		workers.WorkerFunc(func() { drainJob.Start(ctx, cfg.Queue.DrainInterval) }),
		workers.WorkerFunc(func() { go statusServer.Run() }),
	).Run()

	log.Info().
		Str("remote", cfg.Remote.Address).
		Str("storage", cfg.Storage.Driver).
		Msg("syncd started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	drainJob.Stop()
	prober.Stop()
	q.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	statusServer.Shutdown(shutdownCtx)

	if closer, ok := adapter.(interface{ Close() error }); ok {
		if err = closer.Close(); err != nil {
			log.Err(err).Msg("close persistence adapter")
		}
	}
}

// newPersistence selects the durable queue backend from configuration.
func newPersistence(ctx context.Context, cfg config.Storage, log *logger.Logger) (persist.Adapter, error) {
	switch cfg.Driver {
	case "file":
		return persist.NewFile(cfg.DSN)
	case "sqlite":
		return persist.NewSQLite(ctx, cfg.DSN, log)
	case "postgres":
		return persist.NewPostgres(ctx, cfg.DSN, log)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

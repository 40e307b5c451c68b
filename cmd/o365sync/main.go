// Command o365sync queues calendar links for sync and optionally drains the
// queue. It is meant to run from a scheduler; a postgres advisory lock keeps
// overlapping invocations from double-processing, and a held lock makes the
// new invocation exit silently.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"resource-booking-api/internal/infra/db"
	"resource-booking-api/internal/infra/joblock"
	"resource-booking-api/internal/infra/msgraph"
	"resource-booking-api/internal/infra/readstore"
	"resource-booking-api/internal/infra/sqlq"
	"resource-booking-api/internal/infra/uow"
	"resource-booking-api/internal/pkg/clock"
	"resource-booking-api/internal/pkg/config"
	"resource-booking-api/internal/usecase/commands"
)

func main() {
	resourceFlag := flag.String("resource", "", "only queue the link for this resource id")
	drainFlag := flag.Bool("drain", false, "process the queue after enqueueing")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if err := run(context.Background(), *resourceFlag, *drainFlag); err != nil {
		if errors.Is(err, joblock.ErrNotAcquired) {
			// Another invocation is still running; that run owns the queue.
			return
		}
		slog.Error("o365sync failed", "error", err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, resourceFilter string, drain bool) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	var resourceID *uuid.UUID
	if resourceFilter != "" {
		id, err := uuid.Parse(resourceFilter)
		if err != nil {
			return err
		}
		resourceID = &id
	}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return err
	}
	defer cleanup()

	q := sqlq.New()
	unitOfWork := uow.NewPostgresUoW(pool, q)
	reads := readstore.NewCalendarReadStore(q, pool)
	provider := msgraph.NewClient(cfg.O365)
	lock := joblock.NewAdvisoryLock(pool)
	syncCommands := commands.NewCalendarSyncCommands(unitOfWork, reads, provider, clock.NewRealClock(), lock, cfg.Sync.FailureThreshold)

	return lock.Run(ctx, joblock.O365SyncJob, func(ctx context.Context) error {
		enqueued, err := syncCommands.EnqueueAll(ctx, resourceID)
		if err != nil {
			return err
		}
		slog.Info("queued calendar links", "enqueued", enqueued)

		if !drain {
			return nil
		}
		report, err := syncCommands.ProcessQueue(ctx)
		if err != nil {
			return err
		}
		slog.Info("queue drained",
			"pending", report.Enqueued,
			"processed", report.Processed,
			"failed", report.Failed,
		)
		return nil
	})
}

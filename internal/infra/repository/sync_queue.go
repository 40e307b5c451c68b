package repository

import (
	"context"
	"time"

	"resource-booking-api/internal/infra"
	"resource-booking-api/internal/infra/sqlq"

	"github.com/google/uuid"
)

type SyncQueueWriteQueries interface {
	EnqueueSyncEntry(ctx context.Context, db sqlq.DBTX, arg sqlq.EnqueueSyncEntryParams) (int64, error)
	DeleteSyncEntry(ctx context.Context, db sqlq.DBTX, id uuid.UUID) (int64, error)
}

type SyncQueueRepository struct {
	queries SyncQueueWriteQueries
}

func NewSyncQueueRepository(queries SyncQueueWriteQueries) *SyncQueueRepository {
	return &SyncQueueRepository{queries: queries}
}

// Enqueue reports whether a new entry was inserted. A pending entry for the
// same link absorbs the enqueue.
func (r *SyncQueueRepository) Enqueue(ctx context.Context, tx sqlq.DBTX, linkID uuid.UUID, at time.Time) (bool, error) {
	inserted, err := r.queries.EnqueueSyncEntry(ctx, tx, sqlq.EnqueueSyncEntryParams{
		ID:         uuid.New(),
		LinkID:     linkID,
		EnqueuedAt: at,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to enqueue sync entry", err)
	}
	return inserted > 0, nil
}

func (r *SyncQueueRepository) Delete(ctx context.Context, tx sqlq.DBTX, entryID uuid.UUID) error {
	if _, err := r.queries.DeleteSyncEntry(ctx, tx, entryID); err != nil {
		return infra.WrapRepoErr("failed to delete sync entry", err)
	}
	return nil
}

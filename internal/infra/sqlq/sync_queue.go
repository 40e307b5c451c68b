package sqlq

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type EnqueueSyncEntryParams struct {
	ID         uuid.UUID
	LinkID     uuid.UUID
	EnqueuedAt time.Time
}

// One pending entry per link. A second enqueue while one is pending is a no-op.
const enqueueSyncEntry = `
INSERT INTO o365_sync_queue (id, link_id, enqueued_at)
VALUES ($1, $2, $3)
ON CONFLICT (link_id) DO NOTHING`

func (q *Queries) EnqueueSyncEntry(ctx context.Context, db DBTX, arg EnqueueSyncEntryParams) (int64, error) {
	tag, err := db.Exec(ctx, enqueueSyncEntry, arg.ID, arg.LinkID, arg.EnqueuedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type SyncQueueRow struct {
	ID         uuid.UUID
	LinkID     uuid.UUID
	EnqueuedAt pgtype.Timestamptz
}

const listPendingSyncEntries = `
SELECT id, link_id, enqueued_at FROM o365_sync_queue ORDER BY enqueued_at, id`

func (q *Queries) ListPendingSyncEntries(ctx context.Context, db DBTX) ([]SyncQueueRow, error) {
	rows, err := db.Query(ctx, listPendingSyncEntries)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []SyncQueueRow
	for rows.Next() {
		var e SyncQueueRow
		if err := rows.Scan(&e.ID, &e.LinkID, &e.EnqueuedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

const deleteSyncEntry = `DELETE FROM o365_sync_queue WHERE id = $1`

func (q *Queries) DeleteSyncEntry(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteSyncEntry, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const countPendingSyncEntries = `SELECT COUNT(*) FROM o365_sync_queue WHERE link_id = $1`

func (q *Queries) CountPendingSyncEntries(ctx context.Context, db DBTX, linkID uuid.UUID) (int64, error) {
	var n int64
	err := db.QueryRow(ctx, countPendingSyncEntries, linkID).Scan(&n)
	return n, err
}

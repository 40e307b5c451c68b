package sqlq

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CreateNotificationJobParams struct {
	ID      uuid.UUID
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
}

const createNotificationJob = `
INSERT INTO notification_jobs (id, kind, topic, payload, run_at)
VALUES ($1, $2, $3, $4, $5)`

func (q *Queries) CreateNotificationJob(ctx context.Context, db DBTX, arg CreateNotificationJobParams) error {
	_, err := db.Exec(ctx, createNotificationJob, arg.ID, arg.Kind, arg.Topic, arg.Payload, arg.RunAt)
	return err
}

type NotificationJobRow struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Payload   []byte
	RunAt     pgtype.Timestamptz
	CreatedAt pgtype.Timestamptz
}

const listNotificationJobsByTopic = `
SELECT id, kind, topic, payload, run_at, created_at
FROM notification_jobs WHERE topic = $1 ORDER BY run_at, id`

func (q *Queries) ListNotificationJobsByTopic(ctx context.Context, db DBTX, topic string) ([]NotificationJobRow, error) {
	rows, err := db.Query(ctx, listNotificationJobsByTopic, topic)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []NotificationJobRow
	for rows.Next() {
		var j NotificationJobRow
		if err := rows.Scan(&j.ID, &j.Kind, &j.Topic, &j.Payload, &j.RunAt, &j.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

package repository

import (
	"context"
	"time"

	"hotel-booking-engine/internal/infra"
	sqlc "hotel-booking-engine/internal/infra/sqlc/generated"
	"hotel-booking-engine/internal/pkg/pgconv"
	"hotel-booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
	GetPendingNotificationJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.GetPendingNotificationJobsParams) ([]sqlc.NotificationJobs, error)
	UpdateNotificationJobStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateNotificationJobStatusParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
	db      sqlc.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db sqlc.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	params := sqlc.CreateNotificationJobParams{
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   pgtype.Timestamptz{Time: runAt, Valid: true},
		Status:  shared.JobStatusQueued,
	}

	err := r.queries.CreateNotificationJob(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}

	return nil
}

func (r *NotificationRepository) ClaimPending(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]shared.NotificationJob, error) {
	rows, err := r.queries.GetPendingNotificationJobs(ctx, tx, sqlc.GetPendingNotificationJobsParams{
		Now:   pgconv.TimeToPgtype(now),
		Limit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}

	jobs := make([]shared.NotificationJob, len(rows))
	for i, row := range rows {
		jobs[i] = shared.NotificationJob{
			ID:       row.ID,
			Kind:     row.Kind,
			Topic:    row.Topic,
			Payload:  row.Payload,
			RunAt:    pgconv.TimeFromPgtype(row.RunAt),
			Attempts: row.Attempts,
		}
	}
	return jobs, nil
}

func (r *NotificationRepository) UpdateJobStatus(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, status string, lastError *string, runAt time.Time) error {
	params := sqlc.UpdateNotificationJobStatusParams{
		ID:        jobID,
		Status:    status,
		LastError: pgconv.StringPtrToPgtype(lastError),
		RunAt:     pgconv.TimeToPgtype(runAt),
	}

	err := r.queries.UpdateNotificationJobStatus(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update notification job status", err)
	}

	return nil
}

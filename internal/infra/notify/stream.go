package notify

import (
	"context"
	"log/slog"

	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

// streamMaxLen bounds the stream; consumers are expected to keep up.
const streamMaxLen = 100_000

// StreamPublisher appends outbox jobs to a Redis stream.
type StreamPublisher struct {
	client *redis.Client
	stream string
}

func NewStreamPublisher(client *redis.Client, stream string) *StreamPublisher {
	return &StreamPublisher{client: client, stream: stream}
}

func (p *StreamPublisher) Publish(ctx context.Context, job shared.NotificationJob) error {
	err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		MaxLen: streamMaxLen,
		Approx: true,
		Values: map[string]any{
			"job_id":  job.ID.String(),
			"kind":    job.Kind,
			"topic":   job.Topic,
			"payload": string(job.Payload),
		},
	}).Err()
	if err != nil {
		return errs.Wrapf(err, "xadd %s", p.stream)
	}
	return nil
}

// LogPublisher stands in when Redis is disabled so the outbox still drains.
type LogPublisher struct{}

func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

func (LogPublisher) Publish(_ context.Context, job shared.NotificationJob) error {
	slog.Info("notification", "job_id", job.ID, "kind", job.Kind, "topic", job.Topic, "payload", string(job.Payload))
	return nil
}

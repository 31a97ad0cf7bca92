// Package redisstream relays outbox messages to a Redis stream.
package redisstream

import (
	"context"
	"time"

	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// DefaultStream is used when Options.Stream is empty.
const DefaultStream = "tracking.events"

var _ ports.EventDispatcher = (*Dispatcher)(nil)

type Options struct {
	Stream string
	// MaxLen trims the stream approximately to this many entries. Zero keeps everything.
	MaxLen int64
}

// Dispatcher appends each message to a stream with XADD. The message id,
// type, aggregate id, occurrence time and JSON payload become stream fields.
type Dispatcher struct {
	client redis.UniversalClient
	stream string
	maxLen int64
}

func NewDispatcher(client redis.UniversalClient, opts Options) *Dispatcher {
	stream := opts.Stream
	if stream == "" {
		stream = DefaultStream
	}
	return &Dispatcher{
		client: client,
		stream: stream,
		maxLen: opts.MaxLen,
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, message ports.OutboxMessage) error {
	args := &redis.XAddArgs{
		Stream: d.stream,
		Values: map[string]any{
			"eventId":     message.ID.String(),
			"eventType":   message.EventType,
			"aggregateId": message.AggregateID,
			"occurredAt":  message.OccurredAt.UTC().Format(time.RFC3339Nano),
			"payload":     string(message.Payload),
		},
	}
	if d.maxLen > 0 {
		args.MaxLen = d.maxLen
		args.Approx = true
	}

	if err := d.client.XAdd(ctx, args).Err(); err != nil {
		return errs.NewInfrastructureError("xadd "+d.stream, err)
	}
	return nil
}

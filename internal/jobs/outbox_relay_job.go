package jobs

import (
	"context"
	"log/slog"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/pkg/outcome"

	"github.com/robfig/cron/v3"
)

// DefaultRelaySchedule runs the relay every second.
const DefaultRelaySchedule = "* * * * * *"

// OutboxRelayer is satisfied by commands.RelayOutboxCommandHandler.
type OutboxRelayer interface {
	Handle(ctx context.Context, cmd commands.RelayOutboxCommand) outcome.Outcome[int]
}

// OutboxRelayJob periodically moves pending outbox messages to the broker.
// A run that is still going when the next tick fires causes that tick to be skipped.
type OutboxRelayJob struct {
	relayer   OutboxRelayer
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOutboxRelayJob creates the relay job. schedule is a six-field cron
// expression (seconds first) or a descriptor such as "@every 5s"; an empty
// schedule means DefaultRelaySchedule.
func NewOutboxRelayJob(relayer OutboxRelayer, schedule string, batchSize int, logger *slog.Logger) *OutboxRelayJob {
	if schedule == "" {
		schedule = DefaultRelaySchedule
	}
	return &OutboxRelayJob{
		relayer:   relayer,
		schedule:  schedule,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "outbox_relay_job"),
	}
}

// Start registers the relay on its schedule and starts the scheduler.
func (j *OutboxRelayJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started", "schedule", j.schedule)
	return nil
}

// RunOnce relays one batch and logs the result.
func (j *OutboxRelayJob) RunOnce(ctx context.Context) {
	result := j.relayer.Handle(ctx, commands.RelayOutboxCommand{BatchSize: j.batchSize})
	if result.IsFailure() {
		j.logger.ErrorContext(ctx, "Outbox relay job failed", "error", result.Cause())
		return
	}

	if relayed := result.ValueOrDefault(0); relayed > 0 {
		j.logger.DebugContext(ctx, "Outbox messages relayed", "count", relayed)
	}
}

// Stop stops the scheduler and waits for a running relay to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}

// Package jobs provides scheduled background tasks for the tracking service.
//
// Jobs use github.com/robfig/cron/v3 with a seconds field.
//
// # Available Jobs
//
// OutboxRelayJob reads pending messages from the outbox, hands them to the
// configured dispatcher (Redis stream or log) and marks them published.
// Messages that fail to dispatch stay pending and are retried on later runs.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(relayHandler, jobs.RelayOptions{Schedule: "@every 2s"}, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The default schedule "* * * * * *" runs every second. Overlapping runs are
// skipped rather than queued.
package jobs

// Package jobs provides scheduled background tasks for the delivery platform.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance the request path cannot do itself.
//
// # Available Jobs
//
// 1. PaymentWatchdogJob - Runs every minute and fails payments that have been
// stuck in PROCESSING longer than the configured window. A crash between
// reserving a payment slot and recording the gateway outcome is the only way
// a payment stays in PROCESSING; the watchdog turns those leftovers into
// FAILED records so the order can be charged again.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expireStalePaymentsHandler, window, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Sweep failures are logged and retried on the next tick; a payment raced by
// a concurrent outcome write is skipped inside the handler, never an error.
package jobs

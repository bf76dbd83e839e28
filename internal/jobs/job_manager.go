package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/NormanProjects/mashia-mesh/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	paymentWatchdogJob *PaymentWatchdogJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	expireStalePaymentsHandler commands.ExpireStalePaymentsCommandHandler,
	watchdogWindow time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		paymentWatchdogJob: NewPaymentWatchdogJob(expireStalePaymentsHandler, watchdogWindow, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.paymentWatchdogJob.Start(); err != nil {
		return fmt.Errorf("failed to start payment watchdog job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.paymentWatchdogJob.Stop()
}

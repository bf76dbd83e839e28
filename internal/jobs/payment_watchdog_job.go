package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/NormanProjects/mashia-mesh/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PaymentWatchdogJob periodically fails payments stuck in PROCESSING. A
// payment stays in PROCESSING only between the slot insert and the outcome
// write; if the process dies in between, the record would hang forever
// without this sweep.
type PaymentWatchdogJob struct {
	handler commands.ExpireStalePaymentsCommandHandler
	window  time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPaymentWatchdogJob creates a watchdog that fails payments stuck in
// PROCESSING for longer than window. The sweep runs once per minute.
func NewPaymentWatchdogJob(
	handler commands.ExpireStalePaymentsCommandHandler,
	window time.Duration,
	logger *slog.Logger,
) *PaymentWatchdogJob {
	return &PaymentWatchdogJob{
		handler: handler,
		window:  window,
		cron:    cron.New(),
		logger:  logger.With("component", "payment_watchdog_job"),
	}
}

// Start schedules the sweep.
func (j *PaymentWatchdogJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewExpireStalePaymentsCommand(j.window)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Payment watchdog misconfigured", "error", cmdErr)
			return
		}

		failed, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Payment watchdog sweep failed", "error", handleErr)
			return
		}

		if failed > 0 {
			j.logger.InfoContext(ctx, "Failed stale processing payments", "count", failed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payment watchdog started", "window", j.window.String())
	return nil
}

// Stop stops the watchdog.
func (j *PaymentWatchdogJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Payment watchdog stopped")
}

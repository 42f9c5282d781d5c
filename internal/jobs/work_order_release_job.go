package jobs

import (
	"context"
	"log/slog"
	"time"

	"mes/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// WorkOrderReleaseJob issues draft work orders whose planned start time has
// arrived. Runs every minute; a missed tick is caught up on the next one
// because due-ness is evaluated against the wall clock, not the tick.
type WorkOrderReleaseJob struct {
	handler commands.ReleaseDueWorkOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewWorkOrderReleaseJob creates a new job for releasing due work orders.
func NewWorkOrderReleaseJob(
	handler commands.ReleaseDueWorkOrdersCommandHandler,
	logger *slog.Logger,
) *WorkOrderReleaseJob {
	return &WorkOrderReleaseJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "work_order_release_job"),
	}
}

// Start begins the release job, running at the top of every minute.
func (j *WorkOrderReleaseJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewReleaseDueWorkOrdersCommand(time.Now().UTC())
		if err != nil {
			j.logger.ErrorContext(ctx, "Failed to build release command", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Work order release job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Work order release job started (running every minute)")
	return nil
}

// Stop stops the release job.
func (j *WorkOrderReleaseJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Work order release job stopped")
}

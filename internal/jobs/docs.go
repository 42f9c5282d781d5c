// Package jobs provides scheduled background tasks for the MES core.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. WorkOrderReleaseJob - Runs every minute to issue draft work orders whose
// planned start time has arrived.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(releaseHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The release job logs failures and retries on the next tick; an order lost
// to a concurrent transition is skipped inside the handler, not treated as a
// job failure.
package jobs

// Package jobs provides scheduled background tasks for the restaurant service.
//
// Jobs are cron-based, using github.com/robfig/cron/v3 with a seconds field.
//
// # Available Jobs
//
// OrderTotalIntegrityJob recomputes the total of every open order from its
// line items and logs each order whose stored total differs. It only reads;
// fixing a drifted order is left to staff.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(mismatchesHandler, cfg.Jobs.IntegritySpec, logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The integrity job runs every five minutes by default ("0 */5 * * * *").
// StopAll waits for a check already in progress to finish.
package jobs

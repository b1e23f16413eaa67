// Package jobs provides scheduled background tasks.
//
// Jobs are driven by github.com/robfig/cron/v3. The only job is
// TrackerWatchJob, which re-reads the order tracker on a fixed interval and
// prints status changes until every tracked order is complete.
//
// # Usage
//
//	job := jobs.NewTrackerWatchJob(handler, query, console, 30*time.Second, log)
//	if err := job.Run(ctx); err != nil {
//		return err
//	}
//
// # Error Handling
//
// A failure on the first read is returned, since nothing has been shown yet.
// Failures on later ticks are logged and the next tick tries again.
package jobs

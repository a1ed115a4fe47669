// Package jobs provides the scheduled background work of the barista service.
//
// The only job is the engine clock: a github.com/robfig/cron/v3 scheduler running one
// entry on a fixed interval. Cron's own specs have one-second resolution, so the clock
// installs its own cron.Schedule to support the sub-second ticks the engine runs on.
//
// # Usage
//
//	clock := jobs.NewClock(logger)
//	if err := clock.Start(100*time.Millisecond, func() { ticks.Add(1) }); err != nil {
//		log.Fatal("failed to start clock:", err)
//	}
//	defer clock.Stop()
//
// The engine owns its clock and starts it itself:
//
//	controller := engine.NewController(jobs.NewClock(logger), logger)
//	err := controller.Start(100 * time.Millisecond)
//
// # Guarantees
//
// - Start while running replaces the previous schedule
// - A tick that fires while the previous one is still running is skipped (cron.SkipIfStillRunning)
// - Stop waits for a running tick and is safe to call any number of times
// - A panicking tick is logged and the schedule continues, unless WithRecover(false)
package jobs

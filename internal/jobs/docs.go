// Package jobs provides scheduled background tasks for the dispatch server.
//
// Jobs are cron-based, using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// BackupJob copies the stored state to a JSON backup file. It runs on the
// BACKUP_SCHEDULE expression ("@every 5m" by default) and is only created when
// BACKUP_FILE is set.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(backupJob)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and the next run proceeds on schedule; a failed
// start stops the jobs that were already running.
package jobs

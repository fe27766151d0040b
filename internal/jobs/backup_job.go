package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/dispatch"

	"github.com/robfig/cron/v3"
)

// DefaultBackupSchedule writes a backup every five minutes.
const DefaultBackupSchedule = "@every 5m"

// SnapshotSource loads the current state. queries.GetSnapshotQueryHandler implements it.
type SnapshotSource interface {
	Handle(ctx context.Context, query queries.GetSnapshotQuery) (*dispatch.State, error)
}

// SnapshotWriter persists a state outside the database. backupfile.Store implements it.
type SnapshotWriter interface {
	Write(state *dispatch.State) error
}

// BackupJob copies the stored state to a backup file on a cron schedule.
type BackupJob struct {
	source   SnapshotSource
	writer   SnapshotWriter
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewBackupJob creates a job. An empty schedule means DefaultBackupSchedule.
// The schedule accepts standard five-field cron expressions and descriptors such as
// "@hourly" or "@every 10m".
func NewBackupJob(source SnapshotSource, writer SnapshotWriter, schedule string, logger *slog.Logger) *BackupJob {
	if schedule == "" {
		schedule = DefaultBackupSchedule
	}
	return &BackupJob{
		source:   source,
		writer:   writer,
		schedule: schedule,
		timeout:  30 * time.Second,
		cron:     cron.New(),
		logger:   logger.With("component", "backup_job"),
	}
}

// Start schedules the job. It fails on a malformed schedule.
func (j *BackupJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return fmt.Errorf("backup schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Backup job started", "schedule", j.schedule)
	return nil
}

// Stop unschedules the job and waits for a running backup to finish.
func (j *BackupJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Backup job stopped")
}

// RunOnce writes one backup immediately.
func (j *BackupJob) RunOnce(ctx context.Context) error {
	state, err := j.source.Handle(ctx, queries.NewGetSnapshotQuery())
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}

	if err := j.writer.Write(state); err != nil {
		return err
	}

	j.logger.DebugContext(ctx, "Backup written",
		"couriers", len(state.Couriers()),
		"active", len(state.ActiveOrders()),
		"history", len(state.History()),
	)
	return nil
}

func (j *BackupJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	if err := j.RunOnce(ctx); err != nil {
		j.logger.ErrorContext(ctx, "Backup job failed", "error", err)
	}
}

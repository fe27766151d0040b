package cmd

import (
	"fmt"
	"log/slog"

	api "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/backupfile"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	clock      kernel.Clock
	logger     *slog.Logger
	uowFactory *postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	clock := kernel.SystemClock
	return CompositionRoot{
		cfg:        cfg,
		clock:      clock,
		logger:     logger,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, clock, logger),
	}
}

func (c *CompositionRoot) unitOfWorkFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) reader() ports.StateReader {
	return c.uowFactory.Reader()
}

func (c *CompositionRoot) CreateHydrateCommandHandler() commands.HydrateCommandHandler {
	return commands.NewHydrateCommandHandler(c.unitOfWorkFactory(), c.clock)
}

func (c *CompositionRoot) CreateGetSnapshotQueryHandler() queries.GetSnapshotQueryHandler {
	return queries.NewGetSnapshotQueryHandler(c.reader())
}

// CreateHTTPServer wires every use case into the HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *api.Server {
	f := c.unitOfWorkFactory()
	r := c.reader()
	e := c.cfg.Entitlement

	return api.NewServer(api.Handlers{
		CreateCourier:  commands.NewCreateCourierCommandHandler(f),
		UpdateCourier:  commands.NewUpdateCourierCommandHandler(f),
		RemoveCourier:  commands.NewRemoveCourierCommandHandler(f),
		AddOrders:      commands.NewAddOrdersCommandHandler(f, c.clock),
		RemoveOrder:    commands.NewRemoveOrderCommandHandler(f),
		FinishOrders:   commands.NewFinishOrdersCommandHandler(f, c.clock),
		SetDayFilter:   commands.NewSetDayFilterCommandHandler(f, c.clock),
		ImportSnapshot: commands.NewImportSnapshotCommandHandler(f),

		GetCouriers:   queries.NewGetCouriersQueryHandler(r),
		GetBoard:      queries.NewGetBoardQueryHandler(r),
		GetHistory:    queries.NewGetHistoryQueryHandler(r, e),
		GetStats:      queries.NewGetStatsQueryHandler(r, e),
		ExportHistory: queries.NewExportHistoryQueryHandler(r, e),
		GetSnapshot:   queries.NewGetSnapshotQueryHandler(r),
	}, e, c.logger)
}

// CreateJobManager returns the scheduled jobs enabled by the configuration.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	var scheduled []jobs.Job

	if c.cfg.BackupFile != "" {
		store, err := backupfile.NewStore(c.cfg.BackupFile)
		if err != nil {
			return nil, fmt.Errorf("backup store: %w", err)
		}
		scheduled = append(scheduled, jobs.NewBackupJob(
			c.CreateGetSnapshotQueryHandler(), store, c.cfg.BackupSchedule, c.logger,
		))
	}

	return jobs.NewJobManager(scheduled...), nil
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

// Package postgres provides the GORM implementation of the unit of work and
// the schema migrations for the dispatch state table.
//
// Every command gets its own unit of work:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	repo := uow.StateRepository()
//	state, err := repo.GetForUpdate(ctx)
//	if err != nil {
//	    return err
//	}
//	// ... mutate state
//	if err := repo.Save(ctx, state); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// GetForUpdate takes a row lock on the single state row, so concurrent
// commands queue behind each other until the holder commits or rolls back.
package postgres

import (
	"context"
	"log/slog"

	"dispatch/internal/adapters/out/postgres/staterepo"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db     *gorm.DB
	clock  kernel.Clock
	logger *slog.Logger
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based units of work.
// The clock stamps updated_at on saved rows.
func NewGormUnitOfWorkFactory(db *gorm.DB, clock kernel.Clock, logger *slog.Logger) *GormUnitOfWorkFactory {
	if logger == nil {
		logger = slog.Default()
	}
	return &GormUnitOfWorkFactory{db: db, clock: clock, logger: logger}
}

// Create returns a fresh unit of work with no transaction started.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:     f.db,
		clock:  f.clock,
		logger: f.logger,
	}
}

// Reader returns a repository outside any transaction, for queries.
func (f *GormUnitOfWorkFactory) Reader() ports.StateReader {
	return staterepo.NewGormStateRepository(f.db, f.clock, f.logger)
}

// GormUnitOfWork wraps one GORM transaction.
type GormUnitOfWork struct {
	db     *gorm.DB
	tx     *gorm.DB
	clock  kernel.Clock
	logger *slog.Logger
}

// Begin starts a transaction. Calling it again while one is open does nothing.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit commits the open transaction.
// Returns gorm.ErrInvalidTransaction when none is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the open transaction. Without one, for example after
// Commit, it does nothing, which makes it safe to defer.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return nil
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// StateRepository returns a repository bound to the open transaction, or to
// the connection pool when no transaction is open.
func (uow *GormUnitOfWork) StateRepository() ports.StateRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return staterepo.NewGormStateRepository(db, uow.clock, uow.logger)
}

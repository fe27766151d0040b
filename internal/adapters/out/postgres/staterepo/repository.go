package staterepo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"dispatch/internal/adapters/out/snapshot"
	"dispatch/internal/core/domain/model/dispatch"
	"dispatch/internal/core/domain/model/kernel"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStateRepository implements ports.StateRepository using GORM.
type GormStateRepository struct {
	db     *gorm.DB
	clock  kernel.Clock
	logger *slog.Logger
}

// NewGormStateRepository creates a repository on db, which may be a transaction.
func NewGormStateRepository(db *gorm.DB, clock kernel.Clock, logger *slog.Logger) *GormStateRepository {
	if clock == nil {
		clock = kernel.SystemClock
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &GormStateRepository{
		db:     db,
		clock:  clock,
		logger: logger.With("component", "state_repository"),
	}
}

// Get loads the state without locking it.
func (r *GormStateRepository) Get(ctx context.Context) (*dispatch.State, error) {
	return r.load(r.db.WithContext(ctx))
}

// GetForUpdate loads the state with SELECT ... FOR UPDATE. It must run inside
// a transaction for the lock to outlive the statement.
func (r *GormStateRepository) GetForUpdate(ctx context.Context) (*dispatch.State, error) {
	return r.load(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}))
}

// Save writes state over the stored row, creating it if needed.
func (r *GormStateRepository) Save(ctx context.Context, state *dispatch.State) error {
	payload, err := snapshot.Encode(state)
	if err != nil {
		return err
	}

	dto := StateDTO{
		ID:        stateRowID,
		Payload:   string(payload),
		UpdatedAt: r.clock.Now(),
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&dto).Error
}

func (r *GormStateRepository) load(query *gorm.DB) (*dispatch.State, error) {
	var dto StateDTO
	if err := query.First(&dto, "id = ?", stateRowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dispatch.NewState(), nil
		}
		return nil, err
	}

	state, report, err := snapshot.Decode([]byte(dto.Payload))
	if err != nil {
		return nil, fmt.Errorf("decode stored state: %w", err)
	}
	if !report.Clean() {
		r.logger.Warn("stored state decoded with losses",
			"defaulted", report.Defaulted,
			"skipped_couriers", report.SkippedCouriers,
			"skipped_active", report.SkippedActive,
			"skipped_history", report.SkippedHistory,
		)
	}

	return state, nil
}

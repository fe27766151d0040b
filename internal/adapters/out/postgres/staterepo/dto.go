// Package staterepo stores the dispatch state as one JSON document in Postgres.
package staterepo

import "time"

// stateRowID is the primary key of the only row in dispatch_state.
const stateRowID = 1

// StateDTO is the persisted row. Payload holds the snapshot document.
type StateDTO struct {
	ID        int16     `gorm:"primaryKey"`
	Payload   string    `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName maps StateDTO to the dispatch_state table.
func (StateDTO) TableName() string {
	return "dispatch_state"
}

package queries

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/dispatch"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/guard"
)

var ErrGetSnapshotQueryIsNotConstructed = errors.New(
	"GetSnapshotQuery must be created via NewGetSnapshotQuery constructor",
)

// GetSnapshotQuery returns the full state for backups.
type GetSnapshotQuery struct {
	guard guard.ConstructorGuard
}

func NewGetSnapshotQuery() GetSnapshotQuery {
	return GetSnapshotQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetSnapshotQuery) Validate() error {
	return q.guard.Validate(ErrGetSnapshotQueryIsNotConstructed)
}

// GetSnapshotQueryHandler loads the full state. Gating the download is left
// to the transport; the periodic backup job reads it at any level.
type GetSnapshotQueryHandler struct {
	reader ports.StateReader
}

func NewGetSnapshotQueryHandler(reader ports.StateReader) GetSnapshotQueryHandler {
	return GetSnapshotQueryHandler{reader: reader}
}

func (h GetSnapshotQueryHandler) Handle(ctx context.Context, query GetSnapshotQuery) (*dispatch.State, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.reader.Get(ctx)
}

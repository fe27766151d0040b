package services

import (
	"strings"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/dispatch"
	"dispatch/internal/core/domain/model/kernel"
)

// CourierRegistry adds, updates and removes couriers on a dispatch state.
//
// Removal does not cascade: callers that remove a courier must first remove
// its active orders through OrderLedger.RemoveByCourier, or the state is left
// with dangling references.
type CourierRegistry struct {
	newID func() kernel.ID
}

// NewCourierRegistry creates a registry minting random ids.
func NewCourierRegistry() CourierRegistry {
	return CourierRegistry{newID: kernel.NewID}
}

// Add registers a courier under a fresh id. Name and tag are trimmed and
// stored as given; rejecting a blank name is up to the caller
// (CreateCourierCommand does).
func (r CourierRegistry) Add(state *dispatch.State, name, tag string) (*courier.Courier, error) {
	if err := state.Validate(); err != nil {
		return nil, err
	}

	c, err := courier.RestoreCourier(r.nextID(), strings.TrimSpace(name), strings.TrimSpace(tag))
	if err != nil {
		return nil, err
	}

	if err := state.AddCourier(c); err != nil {
		return nil, err
	}

	return c, nil
}

// Update applies patch to the courier with the given id.
// Unknown ids are a no-op and report false.
func (r CourierRegistry) Update(state *dispatch.State, id kernel.ID, patch courier.Patch) bool {
	return state.UpdateCourier(id, patch)
}

// Remove deletes the courier with the given id. Unknown ids are a no-op.
func (r CourierRegistry) Remove(state *dispatch.State, id kernel.ID) bool {
	return state.RemoveCourier(id)
}

func (r CourierRegistry) nextID() kernel.ID {
	if r.newID == nil {
		return kernel.NewID()
	}
	return r.newID()
}

// Package courier provides the Courier entity of the dispatch domain.
//
// A courier (motoboy) is the delivery agent every active order is assigned to.
// Couriers are identified by an opaque id, carry a display name and an
// optional tag, and change only through an explicit Patch.
//
// Couriers know nothing about orders: removing a courier never touches the
// orders that reference it. The orchestrating command removes those first.
package courier

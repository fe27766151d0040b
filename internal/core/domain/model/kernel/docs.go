// Package kernel provides the primitives shared by the dispatch domain model.
//
// The package includes:
//   - ID: opaque identifiers for couriers and orders (new ones are UUIDs)
//   - DayKey: local calendar day keys used to partition orders by day
//   - Clock: the injectable "now" used for timestamps and "today"
//   - Entitlement: the feature level that gates reporting
//
// All types are small immutable values and safe for concurrent use.
package kernel

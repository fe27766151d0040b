// Package services provides the domain services that operate on a
// dispatch.State: they hold the rules that span couriers, active orders and
// history.
//
// The package includes:
//   - CourierRegistry: registering, renaming and removing couriers
//   - OrderLedger: adding, removing and finishing active orders, lane layout
//   - DayPartition: day filtering of active orders
//   - MigrationReconciler: the one-shot cleanup of legacy state
//   - StatsAggregator: history counts per courier and per payment method
//   - CourierSeeder: the default couriers created on first start
//
// Services perform no I/O and start no goroutines. Serializing callers is
// the job of the application layer.
package services

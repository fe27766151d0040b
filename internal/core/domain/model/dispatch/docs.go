// Package dispatch contains the State aggregate: couriers, active orders,
// history, the day filter and the seeded flag, kept together so every
// mutation sees and preserves the whole picture.
package dispatch

// Package order holds active and archived delivery orders and the code
// classification rules they are built on.
//
// The package includes:
//   - ParseCodes, InvalidCodes, NormalizeCode: turning pasted text into codes
//   - Platform and DetectPlatform: 3 digits are Anota Aí, 4 iFood, 6 99Food
//   - Order: an active delivery assigned to a courier
//   - Archived: a finished order kept in the history
//   - RejectionError: why an order could not be created
//
// Key business rules:
//   - a new order's code has exactly 3, 4 or 6 digits
//   - an active order always has a courier
//   - an order's day is fixed when it is created
//   - finishing copies the order into the history with a completion time
package order

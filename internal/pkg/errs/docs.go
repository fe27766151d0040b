// Package errs provides the typed errors shared by the dispatch domain and
// its adapters.
//
// Every error type follows the same shape:
//   - a sentinel value (ErrValueIsRequired, ErrObjectNotFound, ...) for errors.Is
//   - a struct carrying the offending parameter and an optional cause
//   - constructors with and without a cause
//   - Unwrap returning the sentinel
//
// Courier ids, order codes and day keys all report failures through these
// types, so adapters can map categories (required, invalid, not found) to
// transport status codes without knowing which entity failed.
package errs

// Package guard provides the constructor guard embedded by entities, commands
// and queries so their zero values can be told apart from constructed ones.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate on a zero-value guard
// when the caller passes no error of its own.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is set only by NewConstructorGuard. A struct embedding it
// and created as a literal keeps the zero guard and fails Validate.
//
//	type Courier struct {
//	    id    kernel.ID
//	    guard guard.ConstructorGuard
//	}
//
//	func (c *Courier) Validate() error {
//	    return c.guard.Validate(ErrCourierIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. Otherwise it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}

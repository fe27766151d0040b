package kernel

import (
	"strings"

	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrIDIsRequired is returned when an identifier is blank.
var ErrIDIsRequired = errs.NewValueIsRequiredError("id")

// ID is an opaque, stable identifier for couriers and orders.
//
// New identifiers are random UUIDs, but hydrated state may carry ids minted by
// older versions of the application (for example "id_5f3c2a_18c9f0e1a2b"), so
// ID never assumes any format beyond being non-blank.
type ID string

// NewID returns a fresh random identifier.
func NewID() ID {
	return ID(uuid.NewString())
}

// ParseID trims s and returns it as an ID. Blank input fails with ErrIDIsRequired.
func ParseID(s string) (ID, error) {
	id := ID(strings.TrimSpace(s))
	if err := id.Validate(); err != nil {
		return "", err
	}
	return id, nil
}

// String returns the identifier text.
func (id ID) String() string {
	return string(id)
}

// IsZero reports whether the identifier is blank.
func (id ID) IsZero() bool {
	return strings.TrimSpace(string(id)) == ""
}

// IsEqual compares identifiers exactly.
func (id ID) IsEqual(other ID) bool {
	return id == other
}

// Validate fails with ErrIDIsRequired for blank identifiers.
func (id ID) Validate() error {
	if id.IsZero() {
		return ErrIDIsRequired
	}
	return nil
}

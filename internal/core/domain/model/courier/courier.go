package courier

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// LegacyUnassignedID is the id of the "no courier" pseudo-courier that older
// versions of the application stored alongside real couriers. It never names
// a real courier; reconciliation strips it from hydrated state.
const LegacyUnassignedID kernel.ID = "ORPHAN"

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when a courier is created with a blank name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier or RestoreCourier constructor")
)

// Courier is a delivery agent that active orders are assigned to.
//
// Business rules:
//   - id is opaque, unique and never changes
//   - name is trimmed and non-blank for couriers created through NewCourier
//   - tag is an optional short label shown next to the name
//
// Example usage:
//
//	c, err := courier.NewCourier(kernel.NewID(), "Motoboy 01", "CG-160")
//	if err != nil {
//	    // blank name
//	}
//	fmt.Println(c.Label()) // "Motoboy 01 (CG-160)"
type Courier struct {
	// id uniquely identifies the courier
	id kernel.ID
	// name is the display name
	name string
	// tag is an optional short label
	tag string
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// Patch carries an optional new name and tag. Nil fields are left unchanged.
type Patch struct {
	Name *string
	Tag  *string
}

// NewCourier creates a courier with a trimmed, non-blank name and a trimmed tag.
func NewCourier(id kernel.ID, name, tag string) (*Courier, error) {
	c := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}
	c.tag = strings.TrimSpace(tag)

	return c, nil
}

// RestoreCourier rebuilds a courier from a persisted snapshot.
// Only the id is mandatory: snapshots written by older versions may carry
// couriers whose name was never filled in, and those are kept as they are.
func RestoreCourier(id kernel.ID, name, tag string) (*Courier, error) {
	c := &Courier{
		name:  name,
		tag:   tag,
		guard: guard.NewConstructorGuard(),
	}

	if err := c.setID(id); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks that the courier was created through a constructor.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares couriers by id.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier identifier.
func (c *Courier) ID() kernel.ID {
	return c.id
}

// Name returns the display name.
func (c *Courier) Name() string {
	return c.name
}

// Tag returns the optional short label.
func (c *Courier) Tag() string {
	return c.tag
}

// Label returns "name (tag)", or just the name when there is no tag.
func (c *Courier) Label() string {
	if c.tag == "" {
		return c.name
	}
	return c.name + " (" + c.tag + ")"
}

// Apply updates name and tag from p.
//
// A name is applied only when it is non-blank after trimming; a tag is
// applied whenever present and may clear the label. Returns whether
// anything changed.
func (c *Courier) Apply(p Patch) bool {
	changed := false

	if p.Name != nil {
		if name := strings.TrimSpace(*p.Name); name != "" && name != c.name {
			c.name = name
			changed = true
		}
	}

	if p.Tag != nil {
		if tag := strings.TrimSpace(*p.Tag); tag != c.tag {
			c.tag = tag
			changed = true
		}
	}

	return changed
}

// Clone returns an independent copy of the courier.
func (c *Courier) Clone() *Courier {
	cp := *c
	return &cp
}

func (c *Courier) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

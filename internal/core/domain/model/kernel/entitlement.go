package kernel

import "dispatch/internal/pkg/errs"

// Entitlement is the feature level granted by the license collaborator.
type Entitlement int

const (
	EntitlementNone    Entitlement = 0
	EntitlementBasic   Entitlement = 1
	EntitlementPremium Entitlement = 2
)

// NewEntitlement validates a raw level. Levels outside [0, 2] are rejected.
func NewEntitlement(level int) (Entitlement, error) {
	if level < int(EntitlementNone) || level > int(EntitlementPremium) {
		return EntitlementNone, errs.NewValueIsOutOfRangeError(
			"entitlement", level, int(EntitlementNone), int(EntitlementPremium))
	}
	return Entitlement(level), nil
}

// Premium reports whether statistics, history and exports are unlocked.
func (e Entitlement) Premium() bool {
	return e >= EntitlementPremium
}

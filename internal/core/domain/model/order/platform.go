package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Platform is the delivery service an order came from, inferred from the
// number of digits in its code.
type Platform string

const (
	// PlatformAnotaAi issues 3 digit codes.
	PlatformAnotaAi Platform = "Anota Aí"
	// PlatformIFood issues 4 digit codes.
	PlatformIFood Platform = "iFood"
	// Platform99Food issues 6 digit codes.
	Platform99Food Platform = "99Food"

	// PlatformUndetected is stored for orders whose platform is unknown.
	PlatformUndetected Platform = ""

	platformAutoLabel = "AUTO"
)

// DetectPlatform maps a validated code to its platform.
// Codes of any other length are a classification failure.
func DetectPlatform(digits string) (Platform, error) {
	switch len(digits) {
	case 3:
		return PlatformAnotaAi, nil
	case 4:
		return PlatformIFood, nil
	case 6:
		return Platform99Food, nil
	default:
		return PlatformUndetected, errs.NewValueIsInvalidErrorWithCause(
			"code",
			fmt.Errorf("no platform issues %d digit codes", len(digits)),
		)
	}
}

// String returns the platform label.
func (p Platform) String() string {
	return string(p)
}

// Display returns the label, or "AUTO" for an undetected platform.
func (p Platform) Display() string {
	if p == PlatformUndetected {
		return platformAutoLabel
	}
	return string(p)
}

package customer

import (
	"fmt"

	"orderdesk/internal/pkg/errs"
)

// PersonType discriminates which customer-profile fields are mandatory.
// It is a value object with a fixed set of valid values.
type PersonType int

const (
	// Unknown represents an unset or invalid person type.
	// This value (0) helps catch uninitialized PersonType values.
	Unknown PersonType = iota

	// Individual is a natural-person customer ("fisica").
	Individual

	// Business is a legal-entity customer ("juridica").
	Business
)

// getPersonTypeStrings returns a map of PersonType values to their wire
// representations. The strings are kept from the original product.
func getPersonTypeStrings() map[PersonType]string {
	return map[PersonType]string{
		Unknown:    "Unknown",
		Individual: "fisica",
		Business:   "juridica",
	}
}

// getValidPersonTypeStrings returns only the valid PersonType values.
func getValidPersonTypeStrings() map[PersonType]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[PersonType]string{
		Individual: "fisica",
		Business:   "juridica",
	}
}

// PersonTypeFromString parses the wire representation of a person type
// ("fisica" or "juridica"). Any other string is rejected.
func PersonTypeFromString(s string) (PersonType, error) {
	for personType, str := range getValidPersonTypeStrings() {
		if str == s {
			return personType, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"person type",
		fmt.Errorf("%q is not a valid person type", s),
	)
}

// Validate checks if the PersonType value is valid.
// Valid person types are Individual and Business; Unknown and any other
// values are invalid.
func (p PersonType) Validate() error {
	if _, ok := getValidPersonTypeStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"person type",
			fmt.Errorf("%d is not a valid person type", p),
		)
	}
	return nil
}

// String returns the wire representation of the person type.
// Implements fmt.Stringer; safe to call on invalid values.
func (p PersonType) String() string {
	if str, ok := getPersonTypeStrings()[p]; ok {
		return str
	}
	return "Unknown"
}

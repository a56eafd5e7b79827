package order

import (
	"fmt"

	"orderdesk/internal/pkg/errs"
)

// Step represents the entry step of an order draft.
// The draft flow has exactly two steps:
//
//	StepCustomer ──> StepLines
//	     ^               │
//	     └───────────────┘
//	  (going back is always allowed)
//
// The forward transition is gated by customer-profile completeness; the
// gate itself lives on Draft, Step only encodes the shape of the flow.
type Step int

const (
	// UnknownStep represents an invalid or undefined step.
	// This value (0) helps catch uninitialized Step values.
	UnknownStep Step = iota

	// StepCustomer is the initial step: entering customer information.
	StepCustomer

	// StepLines is the second step: entering product lines. Edit drafts
	// of existing orders start here directly.
	StepLines
)

// getStepStrings returns a map of Step values to their string
// representations.
func getStepStrings() map[Step]string {
	return map[Step]string{
		UnknownStep:  "Unknown",
		StepCustomer: "CustomerInfo",
		StepLines:    "ProductLines",
	}
}

// getValidStepStrings returns a map of only valid Step values.
func getValidStepStrings() map[Step]string {
	//nolint:exhaustive // UnknownStep is intentionally excluded as it's invalid
	return map[Step]string{
		StepCustomer: "CustomerInfo",
		StepLines:    "ProductLines",
	}
}

// Validate checks if the Step value is valid.
// Valid steps are StepCustomer and StepLines.
func (s Step) Validate() error {
	if _, ok := getValidStepStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"step",
			fmt.Errorf("%d is not a valid step", s),
		)
	}
	return nil
}

// String returns the human-readable name of the step.
// Implements fmt.Stringer; safe to call on invalid values.
func (s Step) String() string {
	if str, ok := getStepStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

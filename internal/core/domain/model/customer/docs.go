// Package customer provides the customer profile attached to every order
// and the validation rule set that decides when a profile is complete.
//
// A profile is discriminated by person type: individual customers
// ("fisica") and business customers ("juridica") share a common set of
// required fields and add their own variant-specific ones. The required
// fields are declared as data (a person-type to field-set table), so a
// new person type extends the rule set without new branching logic.
//
// Fields of the inactive variant are retained in the profile but ignored
// by validation and export: switching the person type back and forth
// never loses entered data.
package customer

package customer

import (
	"fmt"

	"orderdesk/internal/pkg/errs"
)

// Field names a single customer-profile attribute. The string values are
// the wire names used by the original product and by the HTTP adapter.
type Field string

// Shared fields, required for every person type (together with the person
// type itself) except for the optional free-text ones.
const (
	FieldPersonType     Field = "personType"
	FieldName           Field = "name"
	FieldTelephone      Field = "telephone"
	FieldZipCode        Field = "zipCode"
	FieldAddress        Field = "address"
	FieldNumber         Field = "number"
	FieldState          Field = "state"
	FieldCity           Field = "city"
	FieldNeighborhood   Field = "neighborhood"
	FieldEmail          Field = "email"
	FieldComplement     Field = "complement"     // optional
	FieldReferencePoint Field = "referencePoint" // optional
)

// Individual-only fields.
const (
	FieldCPF          Field = "cpf"
	FieldGovernmentID Field = "id"
	FieldDateOfBirth  Field = "dateOfBirth"
	FieldGender       Field = "gender"
)

// Business-only fields.
const (
	FieldCNPJ         Field = "cnpj"
	FieldCompanyName  Field = "companyName"
	FieldBusinessName Field = "businessName"
)

// AllFields returns every known profile field in a stable order.
// Used by adapters that project the whole profile.
func AllFields() []Field {
	return []Field{
		FieldPersonType, FieldName, FieldTelephone, FieldZipCode,
		FieldAddress, FieldNumber, FieldState, FieldCity,
		FieldNeighborhood, FieldEmail, FieldComplement, FieldReferencePoint,
		FieldCPF, FieldGovernmentID, FieldDateOfBirth, FieldGender,
		FieldCNPJ, FieldCompanyName, FieldBusinessName,
	}
}

// sharedRequiredFields are mandatory regardless of person type.
func sharedRequiredFields() []Field {
	return []Field{
		FieldPersonType, FieldZipCode, FieldAddress, FieldNumber,
		FieldState, FieldCity, FieldNeighborhood, FieldTelephone,
		FieldEmail, FieldName,
	}
}

// variantRequiredFields is the declarative person-type to required-field
// table. New person types extend the rule set here, by data.
func variantRequiredFields() map[PersonType][]Field {
	return map[PersonType][]Field{
		Individual: {FieldCPF, FieldDateOfBirth, FieldGovernmentID, FieldGender},
		Business:   {FieldCNPJ, FieldCompanyName, FieldBusinessName},
	}
}

// RequiredFields returns the full required-field set for a person type:
// the shared fields plus the variant-specific ones.
func RequiredFields(personType PersonType) []Field {
	required := sharedRequiredFields()
	return append(required, variantRequiredFields()[personType]...)
}

// isKnownField reports whether the field name belongs to the profile.
func isKnownField(field Field) bool {
	for _, known := range AllFields() {
		if known == field {
			return true
		}
	}
	return false
}

// Profile holds the customer section of an order. All attributes are kept
// as entered, including fields of the currently inactive person-type
// variant; validation and export only consider the active variant.
//
// The zero value is an empty profile with an unset person type. Profiles
// are edited through Set and snapshotted with Clone when an order takes
// ownership of them.
type Profile struct {
	personType PersonType
	fields     map[Field]string
}

// NewProfile returns an empty profile.
func NewProfile() Profile {
	return Profile{fields: make(map[Field]string)}
}

// Set stores a field value. Setting FieldPersonType parses the wire
// representation and switches the active variant; values of the previous
// variant are retained but no longer considered by validation.
//
// Unknown field names and invalid person-type values are rejected.
// Empty values are stored as entered: clearing a required field simply
// makes the profile incomplete again.
func (p *Profile) Set(field Field, value string) error {
	if field == FieldPersonType {
		personType, err := PersonTypeFromString(value)
		if err != nil {
			return err
		}
		p.personType = personType
		return nil
	}

	if !isKnownField(field) {
		return errs.NewValueIsInvalidErrorWithCause(
			"field",
			fmt.Errorf("%q is not a customer profile field", field),
		)
	}

	if p.fields == nil {
		p.fields = make(map[Field]string)
	}
	p.fields[field] = value
	return nil
}

// Get returns the stored value of a field. FieldPersonType yields the
// wire representation of the active person type, or "" when unset.
func (p Profile) Get(field Field) string {
	if field == FieldPersonType {
		if p.personType.Validate() != nil {
			return ""
		}
		return p.personType.String()
	}
	return p.fields[field]
}

// PersonType returns the active person type.
func (p Profile) PersonType() PersonType {
	return p.personType
}

// IsComplete reports whether every required field of the active person
// type is satisfied. A field is satisfied iff its value is non-empty;
// whitespace is not trimmed, so a string of spaces counts as satisfied.
// A profile with an unset person type is never complete.
func (p Profile) IsComplete() bool {
	if p.personType.Validate() != nil {
		return false
	}

	for _, field := range RequiredFields(p.personType) {
		if field == FieldPersonType {
			continue // already validated above
		}
		if p.fields[field] == "" {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of the profile. Orders snapshot the
// draft profile through Clone so later draft edits cannot leak into a
// committed order.
func (p Profile) Clone() Profile {
	fields := make(map[Field]string, len(p.fields))
	for field, value := range p.fields {
		fields[field] = value
	}
	return Profile{personType: p.personType, fields: fields}
}

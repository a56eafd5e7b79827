// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database
// rows.
package orderrepo

import (
	"time"

	"orderdesk/internal/core/domain/model/customer"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/product"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The seq column records insertion order: it grows monotonically on Add and
// is preserved on Update, so listing by seq descending yields newest-first
// with replaced orders keeping their position.
//
// The total column is denormalized from the lines for listing queries; the
// domain aggregate always recomputes it from the lines on load.
type OrderDTO struct {
	ID       string      `gorm:"primaryKey"`
	Seq      int64       `gorm:"uniqueIndex"`
	Date     time.Time
	Total    string
	Customer CustomerDTO `gorm:"embedded"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// CustomerDTO holds the customer section of an order row, one column per
// profile field. Fields of the inactive person-type variant are stored as
// entered, mirroring the profile's retention rule.
type CustomerDTO struct {
	PersonType     string
	Name           string
	Telephone      string
	ZipCode        string
	Address        string
	Number         string
	State          string
	City           string
	Neighborhood   string
	Email          string
	Complement     string
	ReferencePoint string
	CPF            string `gorm:"column:cpf"`
	GovernmentID   string
	DateOfBirth    string
	Gender         string
	CNPJ           string `gorm:"column:cnpj"`
	CompanyName    string
	BusinessName   string
}

// LineDTO represents one product line of an order. Lines are owned by their
// order and keyed by position within it.
type LineDTO struct {
	OrderID   string `gorm:"primaryKey"`
	Position  int    `gorm:"primaryKey"`
	Name      string
	UnitPrice string
	Quantity  int
}

// TableName specifies the database table name for order lines.
func (LineDTO) TableName() string {
	return "order_lines"
}

// WatermarkDTO is the single-row table recording the highest identifier
// counter handed out so far. Removals never touch it, so identifiers are
// not reused after deletion.
type WatermarkDTO struct {
	ID          int `gorm:"primaryKey"`
	LastCounter int
}

// TableName specifies the database table name for the identifier watermark.
func (WatermarkDTO) TableName() string {
	return "order_id_watermark"
}

// customerFromDomain flattens the profile into one column per field.
func customerFromDomain(profile customer.Profile) CustomerDTO {
	return CustomerDTO{
		PersonType:     profile.Get(customer.FieldPersonType),
		Name:           profile.Get(customer.FieldName),
		Telephone:      profile.Get(customer.FieldTelephone),
		ZipCode:        profile.Get(customer.FieldZipCode),
		Address:        profile.Get(customer.FieldAddress),
		Number:         profile.Get(customer.FieldNumber),
		State:          profile.Get(customer.FieldState),
		City:           profile.Get(customer.FieldCity),
		Neighborhood:   profile.Get(customer.FieldNeighborhood),
		Email:          profile.Get(customer.FieldEmail),
		Complement:     profile.Get(customer.FieldComplement),
		ReferencePoint: profile.Get(customer.FieldReferencePoint),
		CPF:            profile.Get(customer.FieldCPF),
		GovernmentID:   profile.Get(customer.FieldGovernmentID),
		DateOfBirth:    profile.Get(customer.FieldDateOfBirth),
		Gender:         profile.Get(customer.FieldGender),
		CNPJ:           profile.Get(customer.FieldCNPJ),
		CompanyName:    profile.Get(customer.FieldCompanyName),
		BusinessName:   profile.Get(customer.FieldBusinessName),
	}
}

func customerToDomain(dto CustomerDTO) (customer.Profile, error) {
	profile := customer.NewProfile()
	values := map[customer.Field]string{
		customer.FieldPersonType:     dto.PersonType,
		customer.FieldName:           dto.Name,
		customer.FieldTelephone:      dto.Telephone,
		customer.FieldZipCode:        dto.ZipCode,
		customer.FieldAddress:        dto.Address,
		customer.FieldNumber:         dto.Number,
		customer.FieldState:          dto.State,
		customer.FieldCity:           dto.City,
		customer.FieldNeighborhood:   dto.Neighborhood,
		customer.FieldEmail:          dto.Email,
		customer.FieldComplement:     dto.Complement,
		customer.FieldReferencePoint: dto.ReferencePoint,
		customer.FieldCPF:            dto.CPF,
		customer.FieldGovernmentID:   dto.GovernmentID,
		customer.FieldDateOfBirth:    dto.DateOfBirth,
		customer.FieldGender:         dto.Gender,
		customer.FieldCNPJ:           dto.CNPJ,
		customer.FieldCompanyName:    dto.CompanyName,
		customer.FieldBusinessName:   dto.BusinessName,
	}

	for field, value := range values {
		if value == "" {
			continue
		}
		if err := profile.Set(field, value); err != nil {
			return customer.Profile{}, err
		}
	}

	return profile, nil
}

// fromDomain converts an order domain aggregate to its database rows.
func fromDomain(aggregate *order.Order, seq int64) (OrderDTO, []LineDTO, error) {
	total, err := aggregate.Total()
	if err != nil {
		return OrderDTO{}, nil, err
	}

	dto := OrderDTO{
		ID:       aggregate.ID().String(),
		Seq:      seq,
		Date:     aggregate.Date(),
		Total:    total.String(),
		Customer: customerFromDomain(aggregate.Customer()),
	}

	lines := make([]LineDTO, 0, len(aggregate.Lines()))
	for i, line := range aggregate.Lines() {
		lines = append(lines, LineDTO{
			OrderID:   dto.ID,
			Position:  i,
			Name:      line.Name(),
			UnitPrice: line.UnitPrice().String(),
			Quantity:  line.Quantity(),
		})
	}

	return dto, lines, nil
}

// toDomain converts database rows back to an order domain aggregate.
// Line DTOs must be sorted by position.
func toDomain(dto OrderDTO, lineDTOs []LineDTO) (*order.Order, error) {
	id, err := kernel.ParseOrderID(dto.ID)
	if err != nil {
		return nil, err
	}

	profile, err := customerToDomain(dto.Customer)
	if err != nil {
		return nil, err
	}

	lines := make([]product.Line, 0, len(lineDTOs))
	for _, lineDTO := range lineDTOs {
		unitPrice, priceErr := kernel.MoneyFromString(lineDTO.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}

		line, lineErr := product.NewLine(lineDTO.Name, unitPrice, lineDTO.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(id, profile, dto.Date, lines)
}

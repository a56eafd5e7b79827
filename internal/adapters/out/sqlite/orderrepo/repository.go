package orderrepo

import (
	"context"
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.OrderID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database at the front of the collection and
// advances the identifier watermark.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	var maxSeq int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Select("COALESCE(MAX(seq), 0)").
		Scan(&maxSeq).Error
	if err != nil {
		return err
	}

	dto, lines, err := fromDomain(aggregate, maxSeq+1)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	if len(lines) > 0 {
		if err = r.db.WithContext(ctx).Create(&lines).Error; err != nil {
			return err
		}
	}

	if err = r.advanceWatermark(ctx, aggregate.ID().Counter()); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update replaces the stored order with the same identifier, keeping its
// list position. Updating an identifier that is not present is a no-op.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	var existing OrderDTO
	err := r.db.WithContext(ctx).First(&existing, "id = ?", aggregate.ID().String()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	dto, lines, err := fromDomain(aggregate, existing.Seq)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Save(&dto).Error; err != nil {
		return err
	}
	if err = r.db.WithContext(ctx).Delete(&LineDTO{}, "order_id = ?", dto.ID).Error; err != nil {
		return err
	}
	if len(lines) > 0 {
		if err = r.db.WithContext(ctx).Create(&lines).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Remove deletes the order with the given identifier together with its
// lines. Removing an identifier that is not present is a no-op. The
// identifier watermark is left untouched.
func (r *GormOrderRepository) Remove(ctx context.Context, id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.String()).Error; err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&LineDTO{}, "order_id = ?", id.String()).Error
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	var lines []LineDTO
	err := r.db.WithContext(ctx).
		Order("position").
		Find(&lines, "order_id = ?", dto.ID).Error
	if err != nil {
		return nil, err
	}

	return toDomain(dto, lines)
}

// GetAll retrieves every stored order, newest first.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Order("seq DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	var lineDTOs []LineDTO
	err := r.db.WithContext(ctx).Order("order_id, position").Find(&lineDTOs).Error
	if err != nil {
		return nil, err
	}

	linesByOrder := make(map[string][]LineDTO, len(dtos))
	for _, lineDTO := range lineDTOs {
		linesByOrder[lineDTO.OrderID] = append(linesByOrder[lineDTO.OrderID], lineDTO)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, toErr := toDomain(dto, linesByOrder[dto.ID])
		if toErr != nil {
			return nil, toErr
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// LastIssuedID returns the highest identifier handed out so far. The
// second result is false while no identifier has ever been issued.
func (r *GormOrderRepository) LastIssuedID(ctx context.Context) (kernel.OrderID, bool, error) {
	var watermark WatermarkDTO
	err := r.db.WithContext(ctx).First(&watermark, "id = ?", 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return kernel.OrderID{}, false, nil
	}
	if err != nil {
		return kernel.OrderID{}, false, err
	}

	id, err := kernel.OrderIDFromCounter(watermark.LastCounter)
	if err != nil {
		return kernel.OrderID{}, false, err
	}

	return id, true, nil
}

// advanceWatermark raises the issued-identifier watermark to counter if it
// is ahead of the stored value.
func (r *GormOrderRepository) advanceWatermark(ctx context.Context, counter int) error {
	var watermark WatermarkDTO
	err := r.db.WithContext(ctx).First(&watermark, "id = ?", 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.WithContext(ctx).Create(&WatermarkDTO{ID: 1, LastCounter: counter}).Error
	}
	if err != nil {
		return err
	}

	if watermark.LastCounter >= counter {
		return nil
	}

	return r.db.WithContext(ctx).
		Model(&WatermarkDTO{}).
		Where("id = ?", 1).
		Update("last_counter", counter).Error
}

package store

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"autorepair/models"
)

type NewPart struct {
	Name        string          `validate:"required"`
	SKU         string          `validate:"required"`
	Quantity    int             `validate:"gte=0"`
	UnitPrice   decimal.Decimal `validate:"-"`
	Description string
}

// CreatePart adds a part to the inventory, keyed on its unique SKU.
func (s *Store) CreatePart(in NewPart) (uint, error) {
	if err := s.validate.Struct(in); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if in.UnitPrice.IsNegative() {
		return 0, fmt.Errorf("%w: unit price must not be negative", ErrValidation)
	}

	var existing models.Part
	err := s.db.Where("sku = ?", in.SKU).First(&existing).Error
	if err == nil {
		return 0, fmt.Errorf("%w: sku %q", ErrDuplicateKey, in.SKU)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	part := models.Part{
		Name:        in.Name,
		SKU:         in.SKU,
		Quantity:    in.Quantity,
		UnitPrice:   in.UnitPrice,
		Description: in.Description,
	}
	if err := s.db.Create(&part).Error; err != nil {
		return 0, err
	}
	return part.ID, nil
}

// ListParts returns the inventory in insertion order.
func (s *Store) ListParts() ([]models.Part, error) {
	var parts []models.Part
	err := s.db.Order("id").Find(&parts).Error
	return parts, err
}

// LowestStockParts returns the n parts with the least stock, quantity
// ascending.
func (s *Store) LowestStockParts(n int) ([]models.Part, error) {
	var parts []models.Part
	err := s.db.Order("quantity ASC, id ASC").Limit(n).Find(&parts).Error
	return parts, err
}

func (s *Store) CountParts() (int64, error) {
	var n int64
	err := s.db.Model(&models.Part{}).Count(&n).Error
	return n, err
}

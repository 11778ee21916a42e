package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"autorepair/models"
)

type NewTool struct {
	Name        string `validate:"required"`
	Code        string `validate:"required"`
	Available   int    `validate:"gte=0"`
	Description string
}

// CreateTool adds a workshop tool, keyed on its unique code.
func (s *Store) CreateTool(in NewTool) (uint, error) {
	if err := s.validate.Struct(in); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	var existing models.Tool
	err := s.db.Where("code = ?", in.Code).First(&existing).Error
	if err == nil {
		return 0, fmt.Errorf("%w: code %q", ErrDuplicateKey, in.Code)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	tool := models.Tool{
		Name:        in.Name,
		Code:        in.Code,
		Available:   in.Available,
		Description: in.Description,
	}
	if err := s.db.Create(&tool).Error; err != nil {
		return 0, err
	}
	return tool.ID, nil
}

// ListTools returns all tools in insertion order.
func (s *Store) ListTools() ([]models.Tool, error) {
	var tools []models.Tool
	err := s.db.Order("id").Find(&tools).Error
	return tools, err
}

func (s *Store) CountTools() (int64, error) {
	var n int64
	err := s.db.Model(&models.Tool{}).Count(&n).Error
	return n, err
}

package store

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"autorepair/models"
)

type NewService struct {
	ClientUsername string `validate:"required"`
	Description    string
	Price          decimal.Decimal `validate:"-"`
	Date           time.Time       `validate:"-"`
}

// CreateService opens a repair order for an existing client account. The
// username must resolve at creation time; the status always starts open.
func (s *Store) CreateService(in NewService) (uint, error) {
	if err := s.validate.Struct(in); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if in.Price.IsNegative() {
		return 0, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}

	client, err := s.UserByUsername(in.ClientUsername)
	if err != nil {
		return 0, err
	}

	date := in.Date
	if date.IsZero() {
		date = today()
	}

	svc := models.Service{
		ClientID:    &client.ID,
		Description: in.Description,
		Price:       in.Price,
		Date:        date,
		Status:      models.StatusOpen,
	}
	if err := s.db.Create(&svc).Error; err != nil {
		return 0, err
	}
	return svc.ID, nil
}

// ServiceRow pairs a service order with the username of its client, which is
// empty when the client account has been removed.
type ServiceRow struct {
	ID             uint
	ClientUsername string
	Description    string
	Price          decimal.Decimal
	Date           time.Time
	Status         models.ServiceStatus
}

// ListServices returns all orders in insertion order with the client
// usernames resolved.
func (s *Store) ListServices() ([]ServiceRow, error) {
	var rows []ServiceRow
	err := s.db.Model(&models.Service{}).
		Select("services.id, users.username AS client_username, services.description, services.price, services.date, services.status").
		Joins("LEFT JOIN users ON users.id = services.client_id").
		Order("services.id").
		Scan(&rows).Error
	return rows, err
}

// ServiceRevenue reports how many orders exist and what their prices sum to.
// An empty collection sums to zero.
func (s *Store) ServiceRevenue() (int64, decimal.Decimal, error) {
	var n int64
	if err := s.db.Model(&models.Service{}).Count(&n).Error; err != nil {
		return 0, decimal.Zero, err
	}
	var total decimal.Decimal
	if err := s.db.Model(&models.Service{}).
		Select("COALESCE(SUM(price), 0)").
		Scan(&total).Error; err != nil {
		return 0, decimal.Zero, err
	}
	return n, total, nil
}

// today truncates the wall clock to a calendar date.
func today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

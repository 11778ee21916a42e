package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"autorepair/models"
)

type NewInvoice struct {
	ServiceID uint
	Total     decimal.Decimal
	Date      time.Time
	Paid      bool
}

// CreateInvoice bills a service order. The referenced order must exist.
func (s *Store) CreateInvoice(in NewInvoice) (uint, error) {
	if in.Total.IsNegative() {
		return 0, fmt.Errorf("%w: total must not be negative", ErrValidation)
	}

	var svc models.Service
	err := s.db.First(&svc, in.ServiceID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, fmt.Errorf("%w: service #%d", ErrNotFound, in.ServiceID)
	}
	if err != nil {
		return 0, err
	}

	date := in.Date
	if date.IsZero() {
		date = today()
	}

	inv := models.Invoice{
		ServiceID: in.ServiceID,
		Total:     in.Total,
		Date:      date,
		Paid:      in.Paid,
	}
	if err := s.db.Create(&inv).Error; err != nil {
		return 0, err
	}
	return inv.ID, nil
}

// ListInvoices returns all invoices in insertion order.
func (s *Store) ListInvoices() ([]models.Invoice, error) {
	var invs []models.Invoice
	err := s.db.Order("id").Find(&invs).Error
	return invs, err
}

// InvoiceRevenue reports how many invoices exist and what their totals sum
// to. An empty collection sums to zero.
func (s *Store) InvoiceRevenue() (int64, decimal.Decimal, error) {
	var n int64
	if err := s.db.Model(&models.Invoice{}).Count(&n).Error; err != nil {
		return 0, decimal.Zero, err
	}
	var total decimal.Decimal
	if err := s.db.Model(&models.Invoice{}).
		Select("COALESCE(SUM(total), 0)").
		Scan(&total).Error; err != nil {
		return 0, decimal.Zero, err
	}
	return n, total, nil
}

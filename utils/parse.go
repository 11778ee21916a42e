// Package utils holds small input helpers shared by the form screens.
package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ParseAmount reads a money value as typed by the operator. Both "80.50" and
// "80,50" are accepted.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return decimal.Zero, errors.New("empty amount")
	}
	return decimal.NewFromString(s)
}

// ParseDate reads a calendar date in YYYY-MM-DD form. Empty means today.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		y, m, d := time.Now().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.Local), nil
	}
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

// ParseBool reads a yes/no answer from a form field.
func ParseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "s", "sim", "true", "1":
		return true
	}
	return false
}

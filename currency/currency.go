// Package currency renders money amounts for display. Formatting is a pure
// display transform; stored values are never touched.
package currency

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Format renders an amount in the fixed pt-BR convention, e.g. 1234.5 comes
// out as "R$ 1.234,50".
func Format(v decimal.Decimal) string {
	f, _ := v.Float64()
	return printer.Sprintf("R$ %v", number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

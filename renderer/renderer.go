// Package renderer builds the markdown reports of the tax computation, to be
// printed raw or through a terminal markdown renderer.
package renderer

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// eur formats a decimal EUR amount for display, rounded to the cent.
func eur(d decimal.Decimal) string {
	cents := d.Round(2).Shift(2).IntPart()
	return money.New(cents, money.EUR).Display()
}

// signedEur formats an amount with an explicit sign, "-" when zero.
func signedEur(d decimal.Decimal) string {
	if d.IsZero() {
		return "-"
	}
	if d.IsPositive() {
		return "+" + eur(d)
	}
	return eur(d)
}

// percent formats a tax rate.
func percent(d decimal.Decimal) string {
	return d.String() + "%"
}

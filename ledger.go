package fisco730

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInsufficientBalance is returned when a disposal exceeds the quantity
// held in the ledger. It signals a gap in the trade history (missing prior
// deposit, wrong date filter, ordering defect) and aborts the whole run.
var ErrInsufficientBalance = errors.New("insufficient asset balance")

// lot is a single acquisition of an asset: a quantity and the fiat cost paid
// for it. Splitting a lot preserves its cost per unit.
type lot struct {
	Quantity decimal.Decimal
	Cost     decimal.Decimal
}

// sellFraction carves quantity out of the lot and returns the cost basis of
// the carved fraction. The lot keeps the complement so that quantity and cost
// are conserved across the split.
func (l *lot) sellFraction(quantity decimal.Decimal) decimal.Decimal {
	fractionCost := l.Cost.Mul(quantity).Div(l.Quantity)
	l.Quantity = l.Quantity.Sub(quantity)
	l.Cost = l.Cost.Sub(fractionCost)
	return fractionCost
}

// AssetLedger is the FIFO cost-basis book of a single asset: an ordered
// sequence of acquisition lots, oldest first. It is created lazily on the
// first trade touching an asset and lives for one calculator run.
type AssetLedger struct {
	lots []lot
}

// Buy appends a new lot at the back of the book.
func (g *AssetLedger) Buy(quantity, fiatCost decimal.Decimal) {
	g.lots = append(g.lots, lot{Quantity: quantity, Cost: fiatCost})
}

// Sell consumes quantity from the oldest lots and returns the fiat cost basis
// of what was consumed (the buy price, not the sell price). If the book holds
// less than quantity it returns ErrInsufficientBalance and the book is left
// untouched.
func (g *AssetLedger) Sell(quantity decimal.Decimal) (decimal.Decimal, error) {
	// validate before consuming so that a failed sell commits nothing
	if held := g.TotalQuantity(); held.LessThan(quantity) {
		return decimal.Zero, fmt.Errorf("cannot sell %s: held quantity is %s: %w",
			quantity, held, ErrInsufficientBalance)
	}

	remaining := quantity
	costBasis := decimal.Zero
	kept := g.lots[:0]
	for _, current := range g.lots {
		switch {
		case remaining.IsZero():
			kept = append(kept, current)
		case current.Quantity.LessThanOrEqual(remaining):
			// the whole lot is consumed
			costBasis = costBasis.Add(current.Cost)
			remaining = remaining.Sub(current.Quantity)
		default:
			// the lot is split, its unsold part stays in the book
			costBasis = costBasis.Add(current.sellFraction(remaining))
			remaining = decimal.Zero
			kept = append(kept, current)
		}
	}
	g.lots = kept
	return costBasis, nil
}

// InKindAdjustment credits extraQuantity without any fiat counterpart, as for
// a stock split or a staking reward. All current lots collapse into a single
// lot holding the previous total cost basis and the increased quantity.
func (g *AssetLedger) InKindAdjustment(extraQuantity decimal.Decimal) {
	merged := lot{
		Quantity: g.TotalQuantity().Add(extraQuantity),
		Cost:     g.TotalCostBasis(),
	}
	g.lots = append(g.lots[:0], merged)
}

// TotalQuantity returns the quantity held across all lots.
func (g *AssetLedger) TotalQuantity() decimal.Decimal {
	total := decimal.Zero
	for _, l := range g.lots {
		total = total.Add(l.Quantity)
	}
	return total
}

// TotalCostBasis returns the fiat cost basis held across all lots.
func (g *AssetLedger) TotalCostBasis() decimal.Decimal {
	total := decimal.Zero
	for _, l := range g.lots {
		total = total.Add(l.Cost)
	}
	return total
}

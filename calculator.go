package fisco730

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"
)

// Substitute tax rates on capital gains.
var (
	ordinaryRate    = decimal.NewFromFloat(26.0)
	governmentsRate = decimal.NewFromFloat(12.5)
)

// Calculator replays a chronological trade stream through one AssetLedger per
// asset and collects the realized capital diffs. A Calculator is built fresh
// per run and holds no state across runs.
type Calculator struct {
	books map[string]*AssetLedger
}

// NewCalculator returns an empty calculator.
func NewCalculator() *Calculator {
	return &Calculator{books: make(map[string]*AssetLedger)}
}

// Calculate replays the trade set and returns the flattened gains and losses.
// The set must already be filtered to the tax period and sorted by timestamp.
func (c *Calculator) Calculate(trades TradeSet) (GainsAndLosses, error) {
	var capitals []CapitalDiff
	for _, trade := range trades.Trades() {
		diff, realized, err := c.apply(trade)
		if err != nil {
			return GainsAndLosses{}, fmt.Errorf("trade %s (%s %s): %w",
				trade.TransactionID, trade.Type, trade.Asset, err)
		}
		if realized {
			capitals = append(capitals, diff)
		}
	}
	return NewGainsAndLosses(capitals).Flatten()
}

// apply dispatches a trade to its ledger operation. realized is true when the
// trade produced a capital diff, which only a Sell can.
func (c *Calculator) apply(trade Trade) (diff CapitalDiff, realized bool, err error) {
	switch {
	case trade.Type == Deposit || trade.Type == Buy:
		c.buy(trade)
		return CapitalDiff{}, false, nil
	case trade.Type == Transfer && trade.InOut == Incoming:
		// staking reward or corporate split: quantity changes, cost basis does not
		c.book(trade.Asset).InKindAdjustment(trade.Quantity())
		return CapitalDiff{}, false, nil
	default:
		// Sell, Withdrawal, outgoing Transfer
		return c.sell(trade)
	}
}

// buy credits the asset's book. A fiat deposit is kept on the fiat currency's
// own book at 1:1 cost basis, net of the fee withheld by the exchange.
func (c *Calculator) buy(trade Trade) {
	quantity := trade.Quantity()
	cost := trade.AmountFiat
	if trade.Type == Deposit && trade.AssetClass == Fiat {
		quantity = quantity.Sub(trade.Fee)
		cost = cost.Sub(trade.Fee)
	}
	c.book(trade.Asset).Buy(quantity, cost)
}

// sell debits the asset's book. Only a Sell realizes a capital diff; a
// Withdrawal or an outgoing Transfer is a disposal without a sale.
func (c *Calculator) sell(trade Trade) (CapitalDiff, bool, error) {
	costBasis, err := c.book(trade.Asset).Sell(trade.Quantity())
	if err != nil {
		return CapitalDiff{}, false, err
	}
	if trade.Type != Sell {
		return CapitalDiff{}, false, nil
	}
	value := trade.AmountFiat.Sub(costBasis)
	if value.IsZero() {
		return CapitalDiff{}, false, nil
	}
	rate := TaxPercentage(trade.Asset, trade.AssetClass)
	var diff CapitalDiff
	if value.IsNegative() {
		diff, err = NewLoss(trade.Asset, trade.AssetClass, rate, value)
	} else {
		diff, err = NewGain(trade.Asset, trade.AssetClass, rate, value)
	}
	if err != nil {
		return CapitalDiff{}, false, err
	}
	return diff, true, nil
}

// book returns the asset's ledger, creating it on first reference.
func (c *Calculator) book(asset string) *AssetLedger {
	b, ok := c.books[asset]
	if !ok {
		log.Printf("opening ledger for %s", asset)
		b = &AssetLedger{}
		c.books[asset] = b
	}
	return b
}

// TaxPercentage returns the substitute tax rate for an asset: 26% for
// everything except whitelisted sovereign-bond tickers, taxed at 12.5%.
// The rate depends on the asset alone, never on the trade.
func TaxPercentage(asset string, class AssetClass) decimal.Decimal {
	switch class {
	case Stock, Etf:
		if IsWhitelistedTicker(asset) {
			return governmentsRate
		}
		return ordinaryRate
	default:
		// fiat, crypto, metals, commodities
		return ordinaryRate
	}
}

package fisco730

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"fisco730/date"
)

var testZone = time.FixedZone("CET", 3600)

// d builds a decimal out of its literal, panicking on a bad literal.
func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ts builds a timestamp on a day of 2022 at noon.
func ts(month time.Month, day int) time.Time {
	return time.Date(2022, month, day, 12, 0, 0, 0, testZone)
}

var tradeSeq int

func newTrade(t Trade) Trade {
	tradeSeq++
	t.TransactionID = fmt.Sprintf("T%04d", tradeSeq)
	return t
}

func depositTrade(when time.Time, amount, fee string) Trade {
	return newTrade(Trade{
		Timestamp:  when,
		Type:       Deposit,
		InOut:      Incoming,
		AmountFiat: d(amount),
		Fiat:       "EUR",
		Asset:      "EUR",
		AssetClass: Fiat,
		Fee:        d(fee),
	})
}

func withdrawalTrade(when time.Time, amount string) Trade {
	return newTrade(Trade{
		Timestamp:  when,
		Type:       Withdrawal,
		InOut:      Outgoing,
		AmountFiat: d(amount),
		Fiat:       "EUR",
		Asset:      "EUR",
		AssetClass: Fiat,
	})
}

func buyTrade(when time.Time, fiat string, quantity, asset string, class AssetClass) Trade {
	return newTrade(Trade{
		Timestamp:   when,
		Type:        Buy,
		InOut:       Outgoing,
		AmountFiat:  d(fiat),
		Fiat:        "EUR",
		AmountAsset: d(quantity),
		Asset:       asset,
		AssetClass:  class,
	})
}

func sellTrade(when time.Time, fiat string, quantity, asset string, class AssetClass) Trade {
	return newTrade(Trade{
		Timestamp:   when,
		Type:        Sell,
		InOut:       Incoming,
		AmountFiat:  d(fiat),
		Fiat:        "EUR",
		AmountAsset: d(quantity),
		Asset:       asset,
		AssetClass:  class,
	})
}

func transferTrade(when time.Time, inOut InOut, quantity, asset string, class AssetClass) Trade {
	return newTrade(Trade{
		Timestamp:   when,
		Type:        Transfer,
		InOut:       inOut,
		Fiat:        "EUR",
		AmountAsset: d(quantity),
		Asset:       asset,
		AssetClass:  class,
	})
}

// mockTradeSet is a year of activity with a known outcome:
//
//   - BTC nets a gain of 280.00 at 26%
//   - AMZN nets a loss of -50.00
//   - USGOVIES nets a gain of 100.00 at the preferential 12.5% rate
//   - the ADA transfer and the withdrawal realize nothing
func mockTradeSet() TradeSet {
	return NewTradeSet([]Trade{
		depositTrade(ts(time.January, 10), "2000.00", "10.00"),
		buyTrade(ts(time.February, 1), "500.00", "0.05", "BTC", Cryptocurrency),
		buyTrade(ts(time.March, 1), "600.00", "0.05", "BTC", Cryptocurrency),
		sellTrade(ts(time.April, 1), "900.00", "0.06", "BTC", Cryptocurrency),
		buyTrade(ts(time.May, 1), "300.00", "2", "AMZN", Stock),
		sellTrade(ts(time.June, 1), "100.00", "1", "AMZN", Stock),
		buyTrade(ts(time.July, 1), "1000.00", "10", "USGOVIES", Etf),
		sellTrade(ts(time.August, 1), "1100.00", "10", "USGOVIES", Etf),
		transferTrade(ts(time.September, 1), Incoming, "100", "ADA", Cryptocurrency),
		withdrawalTrade(ts(time.October, 1), "200.00"),
	})
}

// constantOracle quotes every asset at a fixed price, whatever the day.
type constantOracle map[string]decimal.Decimal

func (o constantOracle) PriceAt(asset string, _ date.Date) (decimal.Decimal, error) {
	price, ok := o[asset]
	if !ok {
		return decimal.Zero, fmt.Errorf("asset %s: %w", asset, ErrPriceNotFound)
	}
	return price, nil
}

package fisco730

import (
	"errors"
	"fmt"
	"log"
	"time"

	"fisco730/date"

	"github.com/shopspring/decimal"
)

// ErrPriceNotFound is returned by a PriceOracle when it holds no quotation
// for an asset on a required day. The average balance cannot be computed
// without it: substituting zero or a stale price would corrupt the IVAFE
// figure, so the whole run fails instead.
var ErrPriceNotFound = errors.New("price not found")

// PriceOracle quotes an asset in the reporting currency on a calendar day.
type PriceOracle interface {
	PriceAt(asset string, on date.Date) (decimal.Decimal, error)
}

// ivafeThreshold is the average balance under which no IVAFE is due.
var ivafeThreshold = decimal.NewFromInt(5000)

// ivafeRate is the 2-per-mille IVAFE rate on foreign financial assets.
var ivafeRate = decimal.NewFromFloat(0.002)

// reportingCurrency is the fiat currency every figure is expressed in.
const reportingCurrency = "EUR"

// Taxes computes the Italian fiscal figures over one tax period: capital
// gains and losses, the average yearly balance, and the IVAFE wealth tax.
//
// References:
//
//   - https://taxfix.it/guide-e-consigli/guide-al-730/tasse/tasse-trading-online/
//   - https://www.agenziaentrate.gov.it/portale/web/guest/schede/comunicazioni/integrativa-archivio-dei-rapporti-con-operatori-finanziari/giacenza-media-annua
type Taxes struct {
	trades TradeSet
	quotes PriceOracle
	period date.Range
	// zone fixes what "end of day" means when bucketing trades into days.
	zone *time.Location
}

// NewTaxes builds the tax engine for one run over a trade set already
// filtered to the period.
func NewTaxes(trades TradeSet, quotes PriceOracle, period date.Range) *Taxes {
	return &Taxes{
		trades: trades,
		quotes: quotes,
		period: period,
		zone:   time.FixedZone("CET", 3600),
	}
}

// CapitalGainsAndLosses replays the period's trades and returns the
// flattened gains and losses, taxes included.
func (t *Taxes) CapitalGainsAndLosses() (GainsAndLosses, error) {
	return NewCalculator().Calculate(t.trades)
}

// AverageBalance integrates the account's fiat cash balance and the market
// value of every held asset over each day of the period, and divides by the
// number of days in the period.
func (t *Taxes) AverageBalance() (decimal.Decimal, error) {
	total := decimal.Zero
	for day := range t.period.Days() {
		endOfDay := day.EndOfDay(t.zone)
		past := t.trades.Select(Before(endOfDay))

		fiatBalance := past.FiatBalance(reportingCurrency)
		wallet := LoadWallet(past.Select(NotAsset(reportingCurrency)))
		walletBalance, err := t.walletBalance(wallet, day)
		if err != nil {
			return decimal.Zero, fmt.Errorf("valuing wallet on %s: %w", day, err)
		}
		total = total.Add(fiatBalance).Add(walletBalance)
	}
	days := decimal.NewFromInt(int64(t.period.Len()))
	average := total.Div(days)
	log.Printf("average balance over %s: %s", t.period, average)
	return average, nil
}

// Ivafe computes the wealth tax on foreign-held financial assets from the
// average balance: nothing under the threshold, 2 per mille above it.
func (t *Taxes) Ivafe(averageBalance decimal.Decimal) decimal.Decimal {
	if averageBalance.LessThan(ivafeThreshold) {
		return decimal.Zero
	}
	return averageBalance.Mul(ivafeRate).Round(2)
}

// walletBalance values every held asset of the snapshot at the day's price.
func (t *Taxes) walletBalance(wallet Wallet, on date.Date) (decimal.Decimal, error) {
	balance := decimal.Zero
	for asset, quantity := range wallet.Assets() {
		if quantity.IsZero() {
			continue
		}
		price, err := t.quotes.PriceAt(asset, on)
		if err != nil {
			return decimal.Zero, fmt.Errorf("asset %s: %w", asset, err)
		}
		balance = balance.Add(quantity.Mul(price))
	}
	return balance, nil
}

package fisco730

import (
	"fmt"
	"net/url"

	"fisco730/date"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// this file fetches end-of-day price histories from EODHD.com. The core
// never reaches the network: the CLI loads a QuoteDatabase up front and hands
// it to Taxes as a plain PriceOracle.

const eodhdBase = "https://eodhd.com/api/eod/"

// SymbolFor maps an asset identifier to the provider symbol of its
// EUR-denominated quotation.
func SymbolFor(asset string, class AssetClass) string {
	switch class {
	case Cryptocurrency:
		return asset + "-EUR.CC"
	case Metal, Commodity:
		if code, ok := metalCodes[asset]; ok {
			return code + "EUR.FOREX"
		}
		return asset + "EUR.FOREX"
	case Fiat:
		return asset + "EUR.FOREX"
	default:
		// stocks and ETFs are looked up on Borsa Italiana, quoted in EUR
		return asset + ".MI"
	}
}

var metalCodes = map[string]string{
	"Gold":      "XAU",
	"Silver":    "XAG",
	"Platinum":  "XPT",
	"Palladium": "XPD",
}

// FetchQuotes downloads the daily quotation history of every given asset
// over the period and returns them as a QuoteDatabase. Responses are cached
// on disk for a day.
func FetchQuotes(assets map[string]AssetClass, period date.Range, apiKey string) (*QuoteDatabase, error) {
	db := NewQuoteDatabase()
	client := daily()
	for asset, class := range assets {
		if asset == reportingCurrency {
			continue // the reporting currency is worth 1 by definition
		}
		symbol := SymbolFor(asset, class)
		addr := fmt.Sprintf("%s%s?from=%s&to=%s&fmt=json&api_token=%s",
			eodhdBase, url.PathEscape(symbol), period.From, period.To, url.QueryEscape(apiKey))

		var jobj any
		if err := jwget(client, addr, &jobj); err != nil {
			return nil, fmt.Errorf("fetching %s (%s): %w", asset, symbol, err)
		}
		if err := appendHistory(db, asset, jobj); err != nil {
			return nil, fmt.Errorf("parsing quotes of %s (%s): %w", asset, symbol, err)
		}
	}
	return db, nil
}

// appendHistory extracts the (date, close) pairs of an EOD response:
//
//	[ {"date":"2022-01-03","close":42735.81, ...}, ... ]
func appendHistory(db *QuoteDatabase, asset string, jobj any) error {
	jdates, err := jsonpath.Get("$[*].date", jobj)
	if err != nil {
		return fmt.Errorf("no date field: %w", err)
	}
	jcloses, err := jsonpath.Get("$[*].close", jobj)
	if err != nil {
		return fmt.Errorf("no close field: %w", err)
	}
	dates, ok := jdates.([]any)
	if !ok {
		return fmt.Errorf("unexpected dates payload %T", jdates)
	}
	closes, ok := jcloses.([]any)
	if !ok || len(closes) != len(dates) {
		return fmt.Errorf("dates and closes mismatch (%d vs %d)", len(dates), len(closes))
	}
	for i := range dates {
		str, ok := dates[i].(string)
		if !ok {
			return fmt.Errorf("date %v is not a string", dates[i])
		}
		day, err := date.Parse(str)
		if err != nil {
			return err
		}
		price, ok := closes[i].(float64)
		if !ok {
			return fmt.Errorf("close %v is not a number", closes[i])
		}
		db.Append(asset, day, decimal.NewFromFloat(price))
	}
	return nil
}

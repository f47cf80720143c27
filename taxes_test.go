package fisco730

import (
	"errors"
	"testing"
	"time"

	"fisco730/date"

	"github.com/shopspring/decimal"
)

func TestTaxes_Ivafe(t *testing.T) {
	taxes := NewTaxes(TradeSet{}, constantOracle{}, date.Year(2022))

	testCases := []struct {
		name    string
		average string
		want    string
	}{
		{name: "below threshold", average: "4999.99", want: "0"},
		{name: "at threshold", average: "5000", want: "10"},
		{name: "above threshold", average: "13171", want: "26.34"},
		{name: "rounded to the cent", average: "5123.45", want: "10.25"},
		{name: "empty account", average: "0", want: "0"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := taxes.Ivafe(d(tc.average)); !got.Equal(d(tc.want)) {
				t.Errorf("Ivafe(%s) = %s, want %s", tc.average, got, tc.want)
			}
		})
	}
}

func TestTaxes_AverageBalanceFlatDeposit(t *testing.T) {
	// 13171 deposited on new year's day and never touched: the average over
	// the year is the deposit itself
	trades := NewTradeSet([]Trade{
		depositTrade(time.Date(2022, time.January, 1, 9, 0, 0, 0, testZone), "13171.00", "0"),
	})
	taxes := NewTaxes(trades, constantOracle{}, date.Year(2022))

	average, err := taxes.AverageBalance()
	if err != nil {
		t.Fatalf("AverageBalance() error = %v", err)
	}
	if want := d("13171"); !average.Round(2).Equal(want) {
		t.Errorf("AverageBalance() = %s, want %s", average, want)
	}
	if got, want := taxes.Ivafe(average), d("26.34"); !got.Equal(want) {
		t.Errorf("Ivafe() = %s, want %s", got, want)
	}
}

func TestTaxes_AverageBalanceValuesHoldingsDaily(t *testing.T) {
	// 1000 deposited, 500 spent on one BTC quoted at a constant 600: every
	// day holds 500 cash plus 600 of BTC
	trades := NewTradeSet([]Trade{
		depositTrade(time.Date(2022, time.January, 1, 9, 0, 0, 0, testZone), "1000.00", "0"),
		buyTrade(time.Date(2022, time.January, 1, 10, 0, 0, 0, testZone), "500.00", "1", "BTC", Cryptocurrency),
	})
	oracle := constantOracle{"BTC": decimal.NewFromInt(600)}
	taxes := NewTaxes(trades, oracle, date.Year(2022))

	average, err := taxes.AverageBalance()
	if err != nil {
		t.Fatalf("AverageBalance() error = %v", err)
	}
	if want := d("1100"); !average.Round(2).Equal(want) {
		t.Errorf("AverageBalance() = %s, want %s", average, want)
	}
}

func TestTaxes_AverageBalanceProRatesMidYearActivity(t *testing.T) {
	// 3650 deposited on December 22nd counts for its last 10 days only
	trades := NewTradeSet([]Trade{
		depositTrade(time.Date(2022, time.December, 22, 9, 0, 0, 0, testZone), "3650.00", "0"),
	})
	taxes := NewTaxes(trades, constantOracle{}, date.Year(2022))

	average, err := taxes.AverageBalance()
	if err != nil {
		t.Fatalf("AverageBalance() error = %v", err)
	}
	if want := d("100.00"); !average.Round(2).Equal(want) {
		t.Errorf("AverageBalance() = %s, want %s", average, want)
	}
}

func TestTaxes_AverageBalanceMissingPriceIsFatal(t *testing.T) {
	trades := NewTradeSet([]Trade{
		depositTrade(time.Date(2022, time.January, 1, 9, 0, 0, 0, testZone), "1000.00", "0"),
		buyTrade(time.Date(2022, time.January, 2, 10, 0, 0, 0, testZone), "500.00", "1", "BTC", Cryptocurrency),
	})
	taxes := NewTaxes(trades, constantOracle{}, date.Year(2022))

	_, err := taxes.AverageBalance()
	if !errors.Is(err, ErrPriceNotFound) {
		t.Fatalf("AverageBalance() error = %v, want ErrPriceNotFound", err)
	}
}

func TestTaxes_AverageBalanceSkipsEmptiedPositions(t *testing.T) {
	// BTC is bought and fully sold the same day: no quotation is ever needed
	trades := NewTradeSet([]Trade{
		depositTrade(time.Date(2022, time.January, 1, 9, 0, 0, 0, testZone), "1000.00", "0"),
		buyTrade(time.Date(2022, time.January, 2, 10, 0, 0, 0, testZone), "500.00", "1", "BTC", Cryptocurrency),
		sellTrade(time.Date(2022, time.January, 2, 11, 0, 0, 0, testZone), "500.00", "1", "BTC", Cryptocurrency),
	})
	taxes := NewTaxes(trades, constantOracle{}, date.Year(2022))

	average, err := taxes.AverageBalance()
	if err != nil {
		t.Fatalf("AverageBalance() error = %v", err)
	}
	if want := d("1000.00"); !average.Round(2).Equal(want) {
		t.Errorf("AverageBalance() = %s, want %s", average, want)
	}
}

func TestTaxes_CapitalGainsAndLosses(t *testing.T) {
	taxes := NewTaxes(mockTradeSet(), constantOracle{}, date.Year(2022))

	gains, err := taxes.CapitalGainsAndLosses()
	if err != nil {
		t.Fatalf("CapitalGainsAndLosses() error = %v", err)
	}
	if got, want := gains.TaxToPay(), d("85.3"); !got.Equal(want) {
		t.Errorf("TaxToPay() = %s, want %s", got, want)
	}
}

package fisco730

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// this file handles the exchange export format: a CSV file with a free-form
// disclaimer preamble, a header row, and one trade per row. Empty cells are
// written as "-".

const emptyCell = "-"

// header columns of the export. Lookup is by name so column order and extra
// columns do not matter.
const (
	colTransactionID = "Transaction ID"
	colTimestamp     = "Timestamp"
	colType          = "Transaction Type"
	colInOut         = "In/Out"
	colAmountFiat    = "Amount Fiat"
	colFiat          = "Fiat"
	colAmountAsset   = "Amount Asset"
	colAsset         = "Asset"
	colAssetClass    = "Asset class"
	colFee           = "Fee"
)

// ImportTrades parses an exchange CSV export into trade records, in file
// order. It skips the preamble rows before the header.
func ImportTrades(r io.Reader) ([]Trade, error) {
	body, err := skipPreamble(r)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(body)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read export header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{colTimestamp, colType, colInOut, colAmountFiat, colFiat, colAsset, colAssetClass} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("export header misses column %q", required)
		}
	}

	var trades []Trade
	for line := 1; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read export row %d: %w", line, err)
		}
		t, err := parseTrade(record, index)
		if err != nil {
			return nil, fmt.Errorf("export row %d: %w", line, err)
		}
		trades = append(trades, t)
	}
	return trades, nil
}

// ImportTradeSet parses an export and returns the chronologically sorted
// trades of one tax year, ready for the calculators.
func ImportTradeSet(r io.Reader, year int) (TradeSet, error) {
	trades, err := ImportTrades(r)
	if err != nil {
		return TradeSet{}, err
	}
	zone := time.FixedZone("CET", 3600)
	since := time.Date(year, time.January, 1, 0, 0, 0, 0, zone)
	to := time.Date(year, time.December, 31, 23, 59, 59, 0, zone)
	return NewTradeSet(trades).Select(After(since), Before(to)), nil
}

// skipPreamble consumes input lines until the trade header row and returns a
// reader over the rest of the file, header included.
func skipPreamble(r io.Reader) (io.Reader, error) {
	scanner := bufio.NewScanner(r)
	var body strings.Builder
	found := false
	for scanner.Scan() {
		line := scanner.Text()
		if !found {
			if !strings.HasPrefix(strings.Trim(line, `"`), colTransactionID) {
				continue
			}
			found = true
		}
		body.WriteString(line)
		body.WriteString("\n")
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read export: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("export has no %q header row", colTransactionID)
	}
	return strings.NewReader(body.String()), nil
}

func parseTrade(record []string, index map[string]int) (Trade, error) {
	cell := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return emptyCell
		}
		return strings.TrimSpace(record[i])
	}

	timestamp, err := time.Parse(time.RFC3339, cell(colTimestamp))
	if err != nil {
		return Trade{}, fmt.Errorf("invalid timestamp: %w", err)
	}
	txType, err := ParseTransactionType(cell(colType))
	if err != nil {
		return Trade{}, err
	}
	inOut, err := ParseInOut(cell(colInOut))
	if err != nil {
		return Trade{}, err
	}
	class, err := ParseAssetClass(cell(colAssetClass))
	if err != nil {
		return Trade{}, err
	}
	amountFiat, err := parseCell(cell(colAmountFiat))
	if err != nil {
		return Trade{}, fmt.Errorf("invalid fiat amount: %w", err)
	}
	amountAsset, err := parseCell(cell(colAmountAsset))
	if err != nil {
		return Trade{}, fmt.Errorf("invalid asset amount: %w", err)
	}
	fee, err := parseCell(cell(colFee))
	if err != nil {
		return Trade{}, fmt.Errorf("invalid fee: %w", err)
	}

	return Trade{
		TransactionID: cell(colTransactionID),
		Timestamp:     timestamp,
		Type:          txType,
		InOut:         inOut,
		AmountFiat:    amountFiat,
		Fiat:          cell(colFiat),
		AmountAsset:   amountAsset,
		Asset:         cell(colAsset),
		AssetClass:    class,
		Fee:           fee,
	}, nil
}

// parseCell parses a decimal cell, where "-" stands for absent.
func parseCell(s string) (decimal.Decimal, error) {
	if s == emptyCell || s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

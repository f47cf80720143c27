package fisco730

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"

	"fisco730/date"

	"github.com/shopspring/decimal"
)

// QuoteDatabase stores day-indexed quotations for the assets of a run, in
// the reporting currency. It implements PriceOracle: the price of an asset
// on a day is its most recent quotation on or before that day.
type QuoteDatabase struct {
	histories map[string]*priceHistory
}

// NewQuoteDatabase returns an empty database.
func NewQuoteDatabase() *QuoteDatabase {
	return &QuoteDatabase{histories: make(map[string]*priceHistory)}
}

// Append records a quotation for an asset on a day, replacing any previous
// quotation for that day.
func (q *QuoteDatabase) Append(asset string, on date.Date, price decimal.Decimal) {
	h, ok := q.histories[asset]
	if !ok {
		h = &priceHistory{}
		q.histories[asset] = h
	}
	h.append(on, price)
}

// PriceAt returns the price of the asset as of the given day. It returns
// ErrPriceNotFound when the database has no quotation on or before that day.
func (q *QuoteDatabase) PriceAt(asset string, on date.Date) (decimal.Decimal, error) {
	h, ok := q.histories[asset]
	if !ok {
		return decimal.Zero, fmt.Errorf("no quotation for %s: %w", asset, ErrPriceNotFound)
	}
	price, ok := h.asOf(on)
	if !ok {
		return decimal.Zero, fmt.Errorf("no quotation for %s on or before %s: %w", asset, on, ErrPriceNotFound)
	}
	return price, nil
}

// Assets returns the asset identifiers the database holds quotations for.
func (q *QuoteDatabase) Assets() []string {
	assets := make([]string, 0, len(q.histories))
	for asset := range q.histories {
		assets = append(assets, asset)
	}
	slices.Sort(assets)
	return assets
}

var _ PriceOracle = (*QuoteDatabase)(nil)

// priceHistory is a chronological series of quotations with unique days.
type priceHistory struct {
	days   []date.Date
	prices []decimal.Decimal
}

func (h *priceHistory) append(on date.Date, price decimal.Decimal) {
	i := sort.Search(len(h.days), func(i int) bool { return !h.days[i].Before(on) })
	if i < len(h.days) && h.days[i] == on {
		h.prices[i] = price
		return
	}
	h.days = slices.Insert(h.days, i, on)
	h.prices = slices.Insert(h.prices, i, price)
}

// asOf returns the most recent price on or before the day.
func (h *priceHistory) asOf(on date.Date) (decimal.Decimal, bool) {
	i := sort.Search(len(h.days), func(i int) bool { return h.days[i].After(on) })
	if i == 0 {
		return decimal.Zero, false
	}
	return h.prices[i-1], true
}

// import/export of the quote database. The format is a JSONL file, one asset
// per line, human readable and easy to merge:
//
//	{"asset":"BTC","history":{"2022-01-03":42735.81,"2022-01-04":40821.43}}

type jquotes struct {
	Asset   string                     `json:"asset"`
	History map[string]decimal.Decimal `json:"history"`
}

// ImportQuotes reads a quote database from 'r' in the JSONL interchange format.
func ImportQuotes(r io.Reader) (*QuoteDatabase, error) {
	db := NewQuoteDatabase()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var jq jquotes
		if err := json.Unmarshal(line, &jq); err != nil {
			return nil, fmt.Errorf("cannot parse quote line %q: %w", string(line), err)
		}
		for day, price := range jq.History {
			d, err := date.Parse(day)
			if err != nil {
				return nil, fmt.Errorf("quotes for %s: %w", jq.Asset, err)
			}
			db.Append(jq.Asset, d, price)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return db, nil
}

// ExportQuotes writes the database to 'w' in the JSONL interchange format.
func ExportQuotes(w io.Writer, db *QuoteDatabase) error {
	for _, asset := range db.Assets() {
		h := db.histories[asset]
		jq := jquotes{Asset: asset, History: make(map[string]decimal.Decimal, len(h.days))}
		for i, day := range h.days {
			jq.History[day.String()] = h.prices[i]
		}
		line, err := json.Marshal(jq)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s\n", line); err != nil {
			return err
		}
	}
	return nil
}

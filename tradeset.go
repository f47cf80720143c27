package fisco730

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// TradeSet is an immutable, chronologically ordered view over trade records.
// Selections share the backing array; a TradeSet is never mutated in place.
type TradeSet struct {
	trades []Trade
}

// NewTradeSet builds a set from trades, sorted ascending by timestamp.
// Chronological order is a hard precondition of the FIFO replay.
func NewTradeSet(trades []Trade) TradeSet {
	sorted := slices.Clone(trades)
	slices.SortStableFunc(sorted, func(a, b Trade) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	return TradeSet{trades: sorted}
}

// Trades returns the underlying records in chronological order.
func (s TradeSet) Trades() []Trade { return s.trades }

// Len returns the number of trades in the set.
func (s TradeSet) Len() int { return len(s.trades) }

// Select returns the subset of trades satisfying every given filter.
func (s TradeSet) Select(filters ...Filter) TradeSet {
	var selected []Trade
	for _, t := range s.trades {
		if includes(t, filters) {
			selected = append(selected, t)
		}
	}
	return TradeSet{trades: selected}
}

func includes(t Trade, filters []Filter) bool {
	for _, f := range filters {
		if !f(t) {
			return false
		}
	}
	return true
}

// Filter is a predicate selecting trades out of a set.
type Filter func(Trade) bool

// Before selects trades issued at or before the given instant.
func Before(instant time.Time) Filter {
	return func(t Trade) bool { return !t.Timestamp.After(instant) }
}

// After selects trades issued at or after the given instant.
func After(instant time.Time) Filter {
	return func(t Trade) bool { return !t.Timestamp.Before(instant) }
}

// NotAsset selects trades on any asset but the given one.
func NotAsset(asset string) Filter {
	return func(t Trade) bool { return t.Asset != asset }
}

// GroupByAsset groups the trades of the set by asset identifier.
func (s TradeSet) GroupByAsset() map[string][]Trade {
	grouped := make(map[string][]Trade)
	for _, t := range s.trades {
		grouped[t.Asset] = append(grouped[t.Asset], t)
	}
	return grouped
}

// Assets returns the unique asset identifiers of the set with their class.
func (s TradeSet) Assets() map[string]AssetClass {
	assets := make(map[string]AssetClass)
	for _, t := range s.trades {
		assets[t.Asset] = t.AssetClass
	}
	return assets
}

// FiatBalance returns the cash balance of the account in the given fiat
// currency: incoming fiat net of the withheld fee, minus outgoing fiat.
// In-kind transfers never move cash and are excluded on both sides.
// The result is rounded to the currency minor unit.
func (s TradeSet) FiatBalance(fiat string) decimal.Decimal {
	incoming := decimal.Zero
	outgoing := decimal.Zero
	for _, t := range s.trades {
		if t.Fiat != fiat {
			continue
		}
		switch {
		case isFiatIncoming(t):
			// the fee never reached the holder, it is kept by the exchange
			incoming = incoming.Add(t.AmountFiat.Sub(t.Fee))
		case isFiatOutgoing(t):
			outgoing = outgoing.Add(t.AmountFiat)
		}
	}
	return incoming.Sub(outgoing).Round(2)
}

// IsInKindIncoming reports whether a trade is an in-kind credit (staking
// reward, corporate split): an incoming Transfer of a crypto or stock-class
// asset. Such trades change held quantity without moving cash.
//
// The exact shape of this predicate is the authority for which transfers are
// excluded from the cash balance; it is kept as a single named function so it
// can be validated against tax-form examples in isolation.
func IsInKindIncoming(t Trade) bool {
	return t.Type == Transfer && t.InOut == Incoming &&
		(t.AssetClass == Cryptocurrency || t.AssetClass == Stock)
}

// IsInKindOutgoing reports whether a trade is an in-kind debit: an outgoing
// Transfer of a crypto asset (e.g. moving coins to a private wallet).
func IsInKindOutgoing(t Trade) bool {
	return t.Type == Transfer && t.InOut == Outgoing &&
		t.AssetClass == Cryptocurrency
}

func isFiatIncoming(t Trade) bool {
	return t.InOut == Incoming && !IsInKindIncoming(t)
}

func isFiatOutgoing(t Trade) bool {
	return t.InOut == Outgoing && !IsInKindOutgoing(t)
}

// Package fisco730 computes the figures an Italian resident needs to declare
// foreign-held financial assets on the "modello 730": realized capital gains
// and losses with their substitute tax, the average yearly balance of the
// account, and the IVAFE wealth tax derived from it.
package fisco730

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is a typed string identifying the kind of a trade.
type TransactionType string

// Transaction types found in an exchange export.
const (
	Deposit    TransactionType = "deposit"    // currency deposited on the exchange
	Buy        TransactionType = "buy"        // purchase of an asset
	Transfer   TransactionType = "transfer"   // in-kind movement (staking reward, stock split, wallet transfer)
	Sell       TransactionType = "sell"       // sale of an asset
	Withdrawal TransactionType = "withdrawal" // currency withdrawn from the exchange
)

// ParseTransactionType parses the string representation of a transaction type.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case Deposit, Buy, Transfer, Sell, Withdrawal:
		return TransactionType(s), nil
	default:
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
}

// InOut tells whether the traded amount was given to the holder or taken from them.
type InOut string

const (
	Incoming InOut = "incoming"
	Outgoing InOut = "outgoing"
)

// ParseInOut parses the string representation of a trade direction.
func ParseInOut(s string) (InOut, error) {
	switch InOut(s) {
	case Incoming, Outgoing:
		return InOut(s), nil
	default:
		return "", fmt.Errorf("unknown trade direction %q", s)
	}
}

// AssetClass is the asset group the exchange assigns to a traded asset.
type AssetClass string

const (
	Fiat           AssetClass = "Fiat"
	Stock          AssetClass = "Stock (derivative)"
	Cryptocurrency AssetClass = "Cryptocurrency"
	Etf            AssetClass = "ETF (derivative)"
	Commodity      AssetClass = "Commodity"
	Metal          AssetClass = "Metal"
)

// ParseAssetClass parses the string representation of an asset class.
func ParseAssetClass(s string) (AssetClass, error) {
	switch AssetClass(s) {
	case Fiat, Stock, Cryptocurrency, Etf, Commodity, Metal:
		return AssetClass(s), nil
	default:
		return "", fmt.Errorf("unknown asset class %q", s)
	}
}

// Trade is a single immutable record from the exchange history.
//
// AmountAsset is zero for pure currency movements (fiat deposits and
// withdrawals carry their quantity in AmountFiat). Fee is the amount the
// exchange withheld on the operation, zero when none.
type Trade struct {
	TransactionID string
	Timestamp     time.Time
	Type          TransactionType
	InOut         InOut
	AmountFiat    decimal.Decimal
	Fiat          string // currency code of AmountFiat, e.g. "EUR"
	AmountAsset   decimal.Decimal
	Asset         string // asset identifier, e.g. "BTC", "AMZN", "EUR"
	AssetClass    AssetClass
	Fee           decimal.Decimal
}

// Quantity returns the quantity the trade moves: the asset amount, or the
// fiat amount when the asset itself is the fiat currency.
func (t Trade) Quantity() decimal.Decimal {
	if t.AssetClass == Fiat {
		return t.AmountFiat
	}
	return t.AmountAsset
}

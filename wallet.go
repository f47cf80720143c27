package fisco730

import (
	"github.com/shopspring/decimal"
)

// Wallet is a snapshot of the quantities held per asset at a point in time,
// derived by counting the trades up to that point. Only final quantities
// matter here; cost basis is the Calculator's concern.
type Wallet struct {
	assets map[string]decimal.Decimal
}

// LoadWallet counts the held quantity of every asset out of the trade set.
func LoadWallet(trades TradeSet) Wallet {
	grouped := trades.GroupByAsset()
	assets := make(map[string]decimal.Decimal, len(grouped))
	for asset, ts := range grouped {
		assets[asset] = count(ts)
	}
	return Wallet{assets: assets}
}

// Balance returns the held quantity of an asset, zero when never traded.
func (w Wallet) Balance(asset string) decimal.Decimal {
	return w.assets[asset]
}

// Assets returns the snapshot as an asset → quantity map.
func (w Wallet) Assets() map[string]decimal.Decimal { return w.assets }

func count(trades []Trade) decimal.Decimal {
	amount := decimal.Zero
	for _, t := range trades {
		switch {
		case hasAssetIncreased(t):
			amount = amount.Add(t.Quantity())
		case hasAssetDecreased(t):
			amount = amount.Sub(t.Quantity())
		}
	}
	return amount
}

// hasAssetIncreased reports whether the trade credits its asset: any incoming
// fiat movement, a Buy, or an incoming Transfer.
func hasAssetIncreased(t Trade) bool {
	if t.AssetClass == Fiat {
		return t.InOut == Incoming
	}
	return t.Type == Buy || (t.Type == Transfer && t.InOut == Incoming)
}

// hasAssetDecreased reports whether the trade debits its asset: any outgoing
// fiat movement, a Sell, or an outgoing Transfer.
func hasAssetDecreased(t Trade) bool {
	if t.AssetClass == Fiat {
		return t.InOut == Outgoing
	}
	return t.Type == Sell || (t.Type == Transfer && t.InOut == Outgoing)
}

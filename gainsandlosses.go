package fisco730

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// GainsAndLosses collects the capital diffs realized over a tax period.
type GainsAndLosses struct {
	capitals []CapitalDiff
}

// NewGainsAndLosses builds a collection from realized capital diffs.
func NewGainsAndLosses(capitals []CapitalDiff) GainsAndLosses {
	return GainsAndLosses{capitals: capitals}
}

// Capitals returns the capital diffs of the collection.
func (g GainsAndLosses) Capitals() []CapitalDiff { return g.capitals }

// Len returns the number of capital diffs in the collection.
func (g GainsAndLosses) Len() int { return len(g.capitals) }

// GainsValue returns the summed value of all gains.
func (g GainsAndLosses) GainsValue() decimal.Decimal {
	total := decimal.Zero
	for _, c := range g.capitals {
		if c.IsGain() {
			total = total.Add(c.Value())
		}
	}
	return total
}

// LossesValue returns the summed value of all losses. It is negative or zero.
func (g GainsAndLosses) LossesValue() decimal.Decimal {
	total := decimal.Zero
	for _, c := range g.capitals {
		if c.IsLoss() {
			total = total.Add(c.Value())
		}
	}
	return total
}

// TaxToPay returns the total tax due on the gains. Losses contribute zero.
func (g GainsAndLosses) TaxToPay() decimal.Decimal {
	total := decimal.Zero
	for _, c := range g.capitals {
		total = total.Add(c.Tax())
	}
	return total
}

// Flatten nets the collection per asset: capital diffs on the same asset are
// summed into a single diff. An asset netting to zero disappears; a positive
// net becomes one gain taxed at the highest rate observed among the
// contributing gains; a negative net becomes one loss. Flatten is idempotent.
func (g GainsAndLosses) Flatten() (GainsAndLosses, error) {
	grouped := make(map[string][]CapitalDiff)
	for _, c := range g.capitals {
		grouped[c.Asset()] = append(grouped[c.Asset()], c)
	}

	flattened := make([]CapitalDiff, 0, len(grouped))
	for _, capitals := range grouped {
		net, drop, err := flattenAsset(capitals)
		if err != nil {
			return GainsAndLosses{}, err
		}
		if !drop {
			flattened = append(flattened, net)
		}
	}
	// map iteration order is random, keep the result stable
	slices.SortFunc(flattened, func(a, b CapitalDiff) int {
		return strings.Compare(a.Asset(), b.Asset())
	})
	return GainsAndLosses{capitals: flattened}, nil
}

// flattenAsset nets the capital diffs of a single asset. drop is true when
// the net value is zero and the asset must not be reported at all.
func flattenAsset(capitals []CapitalDiff) (net CapitalDiff, drop bool, err error) {
	asset := capitals[0].Asset()
	class := capitals[0].AssetClass()

	total := decimal.Zero
	maxGainRate := decimal.Zero
	lossRate := decimal.Zero
	for _, c := range capitals {
		total = total.Add(c.Value())
		if c.IsGain() && c.TaxPercentage().GreaterThan(maxGainRate) {
			maxGainRate = c.TaxPercentage()
		}
		if c.IsLoss() {
			lossRate = c.TaxPercentage()
		}
	}

	switch {
	case total.IsZero():
		return CapitalDiff{}, true, nil
	case total.IsPositive():
		net, err = NewGain(asset, class, maxGainRate, total)
	default:
		if lossRate.IsZero() {
			lossRate = maxGainRate
		}
		net, err = NewLoss(asset, class, lossRate, total)
	}
	if err != nil {
		return CapitalDiff{}, false, fmt.Errorf("flattening %s: %w", asset, err)
	}
	return net, false, nil
}

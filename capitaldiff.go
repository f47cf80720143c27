package fisco730

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidCapitalDiff is returned by the CapitalDiff constructors when the
// sign of the value does not match the gain/loss tag, or the tax rate is out
// of [0, 100]. Valid trade data can never produce it.
var ErrInvalidCapitalDiff = errors.New("invalid capital diff")

var oneHundred = decimal.NewFromInt(100)

// CapitalDiff is a realized difference in the investor's capital: a gain or a
// loss on one asset, with the substitute tax rate that applies to it.
type CapitalDiff struct {
	gain          bool
	asset         string
	assetClass    AssetClass
	taxPercentage decimal.Decimal
	tax           decimal.Decimal
	value         decimal.Decimal
}

// NewGain builds a Gain capital diff. The value must be strictly positive and
// the tax percentage within [0, 100]; the tax due is value × rate.
func NewGain(asset string, class AssetClass, taxPercentage, value decimal.Decimal) (CapitalDiff, error) {
	if taxPercentage.IsNegative() || taxPercentage.GreaterThan(oneHundred) {
		return CapitalDiff{}, fmt.Errorf("tax percentage %s out of [0, 100]: %w", taxPercentage, ErrInvalidCapitalDiff)
	}
	if !value.IsPositive() {
		return CapitalDiff{}, fmt.Errorf("gain value %s is not positive: %w", value, ErrInvalidCapitalDiff)
	}
	return CapitalDiff{
		gain:          true,
		asset:         asset,
		assetClass:    class,
		taxPercentage: taxPercentage,
		tax:           value.Mul(taxPercentage.Div(oneHundred)),
		value:         value,
	}, nil
}

// NewLoss builds a Loss capital diff. The value must be strictly negative.
// A loss bears no tax; its rate is carried for reporting only.
func NewLoss(asset string, class AssetClass, taxPercentage, value decimal.Decimal) (CapitalDiff, error) {
	if taxPercentage.IsNegative() || taxPercentage.GreaterThan(oneHundred) {
		return CapitalDiff{}, fmt.Errorf("tax percentage %s out of [0, 100]: %w", taxPercentage, ErrInvalidCapitalDiff)
	}
	if !value.IsNegative() {
		return CapitalDiff{}, fmt.Errorf("loss value %s is not negative: %w", value, ErrInvalidCapitalDiff)
	}
	return CapitalDiff{
		gain:          false,
		asset:         asset,
		assetClass:    class,
		taxPercentage: taxPercentage,
		tax:           decimal.Zero,
		value:         value,
	}, nil
}

// IsGain reports whether the capital diff is a gain.
func (c CapitalDiff) IsGain() bool { return c.gain }

// IsLoss reports whether the capital diff is a loss.
func (c CapitalDiff) IsLoss() bool { return !c.gain }

// Asset returns the asset the capital diff refers to.
func (c CapitalDiff) Asset() string { return c.asset }

// AssetClass returns the class of the asset.
func (c CapitalDiff) AssetClass() AssetClass { return c.assetClass }

// TaxPercentage returns the substitute tax rate applied, in percent.
func (c CapitalDiff) TaxPercentage() decimal.Decimal { return c.taxPercentage }

// Tax returns the tax due on the capital diff. Zero for losses.
func (c CapitalDiff) Tax() decimal.Decimal { return c.tax }

// Value returns the signed value: positive for gains, negative for losses.
func (c CapitalDiff) Value() decimal.Decimal { return c.value }

package fisco730

import (
	"github.com/shopspring/decimal"
)

// Module730 carries the figures to copy into the "modello 730" declaration:
// Quadro RT for capital gains, Quadro RW for foreign-held assets.
type Module730 struct {
	QuadroRt QuadroRt
	QuadroRw QuadroRw
}

// QuadroRt - Plusvalenze di natura finanziaria.
//
// Ref: https://info730.agenziaentrate.it/portale/istruzioni-per-la-compilazione-del-quadro-rt
type QuadroRt struct {
	Sezione1 SezioneRt // gains taxed at the preferential 12.5% rate
	Sezione2 SezioneRt // gains taxed at the ordinary 26% rate
	Sezione5 Sezione5
}

// SezioneRt holds one rate bucket of the Quadro RT.
type SezioneRt struct {
	// Corrispettivo incassato: the summed value of the gains.
	Corrispettivo decimal.Decimal
	// Valore fiscale riconosciuto: the summed absolute value of the losses.
	ValoreFiscale decimal.Decimal
	// Plusvalenza: Corrispettivo - ValoreFiscale, only reported when positive.
	Plusvalenza decimal.Decimal
	// Imposta sostitutiva due on the plusvalenza.
	Imposta decimal.Decimal
}

// Sezione5 - Minusvalenze non compensate nell'anno.
type Sezione5 struct {
	// MinusvalenzeNonCompensate is the loss excess the gains of the same
	// rate bucket could not absorb, carried forward to later years.
	MinusvalenzeNonCompensate decimal.Decimal
}

// QuadroRw - monitoraggio delle attività finanziarie detenute all'estero.
type QuadroRw struct {
	// GiacenzaMedia: the average yearly balance of the foreign account.
	GiacenzaMedia decimal.Decimal
	// Ivafe due on the account (colonna 11), rounded to the cent.
	Ivafe decimal.Decimal
}

// PrepareModule730 fills the declaration figures from the flattened gains and
// losses, the average balance, and the IVAFE.
func PrepareModule730(averageBalance, ivafe decimal.Decimal, gains GainsAndLosses) Module730 {
	s1, unc1 := prepareSezione(gains, governmentsRate)
	s2, unc2 := prepareSezione(gains, ordinaryRate)
	return Module730{
		QuadroRt: QuadroRt{
			Sezione1: s1,
			Sezione2: s2,
			Sezione5: Sezione5{MinusvalenzeNonCompensate: unc1.Add(unc2).Round(2)},
		},
		QuadroRw: QuadroRw{
			GiacenzaMedia: averageBalance.Round(2),
			Ivafe:         ivafe.Round(2),
		},
	}
}

// prepareSezione nets the capital diffs of one rate bucket. uncompensated is
// the loss excess left when the bucket's gains cannot absorb its losses.
func prepareSezione(gains GainsAndLosses, rate decimal.Decimal) (s SezioneRt, uncompensated decimal.Decimal) {
	proceeds := decimal.Zero
	losses := decimal.Zero
	for _, c := range gains.Capitals() {
		if !c.TaxPercentage().Equal(rate) {
			continue
		}
		if c.IsGain() {
			proceeds = proceeds.Add(c.Value())
		} else {
			losses = losses.Add(c.Value().Abs())
		}
	}
	s.Corrispettivo = proceeds.Round(2)
	s.ValoreFiscale = losses.Round(2)
	diff := proceeds.Sub(losses)
	if diff.IsPositive() {
		s.Plusvalenza = diff.Round(2)
		s.Imposta = diff.Mul(rate.Div(oneHundred)).Round(2)
	} else {
		uncompensated = diff.Neg()
	}
	return s, uncompensated
}

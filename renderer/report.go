package renderer

import (
	"fmt"
	"strings"

	"fisco730"
	"fisco730/date"

	"github.com/shopspring/decimal"
)

// GainsMarkdown renders the flattened capital gains and losses of the period.
func GainsMarkdown(gains fisco730.GainsAndLosses, period date.Range) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Capital Gains and Losses %d\n\n", period.From.Year())

	if gains.Len() == 0 {
		fmt.Fprint(&b, "No capital gain or loss was realized in the period.\n")
		return b.String()
	}

	fmt.Fprintln(&b, "| Asset | Class | Rate | Value | Tax |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|")
	for _, c := range gains.Capitals() {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			c.Asset(),
			c.AssetClass(),
			percent(c.TaxPercentage()),
			signedEur(c.Value()),
			eur(c.Tax()),
		)
	}
	fmt.Fprintf(&b, "\nTotal gains: **%s**, total losses: **%s**, tax to pay: **%s**\n",
		eur(gains.GainsValue()),
		eur(gains.LossesValue()),
		eur(gains.TaxToPay()),
	)
	return b.String()
}

// BalanceMarkdown renders the average balance and the IVAFE figures.
func BalanceMarkdown(averageBalance, ivafe decimal.Decimal, period date.Range) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Giacenza media %d\n\n", period.From.Year())
	fmt.Fprintf(&b, "Average balance over %s: **%s**\n\n", period, eur(averageBalance))
	if ivafe.IsZero() {
		fmt.Fprint(&b, "The average balance is under € 5000: no IVAFE is due.\n")
	} else {
		fmt.Fprintf(&b, "IVAFE due (2‰): **%s**\n", eur(ivafe))
	}
	return b.String()
}

// Module730Markdown renders the declaration figures, quadro by quadro.
func Module730Markdown(m fisco730.Module730, period date.Range) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Modello 730 - anno d'imposta %d\n\n", period.From.Year())

	fmt.Fprint(&b, "## Quadro RT - Plusvalenze di natura finanziaria\n\n")
	sezione(&b, "Sezione I - imposta sostitutiva 12,5%", m.QuadroRt.Sezione1)
	sezione(&b, "Sezione II - imposta sostitutiva 26%", m.QuadroRt.Sezione2)
	fmt.Fprint(&b, "### Sezione V - Minusvalenze non compensate\n\n")
	fmt.Fprintf(&b, "| Minusvalenze dell'anno non compensate | %s |\n\n",
		eur(m.QuadroRt.Sezione5.MinusvalenzeNonCompensate))

	fmt.Fprint(&b, "## Quadro RW - Attività finanziarie estere\n\n")
	fmt.Fprintln(&b, "| Colonna | Valore |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Giacenza media (col. 8) | %s |\n", eur(m.QuadroRw.GiacenzaMedia))
	fmt.Fprintf(&b, "| IVAFE (col. 11) | %s |\n", eur(m.QuadroRw.Ivafe))

	return b.String()
}

func sezione(b *strings.Builder, title string, s fisco730.SezioneRt) {
	fmt.Fprintf(b, "### %s\n\n", title)
	fmt.Fprintln(b, "| Rigo | Valore |")
	fmt.Fprintln(b, "|:---|---:|")
	fmt.Fprintf(b, "| Corrispettivo incassato | %s |\n", eur(s.Corrispettivo))
	fmt.Fprintf(b, "| Valore fiscale riconosciuto | %s |\n", eur(s.ValoreFiscale))
	if s.Plusvalenza.IsPositive() {
		fmt.Fprintf(b, "| Plusvalenza | %s |\n", eur(s.Plusvalenza))
		fmt.Fprintf(b, "| Imposta sostitutiva | %s |\n", eur(s.Imposta))
	}
	fmt.Fprintln(b)
}

// TradesMarkdown renders the filtered trade set, one row per trade.
func TradesMarkdown(trades fisco730.TradeSet, period date.Range) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Trades %d\n\n", period.From.Year())
	fmt.Fprintf(&b, "%d trades in %s.\n\n", trades.Len(), period)
	fmt.Fprintln(&b, "| Date | Type | In/Out | Asset | Quantity | Fiat amount |")
	fmt.Fprintln(&b, "|:---|:---|:---|:---|---:|---:|")
	for _, t := range trades.Trades() {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			t.Timestamp.Format("2006-01-02"),
			t.Type,
			t.InOut,
			t.Asset,
			t.Quantity(),
			eur(t.AmountFiat),
		)
	}
	return b.String()
}

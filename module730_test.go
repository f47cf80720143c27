package fisco730

import (
	"testing"
)

func TestPrepareModule730(t *testing.T) {
	gains := NewGainsAndLosses([]CapitalDiff{
		mustGain(t, "BTC", Cryptocurrency, "26", "280"),
		mustLoss(t, "AMZN", Stock, "26", "-50"),
		mustGain(t, "USGOVIES", Etf, "12.5", "100"),
	})

	m := PrepareModule730(d("13171"), d("26.34"), gains)

	s1 := m.QuadroRt.Sezione1
	if !s1.Corrispettivo.Equal(d("100")) {
		t.Errorf("Sezione1 Corrispettivo = %s, want 100", s1.Corrispettivo)
	}
	if !s1.ValoreFiscale.IsZero() {
		t.Errorf("Sezione1 ValoreFiscale = %s, want 0", s1.ValoreFiscale)
	}
	if !s1.Plusvalenza.Equal(d("100")) {
		t.Errorf("Sezione1 Plusvalenza = %s, want 100", s1.Plusvalenza)
	}
	if !s1.Imposta.Equal(d("12.5")) {
		t.Errorf("Sezione1 Imposta = %s, want 12.5", s1.Imposta)
	}

	s2 := m.QuadroRt.Sezione2
	if !s2.Corrispettivo.Equal(d("280")) {
		t.Errorf("Sezione2 Corrispettivo = %s, want 280", s2.Corrispettivo)
	}
	if !s2.ValoreFiscale.Equal(d("50")) {
		t.Errorf("Sezione2 ValoreFiscale = %s, want 50", s2.ValoreFiscale)
	}
	if !s2.Plusvalenza.Equal(d("230")) {
		t.Errorf("Sezione2 Plusvalenza = %s, want 230", s2.Plusvalenza)
	}
	if !s2.Imposta.Equal(d("59.8")) {
		t.Errorf("Sezione2 Imposta = %s, want 59.80", s2.Imposta)
	}

	if !m.QuadroRt.Sezione5.MinusvalenzeNonCompensate.IsZero() {
		t.Errorf("Sezione5 = %s, want 0", m.QuadroRt.Sezione5.MinusvalenzeNonCompensate)
	}
	if !m.QuadroRw.GiacenzaMedia.Equal(d("13171")) {
		t.Errorf("GiacenzaMedia = %s, want 13171", m.QuadroRw.GiacenzaMedia)
	}
	if !m.QuadroRw.Ivafe.Equal(d("26.34")) {
		t.Errorf("Ivafe = %s, want 26.34", m.QuadroRw.Ivafe)
	}
}

func TestPrepareModule730_UncompensatedLossesCarryOver(t *testing.T) {
	// the ordinary bucket nets to a loss: no tax is due and the excess is
	// reported in sezione 5
	gains := NewGainsAndLosses([]CapitalDiff{
		mustGain(t, "BTC", Cryptocurrency, "26", "100"),
		mustLoss(t, "AMZN", Stock, "26", "-180"),
	})

	m := PrepareModule730(d("0"), d("0"), gains)

	s2 := m.QuadroRt.Sezione2
	if !s2.Plusvalenza.IsZero() {
		t.Errorf("Sezione2 Plusvalenza = %s, want 0", s2.Plusvalenza)
	}
	if !s2.Imposta.IsZero() {
		t.Errorf("Sezione2 Imposta = %s, want 0", s2.Imposta)
	}
	if !m.QuadroRt.Sezione5.MinusvalenzeNonCompensate.Equal(d("80")) {
		t.Errorf("Sezione5 = %s, want 80", m.QuadroRt.Sezione5.MinusvalenzeNonCompensate)
	}
}

func TestPrepareModule730_Empty(t *testing.T) {
	m := PrepareModule730(d("0"), d("0"), GainsAndLosses{})
	if !m.QuadroRt.Sezione1.Corrispettivo.IsZero() || !m.QuadroRt.Sezione2.Corrispettivo.IsZero() {
		t.Errorf("empty declaration carries proceeds: %+v", m.QuadroRt)
	}
	if !m.QuadroRt.Sezione5.MinusvalenzeNonCompensate.IsZero() {
		t.Errorf("empty declaration carries losses: %+v", m.QuadroRt.Sezione5)
	}
}

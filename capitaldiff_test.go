package fisco730

import (
	"errors"
	"testing"
)

func TestNewGain(t *testing.T) {
	gain, err := NewGain("BTC", Cryptocurrency, d("26"), d("280"))
	if err != nil {
		t.Fatalf("NewGain() error = %v", err)
	}
	if !gain.IsGain() || gain.IsLoss() {
		t.Errorf("NewGain() IsGain = %v, IsLoss = %v", gain.IsGain(), gain.IsLoss())
	}
	if got, want := gain.Tax(), d("72.8"); !got.Equal(want) {
		t.Errorf("Tax() = %s, want %s", got, want)
	}
	if got, want := gain.Value(), d("280"); !got.Equal(want) {
		t.Errorf("Value() = %s, want %s", got, want)
	}
}

func TestNewGain_RejectsBadInput(t *testing.T) {
	testCases := []struct {
		name  string
		rate  string
		value string
	}{
		{name: "negative value", rate: "26", value: "-10"},
		{name: "zero value", rate: "26", value: "0"},
		{name: "negative rate", rate: "-1", value: "10"},
		{name: "rate above 100", rate: "101", value: "10"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewGain("BTC", Cryptocurrency, d(tc.rate), d(tc.value))
			if !errors.Is(err, ErrInvalidCapitalDiff) {
				t.Errorf("NewGain(%s, %s) error = %v, want ErrInvalidCapitalDiff", tc.rate, tc.value, err)
			}
		})
	}
}

func TestNewLoss(t *testing.T) {
	loss, err := NewLoss("AMZN", Stock, d("26"), d("-50"))
	if err != nil {
		t.Fatalf("NewLoss() error = %v", err)
	}
	if !loss.IsLoss() || loss.IsGain() {
		t.Errorf("NewLoss() IsLoss = %v, IsGain = %v", loss.IsLoss(), loss.IsGain())
	}
	if got := loss.Tax(); !got.IsZero() {
		t.Errorf("Tax() on a loss = %s, want 0", got)
	}
	if got, want := loss.Value(), d("-50"); !got.Equal(want) {
		t.Errorf("Value() = %s, want %s", got, want)
	}
}

func TestNewLoss_RejectsNonNegativeValue(t *testing.T) {
	for _, value := range []string{"0", "50"} {
		if _, err := NewLoss("AMZN", Stock, d("26"), d(value)); !errors.Is(err, ErrInvalidCapitalDiff) {
			t.Errorf("NewLoss(value=%s) error = %v, want ErrInvalidCapitalDiff", value, err)
		}
	}
}

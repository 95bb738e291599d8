package finquant

import "testing"

func TestAmountString(t *testing.T) {
	tests := []struct {
		amount Amount
		want   string
	}{
		{M(1000, "USD"), "$1,000.00"},
		{M(1234.5, "USD"), "$1,234.50"},
		{M(500, "EUR"), "€500.00"},
		{M(0.5, "USD"), "$0.50"},
	}
	for _, tc := range tests {
		if got := tc.amount.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestAmountArithmetic(t *testing.T) {
	a, b := M(500, "USD"), M(250, "USD")

	if got := a.Add(b); !got.Equal(M(750, "USD")) {
		t.Errorf("Add() = %v", got)
	}
	if got := a.Sub(b); !got.Equal(M(250, "USD")) {
		t.Errorf("Sub() = %v", got)
	}
	if got := a.Mul(0.5); !got.Equal(b) {
		t.Errorf("Mul(0.5) = %v", got)
	}
	if got := b.Div(a); !approx(got, 0.5) {
		t.Errorf("Div() = %v", got)
	}
	if !b.LessThan(a) || a.LessThan(b) {
		t.Errorf("LessThan() ordering is wrong")
	}
	if !a.IsPositive() || M(0, "USD").IsPositive() || M(-1, "USD").IsPositive() {
		t.Errorf("IsPositive() is wrong")
	}
}

func TestAmountWeakEmptyCurrency(t *testing.T) {
	// An untyped zero amount adopts the other operand's currency.
	var zero Amount
	if got := zero.Add(M(100, "EUR")); got.Currency() != "EUR" {
		t.Errorf("currency after add = %q, want EUR", got.Currency())
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(0.1234).String(); got != "12.34%" {
		t.Errorf("String() = %q", got)
	}
	if !Percent(0.5).Equal(0.50005) {
		t.Errorf("Equal() too strict")
	}
	if Percent(0.5).Equal(0.51) {
		t.Errorf("Equal() too loose")
	}
}

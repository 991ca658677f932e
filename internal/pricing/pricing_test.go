package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newReferenceEngine() Engine {
	return NewEngine(dec("0.08"), dec("15.00"))
}

func TestQuoteReferenceValues(t *testing.T) {
	// Эталонный расчёт: subtotal 249.98, купон 20%, налог 8%, доставка 15.00.
	e := newReferenceEngine()

	subtotal := dec("249.98")
	discount := subtotal.Mul(dec("0.20"))

	q := e.Quote(subtotal, discount)

	if !q.Tax.Equal(dec("19.9984")) {
		t.Fatalf("Tax = %s, want 19.9984", q.Tax)
	}
	if !q.Discount.Equal(dec("49.996")) {
		t.Fatalf("Discount = %s, want 49.996", q.Discount)
	}

	want := dec("249.98").Add(dec("15.00")).Add(dec("19.9984")).Sub(dec("49.996"))
	if !q.Total.Equal(want) {
		t.Fatalf("Total = %s, want %s", q.Total, want)
	}
}

func TestQuoteIdentity(t *testing.T) {
	e := newReferenceEngine()

	tests := []struct {
		name     string
		subtotal string
		discount string
	}{
		{name: "no discount", subtotal: "449.98", discount: "0"},
		{name: "small cart", subtotal: "129.99", discount: "13"},
		{name: "zero subtotal", subtotal: "0", discount: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := e.Quote(dec(tt.subtotal), dec(tt.discount))

			want := q.Subtotal.Add(q.Shipping).Add(q.Tax).Sub(q.Discount)
			if !q.Total.Equal(want) {
				t.Fatalf("total %s violates subtotal+shipping+tax-discount = %s", q.Total, want)
			}
		})
	}
}

func TestQuoteCapsDiscountAtSubtotal(t *testing.T) {
	e := newReferenceEngine()

	q := e.Quote(dec("100"), dec("150"))

	if !q.Discount.Equal(dec("100")) {
		t.Fatalf("Discount = %s, want capped at 100", q.Discount)
	}
	// Итог не уходит в минус из-за скидки: остаются доставка и налог.
	if q.Total.IsNegative() {
		t.Fatalf("Total = %s, must not be negative", q.Total)
	}
}

func TestQuoteIsExactUnderRecomputation(t *testing.T) {
	// Повторный пересчёт не накапливает ошибку округления.
	e := newReferenceEngine()

	subtotal := dec("249.98")
	discount := subtotal.Mul(dec("0.20"))

	first := e.Quote(subtotal, discount)
	for i := 0; i < 100; i++ {
		again := e.Quote(subtotal, discount)
		if !again.Total.Equal(first.Total) {
			t.Fatalf("recomputation %d drifted: %s != %s", i, again.Total, first.Total)
		}
	}
}

func TestFormatRoundsHalfAwayFromZero(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{name: "reference tax", amount: "19.9984", want: "20.00"},
		{name: "reference discount", amount: "49.996", want: "50.00"},
		{name: "half rounds up", amount: "1.005", want: "1.01"},
		{name: "plain amount", amount: "249.98", want: "249.98"},
		{name: "whole number", amount: "15", want: "15.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(dec(tt.amount)); got != tt.want {
				t.Fatalf("Format(%s) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

package calculator

import (
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name         string
		items        []LineItem
		charges      Charges
		wantSubtotal string
		wantTax      string
		wantGrand    string
	}{
		{
			name:         "empty invoice",
			items:        nil,
			wantSubtotal: "0",
			wantTax:      "0",
			wantGrand:    "0",
		},
		{
			name:         "single item no extras",
			items:        []LineItem{{Quantity: 1, UnitCost: 20}},
			wantSubtotal: "20",
			wantTax:      "0",
			wantGrand:    "20",
		},
		{
			name: "tax shipping and discount",
			items: []LineItem{
				{Name: "Router", Quantity: 2, UnitCost: 100},
				{Name: "Cable", Quantity: 1, UnitCost: 50},
			},
			charges:      Charges{TaxPercent: 10, Shipping: 20, Discount: 5},
			wantSubtotal: "250",
			wantTax:      "25",
			wantGrand:    "290",
		},
		{
			name:         "fractional amounts stay exact",
			items:        []LineItem{{Quantity: 3, UnitCost: 0.1}, {Quantity: 1, UnitCost: 0.2}},
			charges:      Charges{TaxPercent: 16},
			wantSubtotal: "0.5",
			wantTax:      "0.08",
			wantGrand:    "0.58",
		},
		{
			name:         "discount larger than total is not clamped",
			items:        []LineItem{{Quantity: 1, UnitCost: 10}},
			charges:      Charges{Discount: 25},
			wantSubtotal: "10",
			wantTax:      "0",
			wantGrand:    "-15",
		},
		{
			name:         "zero quantity line",
			items:        []LineItem{{Quantity: 0, UnitCost: 999}, {Quantity: 4, UnitCost: 2.5}},
			charges:      Charges{Shipping: 1.5},
			wantSubtotal: "10",
			wantTax:      "0",
			wantGrand:    "11.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeTotals(tt.items, tt.charges)
			if err != nil {
				t.Fatalf("ComputeTotals() error = %v", err)
			}
			if !got.Subtotal.Equal(dec(tt.wantSubtotal)) {
				t.Errorf("Subtotal = %s, want %s", got.Subtotal, tt.wantSubtotal)
			}
			if !got.TaxAmount.Equal(dec(tt.wantTax)) {
				t.Errorf("TaxAmount = %s, want %s", got.TaxAmount, tt.wantTax)
			}
			if !got.GrandTotal.Equal(dec(tt.wantGrand)) {
				t.Errorf("GrandTotal = %s, want %s", got.GrandTotal, tt.wantGrand)
			}
			if len(got.Lines) != len(tt.items) {
				t.Errorf("Lines = %d, want %d", len(got.Lines), len(tt.items))
			}
		})
	}
}

func TestFunctionsAgreeWithComputeTotals(t *testing.T) {
	items := []LineItem{
		{Quantity: 2, UnitCost: 100},
		{Quantity: 1, UnitCost: 50},
		{Quantity: 7, UnitCost: 3.25},
	}
	tax, shipping, discount := 16.0, 300.0, 12.5

	subtotal, err := Subtotal(items)
	if err != nil {
		t.Fatalf("Subtotal() error = %v", err)
	}
	taxAmount, err := TaxAmount(items, tax)
	if err != nil {
		t.Fatalf("TaxAmount() error = %v", err)
	}
	grand, err := GrandTotal(items, tax, shipping, discount)
	if err != nil {
		t.Fatalf("GrandTotal() error = %v", err)
	}

	want := subtotal.
		Add(subtotal.Mul(decimal.NewFromFloat(tax)).Div(decimal.NewFromInt(100))).
		Add(decimal.NewFromFloat(shipping)).
		Sub(decimal.NewFromFloat(discount))
	if !grand.Equal(want) {
		t.Errorf("GrandTotal = %s, want %s", grand, want)
	}
	if !subtotal.Mul(decimal.NewFromFloat(tax)).Div(decimal.NewFromInt(100)).Equal(taxAmount) {
		t.Errorf("TaxAmount = %s does not match subtotal*tax/100", taxAmount)
	}

	totals, err := ComputeTotals(items, Charges{TaxPercent: tax, Shipping: shipping, Discount: discount})
	if err != nil {
		t.Fatalf("ComputeTotals() error = %v", err)
	}
	if !totals.GrandTotal.Equal(grand) || !totals.Subtotal.Equal(subtotal) || !totals.TaxAmount.Equal(taxAmount) {
		t.Errorf("ComputeTotals disagrees: %+v", totals)
	}
}

func TestLineTotal(t *testing.T) {
	got, err := LineTotal(LineItem{Quantity: 3, UnitCost: 1500})
	if err != nil {
		t.Fatalf("LineTotal() error = %v", err)
	}
	if !got.Equal(dec("4500")) {
		t.Errorf("LineTotal = %s, want 4500", got)
	}
}

func TestSubtotal_Empty(t *testing.T) {
	got, err := Subtotal([]LineItem{})
	if err != nil {
		t.Fatalf("Subtotal() error = %v", err)
	}
	if !got.IsZero() {
		t.Errorf("Subtotal([]) = %s, want 0", got)
	}

	grand, err := GrandTotal(nil, 0, 0, 0)
	if err != nil {
		t.Fatalf("GrandTotal() error = %v", err)
	}
	if !grand.IsZero() {
		t.Errorf("GrandTotal(nil, 0, 0, 0) = %s, want 0", grand)
	}
}

func TestInvalidNumbers(t *testing.T) {
	tests := []struct {
		name      string
		items     []LineItem
		charges   Charges
		wantField string
	}{
		{"negative quantity", []LineItem{{Quantity: -1, UnitCost: 5}}, Charges{}, "items[0].quantity"},
		{"NaN unit cost", []LineItem{{Quantity: 1, UnitCost: 5}, {Quantity: 1, UnitCost: math.NaN()}}, Charges{}, "items[1].unitCost"},
		{"infinite quantity", []LineItem{{Quantity: math.Inf(1), UnitCost: 1}}, Charges{}, "items[0].quantity"},
		{"negative tax", nil, Charges{TaxPercent: -5}, "taxPercent"},
		{"negative shipping", nil, Charges{Shipping: -1}, "shippingAbsolute"},
		{"NaN discount", nil, Charges{Discount: math.NaN()}, "discountAbsolute"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeTotals(tt.items, tt.charges)
			var numErr *InvalidNumberError
			if !errors.As(err, &numErr) {
				t.Fatalf("expected *InvalidNumberError, got %v", err)
			}
			if numErr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", numErr.Field, tt.wantField)
			}
		})
	}

	if _, err := LineTotal(LineItem{Quantity: 1, UnitCost: -3}); err == nil {
		t.Error("LineTotal with negative cost should error")
	}
	if _, err := TaxAmount([]LineItem{{Quantity: 1, UnitCost: 1}}, math.Inf(-1)); err == nil {
		t.Error("TaxAmount with -Inf should error")
	}
}

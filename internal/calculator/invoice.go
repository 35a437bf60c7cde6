package calculator

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// LineItem is the minimal line information needed for invoice totals.
type LineItem struct {
	Name     string
	Quantity float64
	UnitCost float64
}

// Charges are the invoice-level adjustments applied on top of the subtotal.
type Charges struct {
	TaxPercent float64
	Shipping   float64
	Discount   float64
}

// Totals is the full breakdown of an invoice.
type Totals struct {
	Lines      []decimal.Decimal
	Subtotal   decimal.Decimal
	TaxAmount  decimal.Decimal
	Shipping   decimal.Decimal
	Discount   decimal.Decimal
	GrandTotal decimal.Decimal
}

// LineTotal returns quantity * unitCost.
func LineTotal(item LineItem) (decimal.Decimal, error) {
	return lineTotal("", item)
}

// Subtotal sums the line totals. An empty slice sums to zero.
func Subtotal(items []LineItem) (decimal.Decimal, error) {
	sum := decimal.Zero
	for i, item := range items {
		lt, err := lineTotal(fmt.Sprintf("items[%d].", i), item)
		if err != nil {
			return decimal.Zero, err
		}
		sum = sum.Add(lt)
	}
	return sum, nil
}

// TaxAmount returns subtotal * taxPercent / 100.
func TaxAmount(items []LineItem, taxPercent float64) (decimal.Decimal, error) {
	subtotal, err := Subtotal(items)
	if err != nil {
		return decimal.Zero, err
	}
	tax, err := toDecimal("taxPercent", taxPercent)
	if err != nil {
		return decimal.Zero, err
	}
	return percentOf(subtotal, tax), nil
}

// GrandTotal returns subtotal + tax + shipping - discount. The result is not
// clamped and may be negative when the discount exceeds everything else.
func GrandTotal(items []LineItem, taxPercent, shipping, discount float64) (decimal.Decimal, error) {
	totals, err := ComputeTotals(items, Charges{
		TaxPercent: taxPercent,
		Shipping:   shipping,
		Discount:   discount,
	})
	if err != nil {
		return decimal.Zero, err
	}
	return totals.GrandTotal, nil
}

// ComputeTotals validates every input once and returns the whole breakdown.
func ComputeTotals(items []LineItem, charges Charges) (*Totals, error) {
	tax, err := toDecimal("taxPercent", charges.TaxPercent)
	if err != nil {
		return nil, err
	}
	shipping, err := toDecimal("shippingAbsolute", charges.Shipping)
	if err != nil {
		return nil, err
	}
	discount, err := toDecimal("discountAbsolute", charges.Discount)
	if err != nil {
		return nil, err
	}

	totals := &Totals{
		Lines:    make([]decimal.Decimal, len(items)),
		Subtotal: decimal.Zero,
		Shipping: shipping,
		Discount: discount,
	}
	for i, item := range items {
		lt, err := lineTotal(fmt.Sprintf("items[%d].", i), item)
		if err != nil {
			return nil, err
		}
		totals.Lines[i] = lt
		totals.Subtotal = totals.Subtotal.Add(lt)
	}

	totals.TaxAmount = percentOf(totals.Subtotal, tax)
	totals.GrandTotal = totals.Subtotal.Add(totals.TaxAmount).Add(shipping).Sub(discount)
	return totals, nil
}

func lineTotal(prefix string, item LineItem) (decimal.Decimal, error) {
	qty, err := toDecimal(prefix+"quantity", item.Quantity)
	if err != nil {
		return decimal.Zero, err
	}
	cost, err := toDecimal(prefix+"unitCost", item.UnitCost)
	if err != nil {
		return decimal.Zero, err
	}
	return qty.Mul(cost), nil
}

// percentOf shifts instead of dividing so that /100 is always exact.
func percentOf(amount, percent decimal.Decimal) decimal.Decimal {
	return amount.Mul(percent).Shift(-2)
}

func toDecimal(field string, v float64) (decimal.Decimal, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return decimal.Zero, &InvalidNumberError{Field: field, Value: v}
	}
	return decimal.NewFromFloat(v), nil
}

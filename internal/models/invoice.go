package models

import (
	"sort"
	"time"
)

// Invoice is a manually issued invoice.
type Invoice struct {
	// ID is the unique identifier for the invoice (UUID format).
	ID string

	// Number is the human-facing invoice number, e.g. "INV-0042".
	Number string

	Date     time.Time
	DueDate  *time.Time
	PONumber string
	BillTo   string

	// Items are kept sorted by LineItem.ID.
	Items []LineItem

	Notes string
	Terms string

	// TaxPercent is applied to the subtotal; Discount and Shipping are absolute.
	TaxPercent float64
	Discount   float64
	Shipping   float64

	// CreatedAt is the Unix timestamp when the invoice was stored.
	CreatedAt int64
}

// LineItem is one line on an invoice. ID is unique within the invoice.
type LineItem struct {
	ID       int
	Name     string
	Quantity float64
	UnitCost float64
}

// SortItems orders items by ID ascending.
func (inv *Invoice) SortItems() {
	sort.SliceStable(inv.Items, func(i, j int) bool {
		return inv.Items[i].ID < inv.Items[j].ID
	})
}

// NextItemID returns the ID a newly added line should get: one past the
// last line's ID, or 1 for an empty invoice.
func (inv *Invoice) NextItemID() int {
	if len(inv.Items) == 0 {
		return 1
	}
	return inv.Items[len(inv.Items)-1].ID + 1
}

// AddItem appends a new line and returns it.
func (inv *Invoice) AddItem(name string, quantity, unitCost float64) LineItem {
	item := LineItem{
		ID:       inv.NextItemID(),
		Name:     name,
		Quantity: quantity,
		UnitCost: unitCost,
	}
	inv.Items = append(inv.Items, item)
	inv.SortItems()
	return item
}

// UpsertItem replaces the line with item.ID, or adds it, and re-sorts.
func (inv *Invoice) UpsertItem(item LineItem) {
	for i := range inv.Items {
		if inv.Items[i].ID == item.ID {
			inv.Items[i] = item
			inv.SortItems()
			return
		}
	}
	inv.Items = append(inv.Items, item)
	inv.SortItems()
}

// RemoveItem deletes the line with the given ID. It reports whether a line
// was removed.
func (inv *Invoice) RemoveItem(id int) bool {
	for i := range inv.Items {
		if inv.Items[i].ID == id {
			inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
			return true
		}
	}
	return false
}

// CalendarDay returns midnight UTC of the day t falls on in its own
// location. Invoice dates are calendar days, so "2024-03-15T00:30:00+03:00"
// stays the 15th after a round trip through storage.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

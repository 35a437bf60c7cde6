package models

import (
	"testing"
	"time"
)

func itemIDs(inv *Invoice) []int {
	ids := make([]int, len(inv.Items))
	for i, item := range inv.Items {
		ids[i] = item.ID
	}
	return ids
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestInvoiceItemEditing(t *testing.T) {
	inv := &Invoice{}

	if got := inv.NextItemID(); got != 1 {
		t.Fatalf("NextItemID on empty invoice = %d, want 1", got)
	}

	inv.AddItem("Router", 1, 3500)
	inv.AddItem("Installation", 1, 1500)
	inv.AddItem("Cable (m)", 20, 50)

	if !equalInts(itemIDs(inv), []int{1, 2, 3}) {
		t.Fatalf("ids after add = %v", itemIDs(inv))
	}

	// Editing a line keeps the id order stable.
	inv.UpsertItem(LineItem{ID: 1, Name: "Router AX", Quantity: 1, UnitCost: 4200})
	if !equalInts(itemIDs(inv), []int{1, 2, 3}) {
		t.Errorf("ids after upsert = %v", itemIDs(inv))
	}
	if inv.Items[0].Name != "Router AX" {
		t.Errorf("upsert did not replace line 1: %+v", inv.Items[0])
	}

	if !inv.RemoveItem(2) {
		t.Fatal("RemoveItem(2) = false")
	}
	if inv.RemoveItem(2) {
		t.Error("second RemoveItem(2) = true")
	}
	if !equalInts(itemIDs(inv), []int{1, 3}) {
		t.Errorf("ids after remove = %v", itemIDs(inv))
	}

	added := inv.AddItem("Extra", 1, 1)
	if added.ID != 4 {
		t.Errorf("new id after removal = %d, want 4", added.ID)
	}

	inv.UpsertItem(LineItem{ID: 2, Name: "Back again"})
	if !equalInts(itemIDs(inv), []int{1, 2, 3, 4}) {
		t.Errorf("ids after re-inserting 2 = %v", itemIDs(inv))
	}
}

func TestCalendarDay(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-03-15T00:30:00+03:00", "2024-03-15"},
		{"2024-03-29T23:45:00-05:00", "2024-03-29"},
		{"2024-03-15T00:00:00Z", "2024-03-15"},
		{"2024-12-31T23:59:59+14:00", "2024-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			in, err := time.Parse(time.RFC3339, tt.in)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			got := CalendarDay(in)
			if got.Location() != time.UTC || got.Format(time.DateOnly) != tt.want {
				t.Errorf("CalendarDay(%s) = %v, want %s UTC", tt.in, got, tt.want)
			}
			if again := CalendarDay(time.Unix(got.Unix(), 0).UTC()); !again.Equal(got) {
				t.Errorf("round trip moved %v to %v", got, again)
			}
		})
	}
}

package service

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/elsafrica/billing/internal/calculator"
	"github.com/elsafrica/billing/internal/models"
	billingv1 "github.com/elsafrica/billing/pkg/billingv1"
)

// DateLayout is the wire format of invoice dates.
const DateLayout = "2006-01-02"

func money(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

func moneyFloat(f float64) json.Number {
	return money(decimal.NewFromFloat(f))
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}

func customerToWire(c *models.Customer) billingv1.Customer {
	return billingv1.Customer{
		ID:             c.ID,
		Name:           c.Name,
		Phone1:         c.Phone1,
		Phone2:         c.Phone2,
		Email:          c.Email,
		Location:       c.Location,
		IP:             c.IP,
		MACAddress:     c.MACAddress,
		PackageID:      c.PackageID,
		PackageName:    c.PackageName,
		BillAmount:     moneyFloat(c.BillAmount),
		TotalEarnings:  moneyFloat(c.TotalEarnings),
		AccruedAmount:  moneyFloat(c.AccruedAmount),
		LastPayment:    formatTime(c.LastPayment),
		IsDisconnected: c.IsDisconnected,
		CreatedAt:      c.CreatedAt,
	}
}

func packageToWire(p *models.Package) billingv1.Package {
	return billingv1.Package{
		ID:        p.ID,
		Name:      p.Name,
		Amount:    moneyFloat(p.Amount),
		CreatedAt: p.CreatedAt,
	}
}

func totalsToWire(t *calculator.Totals) billingv1.Totals {
	lines := make([]json.Number, len(t.Lines))
	for i, l := range t.Lines {
		lines[i] = money(l)
	}
	return billingv1.Totals{
		LineTotals: lines,
		Subtotal:   money(t.Subtotal),
		TaxAmount:  money(t.TaxAmount),
		GrandTotal: money(t.GrandTotal),
	}
}

func calculatorItems(items []models.LineItem) []calculator.LineItem {
	out := make([]calculator.LineItem, len(items))
	for i, item := range items {
		out[i] = calculator.LineItem{Name: item.Name, Quantity: item.Quantity, UnitCost: item.UnitCost}
	}
	return out
}

func invoiceTotals(inv *models.Invoice) (*calculator.Totals, error) {
	return calculator.ComputeTotals(calculatorItems(inv.Items), calculator.Charges{
		TaxPercent: inv.TaxPercent,
		Shipping:   inv.Shipping,
		Discount:   inv.Discount,
	})
}

func invoiceToWire(inv *models.Invoice, totals *calculator.Totals) billingv1.Invoice {
	items := make([]billingv1.LineItem, len(inv.Items))
	for i, item := range inv.Items {
		items[i] = billingv1.LineItem{
			ID:       item.ID,
			Name:     item.Name,
			Quantity: item.Quantity,
			UnitCost: item.UnitCost,
		}
	}
	return billingv1.Invoice{
		ID:               inv.ID,
		Number:           inv.Number,
		Date:             formatDate(&inv.Date),
		DueDate:          formatDate(inv.DueDate),
		PONumber:         inv.PONumber,
		BillTo:           inv.BillTo,
		Items:            items,
		Notes:            inv.Notes,
		Terms:            inv.Terms,
		TaxPercent:       inv.TaxPercent,
		ShippingAbsolute: inv.Shipping,
		DiscountAbsolute: inv.Discount,
		CreatedAt:        inv.CreatedAt,
		Totals:           totalsToWire(totals),
	}
}

func userToWire(u *models.User) billingv1.User {
	return billingv1.User{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Active:      u.Active,
		IsAdmin:     u.IsAdmin,
		CreatedAt:   u.CreatedAt,
	}
}

func assetToWire(a *models.Asset) billingv1.Asset {
	return billingv1.Asset{
		ID:           a.ID,
		Name:         a.Name,
		BelongsTo:    a.BelongsTo,
		CustomerName: a.CustomerName,
		Type:         a.Type,
		MACAddress:   a.MACAddress,
		Location:     a.Location,
		Purpose:      a.Purpose,
		Price:        moneyFloat(a.Price),
		IsForCompany: a.IsForCompany,
		CreatedAt:    a.CreatedAt,
	}
}

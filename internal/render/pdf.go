// Package render draws stored invoices as PDF documents.
package render

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/elsafrica/billing/internal/calculator"
	"github.com/elsafrica/billing/internal/models"
)

// DateLayout is how invoice dates are printed.
const DateLayout = "02 Jan 2006"

// Options are the display settings that are not part of the invoice.
type Options struct {
	CompanyName string
	Currency    string
}

const (
	pageWidth   = 210.0
	margin      = 15.0
	contentW    = pageWidth - 2*margin
	lineHeight  = 7.0
	colName     = 85.0
	colQuantity = 25.0
	colUnitCost = 35.0
	colTotal    = contentW - colName - colQuantity - colUnitCost
)

// InvoicePDF writes a single A4 page for inv. totals must have been
// computed from inv's items and charges.
func InvoicePDF(w io.Writer, inv *models.Invoice, totals *calculator.Totals, opts Options) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetTitle("Invoice "+inv.Number, true)
	pdf.SetCreator(opts.CompanyName, true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	money := func(s fmt.Stringer) string {
		if opts.Currency == "" {
			return s.String()
		}
		return opts.Currency + " " + s.String()
	}

	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(contentW/2, 10, tr(opts.CompanyName), "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 10, "INVOICE", "", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(contentW, lineHeight, tr("# "+inv.Number), "", 1, "R", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(contentW/2, lineHeight, "Bill To", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(contentW/4, lineHeight, "Date", "", 0, "R", false, 0, "")
	pdf.CellFormat(contentW/4, lineHeight, inv.Date.Format(DateLayout), "", 1, "R", false, 0, "")

	pdf.CellFormat(contentW/2, lineHeight, tr(inv.BillTo), "", 0, "L", false, 0, "")
	if inv.DueDate != nil {
		pdf.CellFormat(contentW/4, lineHeight, "Due Date", "", 0, "R", false, 0, "")
		pdf.CellFormat(contentW/4, lineHeight, inv.DueDate.Format(DateLayout), "", 0, "R", false, 0, "")
	}
	pdf.Ln(lineHeight)

	if inv.PONumber != "" {
		pdf.CellFormat(contentW/2, lineHeight, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW/4, lineHeight, "PO Number", "", 0, "R", false, 0, "")
		pdf.CellFormat(contentW/4, lineHeight, tr(inv.PONumber), "", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(40, 40, 40)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(colName, lineHeight, "Item", "", 0, "L", true, 0, "")
	pdf.CellFormat(colQuantity, lineHeight, "Quantity", "", 0, "R", true, 0, "")
	pdf.CellFormat(colUnitCost, lineHeight, "Rate", "", 0, "R", true, 0, "")
	pdf.CellFormat(colTotal, lineHeight, "Amount", "", 1, "R", true, 0, "")
	pdf.SetTextColor(0, 0, 0)

	pdf.SetFont("Arial", "", 10)
	for i, item := range inv.Items {
		pdf.CellFormat(colName, lineHeight, tr(item.Name), "B", 0, "L", false, 0, "")
		pdf.CellFormat(colQuantity, lineHeight, formatFloat(item.Quantity), "B", 0, "R", false, 0, "")
		pdf.CellFormat(colUnitCost, lineHeight, money(floatStringer(item.UnitCost)), "B", 0, "R", false, 0, "")
		line := ""
		if i < len(totals.Lines) {
			line = money(totals.Lines[i])
		}
		pdf.CellFormat(colTotal, lineHeight, line, "B", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	summary := []struct {
		label string
		value string
	}{
		{"Subtotal", money(totals.Subtotal)},
		{fmt.Sprintf("Tax (%s%%)", formatFloat(inv.TaxPercent)), money(totals.TaxAmount)},
		{"Shipping", money(totals.Shipping)},
		{"Discount", money(totals.Discount)},
	}
	labelX := margin + colName + colQuantity
	for _, row := range summary {
		pdf.SetX(labelX)
		pdf.CellFormat(colUnitCost, lineHeight, row.label, "", 0, "R", false, 0, "")
		pdf.CellFormat(colTotal, lineHeight, row.value, "", 1, "R", false, 0, "")
	}
	pdf.SetFont("Arial", "B", 11)
	pdf.SetX(labelX)
	pdf.CellFormat(colUnitCost, lineHeight, "Total", "T", 0, "R", false, 0, "")
	pdf.CellFormat(colTotal, lineHeight, money(totals.GrandTotal), "T", 1, "R", false, 0, "")
	pdf.Ln(8)

	for _, block := range []struct{ title, body string }{
		{"Notes", inv.Notes},
		{"Terms", inv.Terms},
	} {
		if block.body == "" {
			continue
		}
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(contentW, lineHeight, block.title, "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(contentW, 5, tr(block.body), "", "L", false)
		pdf.Ln(3)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write invoice pdf: %w", err)
	}
	return nil
}

type floatStringer float64

func (f floatStringer) String() string { return formatFloat(float64(f)) }

func formatFloat(f float64) string {
	return fmt.Sprintf("%g", f)
}

package billingv1

import "encoding/json"

// LineItem is one invoice line. ID orders the lines within an invoice.
type LineItem struct {
	ID       int     `json:"id,omitempty"`
	Name     string  `json:"name,omitempty"`
	Quantity float64 `json:"quantity"`
	UnitCost float64 `json:"unitCost"`
}

// ComputeTotalsRequest prices a list of lines. Tax is a percentage of the
// subtotal; shipping and discount are absolute amounts.
type ComputeTotalsRequest struct {
	Items            []LineItem `json:"items"`
	TaxPercent       float64    `json:"taxPercent"`
	ShippingAbsolute float64    `json:"shippingAbsolute"`
	DiscountAbsolute float64    `json:"discountAbsolute"`
}

type ComputeTotalsResponse struct {
	Totals
}

// Totals are the derived money values of an invoice.
type Totals struct {
	LineTotals []json.Number `json:"lineTotals,omitempty"`
	Subtotal   json.Number   `json:"subtotal"`
	TaxAmount  json.Number   `json:"taxAmount"`
	GrandTotal json.Number   `json:"grandTotal"`
}

// InvoiceInput carries the fields of a new invoice. Dates are ISO
// (2006-01-02), RFC 3339 or DD/MM/YY.
type InvoiceInput struct {
	Number           string     `json:"number" validate:"required"`
	Date             string     `json:"date" validate:"required"`
	DueDate          string     `json:"dueDate,omitempty"`
	PONumber         string     `json:"poNumber,omitempty"`
	BillTo           string     `json:"billTo" validate:"required"`
	Items            []LineItem `json:"items" validate:"min=1,dive"`
	Notes            string     `json:"notes,omitempty"`
	Terms            string     `json:"terms,omitempty"`
	TaxPercent       float64    `json:"taxPercent"`
	ShippingAbsolute float64    `json:"shippingAbsolute"`
	DiscountAbsolute float64    `json:"discountAbsolute"`
}

// Invoice is a stored invoice together with its totals.
type Invoice struct {
	ID               string     `json:"id"`
	Number           string     `json:"number"`
	Date             string     `json:"date"`
	DueDate          string     `json:"dueDate,omitempty"`
	PONumber         string     `json:"poNumber,omitempty"`
	BillTo           string     `json:"billTo"`
	Items            []LineItem `json:"items"`
	Notes            string     `json:"notes,omitempty"`
	Terms            string     `json:"terms,omitempty"`
	TaxPercent       float64    `json:"taxPercent"`
	ShippingAbsolute float64    `json:"shippingAbsolute"`
	DiscountAbsolute float64    `json:"discountAbsolute"`
	CreatedAt        int64      `json:"createdAt"`
	Totals           Totals     `json:"totals"`
}

type CreateInvoiceRequest struct {
	Invoice InvoiceInput `json:"invoice"`
}

type CreateInvoiceResponse struct {
	Invoice Invoice `json:"invoice"`
}

type GetInvoiceRequest struct {
	ID string `json:"id" validate:"required"`
}

type GetInvoiceResponse struct {
	Invoice Invoice `json:"invoice"`
}

type ListInvoicesRequest struct {
	Page
}

type ListInvoicesResponse struct {
	Invoices   []Invoice `json:"invoices"`
	DataLength int       `json:"dataLength"`
}

// UpdateInvoiceRequest edits a stored invoice. Header fields replace the
// stored ones. An item with an ID replaces the stored line with that ID or
// is added under it; an item without one is appended. RemoveItemIDs are
// dropped last. Stored lines not mentioned are kept.
type UpdateInvoiceRequest struct {
	ID            string       `json:"id" validate:"required"`
	Invoice       InvoiceInput `json:"invoice"`
	RemoveItemIDs []int        `json:"removeItemIds,omitempty"`
}

type UpdateInvoiceResponse struct {
	Invoice Invoice `json:"invoice"`
}

type DeleteInvoiceRequest struct {
	ID string `json:"id" validate:"required"`
}

type DeleteInvoiceResponse struct{}

type NextInvoiceNumberRequest struct{}

type NextInvoiceNumberResponse struct {
	Number string `json:"number"`
}

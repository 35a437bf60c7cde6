package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"connectrpc.com/connect"

	"github.com/elsafrica/billing/internal/calculator"
	"github.com/elsafrica/billing/internal/models"
	"github.com/elsafrica/billing/internal/render"
	"github.com/elsafrica/billing/internal/storage"
	billingv1 "github.com/elsafrica/billing/pkg/billingv1"
	"github.com/elsafrica/billing/pkg/billingv1/billingv1connect"
)

var _ billingv1connect.InvoiceServiceHandler = (*InvoiceService)(nil)

// FirstInvoiceNumber is issued when no invoice exists yet.
const FirstInvoiceNumber = "INV-0001"

// InvoiceService prices, stores and renders invoices.
type InvoiceService struct {
	store storage.InvoiceStore
	pdf   render.Options
}

func NewInvoiceService(store storage.InvoiceStore, pdf render.Options) *InvoiceService {
	return &InvoiceService{store: store, pdf: pdf}
}

// ComputeTotals prices a list of lines without storing anything.
func (s *InvoiceService) ComputeTotals(ctx context.Context, req *connect.Request[billingv1.ComputeTotalsRequest]) (*connect.Response[billingv1.ComputeTotalsResponse], error) {
	items := make([]calculator.LineItem, len(req.Msg.Items))
	for i, item := range req.Msg.Items {
		items[i] = calculator.LineItem{Name: item.Name, Quantity: item.Quantity, UnitCost: item.UnitCost}
	}

	totals, err := calculator.ComputeTotals(items, calculator.Charges{
		TaxPercent: req.Msg.TaxPercent,
		Shipping:   req.Msg.ShippingAbsolute,
		Discount:   req.Msg.DiscountAbsolute,
	})
	if err != nil {
		slog.Warn("ComputeTotals failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Debug("Computed totals", "items", len(items), "grand_total", totals.GrandTotal.String())
	return connect.NewResponse(&billingv1.ComputeTotalsResponse{Totals: totalsToWire(totals)}), nil
}

// buildInvoice turns the wire input into a model with items sorted by ID.
// Lines without an ID get the next free one.
func buildInvoice(in billingv1.InvoiceInput) (*models.Invoice, error) {
	inv := &models.Invoice{}
	if err := applyHeader(in, inv); err != nil {
		return nil, err
	}
	if err := mergeItems(in.Items, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// applyHeader copies everything but the items onto inv. Dates keep the
// calendar day they were written with.
func applyHeader(in billingv1.InvoiceInput, inv *models.Invoice) error {
	date, err := calculator.ParseDate(in.Date)
	if err != nil {
		return err
	}
	if date == nil {
		return connect.NewError(connect.CodeInvalidArgument, errors.New("date is required"))
	}
	dueDate, err := calculator.ParseDate(in.DueDate)
	if err != nil {
		return err
	}
	if dueDate != nil {
		d := models.CalendarDay(*dueDate)
		dueDate = &d
	}

	inv.Number = in.Number
	inv.Date = models.CalendarDay(*date)
	inv.DueDate = dueDate
	inv.PONumber = in.PONumber
	inv.BillTo = in.BillTo
	inv.Notes = in.Notes
	inv.Terms = in.Terms
	inv.TaxPercent = in.TaxPercent
	inv.Shipping = in.ShippingAbsolute
	inv.Discount = in.DiscountAbsolute
	return nil
}

// mergeItems upserts numbered lines into inv, then appends the unnumbered
// ones. An ID may appear once per call.
func mergeItems(items []billingv1.LineItem, inv *models.Invoice) error {
	seen := make(map[int]bool, len(items))
	var unnumbered []billingv1.LineItem
	for _, item := range items {
		if item.ID == 0 {
			unnumbered = append(unnumbered, item)
			continue
		}
		if item.ID < 0 || seen[item.ID] {
			return connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("invalid or duplicate item id %d", item.ID))
		}
		seen[item.ID] = true
		inv.UpsertItem(models.LineItem{ID: item.ID, Name: item.Name, Quantity: item.Quantity, UnitCost: item.UnitCost})
	}
	for _, item := range unnumbered {
		inv.AddItem(item.Name, item.Quantity, item.UnitCost)
	}
	return nil
}

// CreateInvoice validates, prices and stores an invoice.
func (s *InvoiceService) CreateInvoice(ctx context.Context, req *connect.Request[billingv1.CreateInvoiceRequest]) (*connect.Response[billingv1.CreateInvoiceResponse], error) {
	if err := validateRequest(&req.Msg.Invoice); err != nil {
		return nil, err
	}

	inv, err := buildInvoice(req.Msg.Invoice)
	if err != nil {
		return nil, toConnectError(err)
	}
	totals, err := invoiceTotals(inv)
	if err != nil {
		return nil, toConnectError(err)
	}

	if err := s.store.CreateInvoice(ctx, inv); err != nil {
		slog.Warn("CreateInvoice failed", "number", inv.Number, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Invoice created",
		"invoice_id", inv.ID,
		"number", inv.Number,
		"items", len(inv.Items),
		"grand_total", totals.GrandTotal.String(),
	)
	return connect.NewResponse(&billingv1.CreateInvoiceResponse{Invoice: invoiceToWire(inv, totals)}), nil
}

func (s *InvoiceService) GetInvoice(ctx context.Context, req *connect.Request[billingv1.GetInvoiceRequest]) (*connect.Response[billingv1.GetInvoiceResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	inv, err := s.store.GetInvoice(ctx, req.Msg.ID)
	if err != nil {
		return nil, toConnectError(err)
	}
	totals, err := invoiceTotals(inv)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&billingv1.GetInvoiceResponse{Invoice: invoiceToWire(inv, totals)}), nil
}

// ListInvoices returns invoices, newest first, with recomputed totals.
// Only the requested page is priced.
func (s *InvoiceService) ListInvoices(ctx context.Context, req *connect.Request[billingv1.ListInvoicesRequest]) (*connect.Response[billingv1.ListInvoicesResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	invoices, err := s.store.ListInvoices(ctx)
	if err != nil {
		slog.Error("ListInvoices failed", "error", err)
		return nil, toConnectError(err)
	}

	page := paginate(invoices, req.Msg.Page)
	out := make([]billingv1.Invoice, 0, len(page))
	for _, inv := range page {
		totals, err := invoiceTotals(inv)
		if err != nil {
			return nil, toConnectError(fmt.Errorf("invoice %s: %w", inv.Number, err))
		}
		out = append(out, invoiceToWire(inv, totals))
	}

	return connect.NewResponse(&billingv1.ListInvoicesResponse{Invoices: out, DataLength: len(invoices)}), nil
}

// UpdateInvoice edits a stored invoice in place. The header is replaced,
// the request's items are merged into the stored ones and RemoveItemIDs are
// dropped. The result must keep at least one line.
func (s *InvoiceService) UpdateInvoice(ctx context.Context, req *connect.Request[billingv1.UpdateInvoiceRequest]) (*connect.Response[billingv1.UpdateInvoiceResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	inv, err := s.store.GetInvoice(ctx, req.Msg.ID)
	if err != nil {
		return nil, toConnectError(err)
	}
	if err := applyHeader(req.Msg.Invoice, inv); err != nil {
		return nil, toConnectError(err)
	}
	if err := mergeItems(req.Msg.Invoice.Items, inv); err != nil {
		return nil, toConnectError(err)
	}
	for _, id := range req.Msg.RemoveItemIDs {
		if !inv.RemoveItem(id) {
			return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("invoice has no item %d", id))
		}
	}
	if len(inv.Items) == 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("an invoice needs at least one item"))
	}

	totals, err := invoiceTotals(inv)
	if err != nil {
		return nil, toConnectError(err)
	}
	if err := s.store.UpdateInvoice(ctx, inv); err != nil {
		slog.Warn("UpdateInvoice failed", "invoice_id", inv.ID, "number", inv.Number, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Invoice updated",
		"invoice_id", inv.ID,
		"number", inv.Number,
		"items", len(inv.Items),
		"grand_total", totals.GrandTotal.String(),
	)
	return connect.NewResponse(&billingv1.UpdateInvoiceResponse{Invoice: invoiceToWire(inv, totals)}), nil
}

func (s *InvoiceService) DeleteInvoice(ctx context.Context, req *connect.Request[billingv1.DeleteInvoiceRequest]) (*connect.Response[billingv1.DeleteInvoiceResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	if err := s.store.DeleteInvoice(ctx, req.Msg.ID); err != nil {
		slog.Warn("DeleteInvoice failed", "invoice_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Invoice deleted", "invoice_id", req.Msg.ID)
	return connect.NewResponse(&billingv1.DeleteInvoiceResponse{}), nil
}

// NextInvoiceNumber suggests the number for a new invoice.
func (s *InvoiceService) NextInvoiceNumber(ctx context.Context, req *connect.Request[billingv1.NextInvoiceNumberRequest]) (*connect.Response[billingv1.NextInvoiceNumberResponse], error) {
	latest, err := s.store.LatestInvoiceNumber(ctx)
	if err != nil {
		slog.Error("NextInvoiceNumber failed", "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&billingv1.NextInvoiceNumberResponse{Number: NextNumber(latest)}), nil
}

// NextNumber increments the trailing digits of latest, keeping their width:
// INV-0007 becomes INV-0008 and INV-9999 becomes INV-10000. An empty latest
// yields FirstInvoiceNumber; one without trailing digits gets "-0001"
// appended.
func NextNumber(latest string) string {
	if latest == "" {
		return FirstInvoiceNumber
	}

	i := len(latest)
	for i > 0 && latest[i-1] >= '0' && latest[i-1] <= '9' {
		i--
	}
	prefix, digits := latest[:i], latest[i:]
	if digits == "" {
		return latest + "-0001"
	}

	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return latest + "-0001"
	}
	return fmt.Sprintf("%s%0*d", prefix, len(digits), n+1)
}

// PDFHandler serves GET /invoices/{id}/pdf.
func (s *InvoiceService) PDFHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		inv, err := s.store.GetInvoice(r.Context(), id)
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "invoice not found", http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("Invoice PDF failed", "invoice_id", id, "error", err)
			http.Error(w, "failed to load invoice", http.StatusInternalServerError)
			return
		}

		totals, err := invoiceTotals(inv)
		if err != nil {
			slog.Error("Invoice PDF failed", "invoice_id", id, "error", err)
			http.Error(w, "invoice has invalid amounts", http.StatusUnprocessableEntity)
			return
		}

		var buf bytes.Buffer
		if err := render.InvoicePDF(&buf, inv, totals, s.pdf); err != nil {
			slog.Error("Invoice PDF failed", "invoice_id", id, "error", err)
			http.Error(w, "failed to render invoice", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", inv.Number+".pdf"))
		size := buf.Len()
		w.Header().Set("Content-Length", strconv.Itoa(size))
		if _, err := buf.WriteTo(w); err != nil {
			slog.Warn("Invoice PDF write failed", "invoice_id", id, "error", err)
			return
		}
		slog.Info("Invoice PDF served", "invoice_id", id, "number", inv.Number, "bytes", size)
	})
}

package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/elsafrica/billing/internal/models"
	"github.com/elsafrica/billing/internal/storage"
)

// CreateInvoice persists an invoice and its items in one transaction.
func (s *SQLiteStore) CreateInvoice(ctx context.Context, invoice *models.Invoice) error {
	if invoice.ID == "" {
		invoice.ID = uuid.New().String()
	}
	if invoice.CreatedAt == 0 {
		invoice.CreatedAt = time.Now().Unix()
	}
	invoice.SortItems()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, "SELECT 1 FROM invoices WHERE number = ?", invoice.Number).Scan(&exists)
	if err == nil {
		return fmt.Errorf("invoice number %q: %w", invoice.Number, storage.ErrAlreadyExists)
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("failed to check invoice number: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO invoices (id, number, date, due_date, po_number, bill_to, notes, terms,
		     tax_percent, discount, shipping, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		invoice.ID, invoice.Number, invoice.Date.Unix(), toNullUnix(invoice.DueDate),
		invoice.PONumber, invoice.BillTo, invoice.Notes, invoice.Terms,
		invoice.TaxPercent, invoice.Discount, invoice.Shipping, invoice.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert invoice: %w", err)
	}

	if err := insertItems(ctx, tx, invoice); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func insertItems(ctx context.Context, tx *sql.Tx, invoice *models.Invoice) error {
	for _, item := range invoice.Items {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO invoice_items (invoice_id, item_id, name, quantity, unit_cost) VALUES (?, ?, ?, ?, ?)",
			invoice.ID, item.ID, item.Name, item.Quantity, item.UnitCost,
		)
		if err != nil {
			return fmt.Errorf("failed to insert invoice item %d: %w", item.ID, err)
		}
	}
	return nil
}

// UpdateInvoice overwrites the header fields and replaces the items in one
// transaction. The number must stay unique; CreatedAt is kept.
func (s *SQLiteStore) UpdateInvoice(ctx context.Context, invoice *models.Invoice) error {
	invoice.SortItems()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx,
		"SELECT 1 FROM invoices WHERE number = ? AND id <> ?", invoice.Number, invoice.ID,
	).Scan(&exists)
	if err == nil {
		return fmt.Errorf("invoice number %q: %w", invoice.Number, storage.ErrAlreadyExists)
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("failed to check invoice number: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE invoices SET number = ?, date = ?, due_date = ?, po_number = ?, bill_to = ?,
		     notes = ?, terms = ?, tax_percent = ?, discount = ?, shipping = ?
		 WHERE id = ?`,
		invoice.Number, invoice.Date.Unix(), toNullUnix(invoice.DueDate), invoice.PONumber,
		invoice.BillTo, invoice.Notes, invoice.Terms, invoice.TaxPercent, invoice.Discount,
		invoice.Shipping, invoice.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update invoice: %w", err)
	}
	if err := expectOneRow(result, "invoice", invoice.ID); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM invoice_items WHERE invoice_id = ?", invoice.ID); err != nil {
		return fmt.Errorf("failed to clear invoice items: %w", err)
	}
	if err := insertItems(ctx, tx, invoice); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

const invoiceColumns = `id, number, date, due_date, po_number, bill_to, notes, terms,
	tax_percent, discount, shipping, created_at`

func scanInvoice(row rowScanner) (*models.Invoice, error) {
	inv := &models.Invoice{}
	var date int64
	var dueDate sql.NullInt64
	err := row.Scan(&inv.ID, &inv.Number, &date, &dueDate, &inv.PONumber, &inv.BillTo,
		&inv.Notes, &inv.Terms, &inv.TaxPercent, &inv.Discount, &inv.Shipping, &inv.CreatedAt)
	if err != nil {
		return nil, err
	}
	inv.Date = time.Unix(date, 0).UTC()
	inv.DueDate = fromNullUnix(dueDate)
	return inv, nil
}

// GetInvoice retrieves an invoice by ID, including its items in ID order.
func (s *SQLiteStore) GetInvoice(ctx context.Context, id string) (*models.Invoice, error) {
	inv, err := scanInvoice(s.db.QueryRowContext(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("invoice %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}

	if err := s.loadItems(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// ListInvoices retrieves all invoices with items, newest first.
func (s *SQLiteStore) ListInvoices(ctx context.Context) ([]*models.Invoice, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+invoiceColumns+` FROM invoices ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	var invoices []*models.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		invoices = append(invoices, inv)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate invoices: %w", err)
	}

	for _, inv := range invoices {
		if err := s.loadItems(ctx, inv); err != nil {
			return nil, err
		}
	}
	return invoices, nil
}

func (s *SQLiteStore) loadItems(ctx context.Context, inv *models.Invoice) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT item_id, name, quantity, unit_cost FROM invoice_items WHERE invoice_id = ? ORDER BY item_id",
		inv.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get invoice items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.LineItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Quantity, &item.UnitCost); err != nil {
			return fmt.Errorf("failed to scan invoice item: %w", err)
		}
		inv.Items = append(inv.Items, item)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate invoice items: %w", err)
	}
	return nil
}

// DeleteInvoice removes an invoice; its items cascade.
func (s *SQLiteStore) DeleteInvoice(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM invoices WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}

	return expectOneRow(result, "invoice", id)
}

// LatestInvoiceNumber returns the number of the newest invoice, or "".
// Insertion order breaks ties within the same second.
func (s *SQLiteStore) LatestInvoiceNumber(ctx context.Context) (string, error) {
	var number string
	err := s.db.QueryRowContext(ctx,
		"SELECT number FROM invoices ORDER BY created_at DESC, rowid DESC LIMIT 1",
	).Scan(&number)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get latest invoice number: %w", err)
	}

	return number, nil
}

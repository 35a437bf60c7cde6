// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/elsafrica/billing/internal/models"
	"github.com/elsafrica/billing/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Pragmas go in the DSN so every pooled connection gets them.
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

const customerColumns = `
	c.id, c.name, c.phone1, c.phone2, c.email, c.location, c.ip, c.mac_address,
	COALESCE(c.package_id, ''), COALESCE(p.name, ''), COALESCE(p.amount, 0),
	c.total_earnings, c.accrued_amount, c.last_payment, c.is_disconnected, c.created_at`

const customerFrom = `FROM customers c LEFT JOIN packages p ON p.id = c.package_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCustomer(row rowScanner) (*models.Customer, error) {
	c := &models.Customer{}
	var lastPayment sql.NullInt64
	err := row.Scan(
		&c.ID, &c.Name, &c.Phone1, &c.Phone2, &c.Email, &c.Location, &c.IP, &c.MACAddress,
		&c.PackageID, &c.PackageName, &c.BillAmount,
		&c.TotalEarnings, &c.AccruedAmount, &lastPayment, &c.IsDisconnected, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.LastPayment = fromNullUnix(lastPayment)
	return c, nil
}

// CreateCustomer persists a new customer to the database.
func (s *SQLiteStore) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	if customer.ID == "" {
		customer.ID = uuid.New().String()
	}
	if customer.CreatedAt == 0 {
		customer.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO customers (id, name, phone1, phone2, email, location, ip, mac_address,
		     package_id, total_earnings, accrued_amount, last_payment, is_disconnected, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		customer.ID, customer.Name, customer.Phone1, customer.Phone2, customer.Email,
		customer.Location, customer.IP, customer.MACAddress, nullString(customer.PackageID),
		customer.TotalEarnings, customer.AccruedAmount, toNullUnix(customer.LastPayment),
		customer.IsDisconnected, customer.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert customer: %w", err)
	}

	return nil
}

// GetCustomer retrieves a customer by ID.
func (s *SQLiteStore) GetCustomer(ctx context.Context, id string) (*models.Customer, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+customerColumns+` `+customerFrom+` WHERE c.id = ?`, id)

	c, err := scanCustomer(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("customer %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return c, nil
}

// UpdateCustomer overwrites all mutable customer fields.
func (s *SQLiteStore) UpdateCustomer(ctx context.Context, customer *models.Customer) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE customers SET name = ?, phone1 = ?, phone2 = ?, email = ?, location = ?, ip = ?,
		     mac_address = ?, package_id = ?, total_earnings = ?, accrued_amount = ?,
		     last_payment = ?, is_disconnected = ?
		 WHERE id = ?`,
		customer.Name, customer.Phone1, customer.Phone2, customer.Email, customer.Location,
		customer.IP, customer.MACAddress, nullString(customer.PackageID), customer.TotalEarnings,
		customer.AccruedAmount, toNullUnix(customer.LastPayment), customer.IsDisconnected,
		customer.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}

	return expectOneRow(result, "customer", customer.ID)
}

// DeleteCustomer removes a customer by ID.
func (s *SQLiteStore) DeleteCustomer(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM customers WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	return expectOneRow(result, "customer", id)
}

// ListCustomers retrieves all customers, newest first.
func (s *SQLiteStore) ListCustomers(ctx context.Context) ([]*models.Customer, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+customerColumns+` `+customerFrom+` ORDER BY c.created_at DESC, c.rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	var customers []*models.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate customers: %w", err)
	}

	return customers, nil
}

func expectOneRow(result sql.Result, kind, id string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, storage.ErrNotFound)
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func toNullUnix(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.Unix(), Valid: true}
}

func fromNullUnix(v sql.NullInt64) *time.Time {
	if !v.Valid {
		return nil
	}
	t := time.Unix(v.Int64, 0).UTC()
	return &t
}

// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/elsafrica/billing/internal/models"
)

var (
	// ErrNotFound is returned (wrapped) when a record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when a unique key (package name, invoice
	// number) is already taken.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInUse is returned when deleting a record that others still reference.
	ErrInUse = errors.New("still in use")
)

// Store defines the persistence operations used by the services.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	CustomerStore
	PackageStore
	InvoiceStore
	AssetStore
	UserStore
	PasswordResetStore

	// Close releases any resources held by the store.
	Close() error
}

// CustomerStore persists subscriber accounts.
type CustomerStore interface {
	// CreateCustomer persists a new customer. ID and CreatedAt are filled in
	// when empty.
	CreateCustomer(ctx context.Context, customer *models.Customer) error

	// GetCustomer returns the customer with its package name and bill amount
	// resolved.
	GetCustomer(ctx context.Context, id string) (*models.Customer, error)

	// UpdateCustomer overwrites every mutable field.
	UpdateCustomer(ctx context.Context, customer *models.Customer) error

	DeleteCustomer(ctx context.Context, id string) error

	// ListCustomers returns all customers, newest first.
	ListCustomers(ctx context.Context) ([]*models.Customer, error)
}

// PackageStore persists subscription plans.
type PackageStore interface {
	CreatePackage(ctx context.Context, pkg *models.Package) error
	GetPackage(ctx context.Context, id string) (*models.Package, error)
	ListPackages(ctx context.Context) ([]*models.Package, error)

	// UpdatePackage renames or re-prices a package. Names stay unique.
	UpdatePackage(ctx context.Context, pkg *models.Package) error

	// DeletePackage fails while customers still reference the package.
	DeletePackage(ctx context.Context, id string) error
}

// InvoiceStore persists invoices with their line items.
type InvoiceStore interface {
	CreateInvoice(ctx context.Context, invoice *models.Invoice) error
	GetInvoice(ctx context.Context, id string) (*models.Invoice, error)

	// UpdateInvoice overwrites the header fields and replaces all items.
	UpdateInvoice(ctx context.Context, invoice *models.Invoice) error

	// ListInvoices returns all invoices, newest first.
	ListInvoices(ctx context.Context) ([]*models.Invoice, error)
	DeleteInvoice(ctx context.Context, id string) error

	// LatestInvoiceNumber returns the number of the most recently created
	// invoice, or "" when there are none.
	LatestInvoiceNumber(ctx context.Context) (string, error)
}

// AssetStore persists equipment deployed at customer sites.
type AssetStore interface {
	CreateAsset(ctx context.Context, asset *models.Asset) error

	// ListAssets returns all assets, newest first, with CustomerName resolved.
	ListAssets(ctx context.Context) ([]*models.Asset, error)
	DeleteAsset(ctx context.Context, id string) error
}

// UserStore persists dashboard operators.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail and GetUserByID return (nil, nil) when no user matches.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// ListUsers returns all operators, oldest first.
	ListUsers(ctx context.Context) ([]*models.User, error)

	// UpdateUser overwrites display name, password hash, active and admin
	// flags.
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, id string) error
	CountUsers(ctx context.Context) (int, error)
}

// PasswordResetStore persists pending password resets.
type PasswordResetStore interface {
	CreatePasswordReset(ctx context.Context, reset *models.PasswordReset) error

	// GetPasswordReset looks a reset up by token hash.
	GetPasswordReset(ctx context.Context, tokenHash string) (*models.PasswordReset, error)

	// DeletePasswordResets drops every pending reset of a user.
	DeletePasswordResets(ctx context.Context, userID string) error
}

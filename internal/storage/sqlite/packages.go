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

// CreatePackage persists a new package. Names are unique.
func (s *SQLiteStore) CreatePackage(ctx context.Context, pkg *models.Package) error {
	if pkg.ID == "" {
		pkg.ID = uuid.New().String()
	}
	if pkg.CreatedAt == 0 {
		pkg.CreatedAt = time.Now().Unix()
	}

	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM packages WHERE name = ?", pkg.Name).Scan(&exists)
	if err == nil {
		return fmt.Errorf("package %q: %w", pkg.Name, storage.ErrAlreadyExists)
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("failed to check package name: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO packages (id, name, amount, created_at) VALUES (?, ?, ?, ?)",
		pkg.ID, pkg.Name, pkg.Amount, pkg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert package: %w", err)
	}

	return nil
}

// GetPackage retrieves a package by ID.
func (s *SQLiteStore) GetPackage(ctx context.Context, id string) (*models.Package, error) {
	pkg := &models.Package{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, amount, created_at FROM packages WHERE id = ?", id,
	).Scan(&pkg.ID, &pkg.Name, &pkg.Amount, &pkg.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("package %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get package: %w", err)
	}

	return pkg, nil
}

// ListPackages retrieves all packages ordered by name.
func (s *SQLiteStore) ListPackages(ctx context.Context) ([]*models.Package, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, amount, created_at FROM packages ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}
	defer rows.Close()

	var packages []*models.Package
	for rows.Next() {
		pkg := &models.Package{}
		if err := rows.Scan(&pkg.ID, &pkg.Name, &pkg.Amount, &pkg.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan package: %w", err)
		}
		packages = append(packages, pkg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate packages: %w", err)
	}

	return packages, nil
}

// UpdatePackage overwrites a package's name and amount.
func (s *SQLiteStore) UpdatePackage(ctx context.Context, pkg *models.Package) error {
	var exists int
	err := s.db.QueryRowContext(ctx,
		"SELECT 1 FROM packages WHERE name = ? AND id <> ?", pkg.Name, pkg.ID,
	).Scan(&exists)
	if err == nil {
		return fmt.Errorf("package %q: %w", pkg.Name, storage.ErrAlreadyExists)
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("failed to check package name: %w", err)
	}

	result, err := s.db.ExecContext(ctx,
		"UPDATE packages SET name = ?, amount = ? WHERE id = ?", pkg.Name, pkg.Amount, pkg.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update package: %w", err)
	}

	return expectOneRow(result, "package", pkg.ID)
}

// DeletePackage removes a package that no customer is subscribed to.
func (s *SQLiteStore) DeletePackage(ctx context.Context, id string) error {
	var subscribers int
	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM customers WHERE package_id = ?", id,
	).Scan(&subscribers); err != nil {
		return fmt.Errorf("failed to count subscribers: %w", err)
	}
	if subscribers > 0 {
		return fmt.Errorf("package %s has %d customers: %w", id, subscribers, storage.ErrInUse)
	}

	result, err := s.db.ExecContext(ctx, "DELETE FROM packages WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete package: %w", err)
	}

	return expectOneRow(result, "package", id)
}

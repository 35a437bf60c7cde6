package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/elsafrica/billing/internal/models"
)

// CreateAsset persists a new asset.
func (s *SQLiteStore) CreateAsset(ctx context.Context, asset *models.Asset) error {
	if asset.ID == "" {
		asset.ID = uuid.New().String()
	}
	if asset.CreatedAt == 0 {
		asset.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO assets (id, name, belongs_to, type, mac_address, location, purpose,
		     price, is_for_company, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		asset.ID, asset.Name, asset.BelongsTo, asset.Type, asset.MACAddress, asset.Location,
		asset.Purpose, asset.Price, asset.IsForCompany, asset.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert asset: %w", err)
	}

	return nil
}

// ListAssets retrieves all assets, newest first. The customer name comes from
// the customer whose IP equals BelongsTo or, for a ".72" style suffix, ends
// with it.
func (s *SQLiteStore) ListAssets(ctx context.Context) ([]*models.Asset, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT a.id, a.name, a.belongs_to, a.type, a.mac_address, a.location, a.purpose,
		     a.price, a.is_for_company, a.created_at,
		     COALESCE((SELECT c.name FROM customers c
		               WHERE c.ip = a.belongs_to
		                  OR (substr(a.belongs_to, 1, 1) = '.' AND c.ip LIKE '%' || a.belongs_to)
		               ORDER BY c.created_at LIMIT 1), '')
		 FROM assets a
		 ORDER BY a.created_at DESC, a.rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	defer rows.Close()

	var assets []*models.Asset
	for rows.Next() {
		a := &models.Asset{}
		if err := rows.Scan(&a.ID, &a.Name, &a.BelongsTo, &a.Type, &a.MACAddress, &a.Location,
			&a.Purpose, &a.Price, &a.IsForCompany, &a.CreatedAt, &a.CustomerName); err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		assets = append(assets, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate assets: %w", err)
	}

	return assets, nil
}

// DeleteAsset removes an asset by ID.
func (s *SQLiteStore) DeleteAsset(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM assets WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}

	return expectOneRow(result, "asset", id)
}

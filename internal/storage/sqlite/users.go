package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/elsafrica/billing/internal/models"
	"github.com/elsafrica/billing/internal/storage"
)

const userColumns = `id, email, display_name, password_hash, active, is_admin, created_at, updated_at`

func scanUser(row rowScanner) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.DisplayName,
		&user.PasswordHash,
		&user.Active,
		&user.IsAdmin,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUser inserts a new user into the database.
func (s *SQLiteStore) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		user.ID,
		user.Email,
		user.DisplayName,
		user.PasswordHash,
		user.Active,
		user.IsAdmin,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("user %s: %w", user.Email, storage.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetUserByEmail retrieves a user by their email address.
func (s *SQLiteStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := scanUser(s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email))
	if err == sql.ErrNoRows {
		return nil, nil // User not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

// GetUserByID retrieves a user by their ID.
func (s *SQLiteStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	user, err := scanUser(s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, nil // User not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return user, nil
}

// ListUsers retrieves all users in registration order.
func (s *SQLiteStore) ListUsers(ctx context.Context) ([]*models.User, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

// UpdateUser overwrites the mutable user fields and bumps UpdatedAt.
func (s *SQLiteStore) UpdateUser(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now().Unix()

	result, err := s.db.ExecContext(ctx,
		`UPDATE users SET display_name = ?, password_hash = ?, active = ?, is_admin = ?, updated_at = ?
		 WHERE id = ?`,
		user.DisplayName, user.PasswordHash, user.Active, user.IsAdmin, user.UpdatedAt, user.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return expectOneRow(result, "user", user.ID)
}

// DeleteUser removes a user; pending password resets cascade.
func (s *SQLiteStore) DeleteUser(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return expectOneRow(result, "user", id)
}

// CountUsers returns the number of registered users.
func (s *SQLiteStore) CountUsers(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}

// CreatePasswordReset stores a pending reset.
func (s *SQLiteStore) CreatePasswordReset(ctx context.Context, reset *models.PasswordReset) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO password_resets (token_hash, user_id, expires_at) VALUES (?, ?, ?)",
		reset.TokenHash, reset.UserID, reset.ExpiresAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to create password reset: %w", err)
	}
	return nil
}

// GetPasswordReset retrieves a pending reset by token hash.
func (s *SQLiteStore) GetPasswordReset(ctx context.Context, tokenHash string) (*models.PasswordReset, error) {
	reset := &models.PasswordReset{}
	var expiresAt int64
	err := s.db.QueryRowContext(ctx,
		"SELECT token_hash, user_id, expires_at FROM password_resets WHERE token_hash = ?", tokenHash,
	).Scan(&reset.TokenHash, &reset.UserID, &expiresAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("password reset: %w", storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get password reset: %w", err)
	}

	reset.ExpiresAt = time.Unix(expiresAt, 0).UTC()
	return reset, nil
}

// DeletePasswordResets drops every pending reset of a user.
func (s *SQLiteStore) DeletePasswordResets(ctx context.Context, userID string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM password_resets WHERE user_id = ?", userID); err != nil {
		return fmt.Errorf("failed to delete password resets: %w", err)
	}
	return nil
}

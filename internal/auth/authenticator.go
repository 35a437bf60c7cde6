// Package auth authenticates dashboard operators and issues session tokens.
package auth

import (
	"context"

	"github.com/elsafrica/billing/internal/models"
)

// Authenticator verifies operator credentials.
type Authenticator interface {
	// Register creates an operator account. The credential format depends on
	// the implementation.
	Register(ctx context.Context, email, displayName, credential string) (*models.User, error)

	// Authenticate returns the operator if the credential matches.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ValidateCredential checks the credential before it is stored.
	ValidateCredential(credential string) error

	// HashCredential validates and hashes a credential for storage, as used
	// when an operator resets a forgotten password.
	HashCredential(credential string) (string, error)
}

package token

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/mxpp71-coder/cahier-seances-judo/internal/repositories/token Repository

import (
	"context"
)

// Repository defines the interface for access-token persistence. Tokens are
// issued after the shared-password check; there is no per-user identity.
type Repository interface {
	// CreateToken issues a new token valid for the given TTL
	CreateToken(ctx context.Context, input *CreateTokenInput) (*CreateTokenOutput, error)

	// ValidateToken checks that a token exists and has not expired
	ValidateToken(ctx context.Context, input *ValidateTokenInput) error

	// DeleteToken revokes a token
	DeleteToken(ctx context.Context, input *DeleteTokenInput) error
}

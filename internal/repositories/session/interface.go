package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/mxpp71-coder/cahier-seances-judo/internal/repositories/session Repository

import (
	"context"
)

// Repository defines the interface for session persistence. The sheet is the
// authoritative copy; implementations are the only code allowed to translate
// between records and raw rows, and the only code allowed to assign ids.
type Repository interface {
	// LoadSessions returns every session in sheet order
	LoadSessions(ctx context.Context, input *LoadSessionsInput) (*LoadSessionsOutput, error)

	// AppendSession assigns an id, derives the season and persists the new
	// record by rewriting the whole sheet
	AppendSession(ctx context.Context, input *AppendSessionInput) (*AppendSessionOutput, error)

	// UpdateSession rewrites a single existing row in place, leaving every
	// other row untouched
	UpdateSession(ctx context.Context, input *UpdateSessionInput) (*UpdateSessionOutput, error)

	// ReplaceSessions overwrites the whole sheet with the given records, in
	// the given order
	ReplaceSessions(ctx context.Context, input *ReplaceSessionsInput) error
}

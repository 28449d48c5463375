package journal

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/mxpp71-coder/cahier-seances-judo/internal/services/journal Service

import (
	"context"
)

// Service defines the interface for working with the session logbook
type Service interface {
	// ListSessions returns sessions matching the filters, newest first
	ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error)

	// GetFilterOptions returns the distinct seasons and publics present in
	// the logbook, for filter dropdowns
	GetFilterOptions(ctx context.Context, input *GetFilterOptionsInput) (*GetFilterOptionsOutput, error)

	// CreateSession validates the form input and persists a new session
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// UpdateSession validates the form input and rewrites one session in
	// place
	UpdateSession(ctx context.Context, input *UpdateSessionInput) (*UpdateSessionOutput, error)

	// DuplicateSession copies an existing session to today's date under a
	// fresh id
	DuplicateSession(ctx context.Context, input *DuplicateSessionInput) (*DuplicateSessionOutput, error)

	// ExportCSV renders the filtered sessions as a CSV file
	ExportCSV(ctx context.Context, input *ExportCSVInput) (*ExportCSVOutput, error)

	// ExportXLSX renders the filtered sessions as an Excel workbook
	ExportXLSX(ctx context.Context, input *ExportXLSXInput) (*ExportXLSXOutput, error)
}

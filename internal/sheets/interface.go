package sheets

//go:generate mockgen -package=mocks -destination=mocks/mock_gateway.go github.com/mxpp71-coder/cahier-seances-judo/internal/sheets Gateway

import (
	"context"
)

// Gateway defines the interface to a remote spreadsheet holding one table per
// worksheet: a header row followed by data rows of string cells.
type Gateway interface {
	// EnsureSheet looks up the worksheet by title and creates it with the
	// given header row when absent. Idempotent: the header is never written
	// twice.
	EnsureSheet(ctx context.Context, input *EnsureSheetInput) error

	// ReadRows returns the header row and every data row in sheet order
	ReadRows(ctx context.Context, input *ReadRowsInput) (*ReadRowsOutput, error)

	// ReplaceAll clears the worksheet and writes the header followed by the
	// given rows, in order
	ReplaceAll(ctx context.Context, input *ReplaceAllInput) error

	// UpdateRow overwrites a single row's cell range. Row is 1-based and
	// counts the header: header = 1, first data row = 2.
	UpdateRow(ctx context.Context, input *UpdateRowInput) error

	// FindRowByID scans the first column below the header for an exact match
	// and returns the 1-based row index, or ErrRowNotFound
	FindRowByID(ctx context.Context, input *FindRowByIDInput) (*FindRowByIDOutput, error)
}

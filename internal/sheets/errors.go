package sheets

import "errors"

var (
	// ErrSpreadsheetNotFound is returned when the named spreadsheet or
	// worksheet cannot be reached with the configured credentials
	ErrSpreadsheetNotFound = errors.New("spreadsheet not found")

	// ErrRowNotFound is returned when no row carries the requested id
	ErrRowNotFound = errors.New("row not found")

	// ErrUnavailable is returned when the remote service cannot be reached
	ErrUnavailable = errors.New("spreadsheet service unavailable")
)

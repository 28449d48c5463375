package session

import "errors"

var (
	// ErrSessionNotFound is returned when an update targets an id that no
	// longer exists in the sheet, e.g. removed by another client
	ErrSessionNotFound = errors.New("session not found")

	// ErrSchemaMismatch is returned when a non-empty worksheet carries a
	// header row different from the fixed schema
	ErrSchemaMismatch = errors.New("worksheet header does not match the session schema")
)

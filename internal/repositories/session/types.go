package session

import "github.com/mxpp71-coder/cahier-seances-judo/internal/models"

type LoadSessionsInput struct {
}

type LoadSessionsOutput struct {
	Sessions []*models.Session
}

type AppendSessionInput struct {
	// Fields is the caller-supplied record content; id and season are
	// assigned by the store
	Fields *models.SessionFields
}

type AppendSessionOutput struct {
	Session *models.Session
}

type UpdateSessionInput struct {
	ID int

	// Fields fully replaces the record content; the season is recomputed
	// from Fields.Date even when the caller holds a stale label
	Fields *models.SessionFields
}

type UpdateSessionOutput struct {
	Session *models.Session
}

type ReplaceSessionsInput struct {
	Sessions []*models.Session
}

package journal

import "github.com/mxpp71-coder/cahier-seances-judo/internal/models"

type ListSessionsInput struct {
	// Season filters on the exact season label; empty matches all
	Season string

	// Public filters on the exact audience group; empty matches all
	Public string

	// Keyword is matched case-insensitively against every field
	Keyword string
}

type ListSessionsOutput struct {
	Sessions []*models.Session
}

type GetFilterOptionsInput struct {
}

type GetFilterOptionsOutput struct {
	Seasons []string
	Publics []string
}

type CreateSessionInput struct {
	Fields *models.SessionFields

	// ObjectiveLabels, when non-empty, overrides Fields.Objectives with the
	// "; "-joined list (multi-select form input)
	ObjectiveLabels []string
}

type CreateSessionOutput struct {
	Session *models.Session
}

type UpdateSessionInput struct {
	ID     int
	Fields *models.SessionFields
}

type UpdateSessionOutput struct {
	Session *models.Session
}

type DuplicateSessionInput struct {
	ID int
}

type DuplicateSessionOutput struct {
	Session *models.Session
}

type ExportCSVInput struct {
	Season  string
	Public  string
	Keyword string
}

type ExportCSVOutput struct {
	Filename string
	Data     []byte
}

type ExportXLSXInput struct {
	Season  string
	Public  string
	Keyword string
}

type ExportXLSXOutput struct {
	Filename string
	Data     []byte
}

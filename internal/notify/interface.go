package notify

import (
	"context"

	"github.com/mxpp71-coder/cahier-seances-judo/internal/models"
)

// Notifier announces logbook events to an external channel. Implementations
// are best-effort: callers log failures and move on, the write path never
// depends on them.
type Notifier interface {
	// SessionLogged announces a freshly created session
	SessionLogged(ctx context.Context, session *models.Session) error
}

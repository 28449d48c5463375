package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/mxpp71-coder/cahier-seances-judo/internal/common/clock"
	"github.com/mxpp71-coder/cahier-seances-judo/internal/models"
	"github.com/mxpp71-coder/cahier-seances-judo/internal/season"
	"github.com/mxpp71-coder/cahier-seances-judo/internal/sheets"
)

// defaultCacheTTL is how long a load result stays valid before the next read
// goes back to the sheet
const defaultCacheTTL = 10 * time.Second

// Config holds configuration for the sheet-backed session repository
type Config struct {
	// Gateway to the remote spreadsheet
	Gateway sheets.Gateway

	// Sheet is the worksheet title holding the log
	Sheet string

	// Clock drives cache expiry; defaults to the system clock
	Clock clock.Clock

	// CacheTTL overrides defaultCacheTTL when positive
	CacheTTL time.Duration
}

// sheetRepository implements the Repository interface over a sheets.Gateway
type sheetRepository struct {
	gateway  sheets.Gateway
	sheet    string
	clock    clock.Clock
	cacheTTL time.Duration

	mu       sync.Mutex
	cached   []*models.Session
	cachedAt time.Time
}

// New creates a new sheet-backed session repository
func New(cfg *Config) (*sheetRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Gateway == nil {
		return nil, errors.New("gateway cannot be nil")
	}

	if cfg.Sheet == "" {
		return nil, errors.New("sheet title cannot be empty")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	return &sheetRepository{
		gateway:  cfg.Gateway,
		sheet:    cfg.Sheet,
		clock:    clk,
		cacheTTL: ttl,
	}, nil
}

// NextID returns the id for the next record: max existing + 1, or 1 for an
// empty set. Two clients appending concurrently can both pick the same id;
// the last full rewrite wins. Accepted limitation of the shared-sheet model.
func NextID(sessions []*models.Session) int {
	max := 0
	for _, s := range sessions {
		if s.ID > max {
			max = s.ID
		}
	}
	return max + 1
}

// LoadSessions returns every session in sheet order. Results are served from
// a short-lived cache; any write through this repository invalidates it, so a
// caller always reads its own writes.
func (r *sheetRepository) LoadSessions(ctx context.Context, input *LoadSessionsInput) (*LoadSessionsOutput, error) {
	r.mu.Lock()
	if r.cached != nil && r.clock.Now().Sub(r.cachedAt) < r.cacheTTL {
		out := &LoadSessionsOutput{Sessions: cloneSessions(r.cached)}
		r.mu.Unlock()
		return out, nil
	}
	r.mu.Unlock()

	loaded, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.cached = loaded
	r.cachedAt = r.clock.Now()
	r.mu.Unlock()

	return &LoadSessionsOutput{Sessions: cloneSessions(loaded)}, nil
}

// AppendSession assigns the next id, derives the season from the date and
// persists old records plus the new one through a full rewrite
func (r *sheetRepository) AppendSession(ctx context.Context, input *AppendSessionInput) (*AppendSessionOutput, error) {
	if input == nil || input.Fields == nil {
		return nil, errors.New("input and fields cannot be nil")
	}

	existing, err := r.LoadSessions(ctx, &LoadSessionsInput{})
	if err != nil {
		return nil, err
	}

	created := &models.Session{
		ID:            NextID(existing.Sessions),
		Season:        season.Of(input.Fields.Date),
		SessionFields: *input.Fields,
	}

	err = r.ReplaceSessions(ctx, &ReplaceSessionsInput{
		Sessions: append(existing.Sessions, created),
	})
	if err != nil {
		return nil, err
	}

	return &AppendSessionOutput{Session: created}, nil
}

// UpdateSession locates the record's row by id and overwrites that single
// row. It never falls back to a full rewrite, so concurrent edits of other
// rows survive. The season is recomputed from the new date; a stale caller
// value is ignored.
func (r *sheetRepository) UpdateSession(ctx context.Context, input *UpdateSessionInput) (*UpdateSessionOutput, error) {
	if input == nil || input.Fields == nil {
		return nil, errors.New("input and fields cannot be nil")
	}

	if input.ID <= 0 {
		return nil, errors.New("session id must be positive")
	}

	err := r.gateway.EnsureSheet(ctx, &sheets.EnsureSheetInput{
		Sheet:   r.sheet,
		Columns: models.Columns,
	})
	if err != nil {
		return nil, err
	}

	found, err := r.gateway.FindRowByID(ctx, &sheets.FindRowByIDInput{
		Sheet: r.sheet,
		ID:    strconv.Itoa(input.ID),
	})
	if err != nil {
		if errors.Is(err, sheets.ErrRowNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	updated := &models.Session{
		ID:            input.ID,
		Season:        season.Of(input.Fields.Date),
		SessionFields: *input.Fields,
	}

	err = r.gateway.UpdateRow(ctx, &sheets.UpdateRowInput{
		Sheet:  r.sheet,
		Row:    found.Row,
		Values: updated.Values(),
	})
	if err != nil {
		return nil, err
	}

	r.Invalidate()

	return &UpdateSessionOutput{Session: updated}, nil
}

// ReplaceSessions overwrites the whole sheet with the given records, in the
// given order. Order is the caller's responsibility. Two clients replacing
// concurrently race: the last rewrite wins and silently discards the other's
// changes. Accepted limitation of the shared-sheet model.
func (r *sheetRepository) ReplaceSessions(ctx context.Context, input *ReplaceSessionsInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	err := r.gateway.EnsureSheet(ctx, &sheets.EnsureSheetInput{
		Sheet:   r.sheet,
		Columns: models.Columns,
	})
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(input.Sessions))
	for _, s := range input.Sessions {
		rows = append(rows, s.Values())
	}

	err = r.gateway.ReplaceAll(ctx, &sheets.ReplaceAllInput{
		Sheet:   r.sheet,
		Columns: models.Columns,
		Rows:    rows,
	})
	if err != nil {
		return err
	}

	r.Invalidate()

	return nil
}

// Invalidate drops the cached load result so the next read goes back to the
// sheet
func (r *sheetRepository) Invalidate() {
	r.mu.Lock()
	r.cached = nil
	r.cachedAt = time.Time{}
	r.mu.Unlock()
}

// readAll ensures the worksheet exists and decodes every data row
func (r *sheetRepository) readAll(ctx context.Context) ([]*models.Session, error) {
	err := r.gateway.EnsureSheet(ctx, &sheets.EnsureSheetInput{
		Sheet:   r.sheet,
		Columns: models.Columns,
	})
	if err != nil {
		return nil, err
	}

	out, err := r.gateway.ReadRows(ctx, &sheets.ReadRowsInput{Sheet: r.sheet})
	if err != nil {
		return nil, err
	}

	if len(out.Header) > 0 && !headerMatches(out.Header) {
		return nil, fmt.Errorf("worksheet %q: %w", r.sheet, ErrSchemaMismatch)
	}

	loaded := make([]*models.Session, 0, len(out.Rows))
	for _, row := range out.Rows {
		loaded = append(loaded, models.FromRow(row))
	}

	return loaded, nil
}

func headerMatches(header []string) bool {
	if len(header) != len(models.Columns) {
		return false
	}
	for i, col := range models.Columns {
		if strings.TrimSpace(header[i]) != col {
			return false
		}
	}
	return true
}

func cloneSessions(sessions []*models.Session) []*models.Session {
	cloned := make([]*models.Session, len(sessions))
	for i, s := range sessions {
		copied := *s
		cloned[i] = &copied
	}
	return cloned
}

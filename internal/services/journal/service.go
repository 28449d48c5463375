package journal

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/mxpp71-coder/cahier-seances-judo/internal/common/clock"
	"github.com/mxpp71-coder/cahier-seances-judo/internal/models"
	sessionRepo "github.com/mxpp71-coder/cahier-seances-judo/internal/repositories/session"
)

// Config holds configuration for the journal service
type Config struct {
	// SessionRepo is the session store
	SessionRepo sessionRepo.Repository

	// Clock provides "today" for duplicated sessions
	Clock clock.Clock
}

// service implements the Service interface
type service struct {
	sessionRepo sessionRepo.Repository
	clock       clock.Clock
}

// New creates a new journal service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	return &service{
		sessionRepo: cfg.SessionRepo,
		clock:       clk,
	}, nil
}

// ListSessions returns sessions matching the filters, newest first
func (s *service) ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error) {
	if input == nil {
		input = &ListSessionsInput{}
	}

	loaded, err := s.sessionRepo.LoadSessions(ctx, &sessionRepo.LoadSessionsInput{})
	if err != nil {
		return nil, err
	}

	keyword := strings.ToLower(strings.TrimSpace(input.Keyword))

	matched := make([]*models.Session, 0, len(loaded.Sessions))
	for _, sess := range loaded.Sessions {
		if input.Season != "" && sess.Season != input.Season {
			continue
		}
		if input.Public != "" && sess.Public != input.Public {
			continue
		}
		if keyword != "" && !containsKeyword(sess, keyword) {
			continue
		}
		matched = append(matched, sess)
	}

	// Newest first; undated sessions sink to the bottom
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date.After(matched[j].Date)
	})

	return &ListSessionsOutput{Sessions: matched}, nil
}

// GetFilterOptions returns the distinct seasons and publics in the logbook
func (s *service) GetFilterOptions(ctx context.Context, input *GetFilterOptionsInput) (*GetFilterOptionsOutput, error) {
	loaded, err := s.sessionRepo.LoadSessions(ctx, &sessionRepo.LoadSessionsInput{})
	if err != nil {
		return nil, err
	}

	seasonSet := make(map[string]struct{})
	publicSet := make(map[string]struct{})
	for _, sess := range loaded.Sessions {
		if sess.Season != "" {
			seasonSet[sess.Season] = struct{}{}
		}
		if sess.Public != "" {
			publicSet[sess.Public] = struct{}{}
		}
	}

	return &GetFilterOptionsOutput{
		Seasons: sortedKeys(seasonSet),
		Publics: sortedKeys(publicSet),
	}, nil
}

// CreateSession validates the form input and persists a new session
func (s *service) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input == nil || input.Fields == nil {
		return nil, errors.New("input and fields cannot be nil")
	}

	fields := *input.Fields
	if len(input.ObjectiveLabels) > 0 {
		fields.Objectives = strings.Join(input.ObjectiveLabels, "; ")
	}
	normalizeFields(&fields)

	if err := validateFields(&fields); err != nil {
		return nil, err
	}

	out, err := s.sessionRepo.AppendSession(ctx, &sessionRepo.AppendSessionInput{
		Fields: &fields,
	})
	if err != nil {
		return nil, err
	}

	return &CreateSessionOutput{Session: out.Session}, nil
}

// UpdateSession validates the form input and rewrites one session in place
func (s *service) UpdateSession(ctx context.Context, input *UpdateSessionInput) (*UpdateSessionOutput, error) {
	if input == nil || input.Fields == nil {
		return nil, errors.New("input and fields cannot be nil")
	}

	fields := *input.Fields
	normalizeFields(&fields)

	if err := validateFields(&fields); err != nil {
		return nil, err
	}

	out, err := s.sessionRepo.UpdateSession(ctx, &sessionRepo.UpdateSessionInput{
		ID:     input.ID,
		Fields: &fields,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	return &UpdateSessionOutput{Session: out.Session}, nil
}

// DuplicateSession copies an existing session to today's date under a fresh
// id
func (s *service) DuplicateSession(ctx context.Context, input *DuplicateSessionInput) (*DuplicateSessionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	loaded, err := s.sessionRepo.LoadSessions(ctx, &sessionRepo.LoadSessionsInput{})
	if err != nil {
		return nil, err
	}

	var source *models.Session
	for _, sess := range loaded.Sessions {
		if sess.ID == input.ID {
			source = sess
			break
		}
	}
	if source == nil {
		return nil, ErrSessionNotFound
	}

	fields := source.SessionFields
	now := s.clock.Now()
	fields.Date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	out, err := s.sessionRepo.AppendSession(ctx, &sessionRepo.AppendSessionInput{
		Fields: &fields,
	})
	if err != nil {
		return nil, err
	}

	return &DuplicateSessionOutput{Session: out.Session}, nil
}

// containsKeyword reports whether any cell of the serialized record contains
// the lowercased keyword
func containsKeyword(sess *models.Session, keyword string) bool {
	return strings.Contains(strings.ToLower(strings.Join(sess.Values(), " ")), keyword)
}

func normalizeFields(fields *models.SessionFields) {
	fields.Public = strings.TrimSpace(fields.Public)
	fields.Objectives = strings.TrimSpace(fields.Objectives)
	fields.Tags = strings.TrimSpace(fields.Tags)
	fields.WarmUp = strings.TrimSpace(fields.WarmUp)
	fields.MainBody = strings.TrimSpace(fields.MainBody)
	fields.CoolDown = strings.TrimSpace(fields.CoolDown)
	fields.Equipment = strings.TrimSpace(fields.Equipment)
	fields.Debrief = strings.TrimSpace(fields.Debrief)
	fields.Author = strings.TrimSpace(fields.Author)
}

// validateFields enforces the form bounds. The store itself stays permissive
// so that old hand-edited rows still load.
func validateFields(fields *models.SessionFields) error {
	if fields.Date.IsZero() {
		return ErrMissingDate
	}

	if fields.DurationMin < 15 || fields.DurationMin > 180 {
		return ErrDurationOutOfRange
	}

	if fields.Headcount < 1 || fields.Headcount > 60 {
		return ErrHeadcountOutOfRange
	}

	if fields.RPE < 1 || fields.RPE > 10 {
		return ErrRPEOutOfRange
	}

	return nil
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

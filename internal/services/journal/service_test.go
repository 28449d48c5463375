package journal

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/mxpp71-coder/cahier-seances-judo/internal/common/clock/mocks"
	"github.com/mxpp71-coder/cahier-seances-judo/internal/models"
	sessionRepo "github.com/mxpp71-coder/cahier-seances-judo/internal/repositories/session"
	sessionMocks "github.com/mxpp71-coder/cahier-seances-judo/internal/repositories/session/mocks"
)

type JournalServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockSessionRepo *sessionMocks.MockRepository
	mockClock       *clockMocks.MockClock
	journalService  Service
	ctx             context.Context

	// Test data
	testTime time.Time
	fixtures []*models.Session
}

func (s *JournalServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSessionRepo = sessionMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)

	s.ctx = context.Background()
	s.testTime = time.Date(2025, 1, 6, 19, 30, 0, 0, time.UTC)

	s.fixtures = []*models.Session{
		{
			ID:     1,
			Season: "2023-2024",
			SessionFields: models.SessionFields{
				Date:        time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
				Public:      "Poussins (8–9)",
				Objectives:  "Ukemi (chutes)",
				DurationMin: 60,
				Headcount:   12,
				RPE:         4,
			},
		},
		{
			ID:     2,
			Season: "2024-2025",
			SessionFields: models.SessionFields{
				Date:        time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC),
				Public:      "Adultes",
				Objectives:  "Randori",
				Tags:        "kumi-kata",
				DurationMin: 90,
				Headcount:   20,
				RPE:         8,
			},
		},
		{
			ID:     3,
			Season: "2024-2025",
			SessionFields: models.SessionFields{
				Date:        time.Date(2024, 11, 18, 0, 0, 0, 0, time.UTC),
				Public:      "Poussins (8–9)",
				Objectives:  "Ne-waza",
				DurationMin: 60,
				Headcount:   14,
				RPE:         5,
			},
		},
	}

	svc, err := New(&Config{
		SessionRepo: s.mockSessionRepo,
		Clock:       s.mockClock,
	})
	s.Require().NoError(err)
	s.journalService = svc
}

func (s *JournalServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}

func (s *JournalServiceTestSuite) expectLoad() {
	s.mockSessionRepo.EXPECT().
		LoadSessions(s.ctx, gomock.Any()).
		Return(&sessionRepo.LoadSessionsOutput{Sessions: s.fixtures}, nil)
}

func (s *JournalServiceTestSuite) TestListSessionsFiltersBySeasonAndSorts() {
	s.expectLoad()

	out, err := s.journalService.ListSessions(s.ctx, &ListSessionsInput{Season: "2024-2025"})
	s.Require().NoError(err)
	s.Require().Len(out.Sessions, 2)

	// Newest first
	s.Equal(3, out.Sessions[0].ID)
	s.Equal(2, out.Sessions[1].ID)
}

func (s *JournalServiceTestSuite) TestListSessionsFiltersByPublic() {
	s.expectLoad()

	out, err := s.journalService.ListSessions(s.ctx, &ListSessionsInput{Public: "Adultes"})
	s.Require().NoError(err)
	s.Require().Len(out.Sessions, 1)
	s.Equal(2, out.Sessions[0].ID)
}

func (s *JournalServiceTestSuite) TestListSessionsKeywordIsCaseInsensitive() {
	s.expectLoad()

	out, err := s.journalService.ListSessions(s.ctx, &ListSessionsInput{Keyword: "KUMI"})
	s.Require().NoError(err)
	s.Require().Len(out.Sessions, 1)
	s.Equal(2, out.Sessions[0].ID)
}

func (s *JournalServiceTestSuite) TestGetFilterOptions() {
	s.expectLoad()

	out, err := s.journalService.GetFilterOptions(s.ctx, &GetFilterOptionsInput{})
	s.Require().NoError(err)
	s.Equal([]string{"2023-2024", "2024-2025"}, out.Seasons)
	s.Equal([]string{"Adultes", "Poussins (8–9)"}, out.Publics)
}

func (s *JournalServiceTestSuite) TestCreateSessionJoinsObjectiveLabels() {
	s.mockSessionRepo.EXPECT().
		AppendSession(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.AppendSessionInput) (*sessionRepo.AppendSessionOutput, error) {
			s.Equal("Ukemi (chutes); Randori", input.Fields.Objectives)
			created := &models.Session{ID: 4, Season: "2024-2025", SessionFields: *input.Fields}
			return &sessionRepo.AppendSessionOutput{Session: created}, nil
		})

	out, err := s.journalService.CreateSession(s.ctx, &CreateSessionInput{
		Fields: &models.SessionFields{
			Date:        time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC),
			Public:      "Adultes",
			DurationMin: 60,
			Headcount:   15,
			RPE:         5,
		},
		ObjectiveLabels: []string{"Ukemi (chutes)", "Randori"},
	})
	s.Require().NoError(err)
	s.Equal(4, out.Session.ID)
}

func (s *JournalServiceTestSuite) TestCreateSessionValidatesBounds() {
	base := func() *models.SessionFields {
		return &models.SessionFields{
			Date:        time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC),
			DurationMin: 60,
			Headcount:   15,
			RPE:         5,
		}
	}

	tests := []struct {
		name   string
		mutate func(*models.SessionFields)
		want   error
	}{
		{"missing date", func(f *models.SessionFields) { f.Date = time.Time{} }, ErrMissingDate},
		{"duration too short", func(f *models.SessionFields) { f.DurationMin = 10 }, ErrDurationOutOfRange},
		{"duration too long", func(f *models.SessionFields) { f.DurationMin = 200 }, ErrDurationOutOfRange},
		{"headcount zero", func(f *models.SessionFields) { f.Headcount = 0 }, ErrHeadcountOutOfRange},
		{"rpe too high", func(f *models.SessionFields) { f.RPE = 11 }, ErrRPEOutOfRange},
	}

	for _, tt := range tests {
		fields := base()
		tt.mutate(fields)
		_, err := s.journalService.CreateSession(s.ctx, &CreateSessionInput{Fields: fields})
		s.Require().ErrorIs(err, tt.want, tt.name)
	}
}

func (s *JournalServiceTestSuite) TestUpdateSessionMapsNotFound() {
	s.mockSessionRepo.EXPECT().
		UpdateSession(s.ctx, gomock.Any()).
		Return(nil, sessionRepo.ErrSessionNotFound)

	_, err := s.journalService.UpdateSession(s.ctx, &UpdateSessionInput{
		ID: 99,
		Fields: &models.SessionFields{
			Date:        time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC),
			DurationMin: 60,
			Headcount:   15,
			RPE:         5,
		},
	})
	s.Require().ErrorIs(err, ErrSessionNotFound)
}

func (s *JournalServiceTestSuite) TestDuplicateSessionUsesToday() {
	s.expectLoad()
	s.mockClock.EXPECT().Now().Return(s.testTime)

	s.mockSessionRepo.EXPECT().
		AppendSession(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.AppendSessionInput) (*sessionRepo.AppendSessionOutput, error) {
			s.Equal(time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), input.Fields.Date)
			s.Equal("Randori", input.Fields.Objectives)
			created := &models.Session{ID: 4, Season: "2024-2025", SessionFields: *input.Fields}
			return &sessionRepo.AppendSessionOutput{Session: created}, nil
		})

	out, err := s.journalService.DuplicateSession(s.ctx, &DuplicateSessionInput{ID: 2})
	s.Require().NoError(err)
	s.Equal(4, out.Session.ID)
}

func (s *JournalServiceTestSuite) TestDuplicateSessionNotFound() {
	s.expectLoad()

	_, err := s.journalService.DuplicateSession(s.ctx, &DuplicateSessionInput{ID: 99})
	s.Require().ErrorIs(err, ErrSessionNotFound)
}

func (s *JournalServiceTestSuite) TestExportCSV() {
	s.expectLoad()

	out, err := s.journalService.ExportCSV(s.ctx, &ExportCSVInput{Season: "2024-2025"})
	s.Require().NoError(err)
	s.Equal("seances_2024-2025.csv", out.Filename)

	lines := strings.Split(strings.TrimSpace(string(out.Data)), "\n")
	s.Require().Len(lines, 3)
	s.Equal(strings.Join(models.Columns, ","), lines[0])
	s.True(strings.HasPrefix(lines[1], "3,2024-11-18,2024-2025"))
	s.True(strings.HasPrefix(lines[2], "2,2024-09-02,2024-2025"))
}

func (s *JournalServiceTestSuite) TestExportXLSX() {
	s.expectLoad()

	out, err := s.journalService.ExportXLSX(s.ctx, &ExportXLSXInput{})
	s.Require().NoError(err)
	s.Equal("seances_toutes-saisons.xlsx", out.Filename)
	s.NotEmpty(out.Data)
}

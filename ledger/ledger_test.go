package ledger

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	mockclock "AltarCheckinBackend/clock/mocks"
	"AltarCheckinBackend/database"
	mockdb "AltarCheckinBackend/database/mocks"
	"AltarCheckinBackend/models"
)

type LedgerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	sessions  *mockdb.MockSessionRepository
	clock     *mockclock.MockClock
	ledger    *Ledger
	ctx       context.Context
	now       time.Time
	server    *models.Principal
	moderator *models.Principal
}

func (s *LedgerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.sessions = mockdb.NewMockSessionRepository(s.ctrl)
	s.clock = mockclock.NewMockClock(s.ctrl)
	s.ctx = context.Background()
	s.now = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	s.server = &models.Principal{ID: "server-1", Role: models.RoleServer}
	s.moderator = &models.Principal{ID: "mod-1", Role: models.RoleModerator}

	l, err := New(&Config{Sessions: s.sessions, Clock: s.clock})
	s.Require().NoError(err)
	s.ledger = l
}

func (s *LedgerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestLedgerTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerTestSuite))
}

func (s *LedgerTestSuite) TestNewRequiresRepository() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{})
	s.Error(err)
}

func (s *LedgerTestSuite) TestClockIn_DefaultServiceType() {
	s.clock.EXPECT().Now().Return(s.now)
	s.sessions.EXPECT().GetActiveSession(s.ctx, "server-1").Return(nil, nil)
	s.sessions.EXPECT().
		CreateSession(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *database.CreateSessionInput) (*models.ServiceSession, error) {
			s.Equal("server-1", input.UserID)
			s.Equal(models.DefaultServiceType, input.ServiceType)
			s.True(s.now.Equal(input.ClockInTime))
			s.Nil(input.Latitude)
			s.Nil(input.Longitude)
			s.Nil(input.LocationVerified)
			return &models.ServiceSession{ID: 1, UserID: input.UserID, ServiceType: input.ServiceType, ClockInTime: input.ClockInTime, IsActive: true}, nil
		})

	session, err := s.ledger.ClockIn(s.ctx, s.server, &ClockInInput{ServiceType: "   "})
	s.Require().NoError(err)
	s.True(session.IsActive)
	s.Equal(models.DefaultServiceType, session.ServiceType)
}

func (s *LedgerTestSuite) TestClockIn_VerifiesLocation() {
	testCases := []struct {
		name     string
		lat, lng float64
		verified bool
	}{
		{name: "at the church", lat: 25.68222, lng: -80.36861, verified: true},
		{name: "across town", lat: 25.7617, lng: -80.1918, verified: false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			lat, lng := tc.lat, tc.lng
			s.clock.EXPECT().Now().Return(s.now)
			s.sessions.EXPECT().GetActiveSession(s.ctx, "server-1").Return(nil, nil)
			s.sessions.EXPECT().
				CreateSession(s.ctx, gomock.Any()).
				DoAndReturn(func(_ context.Context, input *database.CreateSessionInput) (*models.ServiceSession, error) {
					s.Require().NotNil(input.LocationVerified)
					s.Equal(tc.verified, *input.LocationVerified)
					s.Equal(lat, *input.Latitude)
					s.Equal(lng, *input.Longitude)
					return &models.ServiceSession{ID: 2, ClockInLocationVerified: input.LocationVerified, IsActive: true}, nil
				})

			session, err := s.ledger.ClockIn(s.ctx, s.server, &ClockInInput{ServiceType: "Mass", Latitude: &lat, Longitude: &lng})
			s.Require().NoError(err)
			s.Equal(tc.verified, *session.ClockInLocationVerified)
		})
	}
}

func (s *LedgerTestSuite) TestClockIn_PartialCoordinatesNotVerified() {
	lat := 25.68222
	s.clock.EXPECT().Now().Return(s.now)
	s.sessions.EXPECT().GetActiveSession(s.ctx, "server-1").Return(nil, nil)
	s.sessions.EXPECT().
		CreateSession(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *database.CreateSessionInput) (*models.ServiceSession, error) {
			s.Nil(input.LocationVerified)
			return &models.ServiceSession{ID: 3, IsActive: true}, nil
		})

	_, err := s.ledger.ClockIn(s.ctx, s.server, &ClockInInput{Latitude: &lat})
	s.Require().NoError(err)
}

func (s *LedgerTestSuite) TestClockIn_AlreadyClockedIn() {
	s.sessions.EXPECT().GetActiveSession(s.ctx, "server-1").Return(&models.ServiceSession{ID: 7, IsActive: true}, nil)

	_, err := s.ledger.ClockIn(s.ctx, s.server, &ClockInInput{ServiceType: "Mass"})
	s.ErrorIs(err, models.ErrAlreadyClockedIn)
}

func (s *LedgerTestSuite) TestClockIn_ConcurrentInsertRejected() {
	s.clock.EXPECT().Now().Return(s.now)
	s.sessions.EXPECT().GetActiveSession(s.ctx, "server-1").Return(nil, nil)
	s.sessions.EXPECT().CreateSession(s.ctx, gomock.Any()).Return(nil, models.ErrAlreadyClockedIn)

	_, err := s.ledger.ClockIn(s.ctx, s.server, nil)
	s.ErrorIs(err, models.ErrAlreadyClockedIn)
}

func (s *LedgerTestSuite) TestClockIn_ServiceTypeTooLong() {
	_, err := s.ledger.ClockIn(s.ctx, s.server, &ClockInInput{ServiceType: strings.Repeat("x", MaxServiceTypeLen+1)})
	s.ErrorIs(err, models.ErrValidation)
}

func (s *LedgerTestSuite) TestClockIn_Unauthenticated() {
	_, err := s.ledger.ClockIn(s.ctx, nil, &ClockInInput{})
	s.ErrorIs(err, models.ErrUnauthorized)
}

func (s *LedgerTestSuite) TestClockIn_RepositoryError() {
	s.sessions.EXPECT().GetActiveSession(s.ctx, "server-1").Return(nil, errors.New("connection reset"))

	_, err := s.ledger.ClockIn(s.ctx, s.server, &ClockInInput{})
	s.Error(err)
	s.NotErrorIs(err, models.ErrAlreadyClockedIn)
}

func (s *LedgerTestSuite) TestClockOut_ComputesDuration() {
	clockIn := s.now.Add(-95 * time.Minute)
	s.clock.EXPECT().Now().Return(s.now)
	s.sessions.EXPECT().GetActiveSession(s.ctx, "server-1").Return(&models.ServiceSession{ID: 9, ClockInTime: clockIn, IsActive: true}, nil)
	s.sessions.EXPECT().
		CloseSession(s.ctx, &database.CloseSessionInput{SessionID: 9, ClockOutTime: s.now, Duration: 95}).
		DoAndReturn(func(_ context.Context, input *database.CloseSessionInput) (*models.ServiceSession, error) {
			out := input.ClockOutTime
			d := input.Duration
			return &models.ServiceSession{ID: 9, ClockInTime: clockIn, ClockOutTime: &out, Duration: &d}, nil
		})

	session, err := s.ledger.ClockOut(s.ctx, s.server)
	s.Require().NoError(err)
	s.False(session.IsActive)
	s.Equal(95, *session.Duration)
}

func (s *LedgerTestSuite) TestClockOut_NoActiveSession() {
	s.sessions.EXPECT().GetActiveSession(s.ctx, "server-1").Return(nil, nil)

	_, err := s.ledger.ClockOut(s.ctx, s.server)
	s.ErrorIs(err, models.ErrNoActiveSession)
}

func (s *LedgerTestSuite) TestClockOut_ClosedConcurrently() {
	s.clock.EXPECT().Now().Return(s.now)
	s.sessions.EXPECT().GetActiveSession(s.ctx, "server-1").Return(&models.ServiceSession{ID: 9, ClockInTime: s.now.Add(-time.Minute), IsActive: true}, nil)
	s.sessions.EXPECT().CloseSession(s.ctx, gomock.Any()).Return(nil, models.ErrNoActiveSession)

	_, err := s.ledger.ClockOut(s.ctx, s.server)
	s.ErrorIs(err, models.ErrNoActiveSession)
}

func (s *LedgerTestSuite) TestCurrentSession() {
	s.sessions.EXPECT().GetActiveSession(s.ctx, "server-1").Return(nil, nil)

	session, err := s.ledger.CurrentSession(s.ctx, s.server)
	s.Require().NoError(err)
	s.Nil(session)
}

func (s *LedgerTestSuite) TestHistory_Limits() {
	testCases := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "default", limit: 0, want: DefaultHistoryLimit},
		{name: "negative", limit: -5, want: DefaultHistoryLimit},
		{name: "explicit", limit: 25, want: 25},
		{name: "capped", limit: 5000, want: MaxHistoryLimit},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.sessions.EXPECT().
				ListUserSessions(s.ctx, &database.ListUserSessionsInput{UserID: "server-1", Limit: tc.want}).
				Return([]*models.ServiceSession{}, nil)

			sessions, err := s.ledger.History(s.ctx, s.server, tc.limit)
			s.Require().NoError(err)
			s.Empty(sessions)
		})
	}
}

func (s *LedgerTestSuite) TestListAll_RequiresModerator() {
	_, err := s.ledger.ListAll(s.ctx, s.server, 0)
	s.ErrorIs(err, models.ErrForbidden)

	_, err = s.ledger.ListAll(s.ctx, nil, 0)
	s.ErrorIs(err, models.ErrUnauthorized)
}

func (s *LedgerTestSuite) TestListAll_Limits() {
	s.sessions.EXPECT().
		ListSessions(s.ctx, &database.ListSessionsInput{Limit: DefaultListLimit}).
		Return([]*models.ServiceSession{{ID: 1}, {ID: 2}}, nil)
	sessions, err := s.ledger.ListAll(s.ctx, s.moderator, 0)
	s.Require().NoError(err)
	s.Len(sessions, 2)

	s.sessions.EXPECT().
		ListSessions(s.ctx, &database.ListSessionsInput{Limit: MaxListLimit}).
		Return([]*models.ServiceSession{}, nil)
	_, err = s.ledger.ListAll(s.ctx, s.moderator, 1_000_000)
	s.Require().NoError(err)
}

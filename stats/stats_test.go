package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	mockclock "AltarCheckinBackend/clock/mocks"
	"AltarCheckinBackend/database"
	mockdb "AltarCheckinBackend/database/mocks"
	"AltarCheckinBackend/models"
)

type AggregatorTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	users      *mockdb.MockUserRepository
	sessions   *mockdb.MockSessionRepository
	clock      *mockclock.MockClock
	aggregator *Aggregator
	loc        *time.Location
	ctx        context.Context
	now        time.Time
}

func (s *AggregatorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.users = mockdb.NewMockUserRepository(s.ctrl)
	s.sessions = mockdb.NewMockSessionRepository(s.ctrl)
	s.clock = mockclock.NewMockClock(s.ctrl)
	s.ctx = context.Background()
	s.loc = time.FixedZone("EST", -5*60*60)
	// 02:00 UTC on March 1 is still February 29 in EST.
	s.now = time.Date(2024, 3, 1, 2, 0, 0, 0, time.UTC)

	a, err := New(&Config{Users: s.users, Sessions: s.sessions, Clock: s.clock, Location: s.loc})
	s.Require().NoError(err)
	s.aggregator = a
}

func (s *AggregatorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAggregatorTestSuite(t *testing.T) {
	suite.Run(t, new(AggregatorTestSuite))
}

func (s *AggregatorTestSuite) TestWindows() {
	weekStart, monthStart := s.aggregator.Windows(s.now)

	s.True(s.now.Add(-168 * time.Hour).Equal(weekStart))
	s.True(time.Date(2024, 2, 1, 0, 0, 0, 0, s.loc).Equal(monthStart))

	_, monthStart = s.aggregator.Windows(time.Date(2024, 3, 1, 5, 0, 0, 0, time.UTC))
	s.True(time.Date(2024, 3, 1, 0, 0, 0, 0, s.loc).Equal(monthStart))
}

func (s *AggregatorTestSuite) TestUserStats() {
	server := &models.Principal{ID: "server-1", Role: models.RoleServer}
	weekStart, monthStart := s.aggregator.Windows(s.now)

	s.clock.EXPECT().Now().Return(s.now)
	// 60 + 30 + 120 minutes of completed sessions this week.
	s.sessions.EXPECT().
		SumCompletedSessions(s.ctx, &database.SumCompletedSessionsInput{UserID: "server-1", Since: weekStart}).
		Return(&database.CompletedTotals{Minutes: 210, Sessions: 3}, nil)
	s.sessions.EXPECT().
		SumCompletedSessions(s.ctx, &database.SumCompletedSessionsInput{UserID: "server-1", Since: monthStart}).
		Return(&database.CompletedTotals{Minutes: 500, Sessions: 6}, nil)

	got, err := s.aggregator.UserStats(s.ctx, server)
	s.Require().NoError(err)
	s.Equal(&models.UserStats{
		WeeklyHours:     3.5,
		WeeklyServices:  3,
		MonthlyHours:    8.3,
		MonthlyServices: 6,
	}, got)
}

func (s *AggregatorTestSuite) TestUserStats_NoSessions() {
	s.clock.EXPECT().Now().Return(s.now)
	s.sessions.EXPECT().SumCompletedSessions(s.ctx, gomock.Any()).Return(&database.CompletedTotals{}, nil).Times(2)

	got, err := s.aggregator.UserStats(s.ctx, &models.Principal{ID: "server-1", Role: models.RoleServer})
	s.Require().NoError(err)
	s.Equal(&models.UserStats{}, got)
}

func (s *AggregatorTestSuite) TestUserStats_Unauthenticated() {
	_, err := s.aggregator.UserStats(s.ctx, nil)
	s.ErrorIs(err, models.ErrUnauthorized)
}

func (s *AggregatorTestSuite) TestUserStats_RepositoryError() {
	s.clock.EXPECT().Now().Return(s.now)
	s.sessions.EXPECT().SumCompletedSessions(s.ctx, gomock.Any()).Return(nil, errors.New("timeout"))

	_, err := s.aggregator.UserStats(s.ctx, &models.Principal{ID: "server-1", Role: models.RoleServer})
	s.Error(err)
}

func (s *AggregatorTestSuite) TestOverallStats() {
	moderator := &models.Principal{ID: "mod-1", Role: models.RoleModerator}
	weekStart, monthStart := s.aggregator.Windows(s.now)

	s.clock.EXPECT().Now().Return(s.now)
	s.users.EXPECT().CountUsers(s.ctx).Return(12, nil)
	s.sessions.EXPECT().
		CountUsersWithSessionsSince(s.ctx, &database.CountUsersWithSessionsSinceInput{Since: weekStart}).
		Return(4, nil)
	s.sessions.EXPECT().
		SumCompletedSessions(s.ctx, &database.SumCompletedSessionsInput{Since: weekStart}).
		Return(&database.CompletedTotals{Minutes: 95, Sessions: 2}, nil)
	s.sessions.EXPECT().
		SumCompletedSessions(s.ctx, &database.SumCompletedSessionsInput{Since: monthStart}).
		Return(&database.CompletedTotals{Minutes: 1234, Sessions: 20}, nil)

	got, err := s.aggregator.OverallStats(s.ctx, moderator)
	s.Require().NoError(err)
	s.Equal(&models.OverallStats{
		TotalUsers:          12,
		RecentlyActiveUsers: 4,
		TotalHoursThisWeek:  1.6,
		TotalHoursThisMonth: 20.6,
	}, got)
}

func (s *AggregatorTestSuite) TestOverallStats_RequiresModerator() {
	_, err := s.aggregator.OverallStats(s.ctx, &models.Principal{ID: "server-1", Role: models.RoleServer})
	s.ErrorIs(err, models.ErrForbidden)
}

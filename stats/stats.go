package stats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"AltarCheckinBackend/clock"
	"AltarCheckinBackend/database"
	"AltarCheckinBackend/models"
)

// Week is the rolling window used for weekly figures.
const Week = 7 * 24 * time.Hour

// Config holds configuration for the aggregator
type Config struct {
	Users    database.UserRepository
	Sessions database.SessionRepository
	Clock    clock.Clock
	// Location decides where a calendar month starts. Defaults to time.Local.
	Location *time.Location
}

// Aggregator reports hours served over the trailing week and the current
// calendar month. Only completed sessions count toward hours.
type Aggregator struct {
	users    database.UserRepository
	sessions database.SessionRepository
	clock    clock.Clock
	loc      *time.Location
}

func New(cfg *Config) (*Aggregator, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Users == nil {
		return nil, errors.New("user repository cannot be nil")
	}
	if cfg.Sessions == nil {
		return nil, errors.New("session repository cannot be nil")
	}
	a := &Aggregator{
		users:    cfg.Users,
		sessions: cfg.Sessions,
		clock:    cfg.Clock,
		loc:      cfg.Location,
	}
	if a.clock == nil {
		a.clock = clock.New()
	}
	if a.loc == nil {
		a.loc = time.Local
	}
	return a, nil
}

// Windows returns the start of the weekly and monthly windows for now.
func (a *Aggregator) Windows(now time.Time) (weekStart, monthStart time.Time) {
	local := now.In(a.loc)
	weekStart = now.Add(-Week)
	monthStart = time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, a.loc)
	return weekStart, monthStart
}

func (a *Aggregator) UserStats(ctx context.Context, p *models.Principal) (*models.UserStats, error) {
	if p == nil || p.ID == "" {
		return nil, models.ErrUnauthorized
	}
	weekStart, monthStart := a.Windows(a.clock.Now())

	weekly, err := a.sessions.SumCompletedSessions(ctx, &database.SumCompletedSessionsInput{UserID: p.ID, Since: weekStart})
	if err != nil {
		return nil, fmt.Errorf("weekly totals: %w", err)
	}
	monthly, err := a.sessions.SumCompletedSessions(ctx, &database.SumCompletedSessionsInput{UserID: p.ID, Since: monthStart})
	if err != nil {
		return nil, fmt.Errorf("monthly totals: %w", err)
	}

	return &models.UserStats{
		WeeklyHours:     models.MinutesToHours(weekly.Minutes),
		WeeklyServices:  weekly.Sessions,
		MonthlyHours:    models.MinutesToHours(monthly.Minutes),
		MonthlyServices: monthly.Sessions,
	}, nil
}

// OverallStats covers every user. RecentlyActiveUsers counts users with any
// session, open or closed, that started inside the weekly window.
func (a *Aggregator) OverallStats(ctx context.Context, p *models.Principal) (*models.OverallStats, error) {
	if err := models.RequireModerator(p); err != nil {
		return nil, err
	}
	weekStart, monthStart := a.Windows(a.clock.Now())

	totalUsers, err := a.users.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	recent, err := a.sessions.CountUsersWithSessionsSince(ctx, &database.CountUsersWithSessionsSinceInput{Since: weekStart})
	if err != nil {
		return nil, fmt.Errorf("count recent users: %w", err)
	}
	weekly, err := a.sessions.SumCompletedSessions(ctx, &database.SumCompletedSessionsInput{Since: weekStart})
	if err != nil {
		return nil, fmt.Errorf("weekly totals: %w", err)
	}
	monthly, err := a.sessions.SumCompletedSessions(ctx, &database.SumCompletedSessionsInput{Since: monthStart})
	if err != nil {
		return nil, fmt.Errorf("monthly totals: %w", err)
	}

	return &models.OverallStats{
		TotalUsers:          totalUsers,
		RecentlyActiveUsers: recent,
		TotalHoursThisWeek:  models.MinutesToHours(weekly.Minutes),
		TotalHoursThisMonth: models.MinutesToHours(monthly.Minutes),
	}, nil
}

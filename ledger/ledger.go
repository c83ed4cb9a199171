package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"AltarCheckinBackend/clock"
	"AltarCheckinBackend/database"
	"AltarCheckinBackend/geo"
	"AltarCheckinBackend/models"
)

const (
	DefaultHistoryLimit = 10
	MaxHistoryLimit     = 100
	DefaultListLimit    = 100
	MaxListLimit        = 1000
	MaxServiceTypeLen   = 100
)

// Config holds configuration for the ledger
type Config struct {
	Sessions database.SessionRepository
	Clock    clock.Clock
	// Verify checks clock-in coordinates. Defaults to geo.Verify.
	Verify func(lat, lng float64) bool
}

// Ledger opens and closes service sessions, keeping at most one active
// session per user.
type Ledger struct {
	sessions database.SessionRepository
	clock    clock.Clock
	verify   func(lat, lng float64) bool
}

func New(cfg *Config) (*Ledger, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Sessions == nil {
		return nil, errors.New("session repository cannot be nil")
	}
	l := &Ledger{
		sessions: cfg.Sessions,
		clock:    cfg.Clock,
		verify:   cfg.Verify,
	}
	if l.clock == nil {
		l.clock = clock.New()
	}
	if l.verify == nil {
		l.verify = geo.Verify
	}
	return l, nil
}

// ClockInInput contains parameters for clocking in
type ClockInInput struct {
	ServiceType string
	Latitude    *float64
	Longitude   *float64
}

func (l *Ledger) ClockIn(ctx context.Context, p *models.Principal, input *ClockInInput) (*models.ServiceSession, error) {
	if p == nil || p.ID == "" {
		return nil, models.ErrUnauthorized
	}
	if input == nil {
		input = &ClockInInput{}
	}

	serviceType := strings.TrimSpace(input.ServiceType)
	if serviceType == "" {
		serviceType = models.DefaultServiceType
	}
	if utf8.RuneCountInString(serviceType) > MaxServiceTypeLen {
		return nil, fmt.Errorf("%w: service type must be at most %d characters", models.ErrValidation, MaxServiceTypeLen)
	}

	active, err := l.sessions.GetActiveSession(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("get active session: %w", err)
	}
	if active != nil {
		return nil, models.ErrAlreadyClockedIn
	}

	create := &database.CreateSessionInput{
		UserID:      p.ID,
		ServiceType: serviceType,
		ClockInTime: l.clock.Now().UTC(),
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
	}
	if input.Latitude != nil && input.Longitude != nil {
		verified := l.verify(*input.Latitude, *input.Longitude)
		create.LocationVerified = &verified
	}

	// A concurrent clock-in that slipped past the lookup is rejected by the
	// store with the same error.
	session, err := l.sessions.CreateSession(ctx, create)
	if err != nil {
		if errors.Is(err, models.ErrAlreadyClockedIn) {
			return nil, err
		}
		return nil, fmt.Errorf("create session: %w", err)
	}
	return session, nil
}

func (l *Ledger) ClockOut(ctx context.Context, p *models.Principal) (*models.ServiceSession, error) {
	if p == nil || p.ID == "" {
		return nil, models.ErrUnauthorized
	}

	active, err := l.sessions.GetActiveSession(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("get active session: %w", err)
	}
	if active == nil {
		return nil, models.ErrNoActiveSession
	}

	clockOut := l.clock.Now().UTC()
	session, err := l.sessions.CloseSession(ctx, &database.CloseSessionInput{
		SessionID:    active.ID,
		ClockOutTime: clockOut,
		Duration:     models.DurationMinutes(active.ClockInTime, clockOut),
	})
	if err != nil {
		if errors.Is(err, models.ErrNoActiveSession) {
			return nil, err
		}
		return nil, fmt.Errorf("close session: %w", err)
	}
	return session, nil
}

// CurrentSession returns the caller's active session, or nil.
func (l *Ledger) CurrentSession(ctx context.Context, p *models.Principal) (*models.ServiceSession, error) {
	if p == nil || p.ID == "" {
		return nil, models.ErrUnauthorized
	}
	session, err := l.sessions.GetActiveSession(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("get active session: %w", err)
	}
	return session, nil
}

// History returns the caller's sessions, newest first.
func (l *Ledger) History(ctx context.Context, p *models.Principal, limit int) ([]*models.ServiceSession, error) {
	if p == nil || p.ID == "" {
		return nil, models.ErrUnauthorized
	}
	sessions, err := l.sessions.ListUserSessions(ctx, &database.ListUserSessionsInput{
		UserID: p.ID,
		Limit:  clampLimit(limit, DefaultHistoryLimit, MaxHistoryLimit),
	})
	if err != nil {
		return nil, fmt.Errorf("list user sessions: %w", err)
	}
	return sessions, nil
}

// ListAll returns every user's sessions, newest first. Moderators only.
func (l *Ledger) ListAll(ctx context.Context, p *models.Principal, limit int) ([]*models.ServiceSession, error) {
	if err := models.RequireModerator(p); err != nil {
		return nil, err
	}
	sessions, err := l.sessions.ListSessions(ctx, &database.ListSessionsInput{
		Limit: clampLimit(limit, DefaultListLimit, MaxListLimit),
	})
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

func clampLimit(limit, fallback, max int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > max {
		return max
	}
	return limit
}

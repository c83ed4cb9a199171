package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"AltarCheckinBackend/models"
)

const sessionColumns = `id, user_id, clock_in_time, clock_out_time, service_type, duration_minutes, is_active,
	clock_in_latitude, clock_in_longitude, clock_in_location_verified, created_at, updated_at`

func scanSession(row rowScanner, extra ...any) (*models.ServiceSession, error) {
	var (
		s                    models.ServiceSession
		clockOut             sql.NullTime
		serviceType          sql.NullString
		duration             sql.NullInt64
		isActive             sql.NullBool
		lat, lng             sql.NullFloat64
		verified             sql.NullBool
		createdAt, updatedAt sql.NullTime
	)
	dest := []any{
		&s.ID, &s.UserID, &s.ClockInTime, &clockOut, &serviceType, &duration, &isActive,
		&lat, &lng, &verified, &createdAt, &updatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}

	if clockOut.Valid {
		t := clockOut.Time
		s.ClockOutTime = &t
	}
	s.ServiceType = serviceType.String
	if duration.Valid {
		d := int(duration.Int64)
		s.Duration = &d
	}
	s.IsActive = isActive.Valid && isActive.Bool
	if lat.Valid {
		s.ClockInLatitude = &lat.Float64
	}
	if lng.Valid {
		s.ClockInLongitude = &lng.Float64
	}
	if verified.Valid {
		s.ClockInLocationVerified = &verified.Bool
	}
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time
	return &s, nil
}

func scanSessions(rows *sql.Rows) ([]*models.ServiceSession, error) {
	sessions := []*models.ServiceSession{}
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (s *Store) GetActiveSession(ctx context.Context, userID string) (*models.ServiceSession, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	session, err := scanSession(s.DB.QueryRowContext(ctx, `
		SELECT `+sessionColumns+`
		FROM service_sessions
		WHERE user_id = $1 AND is_active = true
		ORDER BY clock_in_time DESC
		LIMIT 1`, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("GetActiveSession query failed: %w", err)
	}
	return session, nil
}

func (s *Store) CreateSession(ctx context.Context, input *CreateSessionInput) (*models.ServiceSession, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("user id cannot be empty")
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	session, err := scanSession(s.DB.QueryRowContext(ctx, `
		INSERT INTO service_sessions (user_id, clock_in_time, service_type, is_active,
			clock_in_latitude, clock_in_longitude, clock_in_location_verified, created_at, updated_at)
		VALUES ($1, $2, $3, true, $4, $5, $6, $2, $2)
		RETURNING `+sessionColumns,
		input.UserID, input.ClockInTime, input.ServiceType,
		input.Latitude, input.Longitude, input.LocationVerified,
	))
	if err != nil {
		if isUniqueViolation(err, activeSessionIndex) {
			return nil, models.ErrAlreadyClockedIn
		}
		return nil, fmt.Errorf("CreateSession query failed: %w", err)
	}
	return session, nil
}

func (s *Store) CloseSession(ctx context.Context, input *CloseSessionInput) (*models.ServiceSession, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	// The is_active guard makes a second clock-out of the same session a no-op.
	session, err := scanSession(s.DB.QueryRowContext(ctx, `
		UPDATE service_sessions
		SET clock_out_time = $2, duration_minutes = $3, is_active = false, updated_at = $2
		WHERE id = $1 AND is_active = true
		RETURNING `+sessionColumns,
		input.SessionID, input.ClockOutTime, input.Duration,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNoActiveSession
		}
		return nil, fmt.Errorf("CloseSession query failed: %w", err)
	}
	return session, nil
}

func (s *Store) ListUserSessions(ctx context.Context, input *ListUserSessionsInput) ([]*models.ServiceSession, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("user id cannot be empty")
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := s.DB.QueryContext(ctx, `
		SELECT `+sessionColumns+`
		FROM service_sessions
		WHERE user_id = $1
		ORDER BY clock_in_time DESC
		LIMIT $2`, input.UserID, input.Limit)
	if err != nil {
		return nil, fmt.Errorf("ListUserSessions query failed: %w", err)
	}
	defer rows.Close()
	return scanSessions(rows)
}

func (s *Store) ListSessions(ctx context.Context, input *ListSessionsInput) ([]*models.ServiceSession, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := s.DB.QueryContext(ctx, `
		SELECT `+sessionColumns+`
		FROM service_sessions
		ORDER BY clock_in_time DESC
		LIMIT $1`, input.Limit)
	if err != nil {
		return nil, fmt.Errorf("ListSessions query failed: %w", err)
	}
	defer rows.Close()
	return scanSessions(rows)
}

func (s *Store) ListSessionsForExport(ctx context.Context) ([]*models.SessionExportRow, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	rows, err := s.DB.QueryContext(ctx, `
		SELECT s.id, s.user_id, s.clock_in_time, s.clock_out_time, s.service_type, s.duration_minutes, s.is_active,
			s.clock_in_latitude, s.clock_in_longitude, s.clock_in_location_verified, s.created_at, s.updated_at,
			COALESCE(u.first_name, ''), COALESCE(u.last_name, ''), COALESCE(u.email, '')
		FROM service_sessions s
		LEFT JOIN users u ON u.id = s.user_id
		ORDER BY s.clock_in_time DESC`)
	if err != nil {
		return nil, fmt.Errorf("ListSessionsForExport query failed: %w", err)
	}
	defer rows.Close()

	out := []*models.SessionExportRow{}
	for rows.Next() {
		var first, last, email string
		session, err := scanSession(rows, &first, &last, &email)
		if err != nil {
			return nil, fmt.Errorf("ListSessionsForExport scan failed: %w", err)
		}
		out = append(out, &models.SessionExportRow{
			Session:   *session,
			UserName:  strings.TrimSpace(first + " " + last),
			UserEmail: email,
		})
	}
	return out, rows.Err()
}

func (s *Store) SumCompletedSessions(ctx context.Context, input *SumCompletedSessionsInput) (*CompletedTotals, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := `
		SELECT COALESCE(SUM(duration_minutes), 0), COUNT(*)
		FROM service_sessions
		WHERE is_active = false AND clock_in_time >= $1`
	args := []any{input.Since}
	if input.UserID != "" {
		query += ` AND user_id = $2`
		args = append(args, input.UserID)
	}

	var totals CompletedTotals
	if err := s.DB.QueryRowContext(ctx, query, args...).Scan(&totals.Minutes, &totals.Sessions); err != nil {
		return nil, fmt.Errorf("SumCompletedSessions query failed: %w", err)
	}
	return &totals, nil
}

func (s *Store) CountUsersWithSessionsSince(ctx context.Context, input *CountUsersWithSessionsSinceInput) (int, error) {
	if input == nil {
		return 0, errors.New("input cannot be nil")
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var count int
	err := s.DB.QueryRowContext(ctx, `
		SELECT COUNT(DISTINCT user_id)
		FROM service_sessions
		WHERE clock_in_time >= $1`, input.Since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("CountUsersWithSessionsSince query failed: %w", err)
	}
	return count, nil
}

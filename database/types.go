package database

import (
	"time"

	"AltarCheckinBackend/models"
)

// UpdateUserRoleInput contains parameters for changing a user's role
type UpdateUserRoleInput struct {
	UserID string
	Role   models.Role
}

// CreateSessionInput contains parameters for opening a service session
type CreateSessionInput struct {
	UserID           string
	ServiceType      string
	ClockInTime      time.Time
	Latitude         *float64
	Longitude        *float64
	LocationVerified *bool
}

// CloseSessionInput contains parameters for clocking a session out
type CloseSessionInput struct {
	SessionID    int64
	ClockOutTime time.Time
	Duration     int
}

// ListUserSessionsInput contains parameters for a user's history
type ListUserSessionsInput struct {
	UserID string
	Limit  int
}

// ListSessionsInput contains parameters for listing all sessions
type ListSessionsInput struct {
	Limit int
}

// SumCompletedSessionsInput filters the completed-session totals. An empty
// UserID totals across all users.
type SumCompletedSessionsInput struct {
	UserID string
	Since  time.Time
}

// CompletedTotals is the sum of durations and count of completed sessions
type CompletedTotals struct {
	Minutes  int64
	Sessions int
}

// CountUsersWithSessionsSinceInput contains the lower clock-in bound
type CountUsersWithSessionsSinceInput struct {
	Since time.Time
}

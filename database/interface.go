package database

//go:generate mockgen -source=interface.go -destination=mocks/mock_repository.go -package=mocks

import (
	"context"

	"AltarCheckinBackend/models"
)

// UserRepository defines persistence for users.
type UserRepository interface {
	// GetUser returns models.ErrUserNotFound when no row exists.
	GetUser(ctx context.Context, id string) (*models.User, error)

	// UpsertUser creates the user or refreshes its profile fields. The role
	// of an existing user is never changed here.
	UpsertUser(ctx context.Context, user *models.User) (*models.User, error)

	// ListUsers returns every user, newest first.
	ListUsers(ctx context.Context) ([]*models.User, error)

	// UpdateUserRole returns models.ErrUserNotFound for an unknown id.
	UpdateUserRole(ctx context.Context, input *UpdateUserRoleInput) (*models.User, error)

	CountUsers(ctx context.Context) (int, error)
}

// SessionRepository defines persistence for service sessions.
type SessionRepository interface {
	// GetActiveSession returns nil, nil when the user is not clocked in.
	GetActiveSession(ctx context.Context, userID string) (*models.ServiceSession, error)

	// CreateSession returns models.ErrAlreadyClockedIn when the user
	// already has an active session.
	CreateSession(ctx context.Context, input *CreateSessionInput) (*models.ServiceSession, error)

	// CloseSession returns models.ErrNoActiveSession when the session is
	// not active anymore.
	CloseSession(ctx context.Context, input *CloseSessionInput) (*models.ServiceSession, error)

	ListUserSessions(ctx context.Context, input *ListUserSessionsInput) ([]*models.ServiceSession, error)
	ListSessions(ctx context.Context, input *ListSessionsInput) ([]*models.ServiceSession, error)
	ListSessionsForExport(ctx context.Context) ([]*models.SessionExportRow, error)

	// SumCompletedSessions totals closed sessions whose clock-in is at or
	// after Since, optionally for a single user.
	SumCompletedSessions(ctx context.Context, input *SumCompletedSessionsInput) (*CompletedTotals, error)

	// CountUsersWithSessionsSince counts distinct users with any session,
	// active or not, clocked in at or after Since.
	CountUsersWithSessionsSince(ctx context.Context, input *CountUsersWithSessionsSinceInput) (int, error)
}

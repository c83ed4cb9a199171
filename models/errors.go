package models

// Error is the error type shared by the ledger, the aggregator and the HTTP
// layer.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrUnauthorized     Error = "unauthorized"
	ErrForbidden        Error = "moderator access required"
	ErrAlreadyClockedIn Error = "You are already clocked in"
	ErrNoActiveSession  Error = "No active session found"
	ErrValidation       Error = "invalid request data"
	ErrUserNotFound     Error = "user not found"
)

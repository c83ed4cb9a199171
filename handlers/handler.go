package handlers

import (
	"errors"

	"AltarCheckinBackend/database"
	"AltarCheckinBackend/ledger"
	"AltarCheckinBackend/middleware"
	"AltarCheckinBackend/oauth"
	"AltarCheckinBackend/stats"
)

// Config holds the dependencies of the HTTP handlers
type Config struct {
	Ledger   *ledger.Ledger
	Stats    *stats.Aggregator
	Users    database.UserRepository
	Sessions database.SessionRepository
	Tokens   *middleware.TokenIssuer

	// Provider is nil when Google login is not configured.
	Provider oauth.Provider
	// Revocations is nil when Redis is not configured.
	Revocations database.RevocationStore

	CookieSecure bool
}

// Handler serves the REST API.
type Handler struct {
	ledger       *ledger.Ledger
	stats        *stats.Aggregator
	users        database.UserRepository
	sessions     database.SessionRepository
	tokens       *middleware.TokenIssuer
	provider     oauth.Provider
	revocations  database.RevocationStore
	cookieSecure bool
}

func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	switch {
	case cfg.Ledger == nil:
		return nil, errors.New("ledger cannot be nil")
	case cfg.Stats == nil:
		return nil, errors.New("stats aggregator cannot be nil")
	case cfg.Users == nil:
		return nil, errors.New("user repository cannot be nil")
	case cfg.Sessions == nil:
		return nil, errors.New("session repository cannot be nil")
	case cfg.Tokens == nil:
		return nil, errors.New("token issuer cannot be nil")
	}
	return &Handler{
		ledger:       cfg.Ledger,
		stats:        cfg.Stats,
		users:        cfg.Users,
		sessions:     cfg.Sessions,
		tokens:       cfg.Tokens,
		provider:     cfg.Provider,
		revocations:  cfg.Revocations,
		cookieSecure: cfg.CookieSecure,
	}, nil
}

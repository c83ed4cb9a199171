package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"AltarCheckinBackend/clock"
	"AltarCheckinBackend/database"
	"AltarCheckinBackend/models"
)

type contextKey string

const principalKey contextKey = "principal"

const (
	// SessionCookieName carries the session token for browser clients.
	SessionCookieName = "altar_session"
	// SessionTTL is how long a session token stays valid.
	SessionTTL = 7 * 24 * time.Hour
)

// SessionClaims carry the user id as the subject and a token id. The role
// is read from the users table on every request.
type SessionClaims = jwt.RegisteredClaims

// TokenIssuer signs and verifies HS256 session tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
}

func NewTokenIssuer(secret string, clk clock.Clock) (*TokenIssuer, error) {
	if secret == "" {
		return nil, errors.New("session secret cannot be empty")
	}
	if clk == nil {
		clk = clock.New()
	}
	return &TokenIssuer{secret: []byte(secret), ttl: SessionTTL, clock: clk}, nil
}

// GenerateToken returns a signed token for userID and its expiry.
func (t *TokenIssuer) GenerateToken(userID string) (string, time.Time, error) {
	if userID == "" {
		return "", time.Time{}, errors.New("user id cannot be empty")
	}
	now := t.clock.Now()
	expiresAt := now.Add(t.ttl)
	claims := SessionClaims{
		Subject:   userID,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// ParseToken verifies the signature and expiry of a session token.
func (t *TokenIssuer) ParseToken(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.clock.Now),
	)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: invalid or expired token", models.ErrUnauthorized)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: token has no subject", models.ErrUnauthorized)
	}
	return claims, nil
}

// Remaining returns how long the token stays valid.
func (t *TokenIssuer) Remaining(claims *SessionClaims) time.Duration {
	if claims == nil || claims.ExpiresAt == nil {
		return 0
	}
	return claims.ExpiresAt.Time.Sub(t.clock.Now())
}

// TokenFromRequest reads the session token from the Authorization header,
// falling back to the session cookie.
func TokenFromRequest(r *http.Request) string {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) == 2 && bearerToken[0] == "Bearer" {
			return bearerToken[1]
		}
		return ""
	}
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		return cookie.Value
	}
	return ""
}

// AuthenticatorConfig holds configuration for the Authenticator
type AuthenticatorConfig struct {
	Tokens *TokenIssuer
	Users  database.UserRepository
	// Revocations is optional. Without it logged-out tokens stay valid
	// until they expire.
	Revocations database.RevocationStore
}

// Authenticator resolves the caller of a request into a Principal.
type Authenticator struct {
	tokens      *TokenIssuer
	users       database.UserRepository
	revocations database.RevocationStore
}

func NewAuthenticator(cfg *AuthenticatorConfig) (*Authenticator, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Tokens == nil {
		return nil, errors.New("token issuer cannot be nil")
	}
	if cfg.Users == nil {
		return nil, errors.New("user repository cannot be nil")
	}
	return &Authenticator{
		tokens:      cfg.Tokens,
		users:       cfg.Users,
		revocations: cfg.Revocations,
	}, nil
}

// Authenticate returns the user behind the request's session token.
func (a *Authenticator) Authenticate(r *http.Request) (*models.User, error) {
	tokenString := TokenFromRequest(r)
	if tokenString == "" {
		return nil, fmt.Errorf("%w: session token required", models.ErrUnauthorized)
	}
	claims, err := a.tokens.ParseToken(tokenString)
	if err != nil {
		return nil, err
	}

	if a.revocations != nil {
		revoked, err := a.revocations.IsRevoked(r.Context(), claims.ID)
		if err != nil {
			return nil, fmt.Errorf("check revocation: %w", err)
		}
		if revoked {
			return nil, fmt.Errorf("%w: session has been logged out", models.ErrUnauthorized)
		}
	}

	user, err := a.users.GetUser(r.Context(), claims.Subject)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: unknown user", models.ErrUnauthorized)
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	return user, nil
}

func (a *Authenticator) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := a.Authenticate(r)
		if err != nil {
			if errors.Is(err, models.ErrUnauthorized) {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			log.Printf("auth: %v", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		ctx := WithPrincipal(r.Context(), user.Principal())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func ModeratorOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, _ := GetPrincipalFromContext(r.Context())
		if err := models.RequireModerator(p); err != nil {
			if errors.Is(err, models.ErrUnauthorized) {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			writeError(w, http.StatusForbidden, "Moderator access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func WithPrincipal(ctx context.Context, p *models.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

func GetPrincipalFromContext(ctx context.Context) (*models.Principal, bool) {
	p, ok := ctx.Value(principalKey).(*models.Principal)
	return p, ok && p != nil
}

func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}

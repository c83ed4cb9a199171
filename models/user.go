package models

import (
	"fmt"
	"strings"
	"time"
)

type Role string

const (
	RoleServer    Role = "server"
	RoleModerator Role = "moderator"
)

// ParseRole accepts exactly "server" or "moderator". No trimming or case
// folding is applied.
func ParseRole(value string) (Role, error) {
	switch Role(value) {
	case RoleServer, RoleModerator:
		return Role(value), nil
	}
	return "", fmt.Errorf("%w: role must be 'server' or 'moderator'", ErrValidation)
}

type User struct {
	ID              string    `json:"id"`
	Email           *string   `json:"email"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	ProfileImageURL string    `json:"profileImageUrl"`
	Role            Role      `json:"role"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// DisplayName joins first and last name, falling back to the email.
func (u *User) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" && u.Email != nil {
		return *u.Email
	}
	return name
}

// Principal is the authenticated caller. Role is loaded from the users
// table on every request.
type Principal struct {
	ID   string
	Role Role
}

func (u *User) Principal() *Principal {
	return &Principal{ID: u.ID, Role: u.Role}
}

// RequireModerator is the access policy for moderator-only operations.
func RequireModerator(p *Principal) error {
	if p == nil || p.ID == "" {
		return ErrUnauthorized
	}
	if p.Role != RoleModerator {
		return ErrForbidden
	}
	return nil
}

// Profile is what the identity provider tells us about a user at login.
type Profile struct {
	ID              string
	Email           string
	FirstName       string
	LastName        string
	ProfileImageURL string
}

func NewUserFromProfile(p *Profile) (*User, error) {
	if p == nil || p.ID == "" {
		return nil, fmt.Errorf("%w: profile id is required", ErrValidation)
	}

	var email *string
	if p.Email != "" {
		e := p.Email
		email = &e
	}

	now := time.Now().UTC()
	return &User{
		ID:              p.ID,
		Email:           email,
		FirstName:       p.FirstName,
		LastName:        p.LastName,
		ProfileImageURL: p.ProfileImageURL,
		Role:            RoleServer,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"

	"AltarCheckinBackend/models"
)

//go:generate mockgen -source=google.go -destination=mocks/mock_provider.go -package=mocks

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// Provider is the identity provider used by the login flow.
type Provider interface {
	// AuthCodeURL returns the consent page URL carrying state.
	AuthCodeURL(state string) string
	// Exchange trades an authorization code for the caller's profile.
	Exchange(ctx context.Context, code string) (*models.Profile, error)
}

// GoogleConfig holds configuration for Google login
type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	// UserInfoURL overrides the Google userinfo endpoint.
	UserInfoURL string
	// Endpoint overrides the Google OAuth2 endpoint.
	Endpoint *oauth2.Endpoint
}

type Google struct {
	config      *oauth2.Config
	userInfoURL string
}

var _ Provider = (*Google)(nil)

func NewGoogle(cfg *GoogleConfig) (*Google, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, errors.New("google client id and secret are required")
	}
	if cfg.RedirectURL == "" {
		return nil, errors.New("redirect url is required")
	}

	endpoint := endpoints.Google
	if cfg.Endpoint != nil {
		endpoint = *cfg.Endpoint
	}
	userInfoURL := cfg.UserInfoURL
	if userInfoURL == "" {
		userInfoURL = googleUserInfoURL
	}

	return &Google{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint:     endpoint,
			Scopes:       []string{"openid", "email", "profile"},
		},
		userInfoURL: userInfoURL,
	}, nil
}

func (g *Google) AuthCodeURL(state string) string {
	return g.config.AuthCodeURL(state, oauth2.SetAuthURLParam("prompt", "select_account"))
}

type googleUserInfo struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Picture    string `json:"picture"`
}

func (g *Google) Exchange(ctx context.Context, code string) (*models.Profile, error) {
	if code == "" {
		return nil, errors.New("authorization code is required")
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	token, err := g.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange code: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.userInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build userinfo request: %w", err)
	}
	resp, err := g.config.Client(ctx, token).Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch userinfo: unexpected status %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode userinfo: %w", err)
	}
	if info.ID == "" {
		return nil, errors.New("userinfo response has no id")
	}

	return &models.Profile{
		ID:              info.ID,
		Email:           info.Email,
		FirstName:       info.GivenName,
		LastName:        info.FamilyName,
		ProfileImageURL: info.Picture,
	}, nil
}

package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"AltarCheckinBackend/middleware"
	"AltarCheckinBackend/models"
)

const (
	stateCookieName = "altar_oauth_state"
	stateTTL        = 10 * time.Minute
)

// Login - Redirect to the Google consent page
// GET /api/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if h.provider == nil {
		respondWithError(w, http.StatusServiceUnavailable, "Login is not configured")
		return
	}

	state := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     "/api",
		MaxAge:   int(stateTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, h.provider.AuthCodeURL(state), http.StatusFound)
}

// Callback - Finish login, create or refresh the user, start a session
// GET /api/callback
func (h *Handler) Callback(w http.ResponseWriter, r *http.Request) {
	if h.provider == nil {
		respondWithError(w, http.StatusServiceUnavailable, "Login is not configured")
		return
	}
	h.clearCookie(w, stateCookieName, "/api")

	q := r.URL.Query()
	stateCookie, err := r.Cookie(stateCookieName)
	if err != nil || q.Get("state") == "" || stateCookie.Value != q.Get("state") {
		log.Printf("login callback: state mismatch")
		http.Redirect(w, r, "/api/login", http.StatusFound)
		return
	}
	if q.Get("error") != "" || q.Get("code") == "" {
		log.Printf("login callback: provider returned error %q", q.Get("error"))
		http.Redirect(w, r, "/api/login", http.StatusFound)
		return
	}

	profile, err := h.provider.Exchange(r.Context(), q.Get("code"))
	if err != nil {
		log.Printf("login callback: %v", err)
		http.Redirect(w, r, "/api/login", http.StatusFound)
		return
	}
	user, err := models.NewUserFromProfile(profile)
	if err != nil {
		log.Printf("login callback: %v", err)
		http.Redirect(w, r, "/api/login", http.StatusFound)
		return
	}
	user, err = h.users.UpsertUser(r.Context(), user)
	if err != nil {
		log.Printf("login callback: upsert user: %v", err)
		http.Redirect(w, r, "/api/login", http.StatusFound)
		return
	}

	token, expiresAt, err := h.tokens.GenerateToken(user.ID)
	if err != nil {
		log.Printf("login callback: %v", err)
		http.Redirect(w, r, "/api/login", http.StatusFound)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/", http.StatusFound)
}

// Logout - Revoke the session token and clear the cookie
// GET /api/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if token := middleware.TokenFromRequest(r); token != "" && h.revocations != nil {
		if claims, err := h.tokens.ParseToken(token); err == nil {
			if err := h.revocations.Revoke(r.Context(), claims.ID, h.tokens.Remaining(claims)); err != nil {
				log.Printf("logout: %v", err)
			}
		}
	}
	h.clearCookie(w, middleware.SessionCookieName, "/")
	http.Redirect(w, r, "/", http.StatusFound)
}

// GetAuthUser - The signed-in user
// GET /api/auth/user
func (h *Handler) GetAuthUser(w http.ResponseWriter, r *http.Request) {
	p := principal(r)
	if p == nil {
		respondWithServiceError(w, r, models.ErrUnauthorized)
		return
	}
	user, err := h.users.GetUser(r.Context(), p.ID)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

func (h *Handler) clearCookie(w http.ResponseWriter, name, path string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     path,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

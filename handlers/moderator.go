package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"AltarCheckinBackend/database"
	"AltarCheckinBackend/export"
	"AltarCheckinBackend/models"
)

// ==================== MODERATOR ====================

// UpdateRoleRequest is the body of a role change.
type UpdateRoleRequest struct {
	Role string `json:"role"`
}

// GetUsers - Every user, newest first
// GET /api/moderator/users
func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	if err := models.RequireModerator(principal(r)); err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, users)
}

// GetAllSessions - Sessions of every user, newest first
// GET /api/moderator/sessions?limit=100
func (h *Handler) GetAllSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.ledger.ListAll(r.Context(), principal(r), queryLimit(r))
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, sessions)
}

// GetOverallStats - Totals across all users
// GET /api/moderator/stats
func (h *Handler) GetOverallStats(w http.ResponseWriter, r *http.Request) {
	overall, err := h.stats.OverallStats(r.Context(), principal(r))
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, overall)
}

// UpdateUserRole - Promote or demote a user
// PUT /api/moderator/users/{userId}/role
func (h *Handler) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	if err := models.RequireModerator(principal(r)); err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	var req UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithServiceError(w, r, fmt.Errorf("%w: malformed JSON body", models.ErrValidation))
		return
	}
	role, err := models.ParseRole(req.Role)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	user, err := h.users.UpdateUserRole(r.Context(), &database.UpdateUserRoleInput{
		UserID: mux.Vars(r)["userId"],
		Role:   role,
	})
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

// ExportSessions - Download every session as CSV
// GET /api/moderator/export
func (h *Handler) ExportSessions(w http.ResponseWriter, r *http.Request) {
	if err := models.RequireModerator(principal(r)); err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	rows, err := h.sessions.ListSessionsForExport(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteSessionsCSV(&buf, rows); err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.Filename))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"AltarCheckinBackend/ledger"
	"AltarCheckinBackend/models"
)

// ClockInRequest is the optional body of a clock-in.
type ClockInRequest struct {
	ServiceType string   `json:"serviceType"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

// ClockIn - Start a service session for the caller
// POST /api/sessions/clock-in
func (h *Handler) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req ClockInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respondWithServiceError(w, r, fmt.Errorf("%w: malformed JSON body", models.ErrValidation))
		return
	}

	session, err := h.ledger.ClockIn(r.Context(), principal(r), &ledger.ClockInInput{
		ServiceType: req.ServiceType,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	})
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, session)
}

// ClockOut - Close the caller's active session
// POST /api/sessions/clock-out
func (h *Handler) ClockOut(w http.ResponseWriter, r *http.Request) {
	session, err := h.ledger.ClockOut(r.Context(), principal(r))
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, session)
}

// GetCurrentSession - The caller's active session, or null
// GET /api/sessions/current
func (h *Handler) GetCurrentSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.ledger.CurrentSession(r.Context(), principal(r))
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, session)
}

// GetSessionHistory - The caller's sessions, newest first
// GET /api/sessions/history?limit=10
func (h *Handler) GetSessionHistory(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.ledger.History(r.Context(), principal(r), queryLimit(r))
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, sessions)
}

// GetUserStats - Weekly and monthly hours for the caller
// GET /api/sessions/stats
func (h *Handler) GetUserStats(w http.ResponseWriter, r *http.Request) {
	userStats, err := h.stats.UserStats(r.Context(), principal(r))
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, userStats)
}

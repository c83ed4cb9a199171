package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"AltarCheckinBackend/middleware"
	"AltarCheckinBackend/models"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Message: message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// respondWithServiceError maps a ledger, stats or store error onto a status
// code. Unexpected errors are logged and reported generically.
func respondWithServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, models.ErrUnauthorized):
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, models.ErrForbidden):
		respondWithError(w, http.StatusForbidden, "Moderator access required")
	case errors.Is(err, models.ErrAlreadyClockedIn):
		respondWithError(w, http.StatusBadRequest, models.ErrAlreadyClockedIn.Error())
	case errors.Is(err, models.ErrNoActiveSession):
		respondWithError(w, http.StatusBadRequest, models.ErrNoActiveSession.Error())
	case errors.Is(err, models.ErrValidation):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrUserNotFound):
		respondWithError(w, http.StatusNotFound, "User not found")
	default:
		log.Printf("%s %s: %v", r.Method, r.URL.Path, err)
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func principal(r *http.Request) *models.Principal {
	p, _ := middleware.GetPrincipalFromContext(r.Context())
	return p
}

// queryLimit reads ?limit=. Missing or unparsable values yield 0 so the
// service default applies.
func queryLimit(r *http.Request) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		return 0
	}
	return limit
}

package handler

import (
	"net/http"

	"github.com/sakif/wellverse/internal/apperror"
	"github.com/sakif/wellverse/internal/auth"
	"github.com/sakif/wellverse/internal/service"
)

// MoodHandler serves mood check-ins and the history view.
type MoodHandler struct {
	moods *service.MoodService
}

func NewMoodHandler(moods *service.MoodService) *MoodHandler {
	return &MoodHandler{moods: moods}
}

type recordMoodRequest struct {
	Mood    string `json:"mood"`
	Journal string `json:"journal"`
}

// HandleRecord stores a mood check-in for the session user.
//
// HTTP: POST /api/moods
func (h *MoodHandler) HandleRecord(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, apperror.NotAuthenticated())
		return
	}

	var req recordMoodRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	entry, err := h.moods.Record(r.Context(), userID, req.Mood, req.Journal)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

// HandleHistory returns the session user's recent check-ins, newest
// first.
//
// HTTP: GET /api/moods
func (h *MoodHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, apperror.NotAuthenticated())
		return
	}

	entries, err := h.moods.History(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

package quiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/otaku-quiz/backend/internal/content"
	"github.com/otaku-quiz/backend/internal/mastery"
	"github.com/otaku-quiz/backend/internal/models"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListSeries(w http.ResponseWriter, r *http.Request) {
	series, err := h.service.ListSeries(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if series == nil {
		series = []string{}
	}
	writeJSON(w, http.StatusOK, series)
}

func (h *Handler) SeriesCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.service.SeriesCounts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.SeriesCountsResponse{Counts: counts})
}

func (h *Handler) DifficultyCounts(w http.ResponseWriter, r *http.Request) {
	series := r.URL.Query().Get("series")
	counts, err := h.service.DifficultyCounts(r.Context(), series)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.DifficultyCountsResponse{Series: series, Counts: counts})
}

func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.Difficulty != nil && !models.ValidDifficulty(*req.Difficulty) {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "difficulty must be 1-4"})
		return
	}
	if req.Count < 0 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "count must be positive"})
		return
	}

	resp, err := h.service.CreateSession(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Progress(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.SelectedSlot < 0 || req.SelectedSlot > models.NumChoices {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "selected_slot must be 0-4"})
		return
	}
	if req.TimeSpentSeconds < 0 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "time_spent_seconds must be non-negative"})
		return
	}

	resp, err := h.service.SubmitAnswer(mux.Vars(r)["id"], req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) Results(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Results(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// writeError maps the error taxonomy onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, content.ErrUnavailable):
		writeJSON(w, http.StatusServiceUnavailable, models.ErrorResponse{Error: "Question store unavailable, try again shortly"})
	case errors.Is(err, ErrNoEligibleQuestions):
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "No questions for this series/difficulty combination"})
	case errors.Is(err, ErrSessionNotFound):
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Session not found"})
	case errors.Is(err, ErrSessionOverrun):
		writeJSON(w, http.StatusConflict, models.ErrorResponse{Error: "All questions in this session are already answered"})
	case errors.Is(err, mastery.ErrIncompleteSession):
		writeJSON(w, http.StatusConflict, models.ErrorResponse{Error: "Session is not completed yet"})
	default:
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

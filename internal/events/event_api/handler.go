package event_api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"lookmyshow/internal/events"
	"lookmyshow/internal/logger"
	"lookmyshow/internal/models"
)

type Handler struct {
	EventService *events.EventService
	Logger       *logger.Logger
}

func NewHandler(eventService *events.EventService, log *logger.Logger) *Handler {
	return &Handler{EventService: eventService, Logger: log}
}

// GetEvents handles GET /api/events.
func (h *Handler) GetEvents(w http.ResponseWriter, r *http.Request) {
	evts, err := h.EventService.GetAllEvents()
	if err != nil {
		h.logError(fmt.Sprintf("GetEvents: %v", err))
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, models.EventsToResponse(evts))
}

// GetEvent handles GET /api/events/{eventID}.
func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	idParam := chi.URLParam(r, "eventID")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid event ID")
		return
	}

	event, err := h.EventService.GetEventByID(id)
	if err != nil {
		h.logError(fmt.Sprintf("GetEvent: id=%s: %v", idParam, err))
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, models.EventToResponse(*event))
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logError(fmt.Sprintf("failed to encode response: %v", err))
	}
}

func (h *Handler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps the error taxonomy onto HTTP statuses: validation
// to 400, not-found sentinels to 404, sanitized service failures to 500.
func (h *Handler) respondServiceError(w http.ResponseWriter, err error) {
	var ve *models.ValidationError
	var se *models.ServiceError

	switch {
	case errors.As(err, &ve):
		h.respondError(w, http.StatusBadRequest, ve.Message)
	case errors.Is(err, models.ErrEventNotFound):
		h.respondError(w, http.StatusNotFound, "Event not found")
	case errors.As(err, &se):
		h.respondError(w, http.StatusInternalServerError, se.Message)
	default:
		h.respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func (h *Handler) logError(message string) {
	if h.Logger != nil {
		h.Logger.Error("API", message)
	}
}

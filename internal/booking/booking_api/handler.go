package booking_api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"lookmyshow/internal/booking"
	"lookmyshow/internal/booking/qr"
	"lookmyshow/internal/logger"
	"lookmyshow/internal/models"
)

type Handler struct {
	BookingService *booking.BookingService
	Logger         *logger.Logger
}

func NewHandler(bookingService *booking.BookingService, log *logger.Logger) *Handler {
	return &Handler{BookingService: bookingService, Logger: log}
}

// CreateBooking handles POST /api/bookings.
func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req models.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "No data provided")
		return
	}

	if req.EventID == 0 || req.UserEmail == "" {
		h.respondError(w, http.StatusBadRequest, "event_id and user_email are required")
		return
	}

	confirmation, err := h.BookingService.CreateBooking(req.EventID, req.UserEmail)
	if err != nil {
		h.logError(fmt.Sprintf("CreateBooking: event=%d email=%s: %v", req.EventID, req.UserEmail, err))
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, confirmation)
}

// GetBookings handles GET /api/bookings.
func (h *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.BookingService.GetAllBookings()
	if err != nil {
		h.logError(fmt.Sprintf("GetBookings: %v", err))
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, models.BookingsToResponse(bookings))
}

// GetUserBookings handles GET /api/bookings/user/{email}.
func (h *Handler) GetUserBookings(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	bookings, err := h.BookingService.GetUserBookings(email)
	if err != nil {
		h.logError(fmt.Sprintf("GetUserBookings: email=%s: %v", email, err))
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, models.BookingsToResponse(bookings))
}

// GetBookingQR handles GET /api/bookings/{bookingID}/qr and returns the
// confirmation as a PNG QR code.
func (h *Handler) GetBookingQR(w http.ResponseWriter, r *http.Request) {
	idParam := chi.URLParam(r, "bookingID")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	b, err := h.BookingService.GetBookingByID(id)
	if err != nil {
		h.logError(fmt.Sprintf("GetBookingQR: id=%s: %v", idParam, err))
		h.respondServiceError(w, err)
		return
	}

	png, err := qr.GenerateBookingQR(*b)
	if err != nil {
		h.logError(fmt.Sprintf("GetBookingQR: encode failed: %v", err))
		h.respondError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		h.logError(fmt.Sprintf("GetBookingQR: write failed: %v", err))
	}
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

func (h *Handler) respondServiceError(w http.ResponseWriter, err error) {
	var ve *models.ValidationError
	var se *models.ServiceError

	switch {
	case errors.As(err, &ve):
		h.respondError(w, http.StatusBadRequest, ve.Message)
	case errors.Is(err, models.ErrBookingNotFound):
		h.respondError(w, http.StatusNotFound, "Booking not found")
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

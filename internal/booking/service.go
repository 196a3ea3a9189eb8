package booking

import (
	"errors"
	"fmt"
	"regexp"

	"lookmyshow/internal/logger"
	"lookmyshow/internal/models"
)

// emailPattern mirrors the grammar enforced at the API boundary: local part,
// "@", domain, ".", TLD of two or more letters.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type DBLayer interface {
	CreateBooking(eventID int64, userEmail string) bool
	GetAllBookings() ([]models.Booking, error)
	GetBookingsByEmail(userEmail string) ([]models.Booking, error)
	GetBookingByID(id int64) (*models.Booking, error)
}

// EventLookup is the slice of the event repository the booking service needs
// for its existence check.
type EventLookup interface {
	GetEventByID(id int64) (*models.Event, error)
}

// Publisher streams booking-created notifications. Publish failures are
// logged, never surfaced: the booking is already durable at that point.
type Publisher interface {
	PublishBookingCreated(eventID int64, eventTitle, userEmail string) error
}

type BookingService struct {
	DB        DBLayer
	Events    EventLookup
	Publisher Publisher
	Logger    *logger.Logger
}

func NewBookingService(db DBLayer, events EventLookup, publisher Publisher, log *logger.Logger) *BookingService {
	return &BookingService{DB: db, Events: events, Publisher: publisher, Logger: log}
}

// CreateBooking validates, checks the event exists, then inserts. The order
// of checks is fixed: id format, email format, existence, insert — each
// failure mode yields a distinct error before the next step runs.
func (s *BookingService) CreateBooking(eventID int64, userEmail string) (*models.BookingConfirmation, error) {
	if eventID <= 0 {
		return nil, models.NewValidationError("Invalid event ID")
	}

	if !ValidateEmail(userEmail) {
		return nil, models.NewValidationError("Invalid email address")
	}

	event, err := s.Events.GetEventByID(eventID)
	if err != nil {
		if errors.Is(err, models.ErrEventNotFound) {
			return nil, models.NewValidationError("Event not found")
		}
		s.logError(fmt.Sprintf("CreateBooking: event lookup failed: %v", err))
		return nil, models.NewServiceError("Booking failed", err)
	}

	if ok := s.DB.CreateBooking(eventID, userEmail); !ok {
		s.logError(fmt.Sprintf("CreateBooking: insert reported failure for event=%d email=%s", eventID, userEmail))
		return nil, models.NewServiceError("Booking failed", errors.New("failed to create booking"))
	}

	if s.Publisher != nil {
		if err := s.Publisher.PublishBookingCreated(eventID, event.Title, userEmail); err != nil {
			s.logWarn(fmt.Sprintf("CreateBooking: publish failed: %v", err))
		}
	}

	if s.Logger != nil {
		s.Logger.LogBooking("CREATE", userEmail, fmt.Sprintf("booked event %d (%s)", eventID, event.Title))
	}

	return &models.BookingConfirmation{
		Message:    "Booking confirmed",
		EventTitle: event.Title,
		UserEmail:  userEmail,
	}, nil
}

// GetAllBookings returns every booking joined with its event title.
func (s *BookingService) GetAllBookings() ([]models.Booking, error) {
	bookings, err := s.DB.GetAllBookings()
	if err != nil {
		s.logError(fmt.Sprintf("GetAllBookings: %v", err))
		return nil, models.NewServiceError("Failed to retrieve bookings", err)
	}
	return bookings, nil
}

// GetUserBookings validates the email before any repository call.
func (s *BookingService) GetUserBookings(userEmail string) ([]models.Booking, error) {
	if !ValidateEmail(userEmail) {
		return nil, models.NewValidationError("Invalid email address")
	}

	bookings, err := s.DB.GetBookingsByEmail(userEmail)
	if err != nil {
		s.logError(fmt.Sprintf("GetUserBookings: email=%s: %v", userEmail, err))
		return nil, models.NewServiceError("Failed to retrieve user bookings", err)
	}
	return bookings, nil
}

// GetBookingByID fetches one joined booking, for the QR confirmation.
func (s *BookingService) GetBookingByID(id int64) (*models.Booking, error) {
	if id <= 0 {
		return nil, models.NewValidationError("Booking ID must be positive")
	}

	booking, err := s.DB.GetBookingByID(id)
	if err != nil {
		if errors.Is(err, models.ErrBookingNotFound) {
			return nil, models.ErrBookingNotFound
		}
		s.logError(fmt.Sprintf("GetBookingByID: id=%d: %v", id, err))
		return nil, models.NewServiceError("Failed to retrieve booking", err)
	}
	return booking, nil
}

// ValidateEmail reports whether the address matches the booking email grammar.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func (s *BookingService) logError(message string) {
	if s.Logger != nil {
		s.Logger.Error("BOOKING", message)
	}
}

func (s *BookingService) logWarn(message string) {
	if s.Logger != nil {
		s.Logger.Warn("BOOKING", message)
	}
}

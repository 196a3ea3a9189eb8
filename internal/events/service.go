package events

import (
	"errors"
	"fmt"

	"lookmyshow/internal/logger"
	"lookmyshow/internal/models"
)

type DBLayer interface {
	GetAllEvents() ([]models.Event, error)
	GetEventByID(id int64) (*models.Event, error)
}

// EventCache is the optional read-through cache in front of GetAllEvents.
type EventCache interface {
	GetEvents() ([]models.Event, bool)
	SetEvents(events []models.Event) error
}

type EventService struct {
	DB     DBLayer
	Cache  EventCache
	Logger *logger.Logger
}

func NewEventService(db DBLayer, cache EventCache, log *logger.Logger) *EventService {
	return &EventService{DB: db, Cache: cache, Logger: log}
}

// GetAllEvents returns all events ordered by date. Storage failures are
// sanitized; the cause never reaches the caller.
func (s *EventService) GetAllEvents() ([]models.Event, error) {
	if s.Cache != nil {
		if events, ok := s.Cache.GetEvents(); ok {
			return events, nil
		}
	}

	events, err := s.DB.GetAllEvents()
	if err != nil {
		s.logError(fmt.Sprintf("GetAllEvents: %v", err))
		return nil, models.NewServiceError("Failed to retrieve events", err)
	}

	if s.Cache != nil {
		if err := s.Cache.SetEvents(events); err != nil {
			s.logWarn(fmt.Sprintf("GetAllEvents: cache store failed: %v", err))
		}
	}

	return events, nil
}

// GetEventByID validates the id before touching storage. A missing event is
// models.ErrEventNotFound, distinct from infrastructure failure.
func (s *EventService) GetEventByID(id int64) (*models.Event, error) {
	if id <= 0 {
		return nil, models.NewValidationError("Event ID must be positive")
	}

	event, err := s.DB.GetEventByID(id)
	if err != nil {
		if errors.Is(err, models.ErrEventNotFound) {
			return nil, models.ErrEventNotFound
		}
		s.logError(fmt.Sprintf("GetEventByID: id=%d: %v", id, err))
		return nil, models.NewServiceError("Failed to retrieve event", err)
	}

	return event, nil
}

func (s *EventService) logError(message string) {
	if s.Logger != nil {
		s.Logger.Error("EVENTS", message)
	}
}

func (s *EventService) logWarn(message string) {
	if s.Logger != nil {
		s.Logger.Warn("EVENTS", message)
	}
}

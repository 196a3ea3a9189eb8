package events_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"lookmyshow/internal/events"
	"lookmyshow/internal/models"
)

type MockDBLayer struct {
	mock.Mock
}

func (m *MockDBLayer) GetAllEvents() ([]models.Event, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Event), args.Error(1)
}

func (m *MockDBLayer) GetEventByID(id int64) (*models.Event, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

type MockEventCache struct {
	mock.Mock
}

func (m *MockEventCache) GetEvents() ([]models.Event, bool) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).([]models.Event), args.Bool(1)
}

func (m *MockEventCache) SetEvents(evts []models.Event) error {
	args := m.Called(evts)
	return args.Error(0)
}

func TestGetAllEvents(t *testing.T) {
	mockDB := new(MockDBLayer)
	service := events.NewEventService(mockDB, nil, nil)

	expected := []models.Event{
		{ID: 1, Title: "Jazz Night", Date: "2026-09-21"},
		{ID: 2, Title: "Rock Concert", Date: "2026-10-12"},
	}
	mockDB.On("GetAllEvents").Return(expected, nil)

	evts, err := service.GetAllEvents()
	assert.NoError(t, err)
	assert.Equal(t, expected, evts)
	mockDB.AssertExpectations(t)
}

func TestGetAllEventsStorageFailure(t *testing.T) {
	mockDB := new(MockDBLayer)
	service := events.NewEventService(mockDB, nil, nil)

	mockDB.On("GetAllEvents").Return(nil, errors.New("connection refused"))

	evts, err := service.GetAllEvents()
	assert.Nil(t, evts)

	var se *models.ServiceError
	assert.ErrorAs(t, err, &se)
	assert.Equal(t, "Failed to retrieve events", se.Message)
}

func TestGetAllEventsCacheHit(t *testing.T) {
	mockDB := new(MockDBLayer)
	mockCache := new(MockEventCache)
	service := events.NewEventService(mockDB, mockCache, nil)

	cached := []models.Event{{ID: 1, Title: "Cached Show", Date: "2026-09-21"}}
	mockCache.On("GetEvents").Return(cached, true)

	evts, err := service.GetAllEvents()
	assert.NoError(t, err)
	assert.Equal(t, cached, evts)
	mockDB.AssertNotCalled(t, "GetAllEvents")
}

func TestGetAllEventsCacheMissPopulates(t *testing.T) {
	mockDB := new(MockDBLayer)
	mockCache := new(MockEventCache)
	service := events.NewEventService(mockDB, mockCache, nil)

	fromDB := []models.Event{{ID: 1, Title: "Fresh Show", Date: "2026-09-21"}}
	mockCache.On("GetEvents").Return(nil, false)
	mockDB.On("GetAllEvents").Return(fromDB, nil)
	mockCache.On("SetEvents", fromDB).Return(nil)

	evts, err := service.GetAllEvents()
	assert.NoError(t, err)
	assert.Equal(t, fromDB, evts)
	mockCache.AssertCalled(t, "SetEvents", fromDB)
}

func TestGetEventByIDRejectsNonPositive(t *testing.T) {
	mockDB := new(MockDBLayer)
	service := events.NewEventService(mockDB, nil, nil)

	for _, id := range []int64{0, -1, -42} {
		event, err := service.GetEventByID(id)
		assert.Nil(t, event)

		var ve *models.ValidationError
		assert.ErrorAs(t, err, &ve)
		assert.Equal(t, "Event ID must be positive", ve.Message)
	}

	// Validation must short-circuit before storage
	mockDB.AssertNotCalled(t, "GetEventByID", mock.Anything)
}

func TestGetEventByID(t *testing.T) {
	mockDB := new(MockDBLayer)
	service := events.NewEventService(mockDB, nil, nil)

	expected := &models.Event{ID: 7, Title: "Concert", Date: "2026-10-12"}
	mockDB.On("GetEventByID", int64(7)).Return(expected, nil)

	event, err := service.GetEventByID(7)
	assert.NoError(t, err)
	assert.Equal(t, expected, event)
}

func TestGetEventByIDNotFound(t *testing.T) {
	mockDB := new(MockDBLayer)
	service := events.NewEventService(mockDB, nil, nil)

	mockDB.On("GetEventByID", int64(99)).Return(nil, models.ErrEventNotFound)

	event, err := service.GetEventByID(99)
	assert.Nil(t, event)
	assert.ErrorIs(t, err, models.ErrEventNotFound)
}

func TestGetEventByIDStorageFailure(t *testing.T) {
	mockDB := new(MockDBLayer)
	service := events.NewEventService(mockDB, nil, nil)

	mockDB.On("GetEventByID", int64(7)).Return(nil, errors.New("bad connection"))

	event, err := service.GetEventByID(7)
	assert.Nil(t, event)

	var se *models.ServiceError
	assert.ErrorAs(t, err, &se)
	assert.Equal(t, "Failed to retrieve event", se.Message)
}

package services_test

import (
	"fmt"
	"testing"

	"quehaypahacer/internal/models"
	"quehaypahacer/internal/repositories"
	"quehaypahacer/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func validEventInput() services.CreateEventInput {
	return services.CreateEventInput{
		Name:        "Fest",
		Location:    "Park",
		Date:        "2099-01-01",
		Category:    "Music",
		Capacity:    100,
		Description: "desc",
	}
}

func TestEventService_Create(t *testing.T) {
	mockEvents := new(MockEventRepository)
	mockUsers := new(MockUserRepository)
	eventService := services.NewEventService(mockEvents, mockUsers, zap.NewNop())

	session := models.NewSession(&models.User{ID: 7, Name: "Ana"})

	// Without a session nothing is created.
	_, err := eventService.Create(nil, validEventInput())
	assert.ErrorIs(t, err, services.ErrNotLoggedIn)

	// Capacity must be strictly positive.
	in := validEventInput()
	in.Capacity = 0
	_, err = eventService.Create(session, in)
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	// The date must be a real calendar date.
	in = validEventInput()
	in.Date = "2024-13-40"
	_, err = eventService.Create(session, in)
	assert.ErrorIs(t, err, services.ErrInvalidDate)

	mockEvents.AssertNotCalled(t, "Create", mock.Anything)

	// A valid event is stored with the session user as organizer.
	mockEvents.On("Create", mock.AnythingOfType("*models.Event")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Event).ID = 42
	}).Return(nil).Once()

	in = validEventInput()
	in.Capacity = 1
	event, err := eventService.Create(session, in)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), event.ID)
	assert.Equal(t, uint(7), event.OrganizerID)
	mockEvents.AssertExpectations(t)
}

func TestEventService_Explore(t *testing.T) {
	mockEvents := new(MockEventRepository)
	eventService := services.NewEventService(mockEvents, new(MockUserRepository), zap.NewNop())

	results := []models.Event{{ID: 1, Name: "Fest", Date: "2099-01-01"}}

	// Filters pass through untouched; an unknown sort key falls back to date.
	mockEvents.On("Find", repositories.EventFilter{Category: "Music", SortBy: "date"}).
		Return(results, nil).Once()

	events, err := eventService.Explore(repositories.EventFilter{Category: "Music", SortBy: "bogus"})
	assert.NoError(t, err)
	assert.Equal(t, results, events)

	mockEvents.On("Find", repositories.EventFilter{Location: "park", SortBy: "name"}).
		Return([]models.Event{}, nil).Once()

	events, err = eventService.Explore(repositories.EventFilter{Location: "park", SortBy: "name"})
	assert.NoError(t, err)
	assert.Empty(t, events)
	mockEvents.AssertExpectations(t)
}

func TestEventService_GetByID(t *testing.T) {
	mockEvents := new(MockEventRepository)
	eventService := services.NewEventService(mockEvents, new(MockUserRepository), zap.NewNop())

	mockEvents.On("GetByID", uint(99)).
		Return(nil, fmt.Errorf("event with ID 99: %w", repositories.ErrNotFound)).Once()
	_, err := eventService.GetByID(99)
	assert.ErrorIs(t, err, services.ErrEventNotFound)

	event := &models.Event{ID: 1, Name: "Fest"}
	mockEvents.On("GetByID", uint(1)).Return(event, nil).Once()
	got, err := eventService.GetByID(1)
	assert.NoError(t, err)
	assert.Equal(t, event, got)
	mockEvents.AssertExpectations(t)
}

func TestEventService_OrganizerName(t *testing.T) {
	mockUsers := new(MockUserRepository)
	eventService := services.NewEventService(new(MockEventRepository), mockUsers, zap.NewNop())

	mockUsers.On("GetByID", uint(7)).Return(&models.User{ID: 7, Name: "Ana"}, nil).Once()
	assert.Equal(t, "Ana", eventService.OrganizerName(7))

	// An unresolvable organizer yields the sentinel, never an error.
	mockUsers.On("GetByID", uint(404)).
		Return(nil, fmt.Errorf("user with ID 404: %w", repositories.ErrNotFound)).Once()
	assert.Equal(t, "Unknown", eventService.OrganizerName(404))
	mockUsers.AssertExpectations(t)
}

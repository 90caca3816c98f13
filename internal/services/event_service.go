package services

import (
	"errors"
	"fmt"
	"time"

	"quehaypahacer/internal/models"
	"quehaypahacer/internal/repositories"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// unknownOrganizer is shown when an organizer id no longer resolves.
const unknownOrganizer = "Unknown"

// CreateEventInput carries the fields for a new event.
type CreateEventInput struct {
	Name        string `validate:"required"`
	Location    string `validate:"required"`
	Date        string `validate:"required"`
	Category    string `validate:"required"`
	Capacity    int    `validate:"required,gt=0"`
	Description string
}

// EventService handles event creation and queries.
type EventService struct {
	eventRepo repositories.EventRepository
	userRepo  repositories.UserRepository
	validate  *validator.Validate
	logger    *zap.Logger
}

// NewEventService creates a new EventService.
func NewEventService(eventRepo repositories.EventRepository, userRepo repositories.UserRepository, logger *zap.Logger) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		userRepo:  userRepo,
		validate:  validator.New(),
		logger:    logger,
	}
}

// Create inserts a new event with the session's user as organizer.
func (s *EventService) Create(session *models.Session, in CreateEventInput) (*models.Event, error) {
	if !session.Authenticated() {
		return nil, ErrNotLoggedIn
	}
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: name, location, date and category are required and capacity must be positive", ErrInvalidInput)
	}
	if _, err := time.Parse(models.DateLayout, in.Date); err != nil {
		return nil, ErrInvalidDate
	}

	event := &models.Event{
		Name:        in.Name,
		Location:    in.Location,
		Date:        in.Date,
		Category:    in.Category,
		Capacity:    in.Capacity,
		Description: in.Description,
		OrganizerID: session.User.ID,
	}
	if err := s.eventRepo.Create(event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	s.logger.Info("event created",
		zap.Uint("event_id", event.ID),
		zap.Uint("organizer_id", event.OrganizerID),
	)
	return event, nil
}

// Explore lists events matching the filter. Unknown sort keys fall back
// to the date ordering. An empty result is not an error.
func (s *EventService) Explore(filter repositories.EventFilter) ([]models.Event, error) {
	switch filter.SortBy {
	case "name", "category":
	default:
		filter.SortBy = "date"
	}
	return s.eventRepo.Find(filter)
}

// GetByID retrieves a single event.
func (s *EventService) GetByID(id uint) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

// OrganizerName resolves an organizer id to a display name. Unresolvable
// ids yield the "Unknown" sentinel, never an error.
func (s *EventService) OrganizerName(organizerID uint) string {
	user, err := s.userRepo.GetByID(organizerID)
	if err != nil {
		return unknownOrganizer
	}
	return user.Name
}

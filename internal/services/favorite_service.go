package services

import (
	"errors"
	"fmt"
	"time"

	"quehaypahacer/internal/models"
	"quehaypahacer/internal/repositories"

	"go.uber.org/zap"
)

// reminderWindowDays is how far ahead favorite events count as upcoming.
const reminderWindowDays = 3

// FavoriteService handles the favorite relation and keeps the session
// user's in-memory favorite set in sync with it.
type FavoriteService struct {
	favoriteRepo repositories.FavoriteRepository
	eventRepo    repositories.EventRepository
	logger       *zap.Logger
}

// NewFavoriteService creates a new FavoriteService.
func NewFavoriteService(favoriteRepo repositories.FavoriteRepository, eventRepo repositories.EventRepository, logger *zap.Logger) *FavoriteService {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		eventRepo:    eventRepo,
		logger:       logger,
	}
}

// Add marks the event as a favorite of the session's user.
func (s *FavoriteService) Add(session *models.Session, eventID uint) error {
	if !session.Authenticated() {
		return ErrNotLoggedIn
	}
	if _, err := s.eventRepo.GetByID(eventID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrEventNotFound
		}
		return fmt.Errorf("failed to look up event: %w", err)
	}

	if err := s.favoriteRepo.Add(session.User.ID, eventID); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return ErrAlreadyFavorite
		}
		return fmt.Errorf("failed to add favorite: %w", err)
	}

	session.User.AddFavorite(eventID)
	return nil
}

// Remove unmarks the event. The in-memory mirror is cleaned up whether
// or not a durable row existed.
func (s *FavoriteService) Remove(session *models.Session, eventID uint) error {
	if !session.Authenticated() {
		return ErrNotLoggedIn
	}

	removed, err := s.favoriteRepo.Remove(session.User.ID, eventID)
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	session.User.RemoveFavorite(eventID)
	if !removed {
		return ErrNotFavorite
	}
	return nil
}

// List returns the user's favorite events, or an empty slice without a
// session.
func (s *FavoriteService) List(session *models.Session) ([]models.Event, error) {
	if !session.Authenticated() {
		return []models.Event{}, nil
	}
	return s.favoriteRepo.EventsForUser(session.User.ID)
}

// Upcoming returns the user's favorite events dated within the next
// three days, today included. Without a session there is nothing to
// remind about.
func (s *FavoriteService) Upcoming(session *models.Session) ([]models.Event, error) {
	if !session.Authenticated() {
		return []models.Event{}, nil
	}

	now := time.Now()
	from := now.Format(models.DateLayout)
	to := now.AddDate(0, 0, reminderWindowDays).Format(models.DateLayout)
	events, err := s.favoriteRepo.UpcomingForUser(session.User.ID, from, to)
	if err != nil {
		s.logger.Warn("reminder check failed", zap.Error(err))
		return nil, err
	}
	return events, nil
}

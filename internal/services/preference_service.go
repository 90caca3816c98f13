package services

import (
	"fmt"
	"time"

	"quehaypahacer/internal/models"
	"quehaypahacer/internal/repositories"

	"go.uber.org/zap"
)

// recommendationLimit caps how many events a recommendation query returns.
const recommendationLimit = 5

// PreferenceService manages preferred categories and the recommendations
// derived from them.
type PreferenceService struct {
	userRepo  repositories.UserRepository
	eventRepo repositories.EventRepository
	logger    *zap.Logger
}

// NewPreferenceService creates a new PreferenceService.
func NewPreferenceService(userRepo repositories.UserRepository, eventRepo repositories.EventRepository, logger *zap.Logger) *PreferenceService {
	return &PreferenceService{
		userRepo:  userRepo,
		eventRepo: eventRepo,
		logger:    logger,
	}
}

// AddCategory appends a label to the user's preferred categories and
// persists the full set. Duplicates are reported, not stored.
func (s *PreferenceService) AddCategory(session *models.Session, label string) error {
	if !session.Authenticated() {
		return ErrNotLoggedIn
	}
	if label == "" {
		return fmt.Errorf("%w: category must not be empty", ErrInvalidInput)
	}
	if session.User.HasCategory(label) {
		return ErrCategoryExists
	}

	updated := append(append([]string{}, session.User.PreferredCategories...), label)
	if err := s.userRepo.UpdateCategories(session.User.ID, updated); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	session.User.PreferredCategories = updated
	return nil
}

// RemoveCategoryAt removes the label at the given position of the
// currently displayed set and persists the result.
func (s *PreferenceService) RemoveCategoryAt(session *models.Session, index int) error {
	if !session.Authenticated() {
		return ErrNotLoggedIn
	}
	categories := session.User.PreferredCategories
	if index < 0 || index >= len(categories) {
		return fmt.Errorf("%w: no category at that position", ErrInvalidInput)
	}

	updated := append(append([]string{}, categories[:index]...), categories[index+1:]...)
	if err := s.userRepo.UpdateCategories(session.User.ID, updated); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	session.User.PreferredCategories = updated
	return nil
}

// Recommend returns up to five events matching the user's preferred
// categories, dated today or later and not yet favorited, ordered by
// date. A user without preferred categories gets an empty result.
func (s *PreferenceService) Recommend(session *models.Session) ([]models.Event, error) {
	if !session.Authenticated() || len(session.User.PreferredCategories) == 0 {
		return []models.Event{}, nil
	}

	today := time.Now().Format(models.DateLayout)
	events, err := s.eventRepo.FindRecommended(session.User.PreferredCategories, today, session.User.ID, recommendationLimit)
	if err != nil {
		s.logger.Warn("recommendation query failed", zap.Error(err))
		return nil, err
	}
	return events, nil
}

package repositories

import (
	"errors"
	"fmt"

	"quehaypahacer/internal/models"

	"gorm.io/gorm"
)

// GORMFavoriteRepository is a GORM implementation of FavoriteRepository.
type GORMFavoriteRepository struct {
	db *gorm.DB
}

// NewGORMFavoriteRepository creates a new instance of GORMFavoriteRepository.
func NewGORMFavoriteRepository(db *gorm.DB) *GORMFavoriteRepository {
	return &GORMFavoriteRepository{
		db: db,
	}
}

// Add inserts the (user, event) pair. An existing pair is reported as
// ErrDuplicate.
func (r *GORMFavoriteRepository) Add(userID, eventID uint) error {
	fav := models.Favorite{UserID: userID, EventID: eventID}
	if err := r.db.Create(&fav).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("favorite (%d, %d): %w", userID, eventID, ErrDuplicate)
		}
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

// Remove deletes the (user, event) pair and reports whether a row was
// removed.
func (r *GORMFavoriteRepository) Remove(userID, eventID uint) (bool, error) {
	res := r.db.Delete(&models.Favorite{}, "user_id = ? AND event_id = ?", userID, eventID)
	if res.Error != nil {
		return false, fmt.Errorf("failed to remove favorite: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// EventIDs returns the ids of every event the user has favorited.
func (r *GORMFavoriteRepository) EventIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Favorite{}).
		Where("user_id = ?", userID).
		Pluck("event_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get favorite ids for user %d: %w", userID, err)
	}
	return ids, nil
}

// EventsForUser returns the user's favorite events.
func (r *GORMFavoriteRepository) EventsForUser(userID uint) ([]models.Event, error) {
	var events []models.Event
	err := r.db.Model(&models.Event{}).
		Joins("JOIN favorites ON favorites.event_id = events.id").
		Where("favorites.user_id = ?", userID).
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get favorite events for user %d: %w", userID, err)
	}
	return events, nil
}

// UpcomingForUser returns the user's favorite events dated within
// [dateFrom, dateTo] inclusive.
func (r *GORMFavoriteRepository) UpcomingForUser(userID uint, dateFrom, dateTo string) ([]models.Event, error) {
	var events []models.Event
	err := r.db.Model(&models.Event{}).
		Joins("JOIN favorites ON favorites.event_id = events.id").
		Where("favorites.user_id = ?", userID).
		Where("events.date BETWEEN ? AND ?", dateFrom, dateTo).
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get upcoming favorites for user %d: %w", userID, err)
	}
	return events, nil
}

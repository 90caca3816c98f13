package repositories

import (
	"errors"
	"fmt"

	"quehaypahacer/internal/models"

	"gorm.io/gorm"
)

// GORMEventRepository is a GORM implementation of EventRepository.
type GORMEventRepository struct {
	db *gorm.DB
}

// NewGORMEventRepository creates a new instance of GORMEventRepository.
func NewGORMEventRepository(db *gorm.DB) *GORMEventRepository {
	return &GORMEventRepository{
		db: db,
	}
}

// Create inserts a new event.
func (r *GORMEventRepository) Create(event *models.Event) error {
	if err := r.db.Create(event).Error; err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

// GetByID retrieves a single event by its ID.
func (r *GORMEventRepository) GetByID(id uint) (*models.Event, error) {
	var event models.Event
	if err := r.db.First(&event, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("event with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get event by ID %d: %w", id, err)
	}
	return &event, nil
}

// Find lists events matching the filter, ordered ascending by the sort
// key (date when unset). Blank filter fields are not applied at all.
func (r *GORMEventRepository) Find(filter EventFilter) ([]models.Event, error) {
	q := r.db.Model(&models.Event{})

	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Location != "" {
		// instr keeps the substring match case-sensitive; sqlite's LIKE
		// folds ASCII case.
		q = q.Where("instr(location, ?) > 0", filter.Location)
	}
	if filter.Date != "" {
		q = q.Where("date = ?", filter.Date)
	}

	switch filter.SortBy {
	case "name":
		q = q.Order("name")
	case "category":
		q = q.Order("category")
	default:
		q = q.Order("date")
	}

	var events []models.Event
	if err := q.Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to find events: %w", err)
	}
	return events, nil
}

// FindRecommended returns upcoming events in the given categories that
// the user has not favorited, ordered by date ascending.
func (r *GORMEventRepository) FindRecommended(categories []string, fromDate string, userID uint, limit int) ([]models.Event, error) {
	favorited := r.db.Model(&models.Favorite{}).
		Select("event_id").
		Where("user_id = ?", userID)

	var events []models.Event
	err := r.db.
		Where("category IN ?", categories).
		Where("date >= ?", fromDate).
		Where("id NOT IN (?)", favorited).
		Order("date").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find recommended events: %w", err)
	}
	return events, nil
}

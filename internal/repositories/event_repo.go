package repositories

import "quehaypahacer/internal/models"

// EventFilter narrows an event listing. Zero-valued fields are omitted
// from the query entirely. Location matches as a substring; category and
// date match exactly.
type EventFilter struct {
	Category string
	Location string
	Date     string
	SortBy   string // "date" (default), "name" or "category"
}

// EventRepository defines the interface for event data access.
type EventRepository interface {
	Create(event *models.Event) error
	GetByID(id uint) (*models.Event, error)
	Find(filter EventFilter) ([]models.Event, error)
	// FindRecommended returns events in any of the given categories dated
	// fromDate or later, excluding the user's favorites, ordered by date
	// ascending and capped at limit.
	FindRecommended(categories []string, fromDate string, userID uint, limit int) ([]models.Event, error)
}

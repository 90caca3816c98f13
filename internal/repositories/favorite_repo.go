package repositories

import "quehaypahacer/internal/models"

// FavoriteRepository defines the interface for the user–event favorite
// relation.
type FavoriteRepository interface {
	Add(userID, eventID uint) error
	// Remove deletes the pair and reports whether a row was actually
	// removed, so callers can distinguish "was not a favorite".
	Remove(userID, eventID uint) (bool, error)
	// EventIDs returns the ids of all events the user has favorited.
	EventIDs(userID uint) ([]uint, error)
	// EventsForUser returns the user's favorite events.
	EventsForUser(userID uint) ([]models.Event, error)
	// UpcomingForUser returns the user's favorite events dated between
	// dateFrom and dateTo inclusive.
	UpcomingForUser(userID uint, dateFrom, dateTo string) ([]models.Event, error)
}

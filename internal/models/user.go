package models

// User represents a registered account.
type User struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"type:varchar(100);not null"`
	Email        string `json:"email" gorm:"uniqueIndex;type:varchar(255);not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"` // No json tag for security

	// PreferredCategories drives recommendations. Stored as a JSON array
	// in a single column; an empty set persists as an empty array.
	PreferredCategories []string `json:"preferred_categories" gorm:"serializer:json"`

	// Favorites mirrors the favorites relation for the logged-in user so
	// the UI can mark events without re-querying. Hydrated at login and
	// kept in sync by every favorite mutation.
	Favorites []uint `json:"-" gorm:"-"`
}

// IsFavorite reports whether the event id is in the user's favorite set.
func (u *User) IsFavorite(eventID uint) bool {
	for _, id := range u.Favorites {
		if id == eventID {
			return true
		}
	}
	return false
}

// AddFavorite appends the event id to the favorite set if not already present.
func (u *User) AddFavorite(eventID uint) {
	if !u.IsFavorite(eventID) {
		u.Favorites = append(u.Favorites, eventID)
	}
}

// RemoveFavorite drops the event id from the favorite set if present.
func (u *User) RemoveFavorite(eventID uint) {
	for i, id := range u.Favorites {
		if id == eventID {
			u.Favorites = append(u.Favorites[:i], u.Favorites[i+1:]...)
			return
		}
	}
}

// HasCategory reports whether the label is already among the user's
// preferred categories.
func (u *User) HasCategory(label string) bool {
	for _, c := range u.PreferredCategories {
		if c == label {
			return true
		}
	}
	return false
}

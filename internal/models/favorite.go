package models

// Favorite links a user to an event they marked, keyed by the pair.
type Favorite struct {
	UserID  uint `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	EventID uint `json:"event_id" gorm:"primaryKey;autoIncrement:false"`
}

// Attendance links a user to an event they attend. The relation is part
// of the durable schema for compatibility but no operation writes to it
// yet.
type Attendance struct {
	UserID  uint `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	EventID uint `json:"event_id" gorm:"primaryKey;autoIncrement:false"`
}

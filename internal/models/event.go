package models

import "time"

// DateLayout is the calendar-date format events are stored and queried
// with. Dates carry no time-of-day.
const DateLayout = "2006-01-02"

// Event represents a schedulable happening created by an organizer.
type Event struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"type:varchar(100);not null"`
	Location    string `json:"location" gorm:"not null"`
	Date        string `json:"date" gorm:"type:varchar(10);not null;index"` // YYYY-MM-DD
	Category    string `json:"category" gorm:"type:varchar(100);not null;index"`
	Capacity    int    `json:"capacity" gorm:"not null"`
	Description string `json:"description"`
	OrganizerID uint   `json:"organizer_id" gorm:"not null"`
}

// IsUpcoming reports whether the event falls within the next three days,
// today included. Unparseable dates are never upcoming.
func (e *Event) IsUpcoming() bool {
	date, err := time.Parse(DateLayout, e.Date)
	if err != nil {
		return false
	}
	today, _ := time.Parse(DateLayout, time.Now().Format(DateLayout))
	days := int(date.Sub(today).Hours() / 24)
	return days >= 0 && days <= 3
}

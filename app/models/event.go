package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Event represents a village event. Public pages partition events at the
// local-midnight boundary: anything dated today or later is upcoming.
type Event struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"type:varchar(200)" json:"title" validate:"required,max=200"`
	Description   string    `gorm:"type:varchar(1000)" json:"description" validate:"max=1000"`
	EventDate     time.Time `gorm:"index" json:"event_date" validate:"required"`
	Location      string    `gorm:"type:varchar(200)" json:"location" validate:"max=200"`
	ContactPerson string    `gorm:"type:varchar(100)" json:"contact_person" validate:"max=100"`
	ContactNumber string    `gorm:"type:varchar(20)" json:"contact_number" validate:"max=20"`
}

// TableName specifies the table name for the Event model
func (Event) TableName() string {
	return "events"
}

func (e *Event) Validate() error {
	return validator.New().Struct(e)
}

// IsUpcoming reports whether the event falls on or after the given day
func (e *Event) IsUpcoming(now time.Time) bool {
	return !e.EventDate.Before(StartOfDay(now))
}

// StartOfDay returns local midnight for the given instant
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

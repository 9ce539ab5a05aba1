// models/event.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// EventSize is a presentation-only layout hint for the events grid.
type EventSize string

const (
	EventSizeSmall  EventSize = "small"
	EventSizeMedium EventSize = "medium"
	EventSizeLarge  EventSize = "large"

	DefaultEventSize = EventSizeMedium
)

// ValidEventSize reports whether s is one of the known size classes.
func ValidEventSize(s EventSize) bool {
	switch s {
	case EventSizeSmall, EventSizeMedium, EventSizeLarge:
		return true
	}
	return false
}

type Event struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null;size:150"`
	Description string    `json:"description" gorm:"type:text"`
	Category    string    `json:"category" gorm:"size:50;index"`
	Date        string    `json:"date" gorm:"size:50"` // display string, not parsed
	Time        string    `json:"time" gorm:"size:50"` // display string, e.g. "10:00 AM - 4:00 PM"
	Location    string    `json:"location" gorm:"size:150"`
	Organizer   string    `json:"organizer" gorm:"size:100"` // free text, not a Club FK
	ImageURL    string    `json:"image_url" gorm:"size:200"`
	SizeClass   EventSize `json:"size_class" gorm:"size:20;default:'medium'"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Event) TableName() string {
	return "events"
}

// BeforeSave keeps the size class inside the known set.
func (e *Event) BeforeSave(tx *gorm.DB) error {
	if e.SizeClass == "" {
		e.SizeClass = DefaultEventSize
	}
	return nil
}

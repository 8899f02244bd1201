// Package models contains database model definitions.
package models

import (
	"time"
)

// Event represents an event listing. The events table is owned by an external
// system; this service only ever reads from it.
type Event struct {
	// ID is the unique identifier for the event.
	ID uint64 `gorm:"primaryKey" json:"id"`
	// Name is the display name of the event.
	Name string `gorm:"size:255;not null" json:"name"`
	// Date is when the event takes place.
	Date time.Time `gorm:"not null" json:"date"`
	// Location is the venue of the event.
	Location string `gorm:"size:255" json:"location"`
	// Description is the free-form event description.
	Description string `json:"description"`
	// CreatedAt is the timestamp when the row was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the timestamp when the row was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
}

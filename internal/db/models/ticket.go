package models

import (
	"time"
)

// Ticket represents a single ticket belonging to an event. Like events, the
// tickets table is owned by an external system and is read-only here.
type Ticket struct {
	// ID is the unique identifier for the ticket.
	ID uint64 `gorm:"primaryKey" json:"id"`
	// EventID references the event this ticket belongs to.
	EventID uint64 `gorm:"column:event_id;not null;index" json:"eventId"`
	// Type is the ticket category (e.g. standard, vip).
	Type string `gorm:"size:100" json:"type"`
	// Status is the sale status of the ticket.
	Status string `gorm:"size:50" json:"status"`
	// Price is the ticket price.
	Price float64 `json:"price"`
	// CreatedAt is the timestamp when the row was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the timestamp when the row was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
}

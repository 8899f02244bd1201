// Package ticket provides cursor-paginated read access over the tickets table,
// scoped to a single event.
package ticket

import (
	"errors"
	"strconv"

	"gorm.io/gorm"

	"github.com/ticket-office/ticket-office/internal/db/controller/event"
	"github.com/ticket-office/ticket-office/internal/db/models"
)

const (
	eventQueryPattern = "event_id = ?"
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrEventIDInvalid is returned when the event id is not a positive number.
	ErrEventIDInvalid = errors.New("event id must be a positive number")
)

// ListParams are the inputs for a cursor-paginated tickets query.
type ListParams struct {
	// EventID scopes the listing to one event. Required, must be positive.
	EventID uint64
	// Limit is the requested page size, clamped to [1, event.MaxLimit].
	// Zero means event.DefaultLimit.
	Limit int
	// Cursor is the id of the last ticket of the previous page. An empty or
	// unparsable cursor restarts the listing from the first page.
	Cursor string
}

// ListResult is one page of tickets plus the cursor for the next page.
// NextCursor is nil when the listing is exhausted.
type ListResult struct {
	Tickets    []models.Ticket `json:"tickets"`
	NextCursor *string         `json:"nextCursor"`
}

// ListByEventWithCursor returns one page of an event's tickets ordered by id
// ascending. Windowing works like event.ListWithCursor: limit+1 rows are
// fetched, the surplus row is dropped and its predecessor's id becomes the
// next cursor. The event id is checked before any query runs.
func ListByEventWithCursor(db *gorm.DB, params ListParams) (*ListResult, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if params.EventID < 1 {
		return nil, ErrEventIDInvalid
	}

	limit := event.ClampLimit(params.Limit)

	query := db.Model(&models.Ticket{}).
		Where(eventQueryPattern, params.EventID).
		Order("id ASC").
		Limit(limit + 1)

	if params.Cursor != "" {
		if cursorID, err := strconv.ParseUint(params.Cursor, 10, 64); err == nil {
			query = query.Where("id > ?", cursorID)
		}
	}

	// non-nil so an empty page serializes as [] instead of null
	tickets := make([]models.Ticket, 0, limit+1)
	if result := query.Find(&tickets); result.Error != nil {
		return nil, result.Error
	}

	res := &ListResult{Tickets: tickets}

	if len(tickets) > limit {
		res.Tickets = tickets[:limit]
		next := strconv.FormatUint(res.Tickets[limit-1].ID, 10)
		res.NextCursor = &next
	}

	return res, nil
}

// ListByEvent returns all tickets of an event without cursor bookkeeping.
func ListByEvent(db *gorm.DB, eventID uint64) ([]models.Ticket, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if eventID < 1 {
		return nil, ErrEventIDInvalid
	}

	var tickets []models.Ticket
	if result := db.Where(eventQueryPattern, eventID).Find(&tickets); result.Error != nil {
		return nil, result.Error
	}

	return tickets, nil
}

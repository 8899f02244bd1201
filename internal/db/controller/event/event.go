// Package event provides cursor-paginated read access over the events table.
package event

import (
	"errors"
	"strconv"

	"gorm.io/gorm"

	"github.com/ticket-office/ticket-office/internal/db/models"
)

const (
	// DefaultLimit is the page size used when the caller does not supply one.
	DefaultLimit = 20
	// MaxLimit is the largest page size a caller may request.
	MaxLimit = 100
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// ListParams are the inputs for a cursor-paginated events query.
type ListParams struct {
	// Limit is the requested page size, clamped to [1, MaxLimit].
	// Zero means DefaultLimit.
	Limit int
	// Cursor is the id of the last event of the previous page. An empty or
	// unparsable cursor restarts the listing from the first page.
	Cursor string
}

// ListResult is one page of events plus the cursor for the next page.
// NextCursor is nil when the listing is exhausted.
type ListResult struct {
	Events     []models.Event `json:"events"`
	NextCursor *string        `json:"nextCursor"`
}

// ClampLimit normalizes a requested page size into [1, MaxLimit],
// substituting DefaultLimit for zero.
func ClampLimit(limit int) int {
	switch {
	case limit == 0:
		return DefaultLimit
	case limit < 1:
		return 1
	case limit > MaxLimit:
		return MaxLimit
	}

	return limit
}

// ListWithCursor returns one page of events ordered by date descending with id
// descending as tie-break. It fetches limit+1 rows to discover whether a next
// page exists; the surplus row is dropped and its predecessor's id becomes the
// next cursor.
//
// The id cursor assumes ids are assigned in event-date order. Rows whose dates
// do not follow insertion order can be skipped or repeated across pages.
func ListWithCursor(db *gorm.DB, params ListParams) (*ListResult, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	limit := ClampLimit(params.Limit)

	query := db.Model(&models.Event{}).
		Order("date DESC, id DESC").
		Limit(limit + 1)

	// A cursor that does not parse restarts from the first page on purpose.
	if params.Cursor != "" {
		if cursorID, err := strconv.ParseUint(params.Cursor, 10, 64); err == nil {
			query = query.Where("id > ?", cursorID)
		}
	}

	// non-nil so an empty page serializes as [] instead of null
	events := make([]models.Event, 0, limit+1)
	if result := query.Find(&events); result.Error != nil {
		return nil, result.Error
	}

	res := &ListResult{Events: events}

	if len(events) > limit {
		res.Events = events[:limit]
		next := strconv.FormatUint(res.Events[limit-1].ID, 10)
		res.NextCursor = &next
	}

	return res, nil
}

// List returns up to limit events without cursor bookkeeping.
func List(db *gorm.DB, limit int) ([]models.Event, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var events []models.Event
	if result := db.Limit(ClampLimit(limit)).Find(&events); result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

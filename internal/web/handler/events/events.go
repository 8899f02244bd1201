// Package events serves the cursor-paginated event listing endpoints.
package events

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/ticket-office/ticket-office/internal/config"
	"github.com/ticket-office/ticket-office/internal/db/controller/event"
	"github.com/ticket-office/ticket-office/internal/web/handler"
)

const (
	// Path is the route of the optimized event listing. The bare /events
	// route serves the same listing for backwards compatibility.
	Path = handler.RootPath + "optimized-events"

	// LegacyPath is the original listing route kept for existing consumers.
	LegacyPath = handler.RootPath + "events"
)

// Service is the event listing handler service.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the event listing handler.
var Handler = Service{}

// Init initializes the event listing handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db

	app.Get(LegacyPath, s.List)
	app.Get(Path, s.List)

	return nil
}

// List returns one page of events plus the cursor for the next page.
func (s *Service) List(c *fiber.Ctx) error {
	limit, ok := ParseLimit(c.Query("limit"))
	if !ok {
		return handler.BadRequest(c, handler.MsgInvalidLimit)
	}

	res, err := event.ListWithCursor(s.db, event.ListParams{
		Limit:  limit,
		Cursor: c.Query("cursor"),
	})
	if err != nil {
		return handler.Fail(c, err)
	}

	return c.JSON(res)
}

// ParseLimit parses a limit query parameter. An empty value means "use the
// default page size"; a present but non-numeric value is a client error.
// Range clamping happens in the controller.
func ParseLimit(raw string) (int, bool) {
	if raw == "" {
		return 0, true
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}

	return limit, true
}

// Package tickets serves the cursor-paginated per-event ticket listing.
package tickets

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/ticket-office/ticket-office/internal/config"
	"github.com/ticket-office/ticket-office/internal/db/controller/ticket"
	"github.com/ticket-office/ticket-office/internal/web/handler"
	"github.com/ticket-office/ticket-office/internal/web/handler/events"
)

const (
	// Path is the route of the per-event ticket listing, nested under the
	// optimized event listing route.
	Path = events.Path + "/:eventId/tickets"
)

// Service is the ticket listing handler service.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the ticket listing handler.
var Handler = Service{}

// Init initializes the ticket listing handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db

	app.Get(Path, s.List)

	return nil
}

// List returns one page of an event's tickets plus the cursor for the next
// page. The event id and limit are checked before any query runs.
func (s *Service) List(c *fiber.Ctx) error {
	eventID, err := strconv.ParseUint(c.Params("eventId"), 10, 64)
	if err != nil || eventID < 1 {
		return handler.BadRequest(c, handler.MsgInvalidParameters)
	}

	limit, ok := events.ParseLimit(c.Query("limit"))
	if !ok {
		return handler.BadRequest(c, handler.MsgInvalidParameters)
	}

	res, err := ticket.ListByEventWithCursor(s.db, ticket.ListParams{
		EventID: eventID,
		Limit:   limit,
		Cursor:  c.Query("cursor"),
	})
	if err != nil {
		return handler.Fail(c, err)
	}

	return c.JSON(res)
}

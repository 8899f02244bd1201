// Package clientsettings serves the per-client box-office settings endpoints.
package clientsettings

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ticket-office/ticket-office/internal/config"
	"github.com/ticket-office/ticket-office/internal/settings"
	"github.com/ticket-office/ticket-office/internal/web/handler"
)

const (
	// Path is the route group of the client settings endpoints.
	Path = handler.RootPath + "client-settings"
)

// Service is the client settings handler service.
type Service struct {
	cfg   *config.Config
	store settings.Store
}

// Handler is the client settings handler.
var Handler = Service{}

// Init initializes the client settings handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, store settings.Store) error {
	if app == nil || cfg == nil || store == nil {
		return errors.New("app, cfg or store is nil")
	}

	s.cfg = cfg
	s.store = store

	app.Route(Path, func(router fiber.Router) {
		router.Get("/:clientId", s.Get)
		router.Put("/:clientId", s.Put)
	})

	return nil
}

// Get returns a client's settings document, lazily creating and persisting
// the default document on first access.
func (s *Service) Get(c *fiber.Ctx) error {
	clientID, err := settings.ValidateClientID(c.Params("clientId"))
	if err != nil {
		return handler.Fail(c, err)
	}

	doc, err := s.store.GetByClientID(c.UserContext(), clientID)
	if err != nil {
		return handler.Fail(c, err)
	}

	if doc == nil {
		defaults := settings.Default(clientID)

		doc, err = s.store.Upsert(c.UserContext(), clientID, defaults)
		if err != nil {
			return handler.Fail(c, err)
		}
	}

	return c.JSON(doc)
}

// Put validates the body and replaces the client's settings document as a
// whole. The clientId inside the body is ignored in favor of the path
// parameter.
func (s *Service) Put(c *fiber.Ctx) error {
	clientID, err := settings.ValidateClientID(c.Params("clientId"))
	if err != nil {
		return handler.Fail(c, err)
	}

	doc, err := settings.Validate(c.Body(), clientID)
	if err != nil {
		return handler.Fail(c, err)
	}

	updated, err := s.store.Upsert(c.UserContext(), clientID, *doc)
	if err != nil {
		return handler.Fail(c, err)
	}

	return c.JSON(updated)
}

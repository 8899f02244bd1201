// Package health serves the health and liveness endpoints.
package health

import (
	"errors"
	"sync/atomic"

	"github.com/gofiber/fiber/v2"

	"github.com/ticket-office/ticket-office/internal/web/handler"
)

const (
	// Path is the route of the health endpoint.
	Path = handler.RootPath + "health"

	// CheckAlivePath is the liveness route load balancers poll. It flips to
	// 503 while the service drains before shutdown.
	CheckAlivePath = handler.RootPath + "checkalive"
)

// Service is the health handler service.
type Service struct {
	alive *atomic.Bool
}

// Handler is the health handler.
var Handler = Service{}

// Init initializes the health handler.
func (s *Service) Init(app *fiber.App, alive *atomic.Bool) error {
	if app == nil || alive == nil {
		return errors.New("app or alive is nil")
	}

	s.alive = alive

	app.Get(Path, s.Get)
	app.Get(CheckAlivePath, s.CheckAlive)

	return nil
}

// Get reports static service health.
func (s *Service) Get(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// CheckAlive reports whether the service still accepts traffic.
func (s *Service) CheckAlive(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.SendStatus(fiber.StatusServiceUnavailable)
	}

	return c.SendStatus(fiber.StatusOK)
}

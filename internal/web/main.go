// Package web wires the fiber application and its route handlers.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/ticket-office/ticket-office/internal/config"
	loggeradapter "github.com/ticket-office/ticket-office/internal/logger/adapter/fiber"
	"github.com/ticket-office/ticket-office/internal/settings"
	"github.com/ticket-office/ticket-office/internal/web/handler/clientsettings"
	"github.com/ticket-office/ticket-office/internal/web/handler/events"
	"github.com/ticket-office/ticket-office/internal/web/handler/health"
	"github.com/ticket-office/ticket-office/internal/web/handler/tickets"
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for graceful shutdown of the web service.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	// Wait interrupt or shutdown request through /shutdown
	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	// stop fiber http server
	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, db *gorm.DB, store settings.Store) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if db == nil {
		panic("db cannot be nil")
	}

	if store == nil {
		panic("settings store cannot be nil")
	}

	// create fiber app
	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
		},
	)

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New())
	}

	// collapse multi-slash request paths so proxies with sloppy joins still hit routes
	if cfg.Webserver.CleanPath {
		app.Use(func(c *fiber.Ctx) error {
			if p := path.Clean(c.Path()); p != c.Path() {
				c.Path(p)
			}

			return c.Next()
		})
	}

	// access logging
	app.Use(loggeradapter.New(loggeradapter.Config{
		Config:        cfg.Log,
		CheckAliveURI: health.CheckAlivePath,
	}))

	// init web service
	service := &Service{
		cfg: cfg,
		App: app,
		// no LB drain wait when iterating locally
		fastShutDown: cfg.DevMode,
	}

	service.alive.Store(true)

	// init handlers (they register their own routes)
	if err := health.Handler.Init(app, &service.alive); err != nil {
		log.Fatal().Err(err).Msg("failed to init health handler")
	}

	if err := events.Handler.Init(app, cfg, db); err != nil {
		log.Fatal().Err(err).Msg("failed to init events handler")
	}

	if err := tickets.Handler.Init(app, cfg, db); err != nil {
		log.Fatal().Err(err).Msg("failed to init tickets handler")
	}

	if err := clientsettings.Handler.Init(app, cfg, store); err != nil {
		log.Fatal().Err(err).Msg("failed to init client settings handler")
	}

	// root greeting kept for existing consumers
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Hello API"})
	})

	return service
}

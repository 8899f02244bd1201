// Package daemon is the composition root: it opens the datastores and
// assembles the web service.
package daemon

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ticket-office/ticket-office/internal/config"
	"github.com/ticket-office/ticket-office/internal/db/dsn"
	"github.com/ticket-office/ticket-office/internal/logger"
	"github.com/ticket-office/ticket-office/internal/mongodb"
	"github.com/ticket-office/ticket-office/internal/settings"
	"github.com/ticket-office/ticket-office/internal/web"
)

const disconnectTimeout = 5 * time.Second

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	mongo      *mongo.Client
	webService *web.Service
}

// Start starts the Daemon's web service and blocks until shutdown. The mongo
// client is disconnected once the web service has stopped serving.
func (d *Daemon) Start() error {
	addr := fmt.Sprintf(":%d", d.cfg.Webserver.Port)

	go d.webService.WaitShutdown()

	err := d.webService.Start(addr)

	ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
	defer cancel()

	if derr := d.mongo.Disconnect(ctx); derr != nil {
		log.Error().Err(derr).Msg("failed to disconnect mongodb client")
	}

	return err
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	if err := logger.Init(cfg.Log); err != nil {
		return nil, errors.Wrap(err, "failed to init logger")
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect database")
	}

	mongoClient, mongoDB, err := mongodb.Connect(context.Background(), cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect mongodb")
	}

	store := settings.NewMongoStore(mongoDB)

	log.Info().Str("db", cfg.DB.GormEngine).Str("mongo", cfg.Mongo.Name).Msg("datastores connected")

	return &Daemon{
		cfg:        cfg,
		mongo:      mongoClient,
		webService: web.New(cfg, db, store),
	}, nil
}

// openDatabase opens the relational store with the configured gorm driver.
func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.DB.GormEngine {
	case "mysql":
		dialector = gormmysql.Open(dsn.Create(cfg))
	default:
		dialector = gormpostgres.Open(dsn.Create(cfg))
	}

	return gorm.Open(dialector, &gorm.Config{})
}

// Package mongodb opens the document store connection and prepares the
// indexes the settings collection relies on.
package mongodb

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ticket-office/ticket-office/internal/config"
	"github.com/ticket-office/ticket-office/internal/settings"
)

const connectTimeout = 10 * time.Second

// Connect opens a client for the configured mongo deployment and returns the
// configured database handle. Callers own the client and must Disconnect it.
func Connect(ctx context.Context, cfg *config.Config) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, nil, err
	}

	db := client.Database(cfg.Mongo.Name)

	initIndexes(ctx, db)

	return client, db, nil
}

// initIndexes creates the unique clientId index backing settings upserts.
// Index creation failure is logged but not fatal; the deployment may already
// have the index or lack the permission to create it.
func initIndexes(ctx context.Context, db *mongo.Database) {
	collection := db.Collection(settings.CollectionName)

	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "clientId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize mongodb indexes")
	}
}

package settings

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	// CollectionName is the mongo collection holding client settings documents.
	CollectionName = "client_settings"
)

// Store is the persistence port for client settings documents.
type Store interface {
	// GetByClientID returns the document for a client, or nil when the client
	// has no document yet. Absence is not an error.
	GetByClientID(ctx context.Context, clientID int) (*ClientSettings, error)

	// Upsert replaces or inserts the whole document for a client and returns
	// it as written. The caller is trusted to have validated the document; no
	// re-read happens after the write.
	Upsert(ctx context.Context, clientID int, doc ClientSettings) (*ClientSettings, error)
}

// MongoStore persists client settings in a mongo collection keyed uniquely by
// clientId.
type MongoStore struct {
	collection *mongo.Collection
}

// NewMongoStore creates a settings store over the given mongo database.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		collection: db.Collection(CollectionName),
	}
}

// GetByClientID implements Store.
func (s *MongoStore) GetByClientID(ctx context.Context, clientID int) (*ClientSettings, error) {
	var doc ClientSettings

	err := s.collection.FindOne(ctx, bson.M{"clientId": clientID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments { //nolint:errorlint // sentinel comparison per driver docs
			return nil, nil
		}

		return nil, err
	}

	return &doc, nil
}

// Upsert implements Store. The document's clientId is forced to the key before
// writing, so the unique index and the document can never disagree.
func (s *MongoStore) Upsert(ctx context.Context, clientID int, doc ClientSettings) (*ClientSettings, error) {
	doc.ClientID = clientID

	_, err := s.collection.UpdateOne(
		ctx,
		bson.M{"clientId": clientID},
		bson.M{"$set": doc},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, err
	}

	return &doc, nil
}

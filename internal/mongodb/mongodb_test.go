package mongodb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticket-office/ticket-office/internal/config"
)

func TestConnect_InvalidURI(t *testing.T) {
	cfg := &config.Config{Mongo: config.Mongo{URI: "not-a-mongo-uri", Name: "seetickets"}}

	client, db, err := Connect(context.Background(), cfg)
	require.Error(t, err)
	assert.Nil(t, client)
	assert.Nil(t, db)
}

func TestConnect_ClientOwnedByCaller(t *testing.T) {
	// nothing listens on this port; the driver connects lazily and the index
	// bootstrap gives up at the context deadline without failing Connect
	cfg := &config.Config{Mongo: config.Mongo{URI: "mongodb://127.0.0.1:1", Name: "seetickets"}}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	client, db, err := Connect(ctx, cfg)
	require.NoError(t, err)
	require.NotNil(t, client)
	require.NotNil(t, db)
	assert.Equal(t, "seetickets", db.Name())

	// the daemon disconnects the client once the web service has stopped
	require.NoError(t, client.Disconnect(context.Background()))
}

package health

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(t *testing.T, alive *atomic.Bool) *fiber.App {
	t.Helper()

	app := fiber.New()

	service := &Service{}
	require.NoError(t, service.Init(app, alive))

	return app
}

func TestService_Get(t *testing.T) {
	var alive atomic.Bool
	alive.Store(true)

	app := setupApp(t, &alive)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestService_CheckAlive(t *testing.T) {
	var alive atomic.Bool
	alive.Store(true)

	app := setupApp(t, &alive)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/checkalive", nil))
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// draining flips liveness to 503 so the LB stops routing here
	alive.Store(false)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/checkalive", nil))
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestService_Init_NilArguments(t *testing.T) {
	var alive atomic.Bool
	service := &Service{}

	assert.Error(t, service.Init(nil, &alive))
	assert.Error(t, service.Init(fiber.New(), nil))
}

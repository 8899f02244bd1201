package events

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ticket-office/ticket-office/internal/config"
	"github.com/ticket-office/ticket-office/internal/db/controller/event"
	"github.com/ticket-office/ticket-office/internal/db/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.Event{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func seedEvents(t *testing.T, db *gorm.DB, count int) {
	t.Helper()

	base := time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC)

	for i := 1; i <= count; i++ {
		e := models.Event{
			ID:       uint64(i),
			Name:     fmt.Sprintf("Event %d", i),
			Date:     base.Add(-time.Duration(i) * 24 * time.Hour),
			Location: "Main Hall",
		}
		require.NoError(t, db.Create(&e).Error, "failed to seed test data")
	}
}

func setupApp(t *testing.T, db *gorm.DB) *fiber.App {
	t.Helper()

	app := fiber.New()

	service := &Service{}
	require.NoError(t, service.Init(app, &config.Config{}, db))

	return app
}

func decodePage(t *testing.T, resp *http.Response) event.ListResult {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var page event.ListResult
	require.NoError(t, json.Unmarshal(body, &page))

	return page
}

func TestParseLimit(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected int
		ok       bool
	}{
		{name: "empty means default", raw: "", expected: 0, ok: true},
		{name: "numeric", raw: "25", expected: 25, ok: true},
		{name: "negative still parses", raw: "-3", expected: -3, ok: true},
		{name: "non numeric rejected", raw: "abc", ok: false},
		{name: "float rejected", raw: "2.5", ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			limit, ok := ParseLimit(tc.raw)
			assert.Equal(t, tc.ok, ok)

			if ok {
				assert.Equal(t, tc.expected, limit)
			}
		})
	}
}

func TestService_List_PaginatesWithCursor(t *testing.T) {
	db := setupTestDB(t)
	seedEvents(t, db, 3)

	app := setupApp(t, db)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/optimized-events?limit=2", nil))
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	page := decodePage(t, resp)
	require.Len(t, page.Events, 2)
	assert.Equal(t, uint64(1), page.Events[0].ID)
	assert.Equal(t, uint64(2), page.Events[1].ID)
	require.NotNil(t, page.NextCursor)
	assert.Equal(t, "2", *page.NextCursor)

	// follow the cursor to the last page
	resp2, err := app.Test(httptest.NewRequest(
		http.MethodGet, "/optimized-events?limit=2&cursor="+*page.NextCursor, nil))
	require.NoError(t, err)
	defer func() {
		_ = resp2.Body.Close()
	}()

	page2 := decodePage(t, resp2)
	require.Len(t, page2.Events, 1)
	assert.Equal(t, uint64(3), page2.Events[0].ID)
	assert.Nil(t, page2.NextCursor)
}

func TestService_List_LegacyRoute(t *testing.T) {
	db := setupTestDB(t)
	seedEvents(t, db, 1)

	app := setupApp(t, db)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/events", nil))
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	page := decodePage(t, resp)
	assert.Len(t, page.Events, 1)
}

func TestService_List_DefaultLimit(t *testing.T) {
	db := setupTestDB(t)
	seedEvents(t, db, event.DefaultLimit+5)

	app := setupApp(t, db)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/optimized-events", nil))
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()

	page := decodePage(t, resp)
	assert.Len(t, page.Events, event.DefaultLimit)
	assert.NotNil(t, page.NextCursor)
}

func TestService_List_InvalidLimit(t *testing.T) {
	db := setupTestDB(t)
	app := setupApp(t, db)

	for _, raw := range []string{"abc", "2.5", "1e2"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/optimized-events?limit="+raw, nil))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"error": "Invalid limit parameter"}`, string(body))

		_ = resp.Body.Close()
	}
}

func TestService_List_MalformedCursorRestartsListing(t *testing.T) {
	db := setupTestDB(t)
	seedEvents(t, db, 2)

	app := setupApp(t, db)

	resp, err := app.Test(httptest.NewRequest(
		http.MethodGet, "/optimized-events?limit=5&cursor=not-a-number", nil))
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	page := decodePage(t, resp)
	assert.Len(t, page.Events, 2)
	assert.Nil(t, page.NextCursor)
}

func TestService_Init_NilArguments(t *testing.T) {
	db := setupTestDB(t)
	service := &Service{}

	assert.Error(t, service.Init(nil, &config.Config{}, db))
	assert.Error(t, service.Init(fiber.New(), nil, db))
	assert.Error(t, service.Init(fiber.New(), &config.Config{}, nil))
}

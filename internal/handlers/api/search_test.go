package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bizfinder/internal/config"
	"bizfinder/internal/finder"
	"bizfinder/internal/handlers"
	"bizfinder/internal/models"
	"bizfinder/internal/store"
	"bizfinder/internal/testutil"
)

func init() {
	zap.ReplaceGlobals(zap.NewNop())
}

const testPlace = "19103"

type apiResponse struct {
	Status string                   `json:"status"`
	Data   models.SearchAPIResponse `json:"data"`
	Error  string                   `json:"error"`
}

func newTestApp(mem *store.MemoryStore, places *testutil.FakePlaces) (*fiber.App, *handlers.State) {
	cfg := &config.Config{Search: config.DefaultSearch()}
	svc := finder.NewService(testutil.NewFakeGeocoder(testPlace, 39.9526, -75.1652), places, mem)
	state := handlers.NewState()

	app := fiber.New()
	app.Post("/api/search", NewSearchHandler(svc, state, cfg).Search)
	return app, state
}

func post(t *testing.T, app *fiber.App, body string) (int, apiResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out apiResponse
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return resp.StatusCode, out
}

func TestSearchAPI_Success(t *testing.T) {
	mem := store.NewMemoryStore()
	app, state := newTestApp(mem, &testutil.FakePlaces{Places: testutil.ScenarioPlaces()})

	status, out := post(t, app, `{"place":"  19103 ","radius_miles":25}`)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "ok", out.Status)
	assert.Equal(t, testPlace, out.Data.Location)
	assert.Equal(t, 25, out.Data.RadiusMiles)
	assert.Equal(t, 1, out.Data.WithoutSites)
	require.Len(t, out.Data.NewPlaces, 1)
	assert.Equal(t, int64(1), out.Data.NewPlaces[0].ID)
	assert.InDelta(t, 39.9526, out.Data.Latitude, 1e-9)

	ids, err := mem.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, ids.Sorted())
	require.NotNil(t, state.Last())
	assert.Equal(t, state.Last().ID, out.Data.ResultID)
}

func TestSearchAPI_DefaultRadius(t *testing.T) {
	places := &testutil.FakePlaces{Places: testutil.ScenarioPlaces()}
	app, _ := newTestApp(store.NewMemoryStore(), places)

	status, out := post(t, app, `{"place":"19103"}`)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 15, out.Data.RadiusMiles)
	assert.Equal(t, []int{15}, places.Radii)
}

func TestSearchAPI_NothingNew(t *testing.T) {
	mem := store.NewMemoryStore(1)
	app, _ := newTestApp(mem, &testutil.FakePlaces{Places: testutil.ScenarioPlaces()})

	status, out := post(t, app, `{"place":"19103","radius_miles":15}`)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Empty(t, out.Data.NewPlaces)
	assert.Equal(t, 1, mem.Saves())
}

func TestSearchAPI_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		placesErr  error
		wantStatus int
	}{
		{"invalid json", `{"place":`, nil, fiber.StatusBadRequest},
		{"radius not offered", `{"place":"19103","radius_miles":20}`, nil, fiber.StatusBadRequest},
		{"missing place", `{"place":"   "}`, nil, fiber.StatusBadRequest},
		{"long place reaches geocoder", `{"place":"` + strings.Repeat("x", 201) + `"}`, nil, fiber.StatusNotFound},
		{"location not found", `{"place":"nowhere"}`, nil, fiber.StatusNotFound},
		{"upstream failure", `{"place":"19103"}`, errors.New("timeout"), fiber.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := store.NewMemoryStore()
			app, state := newTestApp(mem, &testutil.FakePlaces{Places: testutil.ScenarioPlaces(), Err: tt.placesErr})

			status, out := post(t, app, tt.body)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, "error", out.Status)
			assert.NotEmpty(t, out.Error)
			assert.Zero(t, mem.Saves())
			assert.Nil(t, state.Last())
		})
	}
}

func TestSearchAPI_Busy(t *testing.T) {
	places := &testutil.FakePlaces{Places: testutil.ScenarioPlaces()}
	app, state := newTestApp(store.NewMemoryStore(), places)
	require.True(t, state.TryBegin())

	status, out := post(t, app, `{"place":"19103"}`)

	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "error", out.Status)
	assert.Zero(t, places.Calls)
}

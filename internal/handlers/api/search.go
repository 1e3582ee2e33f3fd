package api

import (
	"encoding/json"
	"errors"
	"slices"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"bizfinder/internal/config"
	"bizfinder/internal/finder"
	"bizfinder/internal/handlers"
	"bizfinder/internal/models"
	"bizfinder/internal/validation"
)

// SearchHandler runs search actions via JSON API.
type SearchHandler struct {
	finder *finder.Service
	state  *handlers.State
	cfg    *config.Config
}

// NewSearchHandler creates a new API search handler. It shares state with
// the HTML handler so API and UI actions never overlap.
func NewSearchHandler(f *finder.Service, state *handlers.State, cfg *config.Config) *SearchHandler {
	return &SearchHandler{finder: f, state: state, cfg: cfg}
}

// Search runs one action and returns the new places.
func (h *SearchHandler) Search(c fiber.Ctx) error {
	var body models.SearchAPIRequest
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid JSON body")
	}

	if body.RadiusMiles == 0 {
		body.RadiusMiles = h.cfg.Search.DefaultRadius
	}
	if !slices.Contains(h.cfg.Search.RadiusOptions, body.RadiusMiles) {
		return jsonError(c, fiber.StatusBadRequest, "radius_miles must be one of the configured options")
	}

	place := validation.NormalizePlace(body.Place)
	if !h.state.TryBegin() {
		return jsonError(c, fiber.StatusConflict, "a search is already running")
	}
	defer h.state.End()

	result, err := h.finder.Search(c.Context(), finder.Query{Place: place, RadiusMiles: body.RadiusMiles})
	if err != nil {
		switch {
		case errors.Is(err, finder.ErrInputMissing):
			return jsonError(c, fiber.StatusBadRequest, "place is required")
		case errors.Is(err, finder.ErrLocationNotFound):
			return jsonError(c, fiber.StatusNotFound, "location not found")
		default:
			zap.L().Error("api search failed", zap.String("place", place), zap.Error(err))
			return jsonError(c, fiber.StatusBadGateway, "search failed")
		}
	}

	if err := jsonSuccess(c, models.SearchAPIResponse{
		ResultID:     result.ID,
		Location:     result.Location,
		Latitude:     result.Center.Lat(),
		Longitude:    result.Center.Lon(),
		RadiusMiles:  result.Query.RadiusMiles,
		NewPlaces:    result.New,
		WithoutSites: len(result.All),
	}); err != nil {
		return err
	}

	if err := h.finder.Commit(c.Context(), result); err != nil {
		zap.L().Error("failed to persist known ids", zap.String("result_id", result.ID.String()), zap.Error(err))
		c.Response().ResetBody()
		return jsonError(c, fiber.StatusInternalServerError, "failed to save known ids")
	}
	h.state.SetLast(result)

	return nil
}

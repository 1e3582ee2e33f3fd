package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"bizfinder/internal/config"
	"bizfinder/internal/export"
	"bizfinder/internal/finder"
	"bizfinder/internal/validation"
)

// User-facing messages for search failures.
const (
	MsgInputMissing     = "Please enter a place to search."
	MsgLocationNotFound = "Location not found."
	MsgSearchFailed     = "Something went wrong while searching. Please try again."
	MsgBusy             = "A search is already running."
	MsgInvalidRadius    = "Please choose one of the listed radii."
)

// SearchHandler serves the search page, runs search actions and exports results.
type SearchHandler struct {
	finder *finder.Service
	state  *State
	cfg    *config.Config
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(f *finder.Service, state *State, cfg *config.Config) *SearchHandler {
	return &SearchHandler{finder: f, state: state, cfg: cfg}
}

// Index renders the search form and the last result, if any.
func (h *SearchHandler) Index(c fiber.Ctx) error {
	return c.Render("index", MergeBranding(fiber.Map{
		"RadiusOptions": h.cfg.Search.RadiusOptions,
		"DefaultRadius": h.cfg.Search.DefaultRadius,
		"Result":        h.state.Last(),
	}, h.cfg))
}

// Search runs one action for the submitted form and renders the results
// partial. Known ids are persisted after the partial has rendered; if that
// fails the partial is discarded and a generic error is shown instead.
// Messages use status 200 so HTMX swaps them into the page.
func (h *SearchHandler) Search(c fiber.Ctx) error {
	radius, ok := validation.ParseRadius(c.FormValue("radius"), h.cfg.Search.RadiusOptions, h.cfg.Search.DefaultRadius)
	if !ok {
		return htmxWarning(c, MsgInvalidRadius)
	}

	place := validation.NormalizePlace(c.FormValue("place"))
	if !h.state.TryBegin() {
		return htmxWarning(c, MsgBusy)
	}
	defer h.state.End()

	result, err := h.finder.Search(c.Context(), finder.Query{Place: place, RadiusMiles: radius})
	if err != nil {
		switch {
		case errors.Is(err, finder.ErrInputMissing):
			return htmxWarning(c, MsgInputMissing)
		case errors.Is(err, finder.ErrLocationNotFound):
			return htmxError(c, MsgLocationNotFound)
		default:
			zap.L().Error("search failed", zap.String("place", place), zap.Error(err))
			return htmxError(c, MsgSearchFailed)
		}
	}

	if err := c.Render("partials/results", fiber.Map{"Result": result}, ""); err != nil {
		return err
	}

	if err := h.finder.Commit(c.Context(), result); err != nil {
		zap.L().Error("failed to persist known ids", zap.String("result_id", result.ID.String()), zap.Error(err))
		c.Response().ResetBody()
		return htmxError(c, MsgSearchFailed)
	}
	h.state.SetLast(result)

	return nil
}

// Details renders every place without a website from the last action.
func (h *SearchHandler) Details(c fiber.Ctx) error {
	result, err := h.lastResult(c)
	if err != nil {
		return err
	}

	return c.Render("partials/details", fiber.Map{"Result": result}, "")
}

// Export downloads the new places of the last action as CSV.
func (h *SearchHandler) Export(c fiber.Ctx) error {
	result, err := h.lastResult(c)
	if err != nil {
		return err
	}
	if len(result.New) == 0 {
		return fiber.NewError(fiber.StatusNotFound, "no new companies to export")
	}

	data, err := export.CSV(result.New)
	if err != nil {
		return err
	}

	c.Attachment(export.Filename)
	c.Set(fiber.HeaderContentType, export.ContentType)
	return c.Send(data)
}

// lastResult returns the last result if its id matches the :id route parameter.
func (h *SearchHandler) lastResult(c fiber.Ctx) (*finder.Result, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid result id")
	}

	result := h.state.Last()
	if result == nil || result.ID != id {
		return nil, fiber.NewError(fiber.StatusNotFound, "result not found")
	}
	return result, nil
}

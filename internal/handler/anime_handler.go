package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"animehub/internal/jikan"
)

const defaultAnimeLimit = 25

// AnimeHandler passes upstream metadata queries through to the Jikan
// client. Upstream failures surface as empty payloads, never as errors.
type AnimeHandler struct {
	jikan *jikan.Client
}

// NewAnimeHandler creates a new anime handler.
func NewAnimeHandler(client *jikan.Client) *AnimeHandler {
	return &AnimeHandler{jikan: client}
}

// Top godoc
// @Summary Top-ranked anime
// @Tags anime
// @Produce json
// @Param limit query int false "Result limit"
// @Success 200 {object} Response
// @Router /anime/top [get]
func (h *AnimeHandler) Top(c echo.Context) error {
	limit, err := queryInt(c, "limit", defaultAnimeLimit)
	if err != nil {
		return c.JSON(http.StatusBadRequest, fail("Invalid limit"))
	}
	res := h.jikan.TopAnime(c.Request().Context(), limit)
	return c.JSON(http.StatusOK, ok(listPayload(res)))
}

// Season godoc
// @Summary Current season anime
// @Tags anime
// @Produce json
// @Param limit query int false "Result limit"
// @Success 200 {object} Response
// @Router /anime/season [get]
func (h *AnimeHandler) Season(c echo.Context) error {
	limit, err := queryInt(c, "limit", defaultAnimeLimit)
	if err != nil {
		return c.JSON(http.StatusBadRequest, fail("Invalid limit"))
	}
	res := h.jikan.CurrentSeason(c.Request().Context(), limit)
	return c.JSON(http.StatusOK, ok(listPayload(res)))
}

// Search godoc
// @Summary Search anime
// @Tags anime
// @Produce json
// @Param q query string true "Search query"
// @Param limit query int false "Result limit"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Router /anime/search [get]
func (h *AnimeHandler) Search(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return c.JSON(http.StatusBadRequest, fail("Search query is required"))
	}
	limit, err := queryInt(c, "limit", defaultAnimeLimit)
	if err != nil {
		return c.JSON(http.StatusBadRequest, fail("Invalid limit"))
	}
	res := h.jikan.Search(c.Request().Context(), query, limit)
	return c.JSON(http.StatusOK, ok(listPayload(res)))
}

// Schedule godoc
// @Summary Airing schedule
// @Tags anime
// @Produce json
// @Param day query string false "Day of week"
// @Success 200 {object} Response
// @Router /anime/schedule [get]
func (h *AnimeHandler) Schedule(c echo.Context) error {
	res := h.jikan.Schedule(c.Request().Context(), c.QueryParam("day"))
	return c.JSON(http.StatusOK, ok(listPayload(res)))
}

// ByID godoc
// @Summary Anime details
// @Tags anime
// @Produce json
// @Param id path int true "Anime ID"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /anime/{id} [get]
func (h *AnimeHandler) ByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, fail("Invalid anime ID"))
	}
	res := h.jikan.AnimeByID(c.Request().Context(), id)
	if res.Empty() {
		return c.JSON(http.StatusNotFound, fail("Anime not found"))
	}
	return c.JSON(http.StatusOK, ok(res.Data))
}

// Characters godoc
// @Summary Anime characters
// @Tags anime
// @Produce json
// @Param id path int true "Anime ID"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Router /anime/{id}/characters [get]
func (h *AnimeHandler) Characters(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, fail("Invalid anime ID"))
	}
	res := h.jikan.Characters(c.Request().Context(), id)
	return c.JSON(http.StatusOK, ok(listPayload(res)))
}

// Recommendations godoc
// @Summary Anime recommendations
// @Tags anime
// @Produce json
// @Param id path int true "Anime ID"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Router /anime/{id}/recommendations [get]
func (h *AnimeHandler) Recommendations(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, fail("Invalid anime ID"))
	}
	res := h.jikan.Recommendations(c.Request().Context(), id)
	return c.JSON(http.StatusOK, ok(listPayload(res)))
}

// Videos godoc
// @Summary Anime videos
// @Tags anime
// @Produce json
// @Param id path int true "Anime ID"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Router /anime/{id}/videos [get]
func (h *AnimeHandler) Videos(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, fail("Invalid anime ID"))
	}
	res := h.jikan.Videos(c.Request().Context(), id)
	return c.JSON(http.StatusOK, ok(res.Data))
}

// listPayload degrades failed or empty list results to an empty JSON array.
func listPayload(res jikan.Result) json.RawMessage {
	if res.Empty() {
		return json.RawMessage("[]")
	}
	return res.Data
}

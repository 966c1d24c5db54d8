package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"animehub/internal/model"
	"animehub/internal/service"
)

// NewsHandler handles news endpoints.
type NewsHandler struct {
	content service.ContentService
}

// NewNewsHandler creates a new news handler.
func NewNewsHandler(content service.ContentService) *NewsHandler {
	return &NewsHandler{content: content}
}

// NewsRequest represents a create or update request for an article.
type NewsRequest struct {
	Title    string  `json:"title" validate:"required"`
	Content  string  `json:"content" validate:"required"`
	ImageURL *string `json:"image_url"`
}

// List godoc
// @Summary List news
// @Tags news
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Router /news [get]
func (h *NewsHandler) List(c echo.Context) error {
	limit, err := queryInt(c, "limit", 10)
	if err != nil {
		return c.JSON(http.StatusBadRequest, fail("Invalid pagination parameters"))
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		return c.JSON(http.StatusBadRequest, fail("Invalid pagination parameters"))
	}

	news, err := h.content.ListNews(c.Request().Context(), limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	if news == nil {
		news = []model.News{}
	}

	return c.JSON(http.StatusOK, okPage(news, Pagination{
		Limit:  limit,
		Offset: offset,
		Total:  len(news),
	}))
}

// Get godoc
// @Summary Get a news article
// @Tags news
// @Produce json
// @Param id path int true "News ID"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /news/{id} [get]
func (h *NewsHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, fail("Invalid news ID"))
	}

	news, err := h.content.GetNews(c.Request().Context(), uint(id))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, ok(news))
}

// Create godoc
// @Summary Create a news article
// @Tags news
// @Accept json
// @Produce json
// @Param request body NewsRequest true "Article"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 401 {object} Response
// @Router /news [post]
func (h *NewsHandler) Create(c echo.Context) error {
	var req NewsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("Invalid request body"))
	}

	news, err := h.content.CreateNews(c.Request().Context(), sessionToken(c), service.NewsInput{
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, ok(news))
}

// Update godoc
// @Summary Update a news article
// @Tags news
// @Accept json
// @Produce json
// @Param id path int true "News ID"
// @Param request body NewsRequest true "Article"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 401 {object} Response
// @Failure 404 {object} Response
// @Router /news/{id} [put]
func (h *NewsHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, fail("Invalid news ID"))
	}

	var req NewsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("Invalid request body"))
	}

	news, err := h.content.UpdateNews(c.Request().Context(), sessionToken(c), uint(id), service.NewsInput{
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, ok(news))
}

// Delete godoc
// @Summary Delete a news article
// @Tags news
// @Produce json
// @Param id path int true "News ID"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 401 {object} Response
// @Failure 404 {object} Response
// @Router /news/{id} [delete]
func (h *NewsHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, fail("Invalid news ID"))
	}

	if err := h.content.DeleteNews(c.Request().Context(), sessionToken(c), uint(id)); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, ok(echo.Map{
		"message": "News deleted successfully",
	}))
}

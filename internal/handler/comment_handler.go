package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"animehub/internal/model"
	"animehub/internal/service"
)

// CommentHandler handles comment endpoints. Comments are public: neither
// listing nor creating requires a session.
type CommentHandler struct {
	content service.ContentService
}

// NewCommentHandler creates a new comment handler.
func NewCommentHandler(content service.ContentService) *CommentHandler {
	return &CommentHandler{content: content}
}

// CommentRequest represents a comment creation request.
type CommentRequest struct {
	AnimeID  int    `json:"anime_id" validate:"required,gt=0"`
	Username string `json:"username" validate:"required"`
	Comment  string `json:"comment" validate:"required"`
}

// List godoc
// @Summary List comments for an anime
// @Tags comments
// @Produce json
// @Param anime_id query int true "Anime ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Router /comments [get]
func (h *CommentHandler) List(c echo.Context) error {
	rawAnimeID := c.QueryParam("anime_id")
	if rawAnimeID == "" {
		return c.JSON(http.StatusBadRequest, fail("Anime ID is required"))
	}
	animeID, err := strconv.Atoi(rawAnimeID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, fail("Invalid anime ID"))
	}

	limit, err := queryInt(c, "limit", 20)
	if err != nil {
		return c.JSON(http.StatusBadRequest, fail("Invalid pagination parameters"))
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		return c.JSON(http.StatusBadRequest, fail("Invalid pagination parameters"))
	}

	comments, err := h.content.ListComments(c.Request().Context(), animeID, limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	if comments == nil {
		comments = []model.Comment{}
	}

	return c.JSON(http.StatusOK, okPage(comments, Pagination{
		Limit:  limit,
		Offset: offset,
		Total:  len(comments),
	}))
}

// Create godoc
// @Summary Create a comment
// @Tags comments
// @Accept json
// @Produce json
// @Param request body CommentRequest true "Comment"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Router /comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("Anime ID, username, and comment are required"))
	}

	comment, err := h.content.CreateComment(c.Request().Context(), req.AnimeID, req.Username, req.Comment)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, ok(comment))
}

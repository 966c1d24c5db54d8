package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"animehub/internal/service"
	"animehub/internal/session"
)

// AdminHandler handles admin authentication endpoints.
type AdminHandler struct {
	authService  service.AuthService
	cookieSecure bool
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(authService service.AuthService, cookieSecure bool) *AdminHandler {
	return &AdminHandler{authService: authService, cookieSecure: cookieSecure}
}

// LoginRequest represents an admin login request.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AdminInfo is the public projection of an admin record.
type AdminInfo struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// Login godoc
// @Summary Admin login
// @Tags admin
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 401 {object} Response
// @Router /admin/login [post]
func (h *AdminHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("Username and password are required"))
	}

	admin, err := h.authService.Verify(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if err == service.ErrInvalidCredentials {
			return c.JSON(http.StatusUnauthorized, fail("Invalid credentials"))
		}
		return writeError(c, err)
	}

	c.SetCookie(session.NewCookie(session.Encode(admin.ID), h.cookieSecure))

	return c.JSON(http.StatusOK, ok(echo.Map{
		"id":       admin.ID,
		"username": admin.Username,
	}))
}

// Me godoc
// @Summary Current admin identity
// @Tags admin
// @Produce json
// @Success 200 {object} Response
// @Failure 401 {object} Response
// @Failure 404 {object} Response
// @Router /admin/me [get]
func (h *AdminHandler) Me(c echo.Context) error {
	token := sessionToken(c)
	if token == "" {
		return c.JSON(http.StatusUnauthorized, fail("Not authenticated"))
	}

	adminID, err := h.authService.Resolve(c.Request().Context(), token)
	if err != nil {
		return writeError(c, err)
	}

	admin, err := h.authService.GetByID(c.Request().Context(), adminID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, ok(AdminInfo{
		ID:        admin.ID,
		Username:  admin.Username,
		CreatedAt: admin.CreatedAt,
	}))
}

// Logout godoc
// @Summary Admin logout
// @Tags admin
// @Produce json
// @Success 200 {object} Response
// @Router /admin/logout [post]
func (h *AdminHandler) Logout(c echo.Context) error {
	c.SetCookie(session.ExpiredCookie(h.cookieSecure))
	return c.JSON(http.StatusOK, ok(echo.Map{
		"message": "logged out successfully",
	}))
}

package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "animehub/internal/errors"
	"animehub/internal/session"
)

// Pagination echoes the cursors of a list request back to the caller.
type Pagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

// Response is the envelope every API endpoint returns.
type Response struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

func ok(data interface{}) Response {
	return Response{Success: true, Data: data}
}

func okPage(data interface{}, p Pagination) Response {
	return Response{Success: true, Data: data, Pagination: &p}
}

func fail(msg string) Response {
	return Response{Success: false, Error: msg}
}

// writeError maps a service error onto the envelope with matching status.
func writeError(c echo.Context, err error) error {
	status, msg := apperrors.MapToHTTP(err)
	return c.JSON(status, fail(msg))
}

// sessionToken extracts the raw session cookie value, or "" when absent.
func sessionToken(c echo.Context) string {
	cookie, err := c.Cookie(session.CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// queryInt parses an integer query parameter, falling back to def when the
// parameter is absent.
func queryInt(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

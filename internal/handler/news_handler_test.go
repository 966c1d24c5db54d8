package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "animehub/internal/errors"
	"animehub/internal/model"
	"animehub/internal/service"
	"animehub/internal/session"
)

func TestNewsGet_NotFound(t *testing.T) {
	e := newEcho()
	content := new(MockContentService)
	content.On("GetNews", mock.Anything, uint(99)).Return(nil, apperrors.ErrNewsNotFound)
	h := NewNewsHandler(content)

	req := httptest.NewRequest(http.MethodGet, "/api/news/99", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("99")

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "News not found", resp.Error)
}

func TestNewsGet_InvalidID(t *testing.T) {
	e := newEcho()
	h := NewNewsHandler(new(MockContentService))

	req := httptest.NewRequest(http.MethodGet, "/api/news/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNewsUpdate_WithoutSession(t *testing.T) {
	e := newEcho()
	content := new(MockContentService)
	// No cookie means an empty token reaches the service, which rejects it.
	content.On("UpdateNews", mock.Anything, "", uint(1), service.NewsInput{Title: "T", Content: "C"}).
		Return(nil, apperrors.ErrUnauthorized)
	h := NewNewsHandler(content)

	req := httptest.NewRequest(http.MethodPut, "/api/news/1",
		strings.NewReader(`{"title":"T","content":"C"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewsCreate_PassesCookieToken(t *testing.T) {
	e := newEcho()
	token := session.Encode(1)
	content := new(MockContentService)
	content.On("CreateNews", mock.Anything, token, service.NewsInput{Title: "T", Content: "C"}).
		Return(&model.News{ID: 7, Title: "T", Content: "C"}, nil)
	h := NewNewsHandler(content)

	req := httptest.NewRequest(http.MethodPost, "/api/news",
		strings.NewReader(`{"title":"T","content":"C"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	rec := httptest.NewRecorder()

	require.NoError(t, h.Create(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	require.True(t, resp.Success)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(7), data["id"])
}

func TestNewsDelete_NotFound(t *testing.T) {
	e := newEcho()
	token := session.Encode(1)
	content := new(MockContentService)
	content.On("DeleteNews", mock.Anything, token, uint(42)).Return(apperrors.ErrNewsNotFound)
	h := NewNewsHandler(content)

	req := httptest.NewRequest(http.MethodDelete, "/api/news/42", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("42")

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewsList_InvalidPagination(t *testing.T) {
	e := newEcho()
	h := NewNewsHandler(new(MockContentService))

	req := httptest.NewRequest(http.MethodGet, "/api/news?limit=abc", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.List(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNewsList_Success(t *testing.T) {
	e := newEcho()
	content := new(MockContentService)
	content.On("ListNews", mock.Anything, 10, 0).Return([]model.News{
		{ID: 2, Title: "Newest"},
		{ID: 1, Title: "Older"},
	}, nil)
	h := NewNewsHandler(content)

	req := httptest.NewRequest(http.MethodGet, "/api/news", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.List(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	require.True(t, resp.Success)
	require.NotNil(t, resp.Pagination)
	assert.Equal(t, 10, resp.Pagination.Limit)
	assert.Equal(t, 2, resp.Pagination.Total)
}

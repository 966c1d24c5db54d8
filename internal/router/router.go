package router

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"animehub/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	adminHandler *handler.AdminHandler,
	newsHandler *handler.NewsHandler,
	commentHandler *handler.CommentHandler,
	animeHandler *handler.AnimeHandler,
	healthHandler *handler.HealthHandler,
) {
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowCredentials: true,
		AllowOriginFunc:  func(string) (bool, error) { return true, nil },
	}))

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", healthHandler.Check)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Admin session routes
	api.POST("/admin/login", adminHandler.Login)
	api.GET("/admin/me", adminHandler.Me)
	api.POST("/admin/logout", adminHandler.Logout)

	// News routes; mutation auth is enforced inside the content service
	api.GET("/news", newsHandler.List)
	api.POST("/news", newsHandler.Create)
	api.GET("/news/:id", newsHandler.Get)
	api.PUT("/news/:id", newsHandler.Update)
	api.DELETE("/news/:id", newsHandler.Delete)

	// Comment routes
	api.GET("/comments", commentHandler.List)
	api.POST("/comments", commentHandler.Create)

	// Upstream pass-through routes
	anime := api.Group("/anime")
	anime.GET("/top", animeHandler.Top)
	anime.GET("/season", animeHandler.Season)
	anime.GET("/search", animeHandler.Search)
	anime.GET("/schedule", animeHandler.Schedule)
	anime.GET("/:id", animeHandler.ByID)
	anime.GET("/:id/characters", animeHandler.Characters)
	anime.GET("/:id/recommendations", animeHandler.Recommendations)
	anime.GET("/:id/videos", animeHandler.Videos)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

package main

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"animehub/docs"

	"animehub/internal/config"
	"animehub/internal/db"
	"animehub/internal/handler"
	"animehub/internal/jikan"
	"animehub/internal/logger"
	"animehub/internal/model"
	"animehub/internal/repository"
	"animehub/internal/router"
	"animehub/internal/service"
)

// defaultAdminHash is the bcrypt hash seeded for the default admin.
// The default password is "password"; change it after first login.
const defaultAdminHash = "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

// @title AnimeHub API
// @version 1.0
// @description Anime content portal: upstream metadata pass-through plus locally authored news and comments.
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()
	log := logger.New()

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	if err := gormDB.AutoMigrate(
		&model.Admin{},
		&model.News{},
		&model.Comment{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	// Initialize repositories
	adminRepo := repository.NewAdminRepository(gormDB)
	newsRepo := repository.NewNewsRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)

	// Seed the default admin; a no-op when the row already exists.
	ctx := context.Background()
	if err := adminRepo.FirstOrCreate(ctx, &model.Admin{
		Username: "admin",
		Password: defaultAdminHash,
	}); err != nil {
		log.Fatal().Err(err).Msg("seed default admin")
	}

	// Initialize services and the upstream client
	authService := service.NewAuthService(adminRepo)
	contentService := service.NewContentService(newsRepo, commentRepo, authService)
	jikanClient := jikan.NewClient(cfg.JikanBaseURL, cfg.JikanMinInterval, log)

	// Initialize handlers
	adminHandler := handler.NewAdminHandler(authService, cfg.CookieSecure)
	newsHandler := handler.NewNewsHandler(contentService)
	commentHandler := handler.NewCommentHandler(contentService)
	animeHandler := handler.NewAnimeHandler(jikanClient)
	healthHandler := handler.NewHealthHandler(gormDB)

	e := echo.New()
	e.HideBanner = true

	router.Register(e, adminHandler, newsHandler, commentHandler, animeHandler, healthHandler)

	addr := ":" + cfg.ServerPort
	log.Info().Str("addr", addr).Msg("starting server")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start")
	}
}

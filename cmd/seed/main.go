package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"gorm.io/gorm"

	"animehub/internal/config"
	"animehub/internal/db"
	"animehub/internal/model"
	"animehub/internal/repository"
	"animehub/internal/service"
)

func main() {
	username := flag.String("username", "admin", "admin username")
	password := flag.String("password", "", "admin password (required)")
	flag.Parse()

	if *password == "" {
		log.Fatal("-password is required")
	}

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Admin{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	adminRepo := repository.NewAdminRepository(gormDB)
	authService := service.NewAuthService(adminRepo)
	ctx := context.Background()

	existing, err := adminRepo.FindByUsername(ctx, *username)
	switch {
	case err == nil:
		// Re-hash and update the password of the existing admin.
		hashed, err := authService.HashPassword(*password)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		existing.Password = hashed
		if err := adminRepo.Update(ctx, existing); err != nil {
			log.Fatalf("Failed to update admin: %v", err)
		}
		log.Printf("Updated password for admin %q (id=%d)", existing.Username, existing.ID)
	case errors.Is(err, gorm.ErrRecordNotFound):
		admin, err := authService.CreateAdmin(ctx, *username, *password)
		if err != nil {
			log.Fatalf("Failed to create admin: %v", err)
		}
		log.Printf("Created admin %q (id=%d)", admin.Username, admin.ID)
	default:
		log.Fatalf("Failed to look up admin: %v", err)
	}
}

package main

import (
	"log"
	"os"

	"auction-admin/internal/config"
	"auction-admin/internal/database"
	"auction-admin/internal/models"
	"auction-admin/internal/repository"
	"auction-admin/internal/utils"
)

// Creates an administrator account from the environment, for deployments
// that should not rely on the built-in bootstrap admin.
func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	adminName := os.Getenv("ADMIN_NAME")
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	if adminName == "" || adminEmail == "" || adminPassword == "" {
		log.Fatal("Missing environment variables: ADMIN_NAME, ADMIN_EMAIL, ADMIN_PASSWORD")
	}

	userRepo := repository.NewUserRepository(db)

	existing, err := userRepo.GetByEmail(adminEmail)
	if err != nil {
		log.Fatal("Failed to check admin existence:", err)
	}
	if existing != nil {
		log.Println("Admin user already exists:", existing.Email)
		return
	}

	passwordHash, err := utils.HashPassword(adminPassword)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	admin := &models.User{
		Name:         adminName,
		Email:        adminEmail,
		PasswordHash: passwordHash,
		Status:       models.UserActive,
		Role:         models.RoleAdmin,
	}

	if err := userRepo.Create(admin); err != nil {
		log.Fatal("Failed to create admin:", err)
	}

	log.Println("Admin user created:", admin.Email)
}
